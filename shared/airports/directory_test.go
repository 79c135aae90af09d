package airports

import "testing"

func TestFindByICAO(t *testing.T) {
	d := NewDirectory()

	tests := []struct {
		name   string
		code   string
		found  bool
		expect string
	}{
		{name: "Exact match", code: "KTCM", found: true, expect: "McChord Field"},
		{name: "Lowercase match", code: "ktcm", found: true, expect: "McChord Field"},
		{name: "Whitespace trimmed", code: " etar ", found: true, expect: "Ramstein Air Base"},
		{name: "Unknown code", code: "ZZZZ", found: false},
		{name: "Empty code", code: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := d.FindByICAO(tt.code)
			if ok != tt.found {
				t.Fatalf("FindByICAO(%q) found = %v, want %v", tt.code, ok, tt.found)
			}
			if ok && a.Name != tt.expect {
				t.Errorf("FindByICAO(%q) name = %q, want %q", tt.code, a.Name, tt.expect)
			}
		})
	}
}

func TestSearchRanking(t *testing.T) {
	d := NewDirectory()

	t.Run("Exact ICAO ranks first", func(t *testing.T) {
		results := d.Search("KTCM", 10)
		if len(results) == 0 {
			t.Fatal("expected at least one result for KTCM")
		}
		if results[0].Icao != "KTCM" {
			t.Errorf("first result = %s, want KTCM", results[0].Icao)
		}
		if results[0].Relevance != scoreIcaoExact {
			t.Errorf("relevance = %v, want %v", results[0].Relevance, scoreIcaoExact)
		}
	})

	t.Run("ICAO prefix beats name match", func(t *testing.T) {
		// "ram" matches ETAR only by name/city; no ICAO contains it, so the
		// name-prefix score should win the top slot.
		results := d.Search("ramstein", 10)
		if len(results) == 0 {
			t.Fatal("expected results for ramstein")
		}
		if results[0].Icao != "ETAR" {
			t.Errorf("first result = %s, want ETAR", results[0].Icao)
		}
		if results[0].Relevance != scoreNamePrefix {
			t.Errorf("relevance = %v, want %v", results[0].Relevance, scoreNamePrefix)
		}
	})

	t.Run("City match scores below name match", func(t *testing.T) {
		results := d.Search("doha", 10)
		if len(results) < 2 {
			t.Fatalf("expected both Doha airports, got %d results", len(results))
		}
		for _, r := range results {
			if r.Relevance != scoreCityPrefix {
				t.Errorf("%s relevance = %v, want city prefix score %v", r.Icao, r.Relevance, scoreCityPrefix)
			}
		}
	})

	t.Run("Limit truncates", func(t *testing.T) {
		results := d.Search("airport", 3)
		if len(results) > 3 {
			t.Errorf("got %d results, want at most 3", len(results))
		}
	})

	t.Run("Empty query", func(t *testing.T) {
		if results := d.Search("   ", 10); results != nil {
			t.Errorf("expected nil for blank query, got %d results", len(results))
		}
	})

	t.Run("No match", func(t *testing.T) {
		if results := d.Search("qqqqqqq", 10); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})
}

func TestValidICAO(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"KTCM", true},
		{"etar", true},
		{"KTC", false},
		{"KTCM1", false},
		{"K1CM", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidICAO(tt.code); got != tt.valid {
			t.Errorf("ValidICAO(%q) = %v, want %v", tt.code, got, tt.valid)
		}
	}
}

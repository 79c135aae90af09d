package airports

import "testing"

func TestDistanceNM(t *testing.T) {
	d := NewDirectory()

	t.Run("Known pair sanity", func(t *testing.T) {
		// McChord to Ramstein is on the order of 4,000-4,500 NM; this is a
		// formula check, not a precision check.
		nm, ok := d.DistanceNM("KTCM", "ETAR")
		if !ok {
			t.Fatal("expected KTCM-ETAR to resolve")
		}
		if nm < 4000 || nm > 4500 {
			t.Errorf("KTCM-ETAR = %d NM, want between 4000 and 4500", nm)
		}
	})

	t.Run("Symmetry", func(t *testing.T) {
		ab, okA := d.DistanceNM("KTCM", "ETAR")
		ba, okB := d.DistanceNM("ETAR", "KTCM")
		if !okA || !okB {
			t.Fatal("expected both directions to resolve")
		}
		if ab != ba {
			t.Errorf("KTCM-ETAR = %d but ETAR-KTCM = %d", ab, ba)
		}
	})

	t.Run("Determinism", func(t *testing.T) {
		first, _ := d.DistanceNM("KJFK", "EGLL")
		second, _ := d.DistanceNM("KJFK", "EGLL")
		if first != second {
			t.Errorf("repeated calls disagree: %d vs %d", first, second)
		}
	})

	t.Run("Unknown departure", func(t *testing.T) {
		nm, ok := d.DistanceNM("ZZZZ", "KTCM")
		if ok {
			t.Errorf("expected not-found for ZZZZ, got %d NM", nm)
		}
		if nm != 0 {
			t.Errorf("not-found distance should be zero value, got %d", nm)
		}
	})

	t.Run("Unknown arrival", func(t *testing.T) {
		if _, ok := d.DistanceNM("KTCM", "ZZZZ"); ok {
			t.Error("expected not-found for unknown arrival")
		}
	})

	t.Run("Zero distance to self", func(t *testing.T) {
		nm, ok := d.DistanceNM("KTCM", "ktcm")
		if !ok {
			t.Fatal("expected self pair to resolve")
		}
		if nm != 0 {
			t.Errorf("KTCM-KTCM = %d, want 0", nm)
		}
	})
}

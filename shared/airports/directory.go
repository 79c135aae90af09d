package airports

import (
	"regexp"
	"sort"
	"strings"

	"mission-scanner/internal/models"
)

var icaoPattern = regexp.MustCompile(`^[A-Z]{4}$`)

// ValidICAO reports whether code is a well-formed 4-letter ICAO identifier.
func ValidICAO(code string) bool {
	return icaoPattern.MatchString(strings.ToUpper(code))
}

// Directory is a read-only set of airport records keyed by ICAO code. The
// underlying data never changes after construction, so it is safe for
// concurrent reads without locking.
type Directory struct {
	byIcao map[string]models.Airport
	all    []models.Airport
}

// NewDirectory builds a directory over the embedded airport dataset.
func NewDirectory() *Directory {
	return newDirectory(airportData)
}

func newDirectory(data []models.Airport) *Directory {
	d := &Directory{
		byIcao: make(map[string]models.Airport, len(data)),
		all:    data,
	}
	for _, a := range data {
		d.byIcao[strings.ToUpper(a.Icao)] = a
	}
	return d
}

// FindByICAO performs a case-insensitive exact lookup.
func (d *Directory) FindByICAO(code string) (models.Airport, bool) {
	a, ok := d.byIcao[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Match is one search result with its relevance score.
type Match struct {
	models.Airport
	Relevance float64 `json:"similarity"`
}

// Relevance scores per match class. Anything below minRelevance is excluded
// from search results.
const (
	scoreIcaoExact     = 1.0
	scoreIcaoPrefix    = 0.9
	scoreIcaoSubstring = 0.8
	scoreNamePrefix    = 0.7
	scoreNameSubstring = 0.6
	scoreCityPrefix    = 0.5
	scoreCitySubstring = 0.4

	minRelevance = 0.3

	defaultSearchLimit = 10
)

// Search returns airports whose ICAO, name, or city contains query
// case-insensitively, ranked so that ICAO matches beat name matches beat
// city matches, truncated to limit.
func (d *Directory) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var matches []Match
	for _, a := range d.all {
		score := relevance(a, q)
		if score < minRelevance {
			continue
		}
		matches = append(matches, Match{Airport: a, Relevance: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Relevance != matches[j].Relevance {
			return matches[i].Relevance > matches[j].Relevance
		}
		return matches[i].Icao < matches[j].Icao
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func relevance(a models.Airport, q string) float64 {
	icao := strings.ToLower(a.Icao)
	name := strings.ToLower(a.Name)
	city := strings.ToLower(a.City)

	switch {
	case icao == q:
		return scoreIcaoExact
	case strings.HasPrefix(icao, q):
		return scoreIcaoPrefix
	case strings.Contains(icao, q):
		return scoreIcaoSubstring
	case strings.HasPrefix(name, q):
		return scoreNamePrefix
	case strings.Contains(name, q):
		return scoreNameSubstring
	case strings.HasPrefix(city, q):
		return scoreCityPrefix
	case strings.Contains(city, q):
		return scoreCitySubstring
	}
	return 0
}

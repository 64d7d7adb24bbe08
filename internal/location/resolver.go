package location

import (
	"regexp"
	"strings"
)

// countryAliases maps a canonical country name to the aliases that identify
// it inside free-text locations: country names, demonyms, ISO-ish short
// codes and major cities. Matching is word-bounded so short codes like "us"
// never match inside words like "using".
var countryAliases = []struct {
	Country string
	Aliases []string
}{
	// Netherlands carries the richest alias set; the original deployment
	// served mostly Dutch candidates and city-level detection mattered.
	{"Netherlands", []string{
		"netherlands", "holland", "nederland", "dutch", "nl",
		"amsterdam", "rotterdam", "utrecht", "the hague", "den haag", "eindhoven",
		"groningen", "tilburg", "almere", "breda", "nijmegen", "apeldoorn",
		"haarlem", "arnhem", "zaanstad", "haarlemmermeer",
	}},
	{"Germany", []string{
		"germany", "deutschland", "german", "de",
		"berlin", "munich", "hamburg", "cologne", "frankfurt",
	}},
	{"United Kingdom", []string{
		"united kingdom", "uk", "britain", "england", "scotland", "wales",
		"london", "manchester", "birmingham", "edinburgh",
	}},
	{"France", []string{"france", "french", "fr", "paris", "lyon", "marseille"}},
	{"Belgium", []string{"belgium", "belgian", "brussels", "antwerp", "ghent"}},
	{"Switzerland", []string{"switzerland", "swiss", "zurich", "geneva", "basel"}},
	{"Austria", []string{"austria", "austrian", "vienna"}},
	{"Sweden", []string{"sweden", "swedish", "stockholm", "gothenburg"}},
	{"Norway", []string{"norway", "norwegian", "oslo"}},
	{"Denmark", []string{"denmark", "danish", "copenhagen"}},
	{"Finland", []string{"finland", "finnish", "helsinki"}},
	{"Italy", []string{"italy", "italian", "rome", "milan"}},
	{"Spain", []string{"spain", "spanish", "madrid", "barcelona"}},
	{"Portugal", []string{"portugal", "portuguese", "lisbon", "porto"}},
	{"Ireland", []string{"ireland", "irish", "dublin"}},
	{"Poland", []string{"poland", "polish", "warsaw", "krakow"}},
	{"United States", []string{
		"united states", "usa", "us", "america", "u.s.",
		"new york", "san francisco", "seattle", "austin", "boston",
	}},
	{"Canada", []string{"canada", "canadian", "toronto", "vancouver", "montreal"}},
	{"Australia", []string{"australia", "australian", "sydney", "melbourne"}},
	{"New Zealand", []string{"new zealand", "auckland", "wellington"}},
	{"Singapore", []string{"singapore"}},
	{"India", []string{"india", "indian", "bangalore", "bengaluru", "mumbai", "hyderabad"}},
	{"Japan", []string{"japan", "japanese", "tokyo", "osaka"}},
	{"China", []string{"china", "chinese", "beijing", "shanghai", "shenzhen"}},
	{"UAE", []string{"uae", "united arab emirates", "dubai", "abu dhabi"}},
}

// Regional clusters used for location-priority scoring.
var (
	// EuropeanCountries covers the general-Europe cluster.
	EuropeanCountries = map[string]bool{
		"Germany": true, "Austria": true, "Switzerland": true, "Netherlands": true,
		"Belgium": true, "United Kingdom": true, "Sweden": true, "Norway": true,
		"Denmark": true, "Finland": true, "France": true, "Spain": true,
		"Italy": true, "Ireland": true, "Poland": true, "Portugal": true,
	}

	// DACHBenelux is the tight Netherlands/Germany/Belgium cluster.
	DACHBenelux = map[string]bool{
		"Netherlands": true, "Germany": true, "Belgium": true,
	}

	// Nordics is the Scandinavian cluster.
	Nordics = map[string]bool{
		"Sweden": true, "Norway": true, "Denmark": true, "Finland": true,
	}

	// EnglishSpeaking groups countries treated as one market for candidates
	// already working in English.
	EnglishSpeaking = map[string]bool{
		"United States": true, "United Kingdom": true, "Canada": true,
		"Australia": true, "Ireland": true, "Singapore": true, "New Zealand": true,
	}

	// TechHubs are countries pre-classified as deep technology job markets,
	// ranked highest when the candidate's own country is unknown.
	TechHubs = map[string]bool{
		"United States": true, "United Kingdom": true, "Germany": true,
		"Netherlands": true, "Canada": true, "Singapore": true, "UAE": true,
		"Australia": true, "Switzerland": true, "Sweden": true,
		"Denmark": true, "Norway": true,
	}
)

// Resolver maps free-text locations to canonical country names.
type Resolver struct {
	patterns []aliasPattern
	exact    map[string]string
}

type aliasPattern struct {
	country string
	re      *regexp.Regexp
}

// NewResolver builds a resolver from the static alias table.
func NewResolver() *Resolver {
	r := &Resolver{
		exact: make(map[string]string),
	}
	for _, entry := range countryAliases {
		quoted := make([]string, 0, len(entry.Aliases))
		for _, alias := range entry.Aliases {
			quoted = append(quoted, regexp.QuoteMeta(alias))
			r.exact[alias] = entry.Country
		}
		re := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
		r.patterns = append(r.patterns, aliasPattern{country: entry.Country, re: re})
	}
	return r
}

// Resolve maps a free-text location to a canonical country name. It returns
// the empty string when nothing matches; unknown is a valid state, not an
// error.
func (r *Resolver) Resolve(text string) string {
	loc := strings.ToLower(strings.TrimSpace(text))
	if loc == "" {
		return ""
	}

	for _, p := range r.patterns {
		if p.re.MatchString(loc) {
			return p.country
		}
	}

	// "City, Region" inputs often carry the country only in the trailing
	// segment, sometimes abbreviated beyond what word-boundary matching of
	// the full string caught.
	if strings.Contains(loc, ",") {
		parts := strings.Split(loc, ",")
		tail := strings.TrimSpace(parts[len(parts)-1])
		if country, ok := r.exact[tail]; ok {
			return country
		}
	}

	return ""
}

// IsRemote reports whether a posting location text indicates a remote role.
func IsRemote(locationText string) bool {
	return strings.Contains(strings.ToLower(locationText), "remote")
}

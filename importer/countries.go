package importer

import "strings"

// DefaultCountryNames maps ISO2 codes of research-heavy countries to display
// names. Extend it by passing a merged table to NewCountryResolver.
var DefaultCountryNames = map[string]string{
	"US": "United States of America",
	"GB": "United Kingdom",
	"FR": "France",
	"DE": "Germany",
	"CN": "China",
	"JP": "Japan",
	"KR": "South Korea",
	"CA": "Canada",
	"AU": "Australia",
	"BR": "Brazil",
	"IN": "India",
	"IT": "Italy",
	"ES": "Spain",
	"NL": "Netherlands",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"CH": "Switzerland",
	"SG": "Singapore",
	"RU": "Russia",
	"ZA": "South Africa",
	"MX": "Mexico",
	"AR": "Argentina",
	"BE": "Belgium",
	"AT": "Austria",
	"PL": "Poland",
	"IE": "Ireland",
	"NZ": "New Zealand",
	"IL": "Israel",
}

// CountryResolver turns raw country cells into display names.
type CountryResolver struct {
	names map[string]string
}

// NewCountryResolver copies names so later changes to the caller's map have no effect.
// Keys are upper-cased; a nil table yields a resolver that only upper-cases codes.
func NewCountryResolver(names map[string]string) *CountryResolver {
	copied := make(map[string]string, len(names))
	for code, name := range names {
		copied[strings.ToUpper(strings.TrimSpace(code))] = name
	}
	return &CountryResolver{names: copied}
}

// WithOverrides returns a table with extra entries layered over base.
func WithOverrides(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for code, name := range base {
		merged[strings.ToUpper(code)] = name
	}
	for code, name := range overrides {
		code = strings.ToUpper(strings.TrimSpace(code))
		name = strings.TrimSpace(name)
		if code == "" || name == "" {
			continue
		}
		merged[code] = name
	}
	return merged
}

// Resolve keeps only the first code of list-like cells such as "['FR', 'DE']".
// Unknown codes come back upper-cased; empty input gives "".
func (c *CountryResolver) Resolve(raw string) string {
	parts := splitListCell(raw, isComma)
	if len(parts) == 0 {
		return ""
	}

	code := strings.ToUpper(parts[0])
	if name, ok := c.names[code]; ok {
		return name
	}
	return code
}

var defaultCountryResolver = NewCountryResolver(DefaultCountryNames)

func ParseCountry(raw string) string {
	return defaultCountryResolver.Resolve(raw)
}

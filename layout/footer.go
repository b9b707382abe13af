package layout

import "regexp"

// Page furniture patterns: bare page numbers ("42"), localized page labels
// ("Página 7", "page 12") and "N of M" counters ("3 de 120", "5/80").
// A line matching any of these is a footer.
var footerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,4}$`),
	regexp.MustCompile(`(?i)^(página|page|pág\.?)\s*\d+`),
	regexp.MustCompile(`(?i)^\d+\s*(de|of|/)\s*\d+$`),
}

// IsFooterText reports whether text is a page number or pagination marker
func IsFooterText(text string) bool {
	for _, p := range footerPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

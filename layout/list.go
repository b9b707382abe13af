package layout

import (
	"regexp"
	"strings"
)

// ListType represents the kind of marker that opens a list item
type ListType int

// List marker kinds: bullets (•, -, *, ◦, ▪), numbers (1. or 1)),
// letters (a. or A)) and roman numerals (iv. or IX)).
const (
	ListTypeUnknown ListType = iota
	ListTypeBullet
	ListTypeNumbered
	ListTypeLettered
	ListTypeRoman
)

// String returns a string representation of the list type
func (t ListType) String() string {
	switch t {
	case ListTypeBullet:
		return "bullet"
	case ListTypeNumbered:
		return "numbered"
	case ListTypeLettered:
		return "lettered"
	case ListTypeRoman:
		return "roman"
	default:
		return "unknown"
	}
}

// listMarkerPatterns are checked in order. Each requires whitespace after the
// marker so that "3.14" or "e.g." never open a list item.
var listMarkerPatterns = []struct {
	listType ListType
	pattern  *regexp.Regexp
}{
	{ListTypeBullet, regexp.MustCompile(`^\s*[•\-*◦▪]\s+`)},
	{ListTypeNumbered, regexp.MustCompile(`^\s*\d+[.)]\s+`)},
	{ListTypeLettered, regexp.MustCompile(`^\s*[a-zA-Z][.)]\s+`)},
	{ListTypeRoman, regexp.MustCompile(`^\s*[ivxIVX]+[.)]\s+`)},
}

// ListMarker describes the marker found at the start of a list item
type ListMarker struct {
	Type ListType

	// Prefix is the marker as it appears in the text, surrounding
	// whitespace included
	Prefix string
}

// DetectListMarker returns the list marker opening text, if any
func DetectListMarker(text string) (ListMarker, bool) {
	for _, m := range listMarkerPatterns {
		if loc := m.pattern.FindStringIndex(text); loc != nil {
			return ListMarker{Type: m.listType, Prefix: text[:loc[1]]}, true
		}
	}
	return ListMarker{}, false
}

// IsListItemText checks if text opens with a list marker
func IsListItemText(text string) bool {
	_, ok := DetectListMarker(text)
	return ok
}

// StripListMarker removes the leading list marker from text. Text without a
// marker is returned trimmed but otherwise unchanged.
func StripListMarker(text string) string {
	if marker, ok := DetectListMarker(text); ok {
		text = text[len(marker.Prefix):]
	}
	return strings.TrimSpace(text)
}

package layout

import (
	"regexp"
	"unicode/utf8"

	"github.com/pfraquete/BookFlow/model"
)

// HeadingLevel represents the structural depth of a heading (1-5)
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // chapter or part
	HeadingLevel2                    // major section
	HeadingLevel3                    // subsection
	HeadingLevel4                    // sub-subsection, or bold body-size heading
	HeadingLevel5                    // minor heading
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "h1"
	case HeadingLevel2:
		return "h2"
	case HeadingLevel3:
		return "h3"
	case HeadingLevel4:
		return "h4"
	case HeadingLevel5:
		return "h5"
	default:
		return "unknown"
	}
}

// HTMLTag returns the HTML tag for this heading level
func (l HeadingLevel) HTMLTag() string {
	if l >= HeadingLevel1 && l <= HeadingLevel5 {
		return l.String()
	}
	return "p"
}

// Int returns the level as a plain integer
func (l HeadingLevel) Int() int {
	return int(l)
}

// Heading detection thresholds
const (
	// HeadingSizeMultiplier is the font size ratio to baseline at or above
	// which a short line is a heading regardless of weight
	HeadingSizeMultiplier = 1.2

	// MinHeadingLength and MaxHeadingLength bound a plausible title, in runes
	MinHeadingLength = 2
	MaxHeadingLength = 200

	// TitleSizeMultiplier is the ratio a heading needs to stand in for the
	// book title
	TitleSizeMultiplier = 1.5
)

// levelThresholds maps size ratios to levels, checked in descending order
var levelThresholds = []struct {
	ratio float64
	level HeadingLevel
}{
	{2.0, HeadingLevel1},
	{1.5, HeadingLevel2},
	{1.3, HeadingLevel3},
	{1.2, HeadingLevel4},
}

// Chapter opening patterns, all case-insensitive. The keyword forms need a
// separator after the number, so a bare "Capítulo 3" does not match.
var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:CAPÍTULO|CHAPTER|CAP\.?)\s*[IVXLCDM\d]+[:.\s]`),
	regexp.MustCompile(`(?i)^(?:PARTE|PART)\s*[IVXLCDM\d]+[:.\s]`),
	regexp.MustCompile(`(?i)^\d+\.\s+[A-ZÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇ]`),
	regexp.MustCompile(`(?i)^[IVXLCDM]+\.\s+[A-ZÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇ]`),
}

// MatchesChapterPattern reports whether text opens like a chapter, part or
// numbered section
func MatchesChapterPattern(text string) bool {
	for _, p := range chapterPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// isHeading applies the heading rule to a line
func isHeading(line *model.Line, baseline float64) bool {
	n := utf8.RuneCountInString(line.Text)
	if n < MinHeadingLength || n > MaxHeadingLength {
		return false
	}

	baseline = effectiveBaseline(baseline)
	if line.FontSize >= baseline*HeadingSizeMultiplier {
		return true
	}
	if line.IsBold && line.FontSize >= baseline {
		return true
	}
	return MatchesChapterPattern(line.Text)
}

// LevelOf maps a heading's size relative to baseline to its level. It is a
// pure function of the line and baseline, so the segmenter and the HTML
// serializer always agree on a heading's level.
func LevelOf(line model.Line, baseline float64) HeadingLevel {
	ratio := line.FontSize / effectiveBaseline(baseline)

	for _, t := range levelThresholds {
		if ratio >= t.ratio {
			return t.level
		}
	}
	if line.IsBold {
		return HeadingLevel4
	}
	return HeadingLevel5
}

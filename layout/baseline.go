package layout

import "github.com/pfraquete/BookFlow/model"

// DefaultBaseline is the body font size assumed when no line reports a
// positive size
const DefaultBaseline = 12.0

// EstimateBaseline returns the document's body text size: the most frequent
// positive font size across all lines, ties going to the smallest size.
// It runs once per document, after every page has been aggregated.
func EstimateBaseline(lines []model.Line) float64 {
	sizes := NewTally[float64]()
	for i := range lines {
		if lines[i].FontSize > 0 {
			sizes.Add(lines[i].FontSize)
		}
	}

	baseline, ok := sizes.ModeSmallest()
	if !ok {
		return DefaultBaseline
	}
	return baseline
}

// effectiveBaseline guards ratio computations against a non-positive baseline
func effectiveBaseline(baseline float64) float64 {
	if baseline <= 0 {
		return DefaultBaseline
	}
	return baseline
}

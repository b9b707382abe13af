// Package layout recovers line-level structure from extracted spans and
// assigns each line a semantic type.
//
// The stages run in a fixed order, each a pure function of its input:
//
//	lines := layout.Aggregate(doc.Pages)
//	baseline := layout.EstimateBaseline(lines)
//	blocks := layout.NewClassifier(baseline).Classify(lines)
//
// # Line Aggregation
//
// [Aggregate] merges same-line spans into a [model.Line]. Font name and size
// are resolved by majority vote through [Tally]; bold and italic come from
// the span style flags or markers in the font name. Extractors that only
// report flat spans can be adapted with [GroupSpans].
//
// # Baseline
//
// [EstimateBaseline] picks the most frequent font size, which all ratio
// decisions are measured against. The baseline is passed by value; nothing
// in this package stores it globally.
//
// # Classification
//
// [Classifier] checks footer, heading, quote and list item rules in that
// order; the first match wins and everything else is a paragraph. The order
// is fixed.
//
// # Heading Levels
//
// [LevelOf] maps a heading's size ratio to a [HeadingLevel] from 1 to 5:
//
//	ratio >= 2.0          level 1
//	ratio >= 1.5          level 2
//	ratio >= 1.3          level 3
//	ratio >= 1.2 or bold  level 4
//	otherwise             level 5
package layout

// Package model provides the data types that flow through the structure
// recovery pipeline.
//
// Input types describe what the external PDF text-extraction collaborator
// hands to the engine:
//
//   - [Span] - a run of text sharing one font, style and position
//   - [SpanLine], [SpanBlock], [Page] - the page/block/line nesting of spans
//   - [Document] - all pages plus the [Metadata] mapping
//
// Pipeline types are produced stage by stage and never mutated afterwards:
//
//   - [Line] - spans merged into one logical line with dominant font attributes
//   - [Block] - a Line with its assigned [BlockType]
//   - [Chapter] - an ordered run of blocks opened by a level-1 heading
//   - [BookContent] - the engine's sole output artifact
//
// # Geometry
//
// [BBox] holds the four corner coordinates reported by the collaborator
// (x0, y0, x1, y1) and encodes as a four element array in JSON and YAML.
package model

// Package pdfsource reads a PDF file into a [model.Document]: positioned
// text spans per page plus the document information dictionary.
//
// Text comes from the content stream as positioned glyph runs, which are
// joined into word spans by [GlyphsToSpans] and grouped into lines with
// [layout.GroupSpans]. Style flags are derived from font names because the
// content stream carries none. Metadata is read with pdfcpu, falling back to
// the trailer when a file fails validation.
package pdfsource

// Package structure turns classified blocks into the chapter hierarchy of a
// book and resolves its title and author.
//
//	chapters := structure.Segment(blocks, baseline)
//	title := structure.DetectTitle(doc.Metadata, chapters, baseline)
//	author := structure.DetectAuthor(doc.Metadata)
//	words := structure.CountWords(chapters)
//
// Chapters do not nest. Headings below level 1 remain ordinary blocks of
// the chapter they appear in.
package structure

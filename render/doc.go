// Package render serializes a [model.BookContent] to a standalone HTML
// document and reads the chapter outline back from one.
//
// The document has a fixed shape:
//
//	<!DOCTYPE html>
//	<html lang="pt-BR">
//	<head> charset and escaped title </head>
//	<body>
//	<h1 class="book-title">...</h1>
//	<p class="book-author">...</p>
//	<section class="chapter" data-page="N"> ... </section>
//	</body>
//	</html>
//
// Each element sits on its own line. Consecutive list items share one ul
// with their markers removed, headings take their level from
// [layout.LevelOf], and bold or italic lines are wrapped in strong and em.
package render

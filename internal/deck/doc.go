// Package deck loads the cards shown by the carousel.
//
// A deck location is either an http(s) URL serving JSON or a file path. File
// decks pick their format from the extension:
//
//	.toml         [[card]] tables with id, kind, title, body
//	.yaml, .yml   a list under a top-level cards key
//	.json         {"cards": [...]} or a bare array
//	anything else one card per non-blank line ("title | body"), last MaxLines lines
//
// A missing file is an empty deck rather than an error, so a deck can be
// created while coverflow is already watching it.
package deck

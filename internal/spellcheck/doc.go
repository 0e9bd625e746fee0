// Package spellcheck is the traversal and report engine of docspell.
//
// A Run walks a docmodel.Tree once. Every comment and markup file is
// submitted to a TextChecker; the checker calls back into a Sink for each
// unknown word, and the Sink writes the word under lazily emitted package,
// file, type and member headers so the report reads as a nested outline.
//
// All values in this package are single-threaded. The checker must deliver
// events synchronously from CheckText.
package spellcheck

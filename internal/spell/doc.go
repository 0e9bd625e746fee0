// Package spell is a small dictionary-based spell checker.
//
// A Checker holds one or more word-list dictionaries and a set of words to
// ignore. CheckText tokenizes a text and, synchronously and in text order,
// raises one Event per word that no dictionary knows. Listeners registered
// with OnError receive the events inline; there is no queue.
//
// Dictionaries are plain word lists, one word per line. Lines starting with
// '#' are comments.
package spell

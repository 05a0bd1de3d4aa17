// Package token provides tokenization support for s-expression documents.
//
// [Tokenize] is a function for tokenizing bytes.
//
// [Balance] checks that list delimiters pair up and reports the first
// mismatch with positions for both ends.
//
// [Escape] and [Unescape] convert between raw string content and the
// backslash-escaped form that string atoms store.
package token

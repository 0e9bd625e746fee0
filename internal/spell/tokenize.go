package spell

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a word found in a text, with its byte offset.
type Token struct {
	Text   string
	Offset int
}

// Tokenize splits text into words. A word is a run of letters, digits,
// marks and underscores; an apostrophe or a period inside a word is kept when
// a letter follows it, so "don't" and "e.g." yield "don't" and "e.g".
func Tokenize(text string) []Token {
	return tokenize(text, false)
}

func tokenize(text string, skipAddresses bool) []Token {
	var tokens []Token
	for _, field := range fields(text) {
		if skipAddresses && isInternetAddress(field.Text) {
			continue
		}
		tokens = appendWords(tokens, field)
	}
	return tokens
}

// fields splits text on white space, keeping offsets.
func fields(text string) []Token {
	var out []Token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, Token{Text: text[start:i], Offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Token{Text: text[start:], Offset: start})
	}
	return out
}

func appendWords(tokens []Token, field Token) []Token {
	s := field.Text
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case start >= 0 && isJoiner(r) && nextIsLetter(s[i+size:]):
			// keep the joiner inside the word
		default:
			if start >= 0 {
				tokens = append(tokens, Token{Text: s[start:i], Offset: field.Offset + start})
				start = -1
			}
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: s[start:], Offset: field.Offset + start})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '.'
}

func nextIsLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

func isInternetAddress(field string) bool {
	lower := strings.ToLower(field)
	switch {
	case strings.Contains(lower, "://"):
		return true
	case strings.HasPrefix(lower, "www."):
		return true
	case strings.Contains(lower, "@") && strings.Contains(lower, "."):
		at := strings.Index(lower, "@")
		return at > 0 && strings.Contains(lower[at:], ".")
	}
	return false
}

package matcher

import (
	"strings"
	"unicode"

	"github.com/dchest/stemmer/porter2"
)

// Tokenizer turns free text into normalized word tokens.
type Tokenizer struct {
	stem bool
}

func NewTokenizer(stem bool) *Tokenizer {
	return &Tokenizer{stem: stem}
}

// Tokenize lowercases text, drops every rune that is neither a word character
// nor whitespace and splits on whitespace. With stemming enabled each token is
// reduced to its Porter2 stem.
func (t *Tokenizer) Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if t.stem {
			field = porter2.Stemmer.Stem(field)
		}
		if field == "" {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

package matcher

import (
	"unicode"

	"github.com/siherrmann/nluparsers/model"
)

// Token is a run of letters or digits with its character range.
type Token struct {
	Value string
	Range model.Range
}

// Tokenize splits s into runs of letters and digits. Any other character,
// apostrophes included, separates tokens.
func Tokenize(s string) []Token {
	var tokens []Token
	var current []rune
	start, char := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) {
			if len(current) == 0 {
				start = char
			}
			current = append(current, r)
		} else if len(current) > 0 {
			tokens = append(tokens, Token{Value: string(current), Range: model.Range{Start: start, End: char}})
			current = current[:0]
		}
		char++
	}
	if len(current) > 0 {
		tokens = append(tokens, Token{Value: string(current), Range: model.Range{Start: start, End: char}})
	}
	return tokens
}

func tokenValues(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, token := range tokens {
		values[i] = token.Value
	}
	return values
}

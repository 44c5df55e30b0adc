package grammar

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenDigits
	tokenSymbol
)

type token struct {
	text        string
	kind        tokenKind
	start       int
	end         int
	charStart   int
	charEnd     int
	spaceBefore bool
}

// cjk reports whether r is written without word separators, in which case
// every character is a token on its own.
func cjk(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

func wordRune(r rune) bool {
	return (unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)) && !cjk(r)
}

// tokenize splits s into letter runs, digit runs, single CJK characters and
// single symbols. Whitespace only sets spaceBefore on the next token.
func tokenize(s string) []token {
	var tokens []token
	space := true
	char := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			space = true
			i += size
			char++
			continue
		}

		t := token{start: i, charStart: char, spaceBefore: space}
		switch {
		case unicode.IsDigit(r):
			t.kind = tokenDigits
			for i < len(s) {
				r, size = utf8.DecodeRuneInString(s[i:])
				if !unicode.IsDigit(r) {
					break
				}
				i += size
				char++
			}
		case wordRune(r):
			t.kind = tokenWord
			for i < len(s) {
				r, size = utf8.DecodeRuneInString(s[i:])
				if !wordRune(r) {
					break
				}
				i += size
				char++
			}
		case cjk(r):
			t.kind = tokenWord
			i += size
			char++
		default:
			t.kind = tokenSymbol
			i += size
			char++
		}
		t.end, t.charEnd = i, char
		t.text = strings.ToLower(s[t.start:t.end])
		if t.text == "’" {
			t.text = "'"
		}

		tokens = append(tokens, t)
		space = false
	}
	return tokens
}

// digitsValue parses a digit token, full-width digits included.
func digitsValue(t token) (int64, bool) {
	if t.kind != tokenDigits {
		return 0, false
	}
	v, err := strconv.ParseInt(width.Narrow.String(t.text), 10, 64)
	return v, err == nil
}

// phrase is a pre-tokenized lexicon entry.
type phrase[V any] struct {
	tokens []string
	value  V
}

// phrases is a set of lexicon entries matched against token sequences.
type phrases[V any] []phrase[V]

func newPhrases[V any](m map[string]V) phrases[V] {
	ps := make(phrases[V], 0, len(m))
	for text, value := range m {
		ps = append(ps, phrase[V]{tokens: phraseTokens(text), value: value})
	}
	return ps
}

func phraseList(texts ...string) phrases[struct{}] {
	ps := make(phrases[struct{}], 0, len(texts))
	for _, text := range texts {
		ps = append(ps, phrase[struct{}]{tokens: phraseTokens(text)})
	}
	return ps
}

func phraseTokens(text string) []string {
	tokens := tokenize(text)
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.text
	}
	return texts
}

// match returns the value and end of the longest entry starting at token i.
func (ps phrases[V]) match(tokens []token, i int) (V, int, bool) {
	var best V
	bestEnd := -1
	for _, p := range ps {
		end := i + len(p.tokens)
		if end > len(tokens) || end <= bestEnd || len(p.tokens) == 0 {
			continue
		}
		ok := true
		for k, text := range p.tokens {
			if tokens[i+k].text != text {
				ok = false
				break
			}
		}
		if ok {
			best, bestEnd = p.value, end
		}
	}
	return best, bestEnd, bestEnd >= 0
}

// end returns the end of the longest entry starting at token i, or -1.
func (ps phrases[V]) end(tokens []token, i int) int {
	_, end, ok := ps.match(tokens, i)
	if !ok {
		return -1
	}
	return end
}

// optional skips an entry starting at token i if there is one.
func (ps phrases[V]) optional(tokens []token, i int) int {
	if end := ps.end(tokens, i); end >= 0 {
		return end
	}
	return i
}

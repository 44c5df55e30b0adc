package alignment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/siherrmann/nluparsers/model"
)

// ByteRange is a half-open interval of byte offsets.
type ByteRange struct {
	Start int
	End   int
}

// NonSpaceTokens returns the byte ranges of the maximal runs of non-whitespace
// characters in sentence.
func NonSpaceTokens(sentence string) []ByteRange {
	var tokens []ByteRange
	start := -1
	for i, r := range sentence {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, ByteRange{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, ByteRange{Start: start, End: len(sentence)})
	}
	return tokens
}

// RangesMapping maps the byte offset at which each token ends in the joined
// sentence to the index of that token. If mapping[65] == 5, the token of index
// 6 starts at byte 65 of the joined sentence.
func RangesMapping(tokens []ByteRange) map[int]int {
	mapping := make(map[int]int, len(tokens))
	end := 0
	for i, token := range tokens {
		end += token.End - token.Start
		mapping[end] = i
	}
	return mapping
}

// CharIndex converts a byte offset of s to a character offset.
func CharIndex(s string, byteIndex int) int {
	if byteIndex > len(s) {
		byteIndex = len(s)
	}
	return utf8.RuneCountInString(s[:byteIndex])
}

// CharRangeToByteRange converts a character range of s to a byte range.
// Offsets past the end of s are clamped to len(s).
func CharRangeToByteRange(s string, r model.Range) ByteRange {
	result := ByteRange{Start: len(s), End: len(s)}
	char := 0
	for i := range s {
		if char == r.Start {
			result.Start = i
		}
		if char == r.End {
			result.End = i
			return result
		}
		char++
	}
	return result
}

// ByteRangeToCharRange converts a byte range of s to a character range.
func ByteRangeToCharRange(s string, r ByteRange) model.Range {
	start := CharIndex(s, r.Start)
	return model.Range{Start: start, End: start + utf8.RuneCountInString(s[r.Start:r.End])}
}

// SubstringWithCharRange returns the substring of s covered by the character range.
func SubstringWithCharRange(s string, r model.Range) string {
	b := CharRangeToByteRange(s, r)
	if b.Start > b.End {
		return ""
	}
	return s[b.Start:b.End]
}

// Alignment relates a sentence to its whitespace-free reconstruction.
type Alignment struct {
	sentence string
	tokens   []ByteRange
	joined   string
	mapping  map[int]int
}

// New tokenizes sentence on whitespace and joins the tokens without separator.
func New(sentence string) *Alignment {
	tokens := NonSpaceTokens(sentence)

	var b strings.Builder
	b.Grow(len(sentence))
	for _, token := range tokens {
		b.WriteString(sentence[token.Start:token.End])
	}

	return &Alignment{
		sentence: sentence,
		tokens:   tokens,
		joined:   b.String(),
		mapping:  RangesMapping(tokens),
	}
}

// Joined returns the reconstructed sentence.
func (a *Alignment) Joined() string {
	return a.joined
}

// IsEmpty reports whether the sentence has no non-whitespace token.
func (a *Alignment) IsEmpty() bool {
	return len(a.tokens) == 0
}

// ToOriginal maps a character range of the joined sentence back to the
// original sentence. It returns false when the range does not start and end
// on token boundaries.
func (a *Alignment) ToOriginal(r model.Range) (string, model.Range, bool) {
	if a.IsEmpty() {
		return "", model.Range{}, false
	}

	b := CharRangeToByteRange(a.joined, r)

	startToken := 0
	if b.Start != 0 {
		previous, ok := a.mapping[b.Start]
		if !ok {
			return "", model.Range{}, false
		}
		startToken = previous + 1
	}
	endToken, ok := a.mapping[b.End]
	if !ok || startToken > endToken {
		return "", model.Range{}, false
	}

	original := ByteRange{Start: a.tokens[startToken].Start, End: a.tokens[endToken].End}
	return a.sentence[original.Start:original.End], ByteRangeToCharRange(a.sentence, original), true
}

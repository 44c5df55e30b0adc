package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Lang is a language the rule engine has rules for.
type Lang int

const (
	DE Lang = iota
	EN
	ES
	FR
	IT
	JA
	KO
	PT
)

var langNames = [...]string{"de", "en", "es", "fr", "it", "ja", "ko", "pt"}

func (l Lang) String() string {
	if l >= 0 && int(l) < len(langNames) {
		return langNames[l]
	}
	return fmt.Sprintf("Lang(%d)", int(l))
}

// ParseLang returns the language with the given ISO 639-1 code.
func ParseLang(code string) (Lang, error) {
	for i, name := range langNames {
		if strings.EqualFold(name, code) {
			return Lang(i), nil
		}
	}
	return 0, fmt.Errorf("unknown grammar language %q", code)
}

var lexicons = map[Lang]func() *lexicon{
	DE: german,
	EN: english,
	ES: spanish,
	FR: french,
	IT: italian,
	JA: japanese,
	KO: korean,
	PT: portuguese,
}

// RuleEngine is the rule based Engine.
type RuleEngine struct {
	lang          Lang
	lex           *lexicon
	referenceTime func() time.Time
}

// Option configures a RuleEngine.
type Option func(*RuleEngine)

// WithReferenceTime fixes the time relative expressions are resolved from.
func WithReferenceTime(t time.Time) Option {
	return func(e *RuleEngine) {
		e.referenceTime = func() time.Time { return t }
	}
}

// Build returns the rule engine of the language.
func Build(lang Lang, opts ...Option) (*RuleEngine, error) {
	newLexicon, ok := lexicons[lang]
	if !ok {
		return nil, fmt.Errorf("no grammar for language %v", lang)
	}
	e := &RuleEngine{lang: lang, lex: newLexicon(), referenceTime: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Lang returns the language of the engine.
func (e *RuleEngine) Lang() Lang {
	return e.lang
}

// candidate is a value recognized on tokens [start, end).
type candidate struct {
	start int
	end   int
	value Output
}

type parser struct {
	lex    *lexicon
	tokens []token
	now    time.Time
}

type recognizer func(p *parser, i int) (candidate, bool)

var recognizers = []recognizer{
	(*parser).standaloneNumber,
	(*parser).ordinalAt,
	(*parser).percentageAt,
	(*parser).amountOfMoneyAt,
	(*parser).temperatureAt,
	(*parser).durationAt,
	(*parser).instantCandidate,
	(*parser).intervalCandidate,
}

// Parse implements Engine.
func (e *RuleEngine) Parse(sentence string, kinds []OutputKind) ([]Match, error) {
	if !utf8.ValidString(sentence) {
		return nil, errors.New("sentence is not valid UTF-8")
	}
	if len(kinds) == 0 {
		return []Match{}, nil
	}

	p := &parser{lex: e.lex, tokens: tokenize(sentence), now: e.referenceTime()}
	priority := map[OutputKind]int{}
	for i, kind := range kinds {
		if _, ok := priority[kind]; !ok {
			priority[kind] = i
		}
	}

	var matches []Match
	for i := range p.tokens {
		for _, recognize := range recognizers {
			c, ok := recognize(p, i)
			if !ok || c.end <= c.start {
				continue
			}
			value, ok := resolveKind(c.value, priority)
			if !ok {
				continue
			}
			first, last := p.tokens[c.start], p.tokens[c.end-1]
			matches = append(matches, Match{
				ByteRange: Range{Start: first.start, End: last.end},
				CharRange: Range{Start: first.charStart, End: last.charEnd},
				Value:     value,
			})
		}
	}
	return resolveOverlaps(matches, priority), nil
}

// resolveKind keeps a value whose kind is requested. Dates, times and
// periods fall back to Datetime when only that is requested.
func resolveKind(value Output, priority map[OutputKind]int) (Output, bool) {
	kind := value.OutputKind()
	if _, ok := priority[kind]; ok {
		return value, true
	}
	if _, ok := priority[KindDatetime]; !ok || !kind.temporal() {
		return nil, false
	}
	switch v := value.(type) {
	case DatetimeOutput:
		v.Kind = KindDatetime
		return v, true
	case DatetimeIntervalOutput:
		v.Kind = KindDatetime
		return v, true
	default:
		return nil, false
	}
}

// resolveOverlaps keeps the longest matches, then the ones of the kind
// requested first, then the leftmost, and returns them by position.
func resolveOverlaps(matches []Match, priority map[OutputKind]int) []Match {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		la, lb := a.CharRange.End-a.CharRange.Start, b.CharRange.End-b.CharRange.Start
		if la != lb {
			return la > lb
		}
		pa, pb := priority[a.Value.OutputKind()], priority[b.Value.OutputKind()]
		if pa != pb {
			return pa < pb
		}
		return a.CharRange.Start < b.CharRange.Start
	})

	kept := []Match{}
	for _, m := range matches {
		overlaps := false
		for _, k := range kept {
			if m.CharRange.Start < k.CharRange.End && k.CharRange.Start < m.CharRange.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, m)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].CharRange.Start < kept[j].CharRange.Start
	})
	return kept
}

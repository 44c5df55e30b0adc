package matcher

import (
	"sort"
	"strings"

	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
)

// ParsedValue is one match of a gazetteer value in a sentence.
type ParsedValue struct {
	Range         model.Range
	RawValue      string
	ResolvedValue string
	Alternatives  []string
}

type entry struct {
	value  model.EntityValue
	tokens []string
}

// Matcher finds approximate occurrences of gazetteer values in lowercased
// sentences. A contiguous run of sentence tokens matches a value when the
// tokens appear in the value in the same order, and the share of value
// tokens they cover reaches the threshold.
type Matcher struct {
	config    model.EntityParserConfig
	license   *model.LicenseInfo
	entries   []entry
	index     map[string][]int
	stopWords map[string]struct{}
}

// New builds a matcher from its configuration.
func New(config model.EntityParserConfig, license *model.LicenseInfo) (*Matcher, error) {
	if config.Threshold <= 0 || config.Threshold > 1 {
		return nil, helper.ConfigurationError("threshold must be in (0, 1], got %v", config.Threshold)
	}
	if config.NGazetteerStopWords != nil && *config.NGazetteerStopWords < 0 {
		return nil, helper.ConfigurationError("n_gazetteer_stop_words must not be negative")
	}

	m := &Matcher{config: config, license: license}
	m.rebuild()
	return m, nil
}

// Config returns the configuration including the current vocabulary.
func (m *Matcher) Config() model.EntityParserConfig {
	return m.config
}

// License returns the license info attached to the matcher, if any.
func (m *Matcher) License() *model.LicenseInfo {
	return m.license
}

// PrependValues adds values in front of the vocabulary, giving them priority
// over existing values that match equally well.
func (m *Matcher) PrependValues(values []model.EntityValue) {
	if len(values) == 0 {
		return
	}
	gazetteer := make([]model.EntityValue, 0, len(values)+len(m.config.Gazetteer))
	gazetteer = append(gazetteer, values...)
	gazetteer = append(gazetteer, m.config.Gazetteer...)
	m.config.Gazetteer = gazetteer
	m.rebuild()
}

func (m *Matcher) rebuild() {
	m.entries = make([]entry, 0, len(m.config.Gazetteer))
	m.index = map[string][]int{}
	counts := map[string]int{}

	for i, value := range m.config.Gazetteer {
		tokens := tokenValues(Tokenize(strings.ToLower(value.RawValue)))
		m.entries = append(m.entries, entry{value: value, tokens: tokens})

		seen := map[string]bool{}
		for _, token := range tokens {
			counts[token]++
			if !seen[token] {
				m.index[token] = append(m.index[token], i)
				seen[token] = true
			}
		}
	}

	m.stopWords = map[string]struct{}{}
	if n := m.config.NGazetteerStopWords; n != nil && *n > 0 {
		frequent := make([]string, 0, len(counts))
		for token := range counts {
			frequent = append(frequent, token)
		}
		sort.Slice(frequent, func(i, j int) bool {
			if counts[frequent[i]] != counts[frequent[j]] {
				return counts[frequent[i]] > counts[frequent[j]]
			}
			return frequent[i] < frequent[j]
		})
		if len(frequent) > *n {
			frequent = frequent[:*n]
		}
		for _, token := range frequent {
			m.stopWords[token] = struct{}{}
		}
	}
	for _, word := range m.config.AdditionalStopWords {
		m.stopWords[strings.ToLower(word)] = struct{}{}
	}
}

type candidate struct {
	rank  int
	ratio float32
}

// Run returns the matches found in the lowercased sentence, left to right.
// Each match reports at most maxAlternatives alternative resolved values.
func (m *Matcher) Run(sentence string, maxAlternatives int) []ParsedValue {
	tokens := Tokenize(sentence)
	values := tokenValues(tokens)

	var parsed []ParsedValue
	for i := 0; i < len(tokens); {
		end, candidates := m.longestMatch(values, i)
		if end < 0 {
			i++
			continue
		}

		primary := m.entries[candidates[0].rank].value
		parsed = append(parsed, ParsedValue{
			Range:         model.Range{Start: tokens[i].Range.Start, End: tokens[end-1].Range.End},
			RawValue:      primary.RawValue,
			ResolvedValue: primary.ResolvedValue,
			Alternatives:  m.alternatives(primary.ResolvedValue, candidates[1:], maxAlternatives),
		})
		i = end
	}
	return parsed
}

// longestMatch returns the end of the longest valid span starting at token
// start, with its candidates ranked best first. It returns -1 when no span
// starting there matches.
func (m *Matcher) longestMatch(tokens []string, start int) (int, []candidate) {
	bestEnd := -1
	var best []candidate

	for end := start + 1; end <= len(tokens); end++ {
		span := tokens[start:end]
		matching := m.matching(span)
		if len(matching) == 0 {
			break
		}
		if m.onlyStopWords(span) {
			continue
		}

		var valid []candidate
		for _, rank := range matching {
			ratio := float32(len(span)) / float32(len(m.entries[rank].tokens))
			if ratio >= m.config.Threshold {
				valid = append(valid, candidate{rank: rank, ratio: ratio})
			}
		}
		if len(valid) > 0 {
			bestEnd, best = end, valid
		}
	}

	sort.SliceStable(best, func(i, j int) bool {
		if best[i].ratio != best[j].ratio {
			return best[i].ratio > best[j].ratio
		}
		return best[i].rank < best[j].rank
	})
	return bestEnd, best
}

// matching returns the ranks of the values containing span as an ordered
// subsequence, in rank order.
func (m *Matcher) matching(span []string) []int {
	var ranks []int
	for _, rank := range m.index[span[0]] {
		if isSubsequence(span, m.entries[rank].tokens) {
			ranks = append(ranks, rank)
		}
	}
	return ranks
}

func (m *Matcher) onlyStopWords(span []string) bool {
	for _, token := range span {
		if _, ok := m.stopWords[token]; !ok {
			return false
		}
	}
	return true
}

func (m *Matcher) alternatives(primary string, candidates []candidate, max int) []string {
	alternatives := []string{}
	seen := map[string]bool{primary: true}
	for _, c := range candidates {
		if len(alternatives) >= max {
			break
		}
		resolved := m.entries[c.rank].value.ResolvedValue
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		alternatives = append(alternatives, resolved)
	}
	return alternatives
}

func isSubsequence(span, tokens []string) bool {
	i := 0
	for _, token := range tokens {
		if i < len(span) && span[i] == token {
			i++
		}
	}
	return i == len(span)
}

// Package ontology holds the static description of builtin entities: the
// supported languages, the entity kinds with their identifiers, which kinds
// each language supports, and human-readable documentation for each kind.
//
// All tables are immutable and built at package initialization, so every
// function here is safe for concurrent use.
package ontology

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/siherrmann/nluparsers/helper"
)

// Language is one of the supported locales.
type Language int

const (
	DE Language = iota
	EN
	ES
	FR
	IT
	JA
	KO
	PT_BR
	PT_PT
)

var languageNames = [...]string{
	DE:    "de",
	EN:    "en",
	ES:    "es",
	FR:    "fr",
	IT:    "it",
	JA:    "ja",
	KO:    "ko",
	PT_BR: "pt_br",
	PT_PT: "pt_pt",
}

var languageTags = [...]language.Tag{
	DE:    language.German,
	EN:    language.English,
	ES:    language.Spanish,
	FR:    language.French,
	IT:    language.Italian,
	JA:    language.Japanese,
	KO:    language.Korean,
	PT_BR: language.BrazilianPortuguese,
	PT_PT: language.EuropeanPortuguese,
}

// AllLanguages returns every supported language in declaration order.
func AllLanguages() []Language {
	return []Language{DE, EN, ES, FR, IT, JA, KO, PT_BR, PT_PT}
}

// ParseLanguage parses a language identifier case-insensitively
// ("en", "EN", "pt_BR"). A BCP 47 tag such as "pt-BR" is accepted as well.
func ParseLanguage(s string) (Language, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range languageNames {
		if name == normalized {
			return Language(i), nil
		}
	}

	if tag, err := language.Parse(s); err == nil {
		for i, t := range languageTags {
			if t == tag {
				return Language(i), nil
			}
		}
	}

	return 0, helper.ConfigurationError("unknown language %q", s)
}

// String returns the lower case identifier of the language.
func (l Language) String() string {
	if l >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l >= 0 && int(l) < len(languageTags) {
		return languageTags[l]
	}
	return language.Und
}

// MarshalJSON encodes the language as its identifier string.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a language identifier string.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

package ontology

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/siherrmann/nluparsers/helper"
)

// BuiltinEntityKind identifies what kind of entity was recognized.
type BuiltinEntityKind int

const (
	KindAmountOfMoney BuiltinEntityKind = iota
	KindDuration
	KindNumber
	KindOrdinal
	KindTemperature
	KindDatetime
	KindDate
	KindTime
	KindDatePeriod
	KindTimePeriod
	KindPercentage
	KindMusicAlbum
	KindMusicArtist
	KindMusicTrack
	KindCity
	KindCountry
	KindRegion
)

type kindInfo struct {
	name       string
	identifier string
}

var kindInfos = [...]kindInfo{
	KindAmountOfMoney: {"AmountOfMoney", "snips/amountOfMoney"},
	KindDuration:      {"Duration", "snips/duration"},
	KindNumber:        {"Number", "snips/number"},
	KindOrdinal:       {"Ordinal", "snips/ordinal"},
	KindTemperature:   {"Temperature", "snips/temperature"},
	KindDatetime:      {"Datetime", "snips/datetime"},
	KindDate:          {"Date", "snips/date"},
	KindTime:          {"Time", "snips/time"},
	KindDatePeriod:    {"DatePeriod", "snips/datePeriod"},
	KindTimePeriod:    {"TimePeriod", "snips/timePeriod"},
	KindPercentage:    {"Percentage", "snips/percentage"},
	KindMusicAlbum:    {"MusicAlbum", "snips/musicAlbum"},
	KindMusicArtist:   {"MusicArtist", "snips/musicArtist"},
	KindMusicTrack:    {"MusicTrack", "snips/musicTrack"},
	KindCity:          {"City", "snips/city"},
	KindCountry:       {"Country", "snips/country"},
	KindRegion:        {"Region", "snips/region"},
}

// AllBuiltinEntityKinds returns every kind in declaration order.
func AllBuiltinEntityKinds() []BuiltinEntityKind {
	kinds := make([]BuiltinEntityKind, len(kindInfos))
	for i := range kindInfos {
		kinds[i] = BuiltinEntityKind(i)
	}
	return kinds
}

// GrammarEntityKinds returns the kinds resolved by the grammar engine.
func GrammarEntityKinds() []BuiltinEntityKind {
	return []BuiltinEntityKind{
		KindAmountOfMoney,
		KindDuration,
		KindNumber,
		KindOrdinal,
		KindTemperature,
		KindDatetime,
		KindDate,
		KindTime,
		KindDatePeriod,
		KindTimePeriod,
		KindPercentage,
	}
}

func (k BuiltinEntityKind) valid() bool {
	return k >= 0 && int(k) < len(kindInfos)
}

// String returns the kind name, e.g. "AmountOfMoney".
func (k BuiltinEntityKind) String() string {
	if k.valid() {
		return kindInfos[k].name
	}
	return fmt.Sprintf("BuiltinEntityKind(%d)", int(k))
}

// Identifier returns the "snips/..." identifier of the kind.
func (k BuiltinEntityKind) Identifier() string {
	if k.valid() {
		return kindInfos[k].identifier
	}
	return ""
}

// IsGrammarKind reports whether the grammar engine resolves the kind.
func (k BuiltinEntityKind) IsGrammarKind() bool {
	return k.valid() && k < KindMusicAlbum
}

// IsGazetteerKind reports whether the gazetteer matcher resolves the kind.
func (k BuiltinEntityKind) IsGazetteerKind() bool {
	return k.valid() && k >= KindMusicAlbum
}

// TryIntoGazetteerKind converts a gazetteer kind into its GazetteerEntityKind.
func (k BuiltinEntityKind) TryIntoGazetteerKind() (GazetteerEntityKind, bool) {
	if !k.IsGazetteerKind() {
		return 0, false
	}
	return GazetteerEntityKind(k - KindMusicAlbum), true
}

// FromIdentifier parses a "snips/..." identifier.
func FromIdentifier(identifier string) (BuiltinEntityKind, error) {
	for i, info := range kindInfos {
		if info.identifier == identifier {
			return BuiltinEntityKind(i), nil
		}
	}
	return 0, helper.ConfigurationError("unknown builtin entity identifier %q", identifier)
}

// FromIdentifiers parses a list of identifiers, failing on the first unknown one.
func FromIdentifiers(identifiers []string) ([]BuiltinEntityKind, error) {
	kinds := make([]BuiltinEntityKind, 0, len(identifiers))
	for _, identifier := range identifiers {
		kind, err := FromIdentifier(identifier)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Shortname returns the kind name for an identifier, e.g.
// "snips/amountOfMoney" -> "AmountOfMoney".
func Shortname(identifier string) (string, error) {
	kind, err := FromIdentifier(identifier)
	if err != nil {
		return "", err
	}
	return kind.String(), nil
}

// MarshalJSON encodes the kind as its identifier.
func (k BuiltinEntityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Identifier())
}

// UnmarshalJSON decodes an identifier.
func (k *BuiltinEntityKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromIdentifier(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GazetteerEntityKind is the subset of kinds resolved by the gazetteer.
type GazetteerEntityKind int

const (
	GazetteerMusicAlbum GazetteerEntityKind = iota
	GazetteerMusicArtist
	GazetteerMusicTrack
	GazetteerCity
	GazetteerCountry
	GazetteerRegion
)

// AllGazetteerEntityKinds returns every gazetteer kind in declaration order.
func AllGazetteerEntityKinds() []GazetteerEntityKind {
	return []GazetteerEntityKind{
		GazetteerMusicAlbum,
		GazetteerMusicArtist,
		GazetteerMusicTrack,
		GazetteerCity,
		GazetteerCountry,
		GazetteerRegion,
	}
}

// BuiltinKind returns the corresponding BuiltinEntityKind.
func (k GazetteerEntityKind) BuiltinKind() BuiltinEntityKind {
	return KindMusicAlbum + BuiltinEntityKind(k)
}

// Identifier returns the "snips/..." identifier of the kind.
func (k GazetteerEntityKind) Identifier() string {
	return k.BuiltinKind().Identifier()
}

func (k GazetteerEntityKind) String() string {
	return k.BuiltinKind().String()
}

// GazetteerKindFromIdentifier parses the identifier of a gazetteer kind.
// Grammar identifiers are rejected.
func GazetteerKindFromIdentifier(identifier string) (GazetteerEntityKind, error) {
	kind, err := FromIdentifier(identifier)
	if err != nil {
		return 0, err
	}
	gazetteerKind, ok := kind.TryIntoGazetteerKind()
	if !ok {
		return 0, helper.ConfigurationError("%q is not a gazetteer entity identifier", identifier)
	}
	return gazetteerKind, nil
}

// kindsByName indexes kinds by lower-cased name.
var kindsByName = func() map[string]BuiltinEntityKind {
	m := make(map[string]BuiltinEntityKind, len(kindInfos))
	for i, info := range kindInfos {
		m[strings.ToLower(info.name)] = BuiltinEntityKind(i)
	}
	return m
}()

// FromName parses a kind name such as "AmountOfMoney", case-insensitively.
func FromName(name string) (BuiltinEntityKind, error) {
	if kind, ok := kindsByName[strings.ToLower(name)]; ok {
		return kind, nil
	}
	return 0, helper.ConfigurationError("unknown builtin entity name %q", name)
}

package model

import (
	"encoding/json"
	"fmt"
)

// SlotValueKind discriminates the resolved value of an entity.
type SlotValueKind string

const (
	SlotValueNumber        SlotValueKind = "Number"
	SlotValueOrdinal       SlotValueKind = "Ordinal"
	SlotValuePercentage    SlotValueKind = "Percentage"
	SlotValueInstantTime   SlotValueKind = "InstantTime"
	SlotValueTimeInterval  SlotValueKind = "TimeInterval"
	SlotValueAmountOfMoney SlotValueKind = "AmountOfMoney"
	SlotValueTemperature   SlotValueKind = "Temperature"
	SlotValueDuration      SlotValueKind = "Duration"
	SlotValueMusicAlbum    SlotValueKind = "MusicAlbum"
	SlotValueMusicArtist   SlotValueKind = "MusicArtist"
	SlotValueMusicTrack    SlotValueKind = "MusicTrack"
	SlotValueCity          SlotValueKind = "City"
	SlotValueCountry       SlotValueKind = "Country"
	SlotValueRegion        SlotValueKind = "Region"
)

// SlotValue is the resolved payload of an entity. The set of implementations
// is closed to this package.
type SlotValue interface {
	Kind() SlotValueKind
	isSlotValue()
}

// Grain is the resolution of a date or time.
type Grain int

const (
	GrainYear Grain = iota
	GrainQuarter
	GrainMonth
	GrainWeek
	GrainDay
	GrainHour
	GrainMinute
	GrainSecond
)

var grainNames = [...]string{"Year", "Quarter", "Month", "Week", "Day", "Hour", "Minute", "Second"}

func (g Grain) String() string {
	if g >= 0 && int(g) < len(grainNames) {
		return grainNames[g]
	}
	return fmt.Sprintf("Grain(%d)", int(g))
}

// MarshalJSON encodes the grain name.
func (g Grain) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// Precision tells whether a value was stated exactly or approximately.
type Precision int

const (
	PrecisionExact Precision = iota
	PrecisionApproximate
)

func (p Precision) String() string {
	if p == PrecisionApproximate {
		return "Approximate"
	}
	return "Exact"
}

// MarshalJSON encodes the precision name.
func (p Precision) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

type NumberValue struct {
	Value float64 `json:"value"`
}

type OrdinalValue struct {
	Value int64 `json:"value"`
}

type PercentageValue struct {
	Value float64 `json:"value"`
}

// InstantTimeValue is a point in time formatted as "2006-01-02 15:04:05 -07:00".
type InstantTimeValue struct {
	Value     string    `json:"value"`
	Grain     Grain     `json:"grain"`
	Precision Precision `json:"precision"`
}

// TimeIntervalValue is an interval, open on one side when From or To is nil.
type TimeIntervalValue struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type AmountOfMoneyValue struct {
	Value     float32   `json:"value"`
	Precision Precision `json:"precision"`
	Unit      *string   `json:"unit"`
}

type TemperatureValue struct {
	Value float32 `json:"value"`
	Unit  *string `json:"unit"`
}

type DurationValue struct {
	Years     int64     `json:"years"`
	Quarters  int64     `json:"quarters"`
	Months    int64     `json:"months"`
	Weeks     int64     `json:"weeks"`
	Days      int64     `json:"days"`
	Hours     int64     `json:"hours"`
	Minutes   int64     `json:"minutes"`
	Seconds   int64     `json:"seconds"`
	Precision Precision `json:"precision"`
}

type MusicAlbumValue struct {
	Value string `json:"value"`
}

type MusicArtistValue struct {
	Value string `json:"value"`
}

type MusicTrackValue struct {
	Value string `json:"value"`
}

type CityValue struct {
	Value string `json:"value"`
}

type CountryValue struct {
	Value string `json:"value"`
}

type RegionValue struct {
	Value string `json:"value"`
}

func (NumberValue) Kind() SlotValueKind        { return SlotValueNumber }
func (OrdinalValue) Kind() SlotValueKind       { return SlotValueOrdinal }
func (PercentageValue) Kind() SlotValueKind    { return SlotValuePercentage }
func (InstantTimeValue) Kind() SlotValueKind   { return SlotValueInstantTime }
func (TimeIntervalValue) Kind() SlotValueKind  { return SlotValueTimeInterval }
func (AmountOfMoneyValue) Kind() SlotValueKind { return SlotValueAmountOfMoney }
func (TemperatureValue) Kind() SlotValueKind   { return SlotValueTemperature }
func (DurationValue) Kind() SlotValueKind      { return SlotValueDuration }
func (MusicAlbumValue) Kind() SlotValueKind    { return SlotValueMusicAlbum }
func (MusicArtistValue) Kind() SlotValueKind   { return SlotValueMusicArtist }
func (MusicTrackValue) Kind() SlotValueKind    { return SlotValueMusicTrack }
func (CityValue) Kind() SlotValueKind          { return SlotValueCity }
func (CountryValue) Kind() SlotValueKind       { return SlotValueCountry }
func (RegionValue) Kind() SlotValueKind        { return SlotValueRegion }

func (NumberValue) isSlotValue()        {}
func (OrdinalValue) isSlotValue()       {}
func (PercentageValue) isSlotValue()    {}
func (InstantTimeValue) isSlotValue()   {}
func (TimeIntervalValue) isSlotValue()  {}
func (AmountOfMoneyValue) isSlotValue() {}
func (TemperatureValue) isSlotValue()   {}
func (DurationValue) isSlotValue()      {}
func (MusicAlbumValue) isSlotValue()    {}
func (MusicArtistValue) isSlotValue()   {}
func (MusicTrackValue) isSlotValue()    {}
func (CityValue) isSlotValue()          {}
func (CountryValue) isSlotValue()       {}
func (RegionValue) isSlotValue()        {}

// withKind encodes value and adds the "kind" discriminator to its fields.
func withKind(kind SlotValueKind, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["kind"], err = json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func (v NumberValue) MarshalJSON() ([]byte, error) {
	type plain NumberValue
	return withKind(v.Kind(), plain(v))
}

func (v OrdinalValue) MarshalJSON() ([]byte, error) {
	type plain OrdinalValue
	return withKind(v.Kind(), plain(v))
}

func (v PercentageValue) MarshalJSON() ([]byte, error) {
	type plain PercentageValue
	return withKind(v.Kind(), plain(v))
}

func (v InstantTimeValue) MarshalJSON() ([]byte, error) {
	type plain InstantTimeValue
	return withKind(v.Kind(), plain(v))
}

func (v TimeIntervalValue) MarshalJSON() ([]byte, error) {
	type plain TimeIntervalValue
	return withKind(v.Kind(), plain(v))
}

func (v AmountOfMoneyValue) MarshalJSON() ([]byte, error) {
	type plain AmountOfMoneyValue
	return withKind(v.Kind(), plain(v))
}

func (v TemperatureValue) MarshalJSON() ([]byte, error) {
	type plain TemperatureValue
	return withKind(v.Kind(), plain(v))
}

func (v DurationValue) MarshalJSON() ([]byte, error) {
	type plain DurationValue
	return withKind(v.Kind(), plain(v))
}

func (v MusicAlbumValue) MarshalJSON() ([]byte, error) {
	type plain MusicAlbumValue
	return withKind(v.Kind(), plain(v))
}

func (v MusicArtistValue) MarshalJSON() ([]byte, error) {
	type plain MusicArtistValue
	return withKind(v.Kind(), plain(v))
}

func (v MusicTrackValue) MarshalJSON() ([]byte, error) {
	type plain MusicTrackValue
	return withKind(v.Kind(), plain(v))
}

func (v CityValue) MarshalJSON() ([]byte, error) {
	type plain CityValue
	return withKind(v.Kind(), plain(v))
}

func (v CountryValue) MarshalJSON() ([]byte, error) {
	type plain CountryValue
	return withKind(v.Kind(), plain(v))
}

func (v RegionValue) MarshalJSON() ([]byte, error) {
	type plain RegionValue
	return withKind(v.Kind(), plain(v))
}

package ontology

type kindDescription struct {
	description       string
	resultDescription string
}

var descriptions = map[BuiltinEntityKind]kindDescription{
	KindAmountOfMoney: {"Matches an amount of money", `{"kind": "AmountOfMoney", "value": 10.05, "precision": "Approximate", "unit": "€"}`},
	KindDuration:      {"Matches a time duration", `{"kind": "Duration", "years": 0, "quarters": 0, "months": 3, "weeks": 0, "days": 0, "hours": 0, "minutes": 0, "seconds": 0, "precision": "Exact"}`},
	KindNumber:        {"Matches a cardinal number", `{"kind": "Number", "value": 42.0}`},
	KindOrdinal:       {"Matches a number expressing a position or rank", `{"kind": "Ordinal", "value": 2}`},
	KindTemperature:   {"Matches a temperature", `{"kind": "Temperature", "value": 23.0, "unit": "celsius"}`},
	KindDatetime:      {"Matches a date, a time, an interval or a date and time together", `{"kind": "InstantTime", "value": "2017-06-13 18:00:00 +02:00", "grain": "Hour", "precision": "Exact"}`},
	KindDate:          {"Matches a date", `{"kind": "InstantTime", "value": "2017-06-13 00:00:00 +02:00", "grain": "Day", "precision": "Exact"}`},
	KindTime:          {"Matches a time of day", `{"kind": "InstantTime", "value": "2017-06-13 18:00:00 +02:00", "grain": "Hour", "precision": "Exact"}`},
	KindDatePeriod:    {"Matches a period of dates", `{"kind": "TimeInterval", "from": "2017-06-05 00:00:00 +02:00", "to": "2017-06-12 00:00:00 +02:00"}`},
	KindTimePeriod:    {"Matches a period of time within a day", `{"kind": "TimeInterval", "from": "2017-06-13 10:00:00 +02:00", "to": "2017-06-13 12:00:00 +02:00"}`},
	KindPercentage:    {"Matches a percentage", `{"kind": "Percentage", "value": 20.0}`},
	KindMusicAlbum:    {"Matches a music album", `{"kind": "MusicAlbum", "value": "Discovery"}`},
	KindMusicArtist:   {"Matches a music artist", `{"kind": "MusicArtist", "value": "Daft Punk"}`},
	KindMusicTrack:    {"Matches a music track", `{"kind": "MusicTrack", "value": "Harder Better Faster Stronger"}`},
	KindCity:          {"Matches a city", `{"kind": "City", "value": "Paris"}`},
	KindCountry:       {"Matches a country", `{"kind": "Country", "value": "France"}`},
	KindRegion:        {"Matches a region", `{"kind": "Region", "value": "California"}`},
}

// Description returns a human-readable description of the kind.
func (k BuiltinEntityKind) Description() string {
	return descriptions[k].description
}

// ResultDescription returns a sample of the resolved value of the kind.
func (k BuiltinEntityKind) ResultDescription() string {
	return descriptions[k].resultDescription
}

// EntityKindDetails documents one kind for one language.
type EntityKindDetails struct {
	Name               string   `json:"name"`
	Label              string   `json:"label"`
	Description        string   `json:"description"`
	Examples           []string `json:"examples"`
	ResultDescription  string   `json:"resultDescription"`
	SupportedLanguages []string `json:"supportedLanguages"`
}

// LanguageEntityOntology documents every kind supported by a language.
type LanguageEntityOntology struct {
	Language string              `json:"language"`
	Entities []EntityKindDetails `json:"entities"`
}

// Details documents the kind for the language.
func (k BuiltinEntityKind) Details(language Language) EntityKindDetails {
	languages := make([]string, 0, len(k.SupportedLanguages()))
	for _, l := range k.SupportedLanguages() {
		languages = append(languages, l.String())
	}
	exampleList := append([]string{}, k.Examples(language)...)

	return EntityKindDetails{
		Name:               k.String(),
		Label:              k.Identifier(),
		Description:        k.Description(),
		Examples:           exampleList,
		ResultDescription:  k.ResultDescription(),
		SupportedLanguages: languages,
	}
}

// LanguageOntology documents every kind supported by the language.
func LanguageOntology(language Language) LanguageEntityOntology {
	kinds := SupportedEntityKinds(language)
	entities := make([]EntityKindDetails, 0, len(kinds))
	for _, kind := range kinds {
		entities = append(entities, kind.Details(language))
	}
	return LanguageEntityOntology{
		Language: language.String(),
		Entities: entities,
	}
}

// CompleteOntology documents every language.
func CompleteOntology() []LanguageEntityOntology {
	languages := AllLanguages()
	ontologies := make([]LanguageEntityOntology, 0, len(languages))
	for _, language := range languages {
		ontologies = append(ontologies, LanguageOntology(language))
	}
	return ontologies
}

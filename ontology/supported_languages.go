package ontology

var (
	allNine  = []Language{DE, EN, ES, FR, IT, JA, KO, PT_BR, PT_PT}
	allButKO = []Language{DE, EN, ES, FR, IT, JA, PT_BR, PT_PT}
	enFR     = []Language{EN, FR}
)

var supportedLanguages = map[BuiltinEntityKind][]Language{
	KindAmountOfMoney: allNine,
	KindDuration:      allNine,
	KindNumber:        allNine,
	KindOrdinal:       allNine,
	KindTemperature:   allNine,
	KindDatetime:      allNine,
	KindDate:          enFR,
	KindTime:          enFR,
	KindDatePeriod:    enFR,
	KindTimePeriod:    enFR,
	KindPercentage:    allButKO,
	KindMusicAlbum:    allButKO,
	KindMusicArtist:   allButKO,
	KindMusicTrack:    allButKO,
	KindCity:          allButKO,
	KindCountry:       allButKO,
	KindRegion:        allButKO,
}

// SupportedLanguages returns the languages for which the kind is meaningful.
// The returned slice must not be modified.
func (k BuiltinEntityKind) SupportedLanguages() []Language {
	return supportedLanguages[k]
}

// SupportedLanguages returns the languages for which the kind is meaningful.
func (k GazetteerEntityKind) SupportedLanguages() []Language {
	return k.BuiltinKind().SupportedLanguages()
}

// Supports reports whether the kind is supported in the language.
func (k BuiltinEntityKind) Supports(language Language) bool {
	for _, l := range supportedLanguages[k] {
		if l == language {
			return true
		}
	}
	return false
}

// SupportedEntityKinds returns the kinds supported by the language, in
// declaration order.
func SupportedEntityKinds(language Language) []BuiltinEntityKind {
	var kinds []BuiltinEntityKind
	for _, kind := range AllBuiltinEntityKinds() {
		if kind.Supports(language) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// SupportedGrammarEntityKinds returns the grammar kinds supported by the language.
func SupportedGrammarEntityKinds(language Language) []BuiltinEntityKind {
	var kinds []BuiltinEntityKind
	for _, kind := range GrammarEntityKinds() {
		if kind.Supports(language) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// SupportedGazetteerEntityKinds returns the gazetteer kinds supported by the language.
func SupportedGazetteerEntityKinds(language Language) []GazetteerEntityKind {
	var kinds []GazetteerEntityKind
	for _, kind := range AllGazetteerEntityKinds() {
		if kind.BuiltinKind().Supports(language) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

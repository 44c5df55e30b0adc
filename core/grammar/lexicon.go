package grammar

import (
	"strings"
	"time"
)

type numberClass int

const (
	classUnit numberClass = iota
	classTeen
	classTens
	classHundred
	classScale
)

type numberWord struct {
	value   int64
	class   numberClass
	article bool
}

// dayPart is a span of hours of a day, to being at most 24.
type dayPart struct {
	from int
	to   int
}

type weekPeriod struct {
	offset  int
	weekend bool
}

// lexicon holds the words of one language. Phrases are matched against
// lowercased tokens.
type lexicon struct {
	cjk          bool
	decimalComma bool
	monthFirst   bool
	vigesimal    bool

	numbers        phrases[numberWord]
	numberJoiners  phrases[struct{}]
	compoundNumber func(word string) (int64, bool)

	ordinals        phrases[int64]
	ordinalSuffixes phrases[struct{}]
	ordinalPrefixes phrases[struct{}]

	percent          phrases[struct{}]
	currencyPrefixes phrases[string]
	currencies       phrases[string]
	approx           phrases[struct{}]
	temperatureUnits phrases[string]

	durationUnits    phrases[Grain]
	durationPrefixes phrases[struct{}]
	durationJoiners  phrases[struct{}]
	halfHour         phrases[struct{}]
	inFuture         phrases[struct{}]
	agoPrefixes      phrases[struct{}]
	agoSuffixes      phrases[struct{}]

	relativeDays   phrases[int]
	weekdays       phrases[time.Weekday]
	nextPrefixes   phrases[struct{}]
	nextSuffixes   phrases[struct{}]
	lastPrefixes   phrases[struct{}]
	lastSuffixes   phrases[struct{}]
	months         phrases[time.Month]
	datePrefixes   phrases[struct{}]
	dateConnectors phrases[struct{}]
	monthPrefixes  phrases[struct{}]
	weekPeriods    phrases[weekPeriod]
	yearSuffix     phrases[struct{}]
	monthSuffix    phrases[struct{}]
	daySuffix      phrases[struct{}]

	now          phrases[struct{}]
	noon         phrases[struct{}]
	midnight     phrases[struct{}]
	am           phrases[struct{}]
	pm           phrases[struct{}]
	amPrefixes   phrases[struct{}]
	pmPrefixes   phrases[struct{}]
	timePrefixes phrases[struct{}]
	hourWords    phrases[struct{}]
	hourSuffix   phrases[struct{}]
	minuteSuffix phrases[struct{}]
	halfSuffix   phrases[struct{}]
	partsOfDay   phrases[dayPart]

	fromPrefixes    phrases[struct{}]
	toSeparators    phrases[struct{}]
	betweenPrefixes phrases[struct{}]
	andSeparators   phrases[struct{}]
	afterPrefixes   phrases[struct{}]
	beforePrefixes  phrases[struct{}]
}

var symbolCurrencies = map[string]string{"$": "$", "€": "€", "£": "£", "¥": "¥", "₩": "₩"}

func withSymbols(m map[string]string) map[string]string {
	for symbol, unit := range symbolCurrencies {
		m[symbol] = unit
	}
	return m
}

func temperatureSymbols(m map[string]string) map[string]string {
	m["°"] = "degree"
	m["°c"] = "celsius"
	m["°f"] = "fahrenheit"
	m["℃"] = "celsius"
	m["℉"] = "fahrenheit"
	return m
}

func units(values ...string) map[string]numberWord {
	m := map[string]numberWord{}
	for i, v := range values {
		if v != "" {
			m[v] = numberWord{value: int64(i), class: classUnit}
		}
	}
	return m
}

func add(m map[string]numberWord, class numberClass, words map[string]int64) map[string]numberWord {
	for w, v := range words {
		m[w] = numberWord{value: v, class: class}
	}
	return m
}

func articles(m map[string]numberWord, words ...string) map[string]numberWord {
	for _, w := range words {
		m[w] = numberWord{value: 1, class: classUnit, article: true}
	}
	return m
}

func grains(m map[Grain][]string) map[string]Grain {
	out := map[string]Grain{}
	for g, words := range m {
		for _, w := range words {
			out[w] = g
		}
	}
	return out
}

func weekdayNames(names ...string) map[string]time.Weekday {
	m := map[string]time.Weekday{}
	for i, name := range names {
		for _, n := range strings.Split(name, "|") {
			m[n] = time.Weekday((i + 1) % 7)
		}
	}
	return m
}

func monthNames(names ...string) map[string]time.Month {
	m := map[string]time.Month{}
	for i, name := range names {
		for _, n := range strings.Split(name, "|") {
			m[n] = time.Month(i + 1)
		}
	}
	return m
}

func ordinalNames(names ...string) map[string]int64 {
	m := map[string]int64{}
	for i, name := range names {
		for _, n := range strings.Split(name, "|") {
			m[n] = int64(i + 1)
		}
	}
	return m
}

func english() *lexicon {
	numbers := units("zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine")
	add(numbers, classTeen, map[string]int64{
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
		"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	})
	add(numbers, classTens, map[string]int64{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	})
	add(numbers, classHundred, map[string]int64{"hundred": 100})
	add(numbers, classScale, map[string]int64{"thousand": 1000, "million": 1000000, "billion": 1000000000})
	articles(numbers, "a", "an")

	ordinals := ordinalNames("first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth",
		"eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth", "nineteenth")
	ordinals["twentieth"] = 20
	ordinals["thirtieth"] = 30

	return &lexicon{
		monthFirst:       true,
		numbers:          newPhrases(numbers),
		numberJoiners:    phraseList("and"),
		ordinals:         newPhrases(ordinals),
		ordinalSuffixes:  phraseList("st", "nd", "rd", "th"),
		percent:          phraseList("%", "percent", "percents", "per cent"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{"us$": "USD"})),
		currencies: newPhrases(withSymbols(map[string]string{
			"dollar": "$", "dollars": "$", "bucks": "$", "euro": "€", "euros": "€", "pound": "£", "pounds": "£",
			"yen": "¥", "cent": "cent", "cents": "cent", "usd": "USD", "eur": "EUR", "gbp": "GBP",
		})),
		approx: phraseList("about", "around", "approximately", "roughly", "almost"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"degree": "degree", "degrees": "degree", "celsius": "celsius", "fahrenheit": "fahrenheit",
			"degrees celsius": "celsius", "degree celsius": "celsius", "degrees fahrenheit": "fahrenheit",
			"degree fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond:  {"second", "seconds", "sec", "secs"},
			GrainMinute:  {"minute", "minutes", "min", "mins"},
			GrainHour:    {"hour", "hours"},
			GrainDay:     {"day", "days"},
			GrainWeek:    {"week", "weeks"},
			GrainMonth:   {"month", "months"},
			GrainQuarter: {"quarter", "quarters"},
			GrainYear:    {"year", "years"},
		})),
		durationPrefixes: phraseList("during", "for"),
		durationJoiners:  phraseList("and", ",", ", and"),
		halfHour:         phraseList("half an hour", "half hour"),
		inFuture:         phraseList("in", "within"),
		agoSuffixes:      phraseList("ago"),
		relativeDays: newPhrases(map[string]int{
			"today": 0, "tomorrow": 1, "yesterday": -1,
			"the day after tomorrow": 2, "day after tomorrow": 2,
			"the day before yesterday": -2, "day before yesterday": -2,
		}),
		weekdays:       newPhrases(weekdayNames("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")),
		nextPrefixes:   phraseList("next", "on next", "this coming"),
		lastPrefixes:   phraseList("last", "on last", "past"),
		datePrefixes:   phraseList("on", "the", "on the"),
		dateConnectors: phraseList("of"),
		months: newPhrases(monthNames("january", "february", "march", "april", "may", "june", "july",
			"august", "september", "october", "november", "december")),
		monthPrefixes: phraseList("in", "in the month of"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"this week": {0, false}, "next week": {1, false}, "last week": {-1, false},
			"this weekend": {0, true}, "the weekend": {0, true}, "next weekend": {1, true}, "last weekend": {-1, true},
		}),
		now:          phraseList("now", "right now"),
		noon:         phraseList("noon", "midday"),
		midnight:     phraseList("midnight"),
		am:           phraseList("am", "a.m.", "a.m", "in the morning"),
		pm:           phraseList("pm", "p.m.", "p.m", "in the evening", "in the afternoon", "at night"),
		timePrefixes: phraseList("at", "at around", "around"),
		hourWords:    phraseList("o'clock"),
		partsOfDay: newPhrases(map[string]dayPart{
			"morning": {4, 12}, "this morning": {4, 12}, "in the morning": {4, 12},
			"afternoon": {12, 19}, "this afternoon": {12, 19}, "in the afternoon": {12, 19},
			"evening": {18, 24}, "this evening": {18, 24}, "in the evening": {18, 24},
			"tonight": {18, 24}, "night": {18, 24},
		}),
		fromPrefixes:    phraseList("from"),
		toSeparators:    phraseList("to", "till", "until", "-", "through"),
		betweenPrefixes: phraseList("between"),
		andSeparators:   phraseList("and"),
		afterPrefixes:   phraseList("after", "since"),
		beforePrefixes:  phraseList("before", "until", "by"),
	}
}

func french() *lexicon {
	numbers := units("zéro", "", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf")
	add(numbers, classTeen, map[string]int64{
		"dix": 10, "onze": 11, "douze": 12, "treize": 13, "quatorze": 14, "quinze": 15, "seize": 16,
	})
	add(numbers, classTens, map[string]int64{
		"vingt": 20, "vingts": 20, "trente": 30, "quarante": 40, "cinquante": 50, "soixante": 60,
	})
	add(numbers, classHundred, map[string]int64{"cent": 100, "cents": 100})
	add(numbers, classScale, map[string]int64{
		"mille": 1000, "million": 1000000, "millions": 1000000, "milliard": 1000000000, "milliards": 1000000000,
	})
	articles(numbers, "un", "une")

	ordinals := ordinalNames("premier|première|premiere", "deuxième|deuxieme|second|seconde", "troisième|troisieme",
		"quatrième|quatrieme", "cinquième|cinquieme", "sixième|sixieme", "septième|septieme", "huitième|huitieme",
		"neuvième|neuvieme", "dixième|dixieme", "onzième|onzieme", "douzième|douzieme")
	ordinals["vingtième"] = 20
	ordinals["trentième"] = 30

	return &lexicon{
		decimalComma:     true,
		vigesimal:        true,
		numbers:          newPhrases(numbers),
		numberJoiners:    phraseList("et"),
		ordinals:         newPhrases(ordinals),
		ordinalSuffixes:  phraseList("er", "re", "ère", "e", "ème", "eme", "è"),
		percent:          phraseList("%", "pour cent", "pourcent", "pourcents", "pour cents"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{})),
		currencies: newPhrases(withSymbols(map[string]string{
			"euro": "€", "euros": "€", "dollar": "$", "dollars": "$", "livre": "£", "livres": "£",
			"centime": "cent", "centimes": "cent", "eur": "EUR", "usd": "USD",
		})),
		approx: phraseList("environ", "à peu près", "autour de", "aux alentours de", "vers"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"degré": "degree", "degrés": "degree", "degre": "degree", "degres": "degree",
			"degrés celsius": "celsius", "degré celsius": "celsius", "celsius": "celsius",
			"degrés fahrenheit": "fahrenheit", "fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond:  {"seconde", "secondes"},
			GrainMinute:  {"minute", "minutes"},
			GrainHour:    {"heure", "heures"},
			GrainDay:     {"jour", "jours", "journée", "journées"},
			GrainWeek:    {"semaine", "semaines"},
			GrainMonth:   {"mois"},
			GrainQuarter: {"trimestre", "trimestres"},
			GrainYear:    {"an", "ans", "année", "années"},
		})),
		durationPrefixes: phraseList("pendant", "durant"),
		durationJoiners:  phraseList("et", ","),
		halfHour:         phraseList("une demi-heure", "une demi heure", "demi-heure"),
		inFuture:         phraseList("dans"),
		agoPrefixes:      phraseList("il y a"),
		relativeDays: newPhrases(map[string]int{
			"aujourd'hui": 0, "demain": 1, "hier": -1,
			"après-demain": 2, "après demain": 2, "avant-hier": -2, "avant hier": -2,
		}),
		weekdays:     newPhrases(weekdayNames("lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche")),
		nextSuffixes: phraseList("prochain"),
		lastSuffixes: phraseList("dernier"),
		datePrefixes: phraseList("le", "ce"),
		months: newPhrases(monthNames("janvier", "février|fevrier", "mars", "avril", "mai", "juin", "juillet",
			"août|aout", "septembre", "octobre", "novembre", "décembre|decembre")),
		monthPrefixes: phraseList("en", "au mois de"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"cette semaine": {0, false}, "la semaine prochaine": {1, false}, "semaine prochaine": {1, false},
			"la semaine dernière": {-1, false}, "semaine dernière": {-1, false},
			"ce week-end": {0, true}, "ce weekend": {0, true}, "le week-end": {0, true},
			"le week-end prochain": {1, true},
		}),
		now:          phraseList("maintenant", "tout de suite"),
		noon:         phraseList("midi"),
		midnight:     phraseList("minuit"),
		am:           phraseList("du matin"),
		pm:           phraseList("du soir", "de l'après-midi", "de l'après midi"),
		timePrefixes: phraseList("à", "a", "vers"),
		hourWords:    phraseList("h", "heure", "heures"),
		partsOfDay: newPhrases(map[string]dayPart{
			"matin": {4, 12}, "ce matin": {4, 12}, "le matin": {4, 12}, "dans la matinée": {4, 12},
			"après-midi": {12, 19}, "cet après-midi": {12, 19}, "l'après-midi": {12, 19},
			"soir": {18, 24}, "ce soir": {18, 24}, "le soir": {18, 24}, "soirée": {18, 24}, "dans la soirée": {18, 24},
		}),
		fromPrefixes:    phraseList("de", "du", "à partir de"),
		toSeparators:    phraseList("à", "au", "jusqu'à", "jusqu'au", "-"),
		betweenPrefixes: phraseList("entre"),
		andSeparators:   phraseList("et"),
		afterPrefixes:   phraseList("après", "depuis"),
		beforePrefixes:  phraseList("avant", "jusqu'à"),
	}
}

func german() *lexicon {
	numbers := units("null", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun")
	add(numbers, classTeen, map[string]int64{
		"zehn": 10, "elf": 11, "zwölf": 12, "dreizehn": 13, "vierzehn": 14, "fünfzehn": 15,
		"sechzehn": 16, "siebzehn": 17, "achtzehn": 18, "neunzehn": 19,
	})
	tens := map[string]int64{
		"zwanzig": 20, "dreißig": 30, "vierzig": 40, "fünfzig": 50, "sechzig": 60, "siebzig": 70, "achtzig": 80, "neunzig": 90,
	}
	add(numbers, classTens, tens)
	add(numbers, classHundred, map[string]int64{"hundert": 100})
	add(numbers, classScale, map[string]int64{"tausend": 1000, "million": 1000000, "millionen": 1000000})
	articles(numbers, "ein", "eine", "einen")

	unitStems := map[string]int64{"ein": 1, "zwei": 2, "drei": 3, "vier": 4, "fünf": 5, "sechs": 6, "sieben": 7, "acht": 8, "neun": 9}
	compound := func(word string) (int64, bool) {
		unit, ten, ok := strings.Cut(word, "und")
		if !ok {
			return 0, false
		}
		u, okUnit := unitStems[unit]
		t, okTen := tens[ten]
		return t + u, okUnit && okTen
	}

	ordinals := map[string]int64{}
	for word, v := range ordinalNames("erste", "zweite", "dritte", "vierte", "fünfte", "sechste", "siebte", "achte", "neunte", "zehnte") {
		for _, suffix := range []string{"", "n", "r", "s", "m"} {
			ordinals[word+suffix] = v
		}
	}

	return &lexicon{
		decimalComma:     true,
		numbers:          newPhrases(numbers),
		compoundNumber:   compound,
		ordinals:         newPhrases(ordinals),
		percent:          phraseList("%", "prozent"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{})),
		currencies: newPhrases(withSymbols(map[string]string{
			"euro": "€", "euros": "€", "dollar": "$", "pfund": "£", "cent": "cent",
		})),
		approx: phraseList("ungefähr", "etwa", "circa", "ca"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"grad": "degree", "grad celsius": "celsius", "celsius": "celsius", "fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"sekunde", "sekunden"},
			GrainMinute: {"minute", "minuten"},
			GrainHour:   {"stunde", "stunden"},
			GrainDay:    {"tag", "tage", "tagen"},
			GrainWeek:   {"woche", "wochen"},
			GrainMonth:  {"monat", "monate", "monaten"},
			GrainYear:   {"jahr", "jahre", "jahren"},
		})),
		durationPrefixes: phraseList("für", "während"),
		durationJoiners:  phraseList("und", ","),
		inFuture:         phraseList("in"),
		relativeDays: newPhrases(map[string]int{
			"heute": 0, "morgen": 1, "gestern": -1, "übermorgen": 2, "vorgestern": -2,
		}),
		weekdays:     newPhrases(weekdayNames("montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag")),
		nextPrefixes: phraseList("nächsten", "nächster", "kommenden"),
		lastPrefixes: phraseList("letzten", "letzter"),
		datePrefixes: phraseList("am", "den"),
		months: newPhrases(monthNames("januar", "februar", "märz", "april", "mai", "juni", "juli",
			"august", "september", "oktober", "november", "dezember")),
		monthPrefixes: phraseList("im"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"diese woche": {0, false}, "nächste woche": {1, false}, "letzte woche": {-1, false},
			"dieses wochenende": {0, true}, "am wochenende": {0, true},
		}),
		now:             phraseList("jetzt"),
		noon:            phraseList("mittag"),
		midnight:        phraseList("mitternacht"),
		timePrefixes:    phraseList("um", "gegen"),
		hourWords:       phraseList("uhr"),
		fromPrefixes:    phraseList("von", "ab"),
		toSeparators:    phraseList("bis", "-"),
		betweenPrefixes: phraseList("zwischen"),
		andSeparators:   phraseList("und"),
		afterPrefixes:   phraseList("nach"),
		beforePrefixes:  phraseList("vor"),
	}
}

func spanish() *lexicon {
	numbers := units("cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve")
	add(numbers, classTeen, map[string]int64{
		"diez": 10, "once": 11, "doce": 12, "trece": 13, "catorce": 14, "quince": 15, "dieciséis": 16,
		"diecisiete": 17, "dieciocho": 18, "diecinueve": 19, "veintiuno": 21, "veintidós": 22, "veintitrés": 23,
		"veinticuatro": 24, "veinticinco": 25, "veintiséis": 26, "veintisiete": 27, "veintiocho": 28, "veintinueve": 29,
	})
	add(numbers, classTens, map[string]int64{
		"veinte": 20, "treinta": 30, "cuarenta": 40, "cincuenta": 50, "sesenta": 60, "setenta": 70, "ochenta": 80, "noventa": 90,
	})
	add(numbers, classHundred, map[string]int64{"cien": 100, "ciento": 100})
	add(numbers, classScale, map[string]int64{"mil": 1000, "millón": 1000000, "millones": 1000000})
	articles(numbers, "un", "una")

	return &lexicon{
		decimalComma:  true,
		numbers:       newPhrases(numbers),
		numberJoiners: phraseList("y"),
		ordinals: newPhrases(ordinalNames("primero|primera|primer", "segundo|segunda", "tercero|tercera|tercer",
			"cuarto|cuarta", "quinto|quinta", "sexto|sexta", "séptimo|séptima", "octavo|octava", "noveno|novena", "décimo|décima")),
		ordinalSuffixes:  phraseList("º", "ª"),
		percent:          phraseList("%", "por ciento"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{})),
		currencies: newPhrases(withSymbols(map[string]string{
			"euro": "€", "euros": "€", "dólar": "$", "dólares": "$", "dolar": "$", "dolares": "$", "libras": "£",
		})),
		approx: phraseList("alrededor de", "aproximadamente", "cerca de"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"grado": "degree", "grados": "degree", "grados centígrados": "celsius", "centígrados": "celsius",
			"celsius": "celsius", "fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"segundo", "segundos"},
			GrainMinute: {"minuto", "minutos"},
			GrainHour:   {"hora", "horas"},
			GrainDay:    {"día", "días", "dia", "dias"},
			GrainWeek:   {"semana", "semanas"},
			GrainMonth:  {"mes", "meses"},
			GrainYear:   {"año", "años"},
		})),
		durationPrefixes: phraseList("durante"),
		durationJoiners:  phraseList("y", ","),
		inFuture:         phraseList("en", "dentro de"),
		agoPrefixes:      phraseList("hace"),
		relativeDays: newPhrases(map[string]int{
			"hoy": 0, "mañana": 1, "ayer": -1, "pasado mañana": 2, "anteayer": -2,
		}),
		weekdays:       newPhrases(weekdayNames("lunes", "martes", "miércoles|miercoles", "jueves", "viernes", "sábado|sabado", "domingo")),
		nextSuffixes:   phraseList("próximo", "que viene"),
		nextPrefixes:   phraseList("el próximo"),
		lastSuffixes:   phraseList("pasado"),
		datePrefixes:   phraseList("el"),
		dateConnectors: phraseList("de"),
		months: newPhrases(monthNames("enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
			"agosto", "septiembre|setiembre", "octubre", "noviembre", "diciembre")),
		monthPrefixes: phraseList("en"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"esta semana": {0, false}, "la semana que viene": {1, false}, "la próxima semana": {1, false},
			"la semana pasada": {-1, false}, "este fin de semana": {0, true},
		}),
		now:             phraseList("ahora"),
		noon:            phraseList("mediodía"),
		midnight:        phraseList("medianoche"),
		am:              phraseList("de la mañana"),
		pm:              phraseList("de la tarde", "de la noche"),
		timePrefixes:    phraseList("a las", "a la"),
		fromPrefixes:    phraseList("de", "desde"),
		toSeparators:    phraseList("a", "hasta", "-"),
		betweenPrefixes: phraseList("entre"),
		andSeparators:   phraseList("y"),
		afterPrefixes:   phraseList("después de"),
		beforePrefixes:  phraseList("antes de"),
	}
}

func italian() *lexicon {
	numbers := units("zero", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove")
	add(numbers, classTeen, map[string]int64{
		"dieci": 10, "undici": 11, "dodici": 12, "tredici": 13, "quattordici": 14, "quindici": 15,
		"sedici": 16, "diciassette": 17, "diciotto": 18, "diciannove": 19,
	})
	tens := map[string]int64{
		"venti": 20, "trenta": 30, "quaranta": 40, "cinquanta": 50, "sessanta": 60, "settanta": 70, "ottanta": 80, "novanta": 90,
	}
	add(numbers, classTens, tens)
	add(numbers, classHundred, map[string]int64{"cento": 100})
	add(numbers, classScale, map[string]int64{"mille": 1000, "mila": 1000, "milione": 1000000, "milioni": 1000000})
	articles(numbers, "un", "una")

	unitWords := map[string]int64{"uno": 1, "due": 2, "tre": 3, "tré": 3, "quattro": 4, "cinque": 5, "sei": 6, "sette": 7, "otto": 8, "nove": 9}
	compound := func(word string) (int64, bool) {
		for ten, t := range tens {
			stem := ten[:len(ten)-1]
			for unit, u := range unitWords {
				// the final vowel of the tens word is dropped before uno and otto
				if word == ten+unit || ((u == 1 || u == 8) && word == stem+unit) {
					return t + u, true
				}
			}
		}
		return 0, false
	}

	return &lexicon{
		decimalComma:   true,
		numbers:        newPhrases(numbers),
		compoundNumber: compound,
		numberJoiners:  phraseList("e"),
		ordinals: newPhrases(ordinalNames("primo|prima", "secondo|seconda", "terzo|terza", "quarto|quarta",
			"quinto|quinta", "sesto|sesta", "settimo|settima", "ottavo|ottava", "nono|nona", "decimo|decima")),
		ordinalSuffixes:  phraseList("º", "ª"),
		percent:          phraseList("%", "per cento", "percento"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{})),
		currencies: newPhrases(withSymbols(map[string]string{
			"euro": "€", "dollaro": "$", "dollari": "$", "sterline": "£", "centesimi": "cent",
		})),
		approx: phraseList("circa", "più o meno", "intorno a"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"grado": "degree", "gradi": "degree", "gradi centigradi": "celsius", "gradi celsius": "celsius",
			"celsius": "celsius", "fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"secondo", "secondi"},
			GrainMinute: {"minuto", "minuti"},
			GrainHour:   {"ora", "ore"},
			GrainDay:    {"giorno", "giorni"},
			GrainWeek:   {"settimana", "settimane"},
			GrainMonth:  {"mese", "mesi"},
			GrainYear:   {"anno", "anni"},
		})),
		durationPrefixes: phraseList("per", "durante"),
		durationJoiners:  phraseList("e", ","),
		inFuture:         phraseList("tra", "fra"),
		agoSuffixes:      phraseList("fa"),
		relativeDays: newPhrases(map[string]int{
			"oggi": 0, "domani": 1, "ieri": -1, "dopodomani": 2, "l'altro ieri": -2, "altro ieri": -2,
		}),
		weekdays: newPhrases(weekdayNames("lunedì|lunedi", "martedì|martedi", "mercoledì|mercoledi", "giovedì|giovedi",
			"venerdì|venerdi", "sabato", "domenica")),
		nextSuffixes: phraseList("prossimo", "prossima"),
		lastSuffixes: phraseList("scorso", "scorsa"),
		datePrefixes: phraseList("il"),
		months: newPhrases(monthNames("gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio",
			"agosto", "settembre", "ottobre", "novembre", "dicembre")),
		monthPrefixes: phraseList("a", "in"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"questa settimana": {0, false}, "la prossima settimana": {1, false}, "la settimana prossima": {1, false},
			"la settimana scorsa": {-1, false}, "questo fine settimana": {0, true}, "questo weekend": {0, true},
		}),
		now:             phraseList("adesso"),
		noon:            phraseList("mezzogiorno"),
		midnight:        phraseList("mezzanotte"),
		am:              phraseList("di mattina", "del mattino"),
		pm:              phraseList("di sera", "del pomeriggio"),
		timePrefixes:    phraseList("alle", "all'", "verso le"),
		fromPrefixes:    phraseList("dalle", "da"),
		toSeparators:    phraseList("alle", "a", "-"),
		betweenPrefixes: phraseList("tra"),
		andSeparators:   phraseList("e"),
		afterPrefixes:   phraseList("dopo"),
		beforePrefixes:  phraseList("prima di", "prima delle"),
	}
}

func portuguese() *lexicon {
	numbers := units("zero", "", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove")
	numbers["duas"] = numberWord{value: 2, class: classUnit}
	add(numbers, classTeen, map[string]int64{
		"dez": 10, "onze": 11, "doze": 12, "treze": 13, "catorze": 14, "quatorze": 14, "quinze": 15,
		"dezesseis": 16, "dezasseis": 16, "dezessete": 17, "dezassete": 17, "dezoito": 18, "dezenove": 19, "dezanove": 19,
	})
	add(numbers, classTens, map[string]int64{
		"vinte": 20, "trinta": 30, "quarenta": 40, "cinquenta": 50, "sessenta": 60, "setenta": 70, "oitenta": 80, "noventa": 90,
	})
	add(numbers, classHundred, map[string]int64{"cem": 100, "cento": 100})
	add(numbers, classScale, map[string]int64{"mil": 1000, "milhão": 1000000, "milhões": 1000000})
	articles(numbers, "um", "uma")

	return &lexicon{
		decimalComma:  true,
		numbers:       newPhrases(numbers),
		numberJoiners: phraseList("e"),
		ordinals: newPhrases(ordinalNames("primeiro|primeira", "segundo|segunda", "terceiro|terceira", "quarto|quarta",
			"quinto|quinta", "sexto|sexta", "sétimo|sétima", "oitavo|oitava", "nono|nona", "décimo|décima")),
		ordinalSuffixes:  phraseList("º", "ª"),
		percent:          phraseList("%", "por cento"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{"r$": "BRL"})),
		currencies: newPhrases(withSymbols(map[string]string{
			"euro": "€", "euros": "€", "dólar": "$", "dólares": "$", "real": "BRL", "reais": "BRL", "libras": "£",
		})),
		approx: phraseList("aproximadamente", "cerca de", "por volta de"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"grau": "degree", "graus": "degree", "graus celsius": "celsius", "celsius": "celsius", "fahrenheit": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"segundo", "segundos"},
			GrainMinute: {"minuto", "minutos"},
			GrainHour:   {"hora", "horas"},
			GrainDay:    {"dia", "dias"},
			GrainWeek:   {"semana", "semanas"},
			GrainMonth:  {"mês", "meses"},
			GrainYear:   {"ano", "anos"},
		})),
		durationPrefixes: phraseList("durante", "por"),
		durationJoiners:  phraseList("e", ","),
		inFuture:         phraseList("em", "daqui a"),
		agoPrefixes:      phraseList("há"),
		relativeDays: newPhrases(map[string]int{
			"hoje": 0, "amanhã": 1, "ontem": -1, "depois de amanhã": 2, "anteontem": -2,
		}),
		weekdays: newPhrases(weekdayNames("segunda-feira|segunda", "terça-feira|terça", "quarta-feira|quarta",
			"quinta-feira|quinta", "sexta-feira|sexta", "sábado", "domingo")),
		nextSuffixes:   phraseList("que vem", "próximo", "próxima"),
		lastSuffixes:   phraseList("passado", "passada"),
		datePrefixes:   phraseList("no", "na", "o", "dia"),
		dateConnectors: phraseList("de"),
		months: newPhrases(monthNames("janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho",
			"agosto", "setembro", "outubro", "novembro", "dezembro")),
		monthPrefixes: phraseList("em"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"esta semana": {0, false}, "essa semana": {0, false}, "semana que vem": {1, false}, "próxima semana": {1, false},
			"semana passada": {-1, false}, "este fim de semana": {0, true},
		}),
		now:             phraseList("agora"),
		noon:            phraseList("meio-dia", "meio dia"),
		midnight:        phraseList("meia-noite", "meia noite"),
		am:              phraseList("da manhã"),
		pm:              phraseList("da tarde", "da noite"),
		timePrefixes:    phraseList("às", "as", "por volta das"),
		hourWords:       phraseList("h", "horas"),
		fromPrefixes:    phraseList("das", "de"),
		toSeparators:    phraseList("às", "até", "a", "-"),
		betweenPrefixes: phraseList("entre"),
		andSeparators:   phraseList("e"),
		afterPrefixes:   phraseList("depois de", "depois das"),
		beforePrefixes:  phraseList("antes de", "antes das"),
	}
}

func japanese() *lexicon {
	return &lexicon{
		cjk:              true,
		ordinalPrefixes:  phraseList("第"),
		ordinalSuffixes:  phraseList("番目", "番"),
		percent:          phraseList("%", "％", "パーセント"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{"＄": "$", "￥": "¥"})),
		currencies: newPhrases(withSymbols(map[string]string{
			"円": "¥", "ドル": "$", "ユーロ": "€", "ポンド": "£", "セント": "cent",
		})),
		approx: phraseList("約", "およそ", "大体"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"度": "degree", "摂氏": "celsius", "華氏": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"秒", "秒間"},
			GrainMinute: {"分", "分間"},
			GrainHour:   {"時間"},
			GrainDay:    {"日間"},
			GrainWeek:   {"週間"},
			GrainMonth:  {"ヶ月", "か月", "カ月", "ヵ月", "ヶ月間", "か月間"},
			GrainYear:   {"年間"},
		})),
		durationJoiners: phraseList("と"),
		relativeDays: newPhrases(map[string]int{
			"今日": 0, "明日": 1, "昨日": -1, "明後日": 2, "あさって": 2, "一昨日": -2, "おととい": -2,
		}),
		weekdays: newPhrases(weekdayNames("月曜日|月曜", "火曜日|火曜", "水曜日|水曜", "木曜日|木曜",
			"金曜日|金曜", "土曜日|土曜", "日曜日|日曜")),
		nextPrefixes: phraseList("来週の", "次の"),
		lastPrefixes: phraseList("先週の"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"今週": {0, false}, "来週": {1, false}, "先週": {-1, false}, "今週末": {0, true}, "週末": {0, true},
		}),
		yearSuffix:   phraseList("年"),
		monthSuffix:  phraseList("月"),
		daySuffix:    phraseList("日"),
		now:          phraseList("今", "現在"),
		noon:         phraseList("正午"),
		midnight:     phraseList("深夜零時"),
		amPrefixes:   phraseList("午前", "朝"),
		pmPrefixes:   phraseList("午後", "夜"),
		hourSuffix:   phraseList("時"),
		minuteSuffix: phraseList("分"),
		halfSuffix:   phraseList("半"),
		partsOfDay: newPhrases(map[string]dayPart{
			"今朝": {4, 12}, "朝": {4, 12}, "午後": {12, 19}, "今夜": {18, 24}, "今晩": {18, 24}, "夜": {18, 24},
		}),
		fromPrefixes:  phraseList(),
		toSeparators:  phraseList("から", "〜", "~", "-"),
		afterPrefixes: phraseList(),
	}
}

func korean() *lexicon {
	return &lexicon{
		cjk:              true,
		ordinalSuffixes:  phraseList("번째"),
		currencyPrefixes: newPhrases(withSymbols(map[string]string{})),
		currencies: newPhrases(withSymbols(map[string]string{
			"원": "₩", "달러": "$", "유로": "€", "엔": "¥",
		})),
		approx: phraseList("약", "대략"),
		temperatureUnits: newPhrases(temperatureSymbols(map[string]string{
			"도": "degree", "섭씨": "celsius", "화씨": "fahrenheit",
		})),
		durationUnits: newPhrases(grains(map[Grain][]string{
			GrainSecond: {"초", "초간"},
			GrainMinute: {"분", "분간"},
			GrainHour:   {"시간"},
			GrainDay:    {"일", "일간"},
			GrainWeek:   {"주", "주일", "주간"},
			GrainMonth:  {"개월", "달"},
			GrainYear:   {"년", "년간"},
		})),
		durationJoiners: phraseList(),
		relativeDays: newPhrases(map[string]int{
			"오늘": 0, "내일": 1, "어제": -1, "모레": 2, "그저께": -2,
		}),
		weekdays:     newPhrases(weekdayNames("월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일")),
		nextPrefixes: phraseList("다음주", "다음 주"),
		lastPrefixes: phraseList("지난주", "지난 주"),
		weekPeriods: newPhrases(map[string]weekPeriod{
			"이번주": {0, false}, "이번 주": {0, false}, "다음주": {1, false}, "다음 주": {1, false},
			"지난주": {-1, false}, "이번 주말": {0, true}, "주말": {0, true},
		}),
		yearSuffix:   phraseList("년"),
		monthSuffix:  phraseList("월"),
		daySuffix:    phraseList("일"),
		now:          phraseList("지금"),
		noon:         phraseList("정오"),
		midnight:     phraseList("자정"),
		amPrefixes:   phraseList("오전"),
		pmPrefixes:   phraseList("오후"),
		hourSuffix:   phraseList("시"),
		minuteSuffix: phraseList("분"),
		halfSuffix:   phraseList("반"),
		toSeparators: phraseList("부터", "~", "-"),
	}
}

package ontology

// examples lists sample phrases per language and kind. Kinds missing from a
// language have no examples.
var examples = map[Language]map[BuiltinEntityKind][]string{
	DE: {
		KindAmountOfMoney: {"10$", "ungefähr 5€", "zwei tausend Dollar"},
		KindDuration:      {"2stdn", "drei monate", "ein halbe Stunde", "8 Jahre und zwei Tage"},
		KindNumber:        {"2001", "einundzwanzig", "zwei tausend", "zwei tausend und drei"},
		KindOrdinal:       {"Erste", "der zweite", "zwei und zwanzigster"},
		KindTemperature:   {"70K", "3°C", "Dreiundzwanzig Grad", "zweiunddreißig Grad Fahrenheit"},
		KindDatetime:      {"Heute", "16.30 Uhr", "in 1 Stunde", "dritter Dienstag im Juni"},
		KindPercentage:    {"25%", "zwanzig Prozent", "zwei tausend und fünfzig Prozent"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"Berlin", "Essen", "Zürich", "Paris"},
		KindCountry:       {"Frankreich"},
		KindRegion:        {"Bayern", "Tirol"},
	},
	EN: {
		KindAmountOfMoney: {"$10", "six euros", "around 5€", "ten dollars and five cents"},
		KindDuration:      {"1h", "during two minutes", "for 20 seconds", "3 months", "half an hour", "8 years and two days"},
		KindNumber:        {"2001", "twenty one", "three hundred and four"},
		KindOrdinal:       {"1st", "the second", "the twenty third"},
		KindTemperature:   {"70K", "3°C", "Twenty three degrees", "one hundred degrees fahrenheit"},
		KindDatetime:      {"tomorrow at 9pm", "today", "on october 1st at 10am", "at 8 a.m.", "4:30 pm", "in 1 hour", "the 3rd tuesday of June"},
		KindDate:          {"today", "on Wednesday", "March 26th", "saturday january 19", "monday 15th april 2019", "the day after tomorrow"},
		KindTime:          {"now", "at noon", "at 8 a.m.", "4:30 pm", "in one hour", "for ten o'clock", "at ten in the evening"},
		KindDatePeriod:    {"january", "2019", "from monday to friday", "from wednesday 27th to saturday 30th", "this week"},
		KindTimePeriod:    {"until dinner", "from five to ten", "by the end of the day"},
		KindPercentage:    {"25%", "twenty percent", "two hundred and fifty percents"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"San Francisco", "Los Angeles", "Beijing", "Paris"},
		KindCountry:       {"France"},
		KindRegion:        {"California", "Washington"},
	},
	ES: {
		KindAmountOfMoney: {"$10", "15€", "cinco euros", "16,65 €", "diez dólares y cinco centavos", "treinta y tres mil millones de rupias", "ocho cientos bitcoins", "noventa coronas danesas", "845584 francos suizos"},
		KindDuration:      {"1h", "3 meses", "diez minutos", "media hora", "ciento dos minutos", "8 años y dos dias", "un año catorce semanas y tres horas", "tres cuartos de hora"},
		KindNumber:        {"2001", "dieciocho", "ciento dos", "tres mil nueve", "ciento cuarenta y nueve", "cuatro cientos dieciséis", "quinientos noventa y uno", "mil novecientos cuarenta y cuatro"},
		KindOrdinal:       {"primer", "decima"},
		KindTemperature:   {"70 grados kelvin", "3°C", "veintitrés grados", "tres mil grados fahrenheit", "veinte grados centígrados", "setecientos ochenta y nueve kelvin", "quince grados bajo cero", "-459,67 °F"},
		KindDatetime:      {"hoy", "esta noche", "a la 1:30", "el primer jueves de junio", "el 30 de julio por la tarde", "la primera semana de la primavera", "de cinco a ocho de la tarde"},
		KindPercentage:    {"25%", "quince por ciento", "20 por ciento", "tres por ciento", "veinte por ciento", "tres mil por ciento", "cien por cien", "setenta y cinco por ciento"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"Madrid", "Barcelona", "Bilbao", "Paris"},
		KindCountry:       {"Francia"},
		KindRegion:        {"Andalusia", "Catalonia"},
	},
	FR: {
		KindAmountOfMoney: {"10$", "environ 5€", "six euros", "dix dollars et cinq centimes"},
		KindDuration:      {"1h", "pendant vingt minutes", "durant 3 secondes", "3 mois", "une demi heure", "8 ans et deux jours"},
		KindNumber:        {"2001", "vingt deux", "deux cent trois", "quatre vingt dix neuf"},
		KindOrdinal:       {"1er", "43ème", "le deuxième", "cinq centième", "vingt et unieme"},
		KindTemperature:   {"70K", "3°C", "vingt trois degrés", "45 degrés celsius", "deux cent degrés Fahrenheit"},
		KindDatetime:      {"Aujourd'hui", "à 14:30", "demain matin", "hier vers 10 heures", "dans 1 heure", "le premier jeudi de Juin"},
		KindDate:          {"aujourd'hui", "mercredi", "le 26 mars", "samedi 19 janvier", "lundi 15 avril 2019", "après demain"},
		KindTime:          {"maintenant", "à midi", "à 8h00", "16h30", "dans une heure", "à 10h du soir"},
		KindDatePeriod:    {"janvier", "2019", "de lundi à vendredi", "de mercredi 27 à samedi 30", "cette semaine"},
		KindTimePeriod:    {"ce soir", "jusqu'au diner", "ce matin", "de 5 à 6", "jusqu'à 16h"},
		KindPercentage:    {"25%", "20 pourcents", "quatre vingt dix pourcents"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"Paris", "Brest", "Bruxelles", "Pékin", "Londres"},
		KindCountry:       {"France"},
		KindRegion:        {"Bretagne", "Corse", "Province de Liège"},
	},
	IT: {
		KindAmountOfMoney: {"$10", "15€", "cinque euro", "sei mila euro", "quattordici franchi svizzeri", "cinquanta sette dollari australiani", "dieci dollari e cinque centesimi", "cento diciotto mila corone danesi", "sessant uno euro e novanta nove centesimi"},
		KindDuration:      {"per un mese", "durante tre settimane", "durante un quarto d'ora", "per tre anni e mezzo", "per quattro ore e venti due minuti", "3 mesi", "dieci minuti", "cento due minuti", "8 anni e due giorni"},
		KindNumber:        {"otto", "sedici", "cento", "venti due", "sei mila", "cento quaranta nove", "tre mila cinque cento", "due cento novanta tré", "mille otto cento cinquanta sei", "un milione sette cento dodici mila", "sessanta due mila tre cento ottanta nove"},
		KindOrdinal:       {"primo", "decima"},
		KindTemperature:   {"3°C", "tre gradi", "quindici gradi celsius", "settant uno fahrenheit", "due cento novanta cinque gradi kelvin"},
		KindDatetime:      {"domattina", "giovedì prossimo", "a febbraio", "tra quindici giorni", "il dodici marzo 2020", "dopodomani a mezzanotte e dieci", "alle sette e mezza di sera", "alle 1:30", "il primo giovedí di giugno"},
		KindPercentage:    {"25%", "due percento", "cento percento", "20 percento", "tre mila percento", "sessanta sei percento", "diciotto per cento", "venti nove per cento"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"San Francisco", "Roma", "Agrigente"},
		KindCountry:       {"Italia"},
		KindRegion:        {"Sardinia", "Sicilia"},
	},
	PT_BR: {
		KindAmountOfMoney: {"10$", "15€", "cinco euros", "16,65 €", "dois euros e cinco centavos", "dez libras esterlinas", "845584 francos suíços"},
		KindDatetime:      {"hoje"},
		KindDuration:      {"1 hora", "3 meses", "dez minutos", "meia hora", "oito anos e dois semanas", "um ano quatro semanas e tres horas"},
		KindNumber:        {"2001"},
		KindOrdinal:       {"primeira"},
		KindTemperature:   {"70 graus kelvin", "3°C", "dez graus", "quatro graus centígrados", "-459,67 °F"},
		KindPercentage:    {"25%"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"São Paulo", "Rio", "Los Angeles", "Paris"},
		KindCountry:       {"Brasil"},
		KindRegion:        {"Bahia", "Amazonas"},
	},
	PT_PT: {
		KindAmountOfMoney: {"10$", "15€", "cinco euros", "16,65 €", "dois euros e cinco centavos", "dez libras esterlinas", "845584 francos suíços"},
		KindDatetime:      {"hoje"},
		KindDuration:      {"1 hora", "3 meses", "dez minutos", "meia hora", "oito anos e dois semanas", "um ano quatro semanas e tres horas"},
		KindNumber:        {"2001"},
		KindOrdinal:       {"primeira"},
		KindTemperature:   {"70 graus kelvin", "3°C", "dez graus", "quatro graus centígrados", "-459,67 °F"},
		KindPercentage:    {"25%"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"Liboa", "Porto", "Amadora"},
		KindCountry:       {"Portugal", "Espanha"},
		KindRegion:        {"Norte", "Alentejo"},
	},
	JA: {
		KindAmountOfMoney: {"八ドル", "五十二アメリカドル"},
		KindDuration:      {"一秒間", "五日間", "十ヶ月間"},
		KindNumber:        {"十二", "二千五", "四千三百二"},
		KindOrdinal:       {"十一番目", "九十一番目"},
		KindTemperature:   {"五度", "二十五度", "マイナス十度"},
		KindDatetime:      {"一昨日", "次の水曜日", "十三時三十分", "二千十三年十二月二十三日"},
		KindPercentage:    {"十五%", "五パーセント"},
		KindMusicAlbum:    {"Discovery"},
		KindMusicArtist:   {"Daft Punk"},
		KindMusicTrack:    {"Harder Better Faster Stronger"},
		KindCity:          {"パリ", "東京", "京都"},
		KindCountry:       {"日本"},
		KindRegion:        {"北海道", "関東地方"},
	},
	KO: {
		KindAmountOfMoney: {"10$", "약 5 유로", "10 달러 5 센트"},
		KindDuration:      {"양일", "1시간", "3 개월"},
		KindNumber:        {"2001", "삼천", "스물 둘", "천 아흔 아홉"},
		KindOrdinal:       {"첫", "첫번째"},
		KindTemperature:   {"5도", "섭씨 20도", "화씨 백 도"},
		KindDatetime:      {"오늘", "14시 30 분에", "5 월 첫째 목요일"},
	},
}

// Examples returns sample phrases for the kind in the language. The returned
// slice must not be modified.
func (k BuiltinEntityKind) Examples(language Language) []string {
	return examples[language][k]
}

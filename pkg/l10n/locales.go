package l10n

// Fallback is the locale every formatter table must define; it doubles as
// the initial process default.
const Fallback = "en_US"

// Seed tables for the default formatter. Currencies absent from a locale's
// symbol table fall back to their raw code at format time.
var (
	localeStyles = map[string]Style{
		"en_US": {DecimalPoint: ".", Thousand: ",", GroupSize: 3},
		"en_GB": {DecimalPoint: ".", Thousand: ",", GroupSize: 3},
		"ja_JP": {DecimalPoint: ".", Thousand: ",", GroupSize: 3},
		"de_DE": {DecimalPoint: ",", Thousand: ".", GroupSize: 3},
		"fr_FR": {DecimalPoint: ",", Thousand: " ", GroupSize: 3},
		"pl_PL": {DecimalPoint: ",", Thousand: " ", GroupSize: 3},
	}

	localeSymbols = map[string]map[string]Symbol{
		"en_US": {
			"USD": {Text: "US$", Prefix: true},
			"GBP": {Text: "GB£", Prefix: true},
			"EUR": {Text: "€", Prefix: true},
			"JPY": {Text: "¥", Prefix: true},
		},
		"en_GB": {
			"GBP": {Text: "£", Prefix: true},
			"USD": {Text: "US$", Prefix: true},
			"EUR": {Text: "€", Prefix: true},
		},
		"ja_JP": {
			"JPY": {Text: "¥", Prefix: true},
		},
		"de_DE": {
			"EUR": {Text: "€", Space: true},
			"USD": {Text: "US$", Space: true},
		},
		"fr_FR": {
			"EUR": {Text: "€", Space: true},
		},
		"pl_PL": {
			"PLN": {Text: "zł", Space: true},
		},
	}

	// Default renders with the seed tables above.
	Default = NewFormatter(Fallback, localeStyles, localeSymbols)
)

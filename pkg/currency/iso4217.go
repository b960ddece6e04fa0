package currency

// Seed table derived from the ISO 4217 currency list. XYZ is the placeholder
// entry used as the process default when no currency is configured.
var (
	XYZ = Default.MustRegister(Currency{Code: "XYZ", Numeric: "999", Name: "Default currency", Countries: []string{}})

	AED = Default.MustRegister(Currency{Code: "AED", Numeric: "784", Name: "UAE Dirham", Countries: []string{"UNITED ARAB EMIRATES"}})
	AUD = Default.MustRegister(Currency{Code: "AUD", Numeric: "036", Name: "Australian Dollar", Countries: []string{"AUSTRALIA", "CHRISTMAS ISLAND", "COCOS (KEELING) ISLANDS", "HEARD ISLAND AND MCDONALD ISLANDS", "KIRIBATI", "NAURU", "NORFOLK ISLAND", "TUVALU"}})
	BGN = Default.MustRegister(Currency{Code: "BGN", Numeric: "975", Name: "Bulgarian Lev", Countries: []string{"BULGARIA"}})
	BRL = Default.MustRegister(Currency{Code: "BRL", Numeric: "986", Name: "Brazilian Real", Countries: []string{"BRAZIL"}})
	CAD = Default.MustRegister(Currency{Code: "CAD", Numeric: "124", Name: "Canadian Dollar", Countries: []string{"CANADA"}})
	CHF = Default.MustRegister(Currency{Code: "CHF", Numeric: "756", Name: "Swiss Franc", Countries: []string{"LIECHTENSTEIN", "SWITZERLAND"}})
	CNY = Default.MustRegister(Currency{Code: "CNY", Numeric: "156", Name: "Yuan Renminbi", Countries: []string{"CHINA"}})
	CZK = Default.MustRegister(Currency{Code: "CZK", Numeric: "203", Name: "Czech Koruna", Countries: []string{"CZECH REPUBLIC"}})
	DKK = Default.MustRegister(Currency{Code: "DKK", Numeric: "208", Name: "Danish Krone", Countries: []string{"DENMARK", "FAROE ISLANDS", "GREENLAND"}})
	EUR = Default.MustRegister(Currency{Code: "EUR", Numeric: "978", Name: "Euro", Countries: []string{"ANDORRA", "AUSTRIA", "BELGIUM", "CYPRUS", "ESTONIA", "FINLAND", "FRANCE", "GERMANY", "GREECE", "IRELAND", "ITALY", "LATVIA", "LITHUANIA", "LUXEMBOURG", "MALTA", "MONACO", "MONTENEGRO", "NETHERLANDS", "PORTUGAL", "SAN MARINO", "SLOVAKIA", "SLOVENIA", "SPAIN", "VATICAN CITY STATE (HOLY SEE)"}})
	GBP = Default.MustRegister(Currency{Code: "GBP", Numeric: "826", Name: "Pound Sterling", Countries: []string{"UNITED KINGDOM"}})
	HKD = Default.MustRegister(Currency{Code: "HKD", Numeric: "344", Name: "Hong Kong Dollar", Countries: []string{"HONG KONG"}})
	HUF = Default.MustRegister(Currency{Code: "HUF", Numeric: "348", Name: "Forint", Countries: []string{"HUNGARY"}})
	IDR = Default.MustRegister(Currency{Code: "IDR", Numeric: "360", Name: "Rupiah", Countries: []string{"INDONESIA"}})
	ILS = Default.MustRegister(Currency{Code: "ILS", Numeric: "376", Name: "New Israeli Sheqel", Countries: []string{"ISRAEL"}})
	INR = Default.MustRegister(Currency{Code: "INR", Numeric: "356", Name: "Indian Rupee", Countries: []string{"BHUTAN", "INDIA"}})
	ISK = Default.MustRegister(Currency{Code: "ISK", Numeric: "352", Name: "Iceland Krona", Countries: []string{"ICELAND"}})
	JPY = Default.MustRegister(Currency{Code: "JPY", Numeric: "392", Name: "Yen", Countries: []string{"JAPAN"}})
	KRW = Default.MustRegister(Currency{Code: "KRW", Numeric: "410", Name: "Won", Countries: []string{"KOREA"}})
	MXN = Default.MustRegister(Currency{Code: "MXN", Numeric: "484", Name: "Mexican Peso", Countries: []string{"MEXICO"}})
	MYR = Default.MustRegister(Currency{Code: "MYR", Numeric: "458", Name: "Malaysian Ringgit", Countries: []string{"MALAYSIA"}})
	NOK = Default.MustRegister(Currency{Code: "NOK", Numeric: "578", Name: "Norwegian Krone", Countries: []string{"BOUVET ISLAND", "NORWAY", "SVALBARD AND JAN MAYEN"}})
	NZD = Default.MustRegister(Currency{Code: "NZD", Numeric: "554", Name: "New Zealand Dollar", Countries: []string{"COOK ISLANDS", "NEW ZEALAND", "NIUE", "PITCAIRN", "TOKELAU"}})
	PHP = Default.MustRegister(Currency{Code: "PHP", Numeric: "608", Name: "Philippine Peso", Countries: []string{"PHILIPPINES"}})
	PLN = Default.MustRegister(Currency{Code: "PLN", Numeric: "985", Name: "Zloty", Countries: []string{"POLAND"}})
	RON = Default.MustRegister(Currency{Code: "RON", Numeric: "946", Name: "New Leu", Countries: []string{"ROMANIA"}})
	RUB = Default.MustRegister(Currency{Code: "RUB", Numeric: "643", Name: "Russian Ruble", Countries: []string{"RUSSIAN FEDERATION"}})
	SEK = Default.MustRegister(Currency{Code: "SEK", Numeric: "752", Name: "Swedish Krona", Countries: []string{"SWEDEN"}})
	SGD = Default.MustRegister(Currency{Code: "SGD", Numeric: "702", Name: "Singapore Dollar", Countries: []string{"SINGAPORE"}})
	THB = Default.MustRegister(Currency{Code: "THB", Numeric: "764", Name: "Baht", Countries: []string{"THAILAND"}})
	TRY = Default.MustRegister(Currency{Code: "TRY", Numeric: "949", Name: "Turkish Lira", Countries: []string{"TURKEY"}})
	TWD = Default.MustRegister(Currency{Code: "TWD", Numeric: "901", Name: "New Taiwan Dollar", Countries: []string{"TAIWAN"}})
	UAH = Default.MustRegister(Currency{Code: "UAH", Numeric: "980", Name: "Hryvnia", Countries: []string{"UKRAINE"}})
	USD = Default.MustRegister(Currency{Code: "USD", Numeric: "840", Name: "US Dollar", Countries: []string{"AMERICAN SAMOA", "BRITISH INDIAN OCEAN TERRITORY", "ECUADOR", "GUAM", "MARSHALL ISLANDS", "MICRONESIA", "NORTHERN MARIANA ISLANDS", "PALAU", "PUERTO RICO", "TIMOR-LESTE", "TURKS AND CAICOS ISLANDS", "UNITED STATES", "UNITED STATES MINOR OUTLYING ISLANDS", "VIRGIN ISLANDS (BRITISH)", "VIRGIN ISLANDS (U.S.)"}})
	VND = Default.MustRegister(Currency{Code: "VND", Numeric: "704", Name: "Dong", Countries: []string{"VIET NAM"}})
	ZAR = Default.MustRegister(Currency{Code: "ZAR", Numeric: "710", Name: "Rand", Countries: []string{"LESOTHO", "NAMIBIA", "SOUTH AFRICA"}})

	// XTS is reserved by ISO 4217 for testing.
	XTS = Default.MustRegister(Currency{Code: "XTS", Numeric: "963", Name: "Codes specifically reserved for testing purposes", Countries: []string{}})
)

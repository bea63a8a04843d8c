package localeinfo

// currencyNamesData is hand-maintained. golang.org/x/text exposes no currency
// long names and localeinfo-tables does not cover them; values follow the CLDR
// display names. Update entries in place.
var currencyNamesData = map[string]CurrencyNames{
	"AUD": {
		English: "Australian Dollar",
		Native: map[string]string{
			"en": "Australian Dollar",
		},
	},
	"BRL": {
		English: "Brazilian Real",
		Native: map[string]string{
			"pt": "Real brasileiro",
		},
	},
	"CAD": {
		English: "Canadian Dollar",
		Native: map[string]string{
			"en": "Canadian Dollar",
			"fr": "dollar canadien",
		},
	},
	"CHF": {
		English: "Swiss Franc",
		Native: map[string]string{
			"de": "Schweizer Franken",
			"fr": "franc suisse",
			"it": "franco svizzero",
		},
	},
	"CNY": {
		English: "Chinese Yuan",
		Native: map[string]string{
			"zh": "人民币",
		},
	},
	"CZK": {
		English: "Czech Koruna",
		Native: map[string]string{
			"cs": "česká koruna",
		},
	},
	"DKK": {
		English: "Danish Krone",
		Native: map[string]string{
			"da": "dansk krone",
		},
	},
	"EUR": {
		English: "Euro",
		Native: map[string]string{
			"de": "Euro",
			"es": "euro",
			"fi": "euro",
			"fr": "euro",
			"it": "euro",
			"nl": "Euro",
			"pt": "Euro",
		},
	},
	"GBP": {
		English: "British Pound",
		Native: map[string]string{
			"en": "British Pound",
		},
	},
	"ILS": {
		English: "Israeli New Shekel",
		Native: map[string]string{
			"he": "שקל חדש",
		},
	},
	"INR": {
		English: "Indian Rupee",
		Native: map[string]string{
			"en": "Indian Rupee",
			"hi": "भारतीय रुपया",
		},
	},
	"JPY": {
		English: "Japanese Yen",
		Native: map[string]string{
			"ja": "日本円",
		},
	},
	"KRW": {
		English: "South Korean Won",
		Native: map[string]string{
			"ko": "대한민국 원",
		},
	},
	"NOK": {
		English: "Norwegian Krone",
		Native: map[string]string{
			"nb": "norske kroner",
		},
	},
	"PLN": {
		English: "Polish Zloty",
		Native: map[string]string{
			"pl": "złoty polski",
		},
	},
	"RUB": {
		English: "Russian Ruble",
		Native: map[string]string{
			"ru": "российский рубль",
		},
	},
	"SAR": {
		English: "Saudi Riyal",
		Native: map[string]string{
			"ar": "ريال سعودي",
		},
	},
	"SEK": {
		English: "Swedish Krona",
		Native: map[string]string{
			"sv": "svensk krona",
		},
	},
	"THB": {
		English: "Thai Baht",
		Native: map[string]string{
			"th": "บาทไทย",
		},
	},
	"TRY": {
		English: "Turkish Lira",
		Native: map[string]string{
			"tr": "Türk Lirası",
		},
	},
	"USD": {
		English: "US Dollar",
		Native: map[string]string{
			"en": "US Dollar",
			"es": "dólar estadounidense",
		},
	},
}

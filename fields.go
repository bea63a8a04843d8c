package localeinfo

// Field identifies one piece of locale string data. The set mirrors the query
// surface of the wrapped locale library: display names, number and currency
// symbols, calendar designators, ISO codes, and the parent locale.
type Field int

const (
	// LocalizedDisplayName is the full locale name rendered in the display locale.
	LocalizedDisplayName Field = iota
	// EnglishDisplayName is the full locale name rendered in English.
	EnglishDisplayName
	// NativeDisplayName is the full locale name rendered in the locale itself.
	NativeDisplayName
	// LocalizedLanguageName is the language name rendered in the display locale.
	LocalizedLanguageName
	// EnglishLanguageName is the language name rendered in English.
	EnglishLanguageName
	// NativeLanguageName is the language name rendered in the locale itself.
	NativeLanguageName
	// EnglishCountryName is the region name rendered in English.
	EnglishCountryName
	// NativeCountryName is the region name rendered in the locale itself.
	NativeCountryName
	// ListSeparator resolves to the grouping separator; the wrapped library
	// never carried a distinct list separator and callers depend on that.
	ListSeparator
	// ThousandSeparator is the digit grouping separator.
	ThousandSeparator
	// DecimalSeparator is the decimal point symbol.
	DecimalSeparator
	// Digits is the ten digit glyphs of the locale's numbering system.
	Digits
	// MonetarySymbol is the currency symbol, e.g. "$".
	MonetarySymbol
	// Iso4217MonetarySymbol is the three letter currency code, e.g. "USD".
	Iso4217MonetarySymbol
	// CurrencyEnglishName is the currency long name in English.
	CurrencyEnglishName
	// CurrencyNativeName is the currency long name in the locale itself.
	CurrencyNativeName
	// MonetaryDecimalSeparator is the decimal point used in currency amounts.
	MonetaryDecimalSeparator
	// MonetaryThousandSeparator is the grouping separator used in currency amounts.
	MonetaryThousandSeparator
	// AMDesignator is the ante meridiem string.
	AMDesignator
	// PMDesignator is the post meridiem string.
	PMDesignator
	// PositiveSign is the plus sign symbol.
	PositiveSign
	// NegativeSign is the minus sign symbol.
	NegativeSign
	// Iso639LanguageTwoLetterName is the ISO 639-1 language code.
	Iso639LanguageTwoLetterName
	// Iso639LanguageThreeLetterName is the ISO 639-2/T language code.
	Iso639LanguageThreeLetterName
	// Iso3166CountryName is the ISO 3166 alpha-2 region code.
	Iso3166CountryName
	// Iso3166CountryCode is the ISO 3166 alpha-3 region code.
	Iso3166CountryCode
	// NaNSymbol is the not-a-number symbol.
	NaNSymbol
	// PositiveInfinitySymbol is the infinity symbol.
	PositiveInfinitySymbol
	// ParentName is the parent locale identifier, "" at the root.
	ParentName
	// PercentSymbol is the percent sign.
	PercentSymbol
	// PerMilleSymbol is the per-mille sign.
	PerMilleSymbol
)

var fieldNames = map[Field]string{
	LocalizedDisplayName:          "LocalizedDisplayName",
	EnglishDisplayName:            "EnglishDisplayName",
	NativeDisplayName:             "NativeDisplayName",
	LocalizedLanguageName:         "LocalizedLanguageName",
	EnglishLanguageName:           "EnglishLanguageName",
	NativeLanguageName:            "NativeLanguageName",
	EnglishCountryName:            "EnglishCountryName",
	NativeCountryName:             "NativeCountryName",
	ListSeparator:                 "ListSeparator",
	ThousandSeparator:             "ThousandSeparator",
	DecimalSeparator:              "DecimalSeparator",
	Digits:                        "Digits",
	MonetarySymbol:                "MonetarySymbol",
	Iso4217MonetarySymbol:         "Iso4217MonetarySymbol",
	CurrencyEnglishName:           "CurrencyEnglishName",
	CurrencyNativeName:            "CurrencyNativeName",
	MonetaryDecimalSeparator:      "MonetaryDecimalSeparator",
	MonetaryThousandSeparator:     "MonetaryThousandSeparator",
	AMDesignator:                  "AMDesignator",
	PMDesignator:                  "PMDesignator",
	PositiveSign:                  "PositiveSign",
	NegativeSign:                  "NegativeSign",
	Iso639LanguageTwoLetterName:   "Iso639LanguageTwoLetterName",
	Iso639LanguageThreeLetterName: "Iso639LanguageThreeLetterName",
	Iso3166CountryName:            "Iso3166CountryName",
	Iso3166CountryCode:            "Iso3166CountryCode",
	NaNSymbol:                     "NaNSymbol",
	PositiveInfinitySymbol:        "PositiveInfinitySymbol",
	ParentName:                    "ParentName",
	PercentSymbol:                 "PercentSymbol",
	PerMilleSymbol:                "PerMilleSymbol",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "Field(unknown)"
}

// PatternStyle selects the width of a date or time pattern.
type PatternStyle int

const (
	// PatternShort selects the abbreviated pattern, e.g. "h:mm a" or "M/d/yy".
	PatternShort PatternStyle = iota
	// PatternMedium selects the default-width time pattern, e.g. "h:mm:ss a".
	PatternMedium
	// PatternLong selects the long date pattern, e.g. "MMMM d, y".
	PatternLong
)

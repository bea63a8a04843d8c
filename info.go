// Package localeinfo answers single-string locale-data queries: display
// names, number and currency symbols, calendar designators, ISO codes, and
// date/time patterns. The locale knowledge itself lives in golang.org/x/text
// and CLDR-derived tables; this package is the dispatch and fallback plumbing
// around it.
package localeinfo

import (
	"golang.org/x/text/language"
)

// LocaleData aggregates the override tables fed into the service providers.
// Every map is keyed by locale except CurrencyNames, which is keyed by ISO
// 4217 code.
type LocaleData struct {
	DisplayLocale string                   `json:"display_locale" yaml:"display_locale" toml:"display_locale"`
	Symbols       map[string]Symbols       `json:"symbols" yaml:"symbols" toml:"symbols"`
	Calendar      map[string]CalendarData  `json:"calendar" yaml:"calendar" toml:"calendar"`
	CurrencyNames map[string]CurrencyNames `json:"currency_names" yaml:"currency_names" toml:"currency_names"`
}

// InfoService answers locale string queries
type InfoService interface {
	// Info returns the string value of field for the locale
	Info(locale string, field Field) (string, error)

	// TimeFormat returns the CLDR time pattern for the locale
	TimeFormat(locale string, style PatternStyle) (string, error)

	// DateFormat returns the CLDR date pattern for the locale
	DateFormat(locale string, style PatternStyle) (string, error)
}

// infoService implements InfoService
type infoService struct {
	displayTag language.Tag
	symbols    *SymbolsProvider
	calendar   *CalendarProvider
	currencies *CurrencyProvider
}

// NewInfoService creates a service from override data and a fallback
// resolver. Each call on the service is synchronous and stateless, so the
// service is safe for concurrent use.
func NewInfoService(data *LocaleData, resolver FallbackResolver) InfoService {
	if data == nil {
		data = &LocaleData{}
	}

	displayLocale := normalizeLocale(data.DisplayLocale)
	if displayLocale == "" {
		displayLocale = detectDisplayLocale()
	}

	return &infoService{
		displayTag: language.Make(displayLocale),
		symbols:    NewSymbolsProvider(data.Symbols, resolver),
		calendar:   NewCalendarProvider(data.Calendar, resolver),
		currencies: NewCurrencyProvider(data.CurrencyNames, resolver),
	}
}

// Info canonicalizes the locale and routes the field to the matching
// provider.
func (s *infoService) Info(locale string, field Field) (string, error) {
	tag, err := canonicalTag(locale)
	if err != nil {
		return "", err
	}
	normalized := normalizeLocale(locale)

	switch field {
	case LocalizedDisplayName:
		return displayName(tag, s.displayTag)
	case EnglishDisplayName:
		return displayName(tag, language.English)
	case NativeDisplayName:
		return displayName(tag, tag)
	case LocalizedLanguageName:
		return languageName(tag, s.displayTag)
	case EnglishLanguageName:
		return languageName(tag, language.English)
	case NativeLanguageName:
		return nativeLanguageName(tag)
	case EnglishCountryName:
		return regionName(tag, language.English)
	case NativeCountryName:
		return regionName(tag, tag)
	case ListSeparator, ThousandSeparator:
		return s.symbols.Get(normalized).GroupSeparator, nil
	case DecimalSeparator:
		return s.symbols.Get(normalized).DecimalSeparator, nil
	case Digits:
		return s.symbols.Digits(normalized, tag)
	case MonetarySymbol:
		return s.currencies.Symbol(tag)
	case Iso4217MonetarySymbol:
		return s.currencies.ISOCode(tag)
	case CurrencyEnglishName:
		return s.currencies.EnglishName(tag)
	case CurrencyNativeName:
		return s.currencies.NativeName(normalized, tag)
	case MonetaryDecimalSeparator:
		return s.symbols.Get(normalized).MonetaryDecimalSeparator, nil
	case MonetaryThousandSeparator:
		return s.symbols.Get(normalized).MonetaryGroupSeparator, nil
	case AMDesignator:
		return s.calendar.Get(normalized).AMDesignator, nil
	case PMDesignator:
		return s.calendar.Get(normalized).PMDesignator, nil
	case PositiveSign:
		return s.symbols.Get(normalized).PlusSign, nil
	case NegativeSign:
		return s.symbols.Get(normalized).MinusSign, nil
	case Iso639LanguageTwoLetterName:
		return isoLanguageCode(tag)
	case Iso639LanguageThreeLetterName:
		return isoLanguageCode3(tag)
	case Iso3166CountryName:
		return isoRegionCode(tag)
	case Iso3166CountryCode:
		return isoRegionCode3(tag)
	case NaNSymbol:
		return s.symbols.Get(normalized).NaN, nil
	case PositiveInfinitySymbol:
		return s.symbols.Get(normalized).Infinity, nil
	case ParentName:
		return parentName(tag), nil
	case PercentSymbol:
		return s.symbols.Get(normalized).PercentSign, nil
	case PerMilleSymbol:
		return s.symbols.Get(normalized).PerMilleSign, nil
	default:
		return "", ErrUnsupportedField
	}
}

// TimeFormat returns the time pattern for the locale. PatternShort selects
// the abbreviated pattern; everything else maps to medium.
func (s *infoService) TimeFormat(locale string, style PatternStyle) (string, error) {
	if _, err := canonicalTag(locale); err != nil {
		return "", err
	}
	return s.calendar.TimePattern(normalizeLocale(locale), style), nil
}

// DateFormat returns the date pattern for the locale. PatternShort selects
// the abbreviated pattern; everything else maps to long.
func (s *infoService) DateFormat(locale string, style PatternStyle) (string, error) {
	if _, err := canonicalTag(locale); err != nil {
		return "", err
	}
	return s.calendar.DatePattern(normalizeLocale(locale), style), nil
}

// parentName returns the parent locale identifier in hyphenated form, or ""
// at the root.
func parentName(tag language.Tag) string {
	parent := tag.Parent()
	if parent == language.Und {
		return ""
	}
	value := parent.String()
	if value == "und" {
		return ""
	}
	return normalizeLocale(value)
}

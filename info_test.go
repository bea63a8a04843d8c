package localeinfo

import (
	"errors"
	"testing"
)

func newTestService(t *testing.T) InfoService {
	t.Helper()
	cfg, err := NewConfig(WithDisplayLocale("en-US"))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	service, err := cfg.BuildService()
	if err != nil {
		t.Fatalf("BuildService: %v", err)
	}
	return service
}

func TestInfoNumberSymbols(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		locale string
		field  Field
		want   string
	}{
		{"en-US", DecimalSeparator, "."},
		{"en-US", ThousandSeparator, ","},
		{"en-US", ListSeparator, ","},
		{"en-US", MonetaryDecimalSeparator, "."},
		{"en-US", MonetaryThousandSeparator, ","},
		{"en-US", PositiveSign, "+"},
		{"en-US", NegativeSign, "-"},
		{"en-US", PercentSymbol, "%"},
		{"en-US", PerMilleSymbol, "‰"},
		{"en-US", NaNSymbol, "NaN"},
		{"en-US", PositiveInfinitySymbol, "∞"},
		{"de-DE", DecimalSeparator, ","},
		{"de-DE", ThousandSeparator, "."},
		{"fr-FR", ThousandSeparator, "\u202f"},
		{"ru", NaNSymbol, "не число"},
	}

	for _, tc := range cases {
		got, err := service.Info(tc.locale, tc.field)
		if err != nil {
			t.Fatalf("Info(%q, %s): %v", tc.locale, tc.field, err)
		}
		if got != tc.want {
			t.Fatalf("Info(%q, %s) = %q, want %q", tc.locale, tc.field, got, tc.want)
		}
	}
}

func TestInfoDigits(t *testing.T) {
	service := newTestService(t)

	if got, err := service.Info("en-US", Digits); err != nil || got != "0123456789" {
		t.Fatalf("Digits en-US = %q, %v", got, err)
	}

	if got, err := service.Info("ar", Digits); err != nil || got != "٠١٢٣٤٥٦٧٨٩" {
		t.Fatalf("Digits ar = %q, %v", got, err)
	}

	// A -u-nu- extension wins over the table.
	if got, err := service.Info("en-u-nu-thai", Digits); err != nil || got != "๐๑๒๓๔๕๖๗๘๙" {
		t.Fatalf("Digits en-u-nu-thai = %q, %v", got, err)
	}
}

func TestInfoDisplayNames(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		locale string
		field  Field
		want   string
	}{
		{"de", EnglishDisplayName, "German"},
		{"de", EnglishLanguageName, "German"},
		{"de", LocalizedLanguageName, "German"},
		{"de", NativeLanguageName, "Deutsch"},
		{"fr", NativeDisplayName, "français"},
		{"de-DE", EnglishCountryName, "Germany"},
		{"de-DE", NativeCountryName, "Deutschland"},
		{"de", EnglishCountryName, ""},
	}

	for _, tc := range cases {
		got, err := service.Info(tc.locale, tc.field)
		if err != nil {
			t.Fatalf("Info(%q, %s): %v", tc.locale, tc.field, err)
		}
		if got != tc.want {
			t.Fatalf("Info(%q, %s) = %q, want %q", tc.locale, tc.field, got, tc.want)
		}
	}
}

func TestInfoISOCodes(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		locale string
		field  Field
		want   string
	}{
		{"en-US", Iso639LanguageTwoLetterName, "en"},
		{"en-US", Iso639LanguageThreeLetterName, "eng"},
		{"de-DE", Iso639LanguageThreeLetterName, "deu"},
		{"en-US", Iso3166CountryName, "US"},
		{"en-US", Iso3166CountryCode, "USA"},
		{"de-DE", Iso3166CountryCode, "DEU"},
		{"en", Iso3166CountryName, ""},
	}

	for _, tc := range cases {
		got, err := service.Info(tc.locale, tc.field)
		if err != nil {
			t.Fatalf("Info(%q, %s): %v", tc.locale, tc.field, err)
		}
		if got != tc.want {
			t.Fatalf("Info(%q, %s) = %q, want %q", tc.locale, tc.field, got, tc.want)
		}
	}

	// Alpha-3 needs an explicit region.
	if _, err := service.Info("en", Iso3166CountryCode); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("Iso3166CountryCode without region: %v", err)
	}
}

func TestInfoCurrency(t *testing.T) {
	service := newTestService(t)

	if got, err := service.Info("en-US", Iso4217MonetarySymbol); err != nil || got != "USD" {
		t.Fatalf("Iso4217MonetarySymbol en-US = %q, %v", got, err)
	}

	if got, err := service.Info("de-DE", Iso4217MonetarySymbol); err != nil || got != "EUR" {
		t.Fatalf("Iso4217MonetarySymbol de-DE = %q, %v", got, err)
	}

	if got, err := service.Info("en-US", CurrencyEnglishName); err != nil || got != "US Dollar" {
		t.Fatalf("CurrencyEnglishName en-US = %q, %v", got, err)
	}

	if got, err := service.Info("de-DE", CurrencyNativeName); err != nil || got != "Euro" {
		t.Fatalf("CurrencyNativeName de-DE = %q, %v", got, err)
	}

	if got, err := service.Info("en-US", MonetarySymbol); err != nil || got != "$" {
		t.Fatalf("MonetarySymbol en-US = %q, %v", got, err)
	}

	// Antarctica has no legal tender.
	if _, err := service.Info("en-AQ", MonetarySymbol); !errors.Is(err, ErrNoData) {
		t.Fatalf("MonetarySymbol en-AQ: %v", err)
	}
}

func TestInfoCalendar(t *testing.T) {
	service := newTestService(t)

	cases := []struct {
		locale string
		field  Field
		want   string
	}{
		{"en-US", AMDesignator, "AM"},
		{"en-US", PMDesignator, "PM"},
		{"ja", AMDesignator, "午前"},
		{"ja", PMDesignator, "午後"},
		{"es", AMDesignator, "a. m."},
	}

	for _, tc := range cases {
		got, err := service.Info(tc.locale, tc.field)
		if err != nil {
			t.Fatalf("Info(%q, %s): %v", tc.locale, tc.field, err)
		}
		if got != tc.want {
			t.Fatalf("Info(%q, %s) = %q, want %q", tc.locale, tc.field, got, tc.want)
		}
	}
}

func TestInfoParentName(t *testing.T) {
	service := newTestService(t)

	if got, err := service.Info("en-US", ParentName); err != nil || got != "en" {
		t.Fatalf("ParentName en-US = %q, %v", got, err)
	}

	if got, err := service.Info("en", ParentName); err != nil || got != "" {
		t.Fatalf("ParentName en = %q, %v", got, err)
	}
}

func TestInfoErrors(t *testing.T) {
	service := newTestService(t)

	if _, err := service.Info("", DecimalSeparator); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("empty locale: %v", err)
	}

	if _, err := service.Info("!!!", DecimalSeparator); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("malformed locale: %v", err)
	}

	if _, err := service.Info("en-US", Field(999)); !errors.Is(err, ErrUnsupportedField) {
		t.Fatalf("unknown field: %v", err)
	}
}

func TestTimeFormat(t *testing.T) {
	service := newTestService(t)

	if got, err := service.TimeFormat("en-US", PatternShort); err != nil || got != "h:mm a" {
		t.Fatalf("TimeFormat en-US short = %q, %v", got, err)
	}

	if got, err := service.TimeFormat("en-US", PatternMedium); err != nil || got != "h:mm:ss a" {
		t.Fatalf("TimeFormat en-US medium = %q, %v", got, err)
	}

	if got, err := service.TimeFormat("en-GB", PatternShort); err != nil || got != "HH:mm" {
		t.Fatalf("TimeFormat en-GB short = %q, %v", got, err)
	}

	// de-AT falls back to de.
	if got, err := service.TimeFormat("de-AT", PatternShort); err != nil || got != "HH:mm" {
		t.Fatalf("TimeFormat de-AT short = %q, %v", got, err)
	}

	if _, err := service.TimeFormat("!!!", PatternShort); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("malformed locale: %v", err)
	}
}

func TestDateFormat(t *testing.T) {
	service := newTestService(t)

	if got, err := service.DateFormat("en-US", PatternShort); err != nil || got != "M/d/yy" {
		t.Fatalf("DateFormat en-US short = %q, %v", got, err)
	}

	if got, err := service.DateFormat("en-US", PatternLong); err != nil || got != "MMMM d, y" {
		t.Fatalf("DateFormat en-US long = %q, %v", got, err)
	}

	if got, err := service.DateFormat("ja-JP", PatternLong); err != nil || got != "y年M月d日" {
		t.Fatalf("DateFormat ja-JP long = %q, %v", got, err)
	}
}

func TestSucceeded(t *testing.T) {
	if !Succeeded(nil) {
		t.Fatal("Succeeded(nil) should be true")
	}
	if Succeeded(ErrNoData) {
		t.Fatal("Succeeded(ErrNoData) should be false")
	}
}

func TestFieldString(t *testing.T) {
	if got := DecimalSeparator.String(); got != "DecimalSeparator" {
		t.Fatalf("DecimalSeparator.String() = %q", got)
	}
	if got := Field(999).String(); got != "Field(unknown)" {
		t.Fatalf("Field(999).String() = %q", got)
	}
}

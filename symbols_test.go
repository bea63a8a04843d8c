package localeinfo

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestSymbolsProviderExactMatch(t *testing.T) {
	provider := NewSymbolsProvider(nil, nil)

	symbols := provider.Get("de")
	if symbols.DecimalSeparator != "," || symbols.GroupSeparator != "." {
		t.Fatalf("de symbols = %q/%q", symbols.DecimalSeparator, symbols.GroupSeparator)
	}
}

func TestSymbolsProviderParentChain(t *testing.T) {
	provider := NewSymbolsProvider(nil, nil)

	// fr-CA is not in the table; the parent chain lands on fr.
	symbols := provider.Get("fr-CA")
	if symbols.Locale != "fr" {
		t.Fatalf("fr-CA resolved to %q", symbols.Locale)
	}
}

func TestSymbolsProviderResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("zz", "de")

	provider := NewSymbolsProvider(nil, resolver)
	symbols := provider.Get("zz")
	if symbols.Locale != "de" {
		t.Fatalf("zz resolved to %q", symbols.Locale)
	}
}

func TestSymbolsProviderRootFallback(t *testing.T) {
	provider := NewSymbolsProvider(nil, nil)

	symbols := provider.Get("tlh")
	if symbols.Locale != rootLocale {
		t.Fatalf("tlh resolved to %q", symbols.Locale)
	}
}

func TestSymbolsProviderOverride(t *testing.T) {
	overrides := map[string]Symbols{
		"en": {Locale: "en", DecimalSeparator: "#"},
	}

	provider := NewSymbolsProvider(overrides, nil)
	if got := provider.Get("en").DecimalSeparator; got != "#" {
		t.Fatalf("override decimal separator = %q", got)
	}
}

func TestSymbolsProviderDigits(t *testing.T) {
	provider := NewSymbolsProvider(nil, nil)

	digits, err := provider.Digits("ar", language.Make("ar"))
	if err != nil {
		t.Fatalf("Digits ar: %v", err)
	}
	if digits != "٠١٢٣٤٥٦٧٨٩" {
		t.Fatalf("Digits ar = %q", digits)
	}

	overrides := map[string]Symbols{
		"qx": {Locale: "qx", NumberingSystem: "wxyz"},
	}
	provider = NewSymbolsProvider(overrides, nil)
	if _, err := provider.Digits("qx", language.Make("qx")); !errors.Is(err, ErrNoData) {
		t.Fatalf("unknown numbering system: %v", err)
	}
}

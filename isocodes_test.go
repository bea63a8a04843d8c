package localeinfo

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func TestISOLanguageCodes(t *testing.T) {
	tag := language.Make("de-DE")

	if code, err := isoLanguageCode(tag); err != nil || code != "de" {
		t.Fatalf("isoLanguageCode = %q, %v", code, err)
	}
	if code, err := isoLanguageCode3(tag); err != nil || code != "deu" {
		t.Fatalf("isoLanguageCode3 = %q, %v", code, err)
	}
}

func TestISORegionCodes(t *testing.T) {
	tag := language.Make("en-US")

	if code, err := isoRegionCode(tag); err != nil || code != "US" {
		t.Fatalf("isoRegionCode = %q, %v", code, err)
	}
	if code, err := isoRegionCode3(tag); err != nil || code != "USA" {
		t.Fatalf("isoRegionCode3 = %q, %v", code, err)
	}
}

func TestISORegionCodesWithoutRegion(t *testing.T) {
	tag := language.Make("en")

	// Alpha-2 reports empty success, alpha-3 rejects the locale. The split
	// mirrors how the wrapped library distinguishes the two lookups.
	if code, err := isoRegionCode(tag); err != nil || code != "" {
		t.Fatalf("isoRegionCode = %q, %v", code, err)
	}
	if _, err := isoRegionCode3(tag); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("isoRegionCode3: %v", err)
	}
}

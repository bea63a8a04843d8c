package localeinfo

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDisplayName(t *testing.T) {
	name, err := displayName(language.Make("de-DE"), language.Make("en"))
	if err != nil || name != "German (Germany)" {
		t.Fatalf("displayName de-DE = %q, %v", name, err)
	}

	name, err = displayName(language.Make("fr"), language.Make("fr"))
	if err != nil || name != "français" {
		t.Fatalf("displayName fr in fr = %q, %v", name, err)
	}
}

func TestLanguageName(t *testing.T) {
	name, err := languageName(language.Make("de-DE"), language.Make("en"))
	if err != nil || name != "German" {
		t.Fatalf("languageName de-DE = %q, %v", name, err)
	}
}

func TestNativeLanguageName(t *testing.T) {
	name, err := nativeLanguageName(language.Make("ja"))
	if err != nil || name != "日本語" {
		t.Fatalf("nativeLanguageName ja = %q, %v", name, err)
	}
}

func TestRegionName(t *testing.T) {
	name, err := regionName(language.Make("de-DE"), language.Make("en"))
	if err != nil || name != "Germany" {
		t.Fatalf("regionName de-DE = %q, %v", name, err)
	}

	// No explicit region is empty but successful.
	name, err = regionName(language.Make("de"), language.Make("en"))
	if err != nil || name != "" {
		t.Fatalf("regionName de = %q, %v", name, err)
	}
}

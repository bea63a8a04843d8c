package localeinfo

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeLocale(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en_US", "en-US"},
		{"  de-DE  ", "de-DE"},
		{"pt_BR", "pt-BR"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeLocaleChain(t *testing.T) {
	got := normalizeLocaleChain([]string{"fr_CA", "fr", "", "fr-CA"})
	want := []string{"fr-CA", "fr"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeLocaleChain = %v, want %v", got, want)
	}
}

func TestCanonicalTag(t *testing.T) {
	tag, err := canonicalTag("en_us")
	if err != nil {
		t.Fatalf("canonicalTag: %v", err)
	}
	if got := tag.String(); got != "en-US" {
		t.Fatalf("canonicalTag en_us = %q", got)
	}

	if _, err := canonicalTag(""); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("empty locale: %v", err)
	}
	if _, err := canonicalTag("!!!"); !errors.Is(err, ErrIllegalArgument) {
		t.Fatalf("malformed locale: %v", err)
	}
}

func TestLocaleParentChain(t *testing.T) {
	chain := localeParentChain("en-US")
	if len(chain) == 0 || chain[0] != "en" {
		t.Fatalf("localeParentChain en-US = %v", chain)
	}

	if chain := localeParentChain("en"); len(chain) != 0 {
		t.Fatalf("localeParentChain en = %v", chain)
	}
}

func TestDetectDisplayLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	if got := detectDisplayLocale(); got != "en-US" {
		t.Fatalf("default display locale = %q", got)
	}

	t.Setenv("LANG", "de_DE.UTF-8")
	if got := detectDisplayLocale(); got != "de-DE" {
		t.Fatalf("LANG display locale = %q", got)
	}

	t.Setenv("LC_ALL", "fr_FR@euro")
	if got := detectDisplayLocale(); got != "fr-FR" {
		t.Fatalf("LC_ALL display locale = %q", got)
	}

	t.Setenv("LC_ALL", "C")
	t.Setenv("LANG", "POSIX")
	if got := detectDisplayLocale(); got != "en-US" {
		t.Fatalf("C locale should fall back, got %q", got)
	}
}

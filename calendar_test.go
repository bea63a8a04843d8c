package localeinfo

import "testing"

func TestCalendarProviderGet(t *testing.T) {
	provider := NewCalendarProvider(nil, nil)

	data := provider.Get("en")
	if data.AMDesignator != "AM" || data.PMDesignator != "PM" {
		t.Fatalf("en designators = %q/%q", data.AMDesignator, data.PMDesignator)
	}

	// de-AT is not in the table; the parent chain lands on de.
	if got := provider.Get("de-AT").Locale; got != "de" {
		t.Fatalf("de-AT resolved to %q", got)
	}

	if got := provider.Get("tlh").Locale; got != rootLocale {
		t.Fatalf("tlh resolved to %q", got)
	}
}

func TestCalendarProviderResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("zz", "ja")

	provider := NewCalendarProvider(nil, resolver)
	if got := provider.Get("zz").AMDesignator; got != "午前" {
		t.Fatalf("zz AM designator = %q", got)
	}
}

func TestCalendarProviderOverride(t *testing.T) {
	overrides := map[string]CalendarData{
		"en": {Locale: "en", AMDesignator: "a.m.", PMDesignator: "p.m."},
	}

	provider := NewCalendarProvider(overrides, nil)
	if got := provider.Get("en").AMDesignator; got != "a.m." {
		t.Fatalf("override AM designator = %q", got)
	}
}

func TestCalendarProviderPatterns(t *testing.T) {
	provider := NewCalendarProvider(nil, nil)

	if got := provider.TimePattern("en", PatternShort); got != "h:mm a" {
		t.Fatalf("time short = %q", got)
	}
	if got := provider.TimePattern("en", PatternMedium); got != "h:mm:ss a" {
		t.Fatalf("time medium = %q", got)
	}
	// Long collapses to medium for time patterns.
	if got := provider.TimePattern("en", PatternLong); got != "h:mm:ss a" {
		t.Fatalf("time long = %q", got)
	}

	if got := provider.DatePattern("en", PatternShort); got != "M/d/yy" {
		t.Fatalf("date short = %q", got)
	}
	if got := provider.DatePattern("en", PatternLong); got != "MMMM d, y" {
		t.Fatalf("date long = %q", got)
	}
}

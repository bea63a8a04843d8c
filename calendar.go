package localeinfo

import (
	"golang.org/x/text/language"
)

// CalendarData holds day-period designators and date/time patterns for one
// locale. Patterns use CLDR syntax, returned unconverted the way the wrapped
// library hands them out.
type CalendarData struct {
	Locale       string `json:"locale" yaml:"locale" toml:"locale"`
	AMDesignator string `json:"am_designator" yaml:"am_designator" toml:"am_designator"`
	PMDesignator string `json:"pm_designator" yaml:"pm_designator" toml:"pm_designator"`
	TimeShort    string `json:"time_short" yaml:"time_short" toml:"time_short"`
	TimeMedium   string `json:"time_medium" yaml:"time_medium" toml:"time_medium"`
	DateShort    string `json:"date_short" yaml:"date_short" toml:"date_short"`
	DateLong     string `json:"date_long" yaml:"date_long" toml:"date_long"`
}

// CalendarProvider resolves calendar data for locales
type CalendarProvider struct {
	calendars map[string]CalendarData
	resolver  FallbackResolver
}

// NewCalendarProvider creates a provider seeded with the embedded tables,
// overlaid with the given overrides.
func NewCalendarProvider(overrides map[string]CalendarData, resolver FallbackResolver) *CalendarProvider {
	calendars := make(map[string]CalendarData, len(calendarData)+len(overrides))

	for k, v := range calendarData {
		calendars[k] = v
	}

	for k, v := range overrides {
		calendars[normalizeLocale(k)] = v
	}

	return &CalendarProvider{
		calendars: calendars,
		resolver:  resolver,
	}
}

// Get resolves calendar data for a locale using the same chain as symbols:
// exact match, resolver candidates, parent chain, base language, root.
func (p *CalendarProvider) Get(locale string) *CalendarData {
	if p == nil || p.calendars == nil {
		data := calendarData[rootLocale]
		return &data
	}

	normalized := normalizeLocale(locale)

	if data, ok := p.calendars[normalized]; ok {
		return &data
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(normalized) {
			if data, ok := p.calendars[candidate]; ok {
				return &data
			}
		}
	}

	for _, parent := range localeParentChain(normalized) {
		if data, ok := p.calendars[parent]; ok {
			return &data
		}
	}

	tag := language.Make(normalized)
	base, _ := tag.Base()
	if data, ok := p.calendars[base.String()]; ok {
		return &data
	}

	if data, ok := p.calendars[rootLocale]; ok {
		return &data
	}

	data := calendarData[rootLocale]
	return &data
}

// TimePattern returns the time pattern for the style. Styles other than
// PatternShort map to the medium pattern, which is what the original shim did
// with its two-valued flag.
func (p *CalendarProvider) TimePattern(locale string, style PatternStyle) string {
	data := p.Get(locale)
	if style == PatternShort {
		return data.TimeShort
	}
	return data.TimeMedium
}

// DatePattern returns the date pattern for the style; anything other than
// PatternShort maps to the long pattern.
func (p *CalendarProvider) DatePattern(locale string, style PatternStyle) string {
	data := p.Get(locale)
	if style == PatternShort {
		return data.DateShort
	}
	return data.DateLong
}

package localeinfo

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyNames carries the long names of one currency, keyed by ISO 4217
// code in the provider table.
type CurrencyNames struct {
	English string            `json:"english" yaml:"english" toml:"english"`
	Native  map[string]string `json:"native" yaml:"native" toml:"native"`
}

// CurrencyProvider answers currency queries for locales
type CurrencyProvider struct {
	names    map[string]CurrencyNames
	resolver FallbackResolver
}

// NewCurrencyProvider creates a provider seeded with the embedded name table,
// overlaid with the given overrides.
func NewCurrencyProvider(overrides map[string]CurrencyNames, resolver FallbackResolver) *CurrencyProvider {
	names := make(map[string]CurrencyNames, len(currencyNamesData)+len(overrides))

	for k, v := range currencyNamesData {
		names[k] = v
	}

	for k, v := range overrides {
		names[strings.ToUpper(strings.TrimSpace(k))] = v
	}

	return &CurrencyProvider{
		names:    names,
		resolver: resolver,
	}
}

// Unit resolves the currency in use for the locale. An explicit region wins;
// otherwise the likely region inferred from the tag decides.
func (p *CurrencyProvider) Unit(tag language.Tag) (currency.Unit, error) {
	if region, conf := tag.Region(); conf == language.Exact {
		if unit, ok := currency.FromRegion(region); ok {
			return unit, nil
		}
		return currency.Unit{}, ErrNoData
	}

	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return currency.Unit{}, ErrNoData
	}
	return unit, nil
}

// Symbol returns the locale's rendering of its currency symbol. The symbol is
// extracted from a formatted zero amount because golang.org/x/text exposes
// symbols only through its formatter.
func (p *CurrencyProvider) Symbol(tag language.Tag) (string, error) {
	unit, err := p.Unit(tag)
	if err != nil {
		return "", err
	}

	printer := message.NewPrinter(tag)
	formatted := printer.Sprintf("%v", currency.Symbol(unit.Amount(0.0)))

	symbol := stripAmount(formatted)
	if symbol == "" {
		// Some locales render only digits for unknown symbols; the ISO code
		// is the documented fallback.
		symbol = unit.String()
	}
	return symbol, nil
}

// ISOCode returns the ISO 4217 code of the locale's currency.
func (p *CurrencyProvider) ISOCode(tag language.Tag) (string, error) {
	unit, err := p.Unit(tag)
	if err != nil {
		return "", err
	}
	return unit.String(), nil
}

// EnglishName returns the currency long name in English, falling back to the
// ISO code when the table has no entry.
func (p *CurrencyProvider) EnglishName(tag language.Tag) (string, error) {
	unit, err := p.Unit(tag)
	if err != nil {
		return "", err
	}

	if names, ok := p.names[unit.String()]; ok && names.English != "" {
		return names.English, nil
	}
	return unit.String(), nil
}

// NativeName returns the currency long name in the locale itself, walking the
// fallback chain before degrading to the English name and finally the code.
func (p *CurrencyProvider) NativeName(locale string, tag language.Tag) (string, error) {
	unit, err := p.Unit(tag)
	if err != nil {
		return "", err
	}

	names, ok := p.names[unit.String()]
	if !ok {
		return unit.String(), nil
	}

	for _, candidate := range p.localeCandidates(locale, tag) {
		if name, ok := names.Native[candidate]; ok && name != "" {
			return name, nil
		}
	}

	if names.English != "" {
		return names.English, nil
	}
	return unit.String(), nil
}

func (p *CurrencyProvider) localeCandidates(locale string, tag language.Tag) []string {
	normalized := normalizeLocale(locale)

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(normalized)

	if p.resolver != nil {
		for _, fallback := range p.resolver.Resolve(normalized) {
			appendLocale(fallback)
		}
	}

	for _, parent := range localeParentChain(normalized) {
		appendLocale(parent)
	}

	base, _ := tag.Base()
	appendLocale(base.String())

	return candidates
}

// stripAmount drops digits, separators, and spacing from a formatted amount,
// leaving only the symbol glyphs.
func stripAmount(formatted string) string {
	var b strings.Builder
	for _, r := range formatted {
		if unicode.IsNumber(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '.', ',', '\u00a0', '\u202f', '٫', '٬':
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

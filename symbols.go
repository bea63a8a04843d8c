package localeinfo

import (
	"strings"

	"golang.org/x/text/language"
)

// Symbols holds the number formatting glyphs for one locale.
type Symbols struct {
	Locale                   string `json:"locale" yaml:"locale" toml:"locale"`
	DecimalSeparator         string `json:"decimal_separator" yaml:"decimal_separator" toml:"decimal_separator"`
	GroupSeparator           string `json:"group_separator" yaml:"group_separator" toml:"group_separator"`
	MonetaryDecimalSeparator string `json:"monetary_decimal_separator" yaml:"monetary_decimal_separator" toml:"monetary_decimal_separator"`
	MonetaryGroupSeparator   string `json:"monetary_group_separator" yaml:"monetary_group_separator" toml:"monetary_group_separator"`
	PlusSign                 string `json:"plus_sign" yaml:"plus_sign" toml:"plus_sign"`
	MinusSign                string `json:"minus_sign" yaml:"minus_sign" toml:"minus_sign"`
	PercentSign              string `json:"percent_sign" yaml:"percent_sign" toml:"percent_sign"`
	PerMilleSign             string `json:"per_mille_sign" yaml:"per_mille_sign" toml:"per_mille_sign"`
	NaN                      string `json:"nan" yaml:"nan" toml:"nan"`
	Infinity                 string `json:"infinity" yaml:"infinity" toml:"infinity"`
	NumberingSystem          string `json:"numbering_system" yaml:"numbering_system" toml:"numbering_system"`
}

// SymbolsProvider resolves number symbols for locales
type SymbolsProvider struct {
	symbols  map[string]Symbols
	resolver FallbackResolver
}

// NewSymbolsProvider creates a provider seeded with the embedded tables,
// overlaid with the given overrides.
func NewSymbolsProvider(overrides map[string]Symbols, resolver FallbackResolver) *SymbolsProvider {
	symbols := make(map[string]Symbols, len(symbolsData)+len(overrides))

	for k, v := range symbolsData {
		symbols[k] = v
	}

	for k, v := range overrides {
		symbols[normalizeLocale(k)] = v
	}

	return &SymbolsProvider{
		symbols:  symbols,
		resolver: resolver,
	}
}

// Get resolves symbols for a locale.
// It tries exact match, resolver candidates, the parent chain, the base
// language, and finally the root defaults.
func (p *SymbolsProvider) Get(locale string) *Symbols {
	if p == nil || p.symbols == nil {
		symbols := symbolsData[rootLocale]
		return &symbols
	}

	normalized := normalizeLocale(locale)

	if symbols, ok := p.symbols[normalized]; ok {
		return &symbols
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(normalized) {
			if symbols, ok := p.symbols[candidate]; ok {
				return &symbols
			}
		}
	}

	for _, parent := range localeParentChain(normalized) {
		if symbols, ok := p.symbols[parent]; ok {
			return &symbols
		}
	}

	tag := language.Make(normalized)
	base, _ := tag.Base()
	if symbols, ok := p.symbols[base.String()]; ok {
		return &symbols
	}

	if symbols, ok := p.symbols[rootLocale]; ok {
		return &symbols
	}

	symbols := symbolsData[rootLocale]
	return &symbols
}

// Digits returns the ten digit glyphs for the locale's numbering system.
// A -u-nu- extension on the tag wins over the table value.
func (p *SymbolsProvider) Digits(locale string, tag language.Tag) (string, error) {
	system := tag.TypeForKey("nu")
	if system == "" {
		system = p.Get(locale).NumberingSystem
	}
	if system == "" {
		system = "latn"
	}

	digits, ok := numberingSystemDigits[strings.ToLower(system)]
	if !ok {
		return "", ErrNoData
	}
	return digits, nil
}

// numberingSystemDigits maps CLDR decimal numbering systems to their glyphs.
var numberingSystemDigits = map[string]string{
	"latn":    "0123456789",
	"arab":    "٠١٢٣٤٥٦٧٨٩",
	"arabext": "۰۱۲۳۴۵۶۷۸۹",
	"beng":    "০১২৩৪৫৬৭৮৯",
	"deva":    "०१२३४५६७८९",
	"khmr":    "០១២៣៤៥៦៧៨៩",
	"mymr":    "၀၁၂၃၄၅၆၇၈၉",
	"thai":    "๐๑๒๓๔๕๖๗๘๙",
}

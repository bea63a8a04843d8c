package localeinfo

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit per-locale fallback chains
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for locale, replacing any previous chain
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	normalized := normalizeLocaleChain(fallbacks)
	if len(normalized) == 0 {
		delete(s.chains, normalizeLocale(locale))
		return
	}
	s.chains[normalizeLocale(locale)] = normalized
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}

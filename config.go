package localeinfo

// Config captures service setup
type Config struct {
	DisplayLocale string
	Resolver      FallbackResolver

	dataPaths []string
	data      *LocaleData
	service   InfoService
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	return cfg, nil
}

// WithDisplayLocale sets the locale used for the Localized* fields
func WithDisplayLocale(locale string) Option {
	return func(c *Config) error {
		c.DisplayLocale = normalizeLocale(locale)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback registers an explicit fallback chain for a locale
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocaleData configures an override file (.json, .yaml, .yml, or .toml).
// Repeat to layer files; later files win entry by entry.
func WithLocaleData(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		c.dataPaths = append(c.dataPaths, path)
		c.service = nil
		return nil
	}
}

// WithSymbols overrides the number symbols for one locale
func WithSymbols(locale string, symbols Symbols) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		c.ensureData()
		if c.data.Symbols == nil {
			c.data.Symbols = make(map[string]Symbols)
		}
		c.data.Symbols[normalizeLocale(locale)] = symbols
		c.service = nil
		return nil
	}
}

// WithCalendar overrides the calendar data for one locale
func WithCalendar(locale string, data CalendarData) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		c.ensureData()
		if c.data.Calendar == nil {
			c.data.Calendar = make(map[string]CalendarData)
		}
		c.data.Calendar[normalizeLocale(locale)] = data
		c.service = nil
		return nil
	}
}

// WithCurrencyNames overrides the long names for one ISO 4217 code
func WithCurrencyNames(code string, names CurrencyNames) Option {
	return func(c *Config) error {
		if code == "" {
			return nil
		}
		c.ensureData()
		if c.data.CurrencyNames == nil {
			c.data.CurrencyNames = make(map[string]CurrencyNames)
		}
		c.data.CurrencyNames[code] = names
		c.service = nil
		return nil
	}
}

// BuildService loads any configured data files and constructs the service.
// The result is cached on the Config.
func (cfg *Config) BuildService() (InfoService, error) {
	if cfg == nil {
		return nil, ErrIllegalArgument
	}
	if cfg.service != nil {
		return cfg.service, nil
	}

	data, err := NewLocaleDataLoader(cfg.dataPaths...).Load()
	if err != nil {
		return nil, err
	}

	// Programmatic overrides beat file data.
	mergeLocaleData(data, cfg.data)

	if cfg.DisplayLocale != "" {
		data.DisplayLocale = cfg.DisplayLocale
	}

	cfg.service = NewInfoService(data, cfg.Resolver)
	return cfg.service, nil
}

func (cfg *Config) ensureData() {
	if cfg.data == nil {
		cfg.data = &LocaleData{}
	}
}

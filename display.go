package localeinfo

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// displayName renders the full locale name in the given display locale.
func displayName(tag, in language.Tag) (string, error) {
	name := display.Tags(in).Name(tag)
	if name == "" {
		return "", ErrNoData
	}
	return name, nil
}

// languageName renders only the language portion in the display locale.
func languageName(tag, in language.Tag) (string, error) {
	base, _ := tag.Base()
	name := display.Languages(in).Name(base)
	if name == "" {
		return "", ErrNoData
	}
	return name, nil
}

// nativeLanguageName renders the language in its own language.
func nativeLanguageName(tag language.Tag) (string, error) {
	name := display.Self.Name(tag)
	if name == "" {
		return "", ErrNoData
	}
	return name, nil
}

// regionName renders the region portion in the display locale. A locale
// without an explicit region yields the empty string, which counts as
// success the way the wrapped library reports it.
func regionName(tag, in language.Tag) (string, error) {
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", nil
	}

	name := display.Regions(in).Name(region)
	if name == "" {
		return "", ErrNoData
	}
	return name, nil
}

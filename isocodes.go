package localeinfo

import "golang.org/x/text/language"

// isoLanguageCode returns the ISO 639-1 language code. Languages without a
// two letter code report their shortest registered code, the way the wrapped
// library does.
func isoLanguageCode(tag language.Tag) (string, error) {
	base, _ := tag.Base()
	code := base.String()
	if code == "" || code == "und" {
		return "", ErrIllegalArgument
	}
	return code, nil
}

// isoLanguageCode3 returns the ISO 639-2/T three letter language code.
func isoLanguageCode3(tag language.Tag) (string, error) {
	base, _ := tag.Base()
	code := base.ISO3()
	if code == "" || code == "und" {
		return "", ErrIllegalArgument
	}
	return code, nil
}

// isoRegionCode returns the ISO 3166 alpha-2 region code, or "" (success)
// when the locale names no explicit region.
func isoRegionCode(tag language.Tag) (string, error) {
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", nil
	}
	return region.String(), nil
}

// isoRegionCode3 returns the ISO 3166 alpha-3 region code. An absent or
// unmappable region is an illegal argument, matching the empty-code check in
// the original shim.
func isoRegionCode3(tag language.Tag) (string, error) {
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", ErrIllegalArgument
	}

	code := region.ISO3()
	if code == "" || code == "ZZZ" {
		return "", ErrIllegalArgument
	}
	return code, nil
}

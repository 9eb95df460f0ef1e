package tint

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownElement is returned by ParseElement for names it does not know.
var ErrUnknownElement = errors.New("unknown element")

// Palette name prefixes accepted by ParseElement, e.g. "fg:208" or "bg:17".
const (
	paletteForegroundPrefix = "fg:"
	paletteBackgroundPrefix = "bg:"
)

var namedElements = map[string]Element{
	"default":        Default,
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,

	"bg-default":        BgDefault,
	"bg-black":          BgBlack,
	"bg-red":            BgRed,
	"bg-green":          BgGreen,
	"bg-yellow":         BgYellow,
	"bg-blue":           BgBlue,
	"bg-magenta":        BgMagenta,
	"bg-cyan":           BgCyan,
	"bg-white":          BgWhite,
	"bg-bright-black":   BgBrightBlack,
	"bg-bright-red":     BgBrightRed,
	"bg-bright-green":   BgBrightGreen,
	"bg-bright-yellow":  BgBrightYellow,
	"bg-bright-blue":    BgBrightBlue,
	"bg-bright-magenta": BgBrightMagenta,
	"bg-bright-cyan":    BgBrightCyan,
	"bg-bright-white":   BgBrightWhite,

	"normal":    Normal,
	"bold":      Bold,
	"faint":     Faint,
	"italic":    Italic,
	"underline": Underline,
	"reset":     Reset,
}

// ParseElement resolves a human-readable element name.
//
// Named colors use their lower-case names ("red", "bright-red"), background
// colors a "bg-" prefix ("bg-red"), attributes their names ("bold").
// Palette colors are written "fg:<n>" or "bg:<n>" with n in 0-255.
func ParseElement(name string) (Element, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if e, ok := namedElements[key]; ok {
		return e, nil
	}

	var build func(int) (Color8Bit, error)
	var digits string
	switch {
	case strings.HasPrefix(key, paletteForegroundPrefix):
		build, digits = Foreground8Bit, strings.TrimPrefix(key, paletteForegroundPrefix)
	case strings.HasPrefix(key, paletteBackgroundPrefix):
		build, digits = Background8Bit, strings.TrimPrefix(key, paletteBackgroundPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}

	code, err := parsePaletteCode(name, digits)
	if err != nil {
		return nil, err
	}
	c, err := build(code)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parsePaletteCode(name, s string) (int, error) {
	code, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: palette code must be a number", ErrUnknownElement, name)
	}
	return code, nil
}

// ParseElements resolves every name, stopping at the first error.
func ParseElements(names []string) ([]Element, error) {
	elements := make([]Element, 0, len(names))
	for _, name := range names {
		e, err := ParseElement(name)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, nil
}

// ElementNames returns the sorted names accepted by ParseElement,
// excluding the numeric palette forms.
func ElementNames() []string {
	return slices.Sorted(maps.Keys(namedElements))
}

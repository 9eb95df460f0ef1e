package tint

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned when an 8-bit palette index is outside 0-255.
var ErrOutOfRange = errors.New("color code out of range")

// Element is an ANSI styling directive such as a color or a text attribute.
// String returns the escape sequence parameter text, e.g. "31" or "38;5;200".
//
// Element is implemented only by the types in this package.
type Element interface {
	String() string
	element()
}

// Color is a named foreground color.
type Color string

const (
	Default       Color = "39"
	Black         Color = "30"
	Red           Color = "31"
	Green         Color = "32"
	Yellow        Color = "33"
	Blue          Color = "34"
	Magenta       Color = "35"
	Cyan          Color = "36"
	White         Color = "37"
	BrightBlack   Color = "90"
	BrightRed     Color = "91"
	BrightGreen   Color = "92"
	BrightYellow  Color = "93"
	BrightBlue    Color = "94"
	BrightMagenta Color = "95"
	BrightCyan    Color = "96"
	BrightWhite   Color = "97"
)

func (c Color) String() string { return string(c) }
func (Color) element()         {}

// Background is a named background color.
type Background string

const (
	BgDefault       Background = "49"
	BgBlack         Background = "40"
	BgRed           Background = "41"
	BgGreen         Background = "42"
	BgYellow        Background = "43"
	BgBlue          Background = "44"
	BgMagenta       Background = "45"
	BgCyan          Background = "46"
	BgWhite         Background = "47"
	BgBrightBlack   Background = "100"
	BgBrightRed     Background = "101"
	BgBrightGreen   Background = "102"
	BgBrightYellow  Background = "103"
	BgBrightBlue    Background = "104"
	BgBrightMagenta Background = "105"
	BgBrightCyan    Background = "106"
	BgBrightWhite   Background = "107"
)

func (b Background) String() string { return string(b) }
func (Background) element()         {}

// Style is a text attribute.
type Style string

const (
	Normal    Style = "0"
	Bold      Style = "1"
	Faint     Style = "2"
	Italic    Style = "3"
	Underline Style = "4"
)

func (s Style) String() string { return string(s) }
func (Style) element()         {}

// Reset restores the default style and foreground color.
// It is the directive appended after any styled output.
var Reset Element = resetElement{}

type resetElement struct{}

func (resetElement) String() string { return "0;" + Default.String() }
func (resetElement) element()       {}

// Channel selects which color an 8-bit palette index applies to.
type Channel int

const (
	ChannelForeground Channel = iota
	ChannelBackground
)

func (c Channel) prefix() string {
	if c == ChannelBackground {
		return "48;5;"
	}
	return "38;5;"
}

// Color8Bit is one of the 256 indexed palette colors.
// Two values are equal iff their channel and index match.
type Color8Bit struct {
	channel Channel
	code    int
}

// Foreground8Bit returns the foreground palette color for code.
func Foreground8Bit(code int) (Color8Bit, error) {
	return newColor8Bit(ChannelForeground, code)
}

// Background8Bit returns the background palette color for code.
func Background8Bit(code int) (Color8Bit, error) {
	return newColor8Bit(ChannelBackground, code)
}

// MustForeground8Bit is like Foreground8Bit but panics on an invalid code.
func MustForeground8Bit(code int) Color8Bit {
	c, err := Foreground8Bit(code)
	if err != nil {
		panic(err)
	}
	return c
}

// MustBackground8Bit is like Background8Bit but panics on an invalid code.
func MustBackground8Bit(code int) Color8Bit {
	c, err := Background8Bit(code)
	if err != nil {
		panic(err)
	}
	return c
}

func newColor8Bit(channel Channel, code int) (Color8Bit, error) {
	if code < 0 || code > 255 {
		return Color8Bit{}, fmt.Errorf("%w: code must be between 0 and 255, got %d", ErrOutOfRange, code)
	}
	return Color8Bit{channel: channel, code: code}, nil
}

// Channel returns whether the color applies to the foreground or background.
func (c Color8Bit) Channel() Channel { return c.channel }

// Code returns the palette index.
func (c Color8Bit) Code() int { return c.code }

func (c Color8Bit) String() string {
	return c.channel.prefix() + strconv.Itoa(c.code)
}

func (Color8Bit) element() {}

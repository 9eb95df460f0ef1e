package tint

import "strings"

const (
	encodeStart = "\033["
	encodeJoin  = ";"
	encodeEnd   = "m"
)

// EncodeOne wraps a single element in an escape sequence when enabled.
// Unlike Render, no reset is appended.
func EncodeOne(e Element, enabled bool) string {
	if !enabled {
		return ""
	}
	return encodeStart + e.String() + encodeEnd
}

// Render builds the final string for tokens.
//
// When enabled, adjacent style tokens are joined into one escape sequence,
// each run is closed before plain text, and a reset is appended if any
// style token was present. When disabled only plain text is kept.
func Render(tokens []Token, enabled bool) string {
	var sb strings.Builder
	if enabled {
		renderEnabled(&sb, tokens)
	} else {
		renderDisabled(&sb, tokens)
	}
	return sb.String()
}

func renderEnabled(sb *strings.Builder, tokens []Token) {
	writingAnsi := false
	containsEncoding := false
	for _, t := range tokens {
		if t.IsStyle() {
			containsEncoding = true
			if writingAnsi {
				sb.WriteString(encodeJoin)
			} else {
				sb.WriteString(encodeStart)
				writingAnsi = true
			}
		} else if writingAnsi {
			sb.WriteString(encodeEnd)
			writingAnsi = false
		}
		sb.WriteString(t.String())
	}
	if !containsEncoding {
		return
	}
	if writingAnsi {
		sb.WriteString(encodeJoin)
	} else {
		sb.WriteString(encodeStart)
	}
	sb.WriteString(Reset.String())
	sb.WriteString(encodeEnd)
}

func renderDisabled(sb *strings.Builder, tokens []Token) {
	for _, t := range tokens {
		if !t.IsStyle() {
			sb.WriteString(t.String())
		}
	}
}

package tint

import "fmt"

// Token is one entry of a styled sequence: either plain text or an Element.
type Token struct {
	element Element
	text    string
}

// Plain returns a plain token holding the fmt.Sprint form of v.
func Plain(v any) Token {
	return Token{text: fmt.Sprint(v)}
}

// Styled returns a style token for e.
func Styled(e Element) Token {
	return Token{element: e}
}

// IsStyle reports whether the token is a styling directive.
func (t Token) IsStyle() bool {
	return t.element != nil
}

// Element returns the styling directive, or nil for plain tokens.
func (t Token) Element() Element {
	return t.element
}

// String returns the plain text, or the escape parameter text of a style token.
func (t Token) String() string {
	if t.element != nil {
		return t.element.String()
	}
	return t.text
}

// Tokens builds a sequence from mixed values.
// Elements become style tokens, Tokens are kept as is, nil values are
// dropped and everything else becomes plain text.
//
// nil is dropped whether or not styling is enabled; it never renders
// as "<nil>".
func Tokens(values ...any) []Token {
	tokens := make([]Token, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case nil:
		case Token:
			tokens = append(tokens, v)
		case Element:
			tokens = append(tokens, Styled(v))
		default:
			tokens = append(tokens, Plain(v))
		}
	}
	return tokens
}

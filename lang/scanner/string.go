package scanner

import (
	"strings"

	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/token"
)

// scanChar scans a char literal body after the opening quote has already
// been consumed by NextToken.
func (s *Scanner) scanChar(start token.Position) (token.Token, *diag.Error) {
	ch, ok := s.nextChar()
	if !ok {
		return token.Token{}, diag.New(s.Position(), diag.InvalidCharacter)
	}

	var value byte
	switch {
	case ch == '\\':
		v, err := s.scanEscape()
		if err != nil {
			return token.Token{}, err
		}
		value = v
	case ch == '\'' || ch == '\n' || ch == '\r':
		return token.Token{}, diag.New(start, diag.InvalidCharacter)
	case ch < 0x20 || ch == 0x7f:
		return token.Token{}, diag.New(start, diag.InvalidCharacter)
	default:
		value = byte(ch)
	}

	closing, ok := s.nextChar()
	if !ok || closing != '\'' {
		return token.Token{}, diag.New(s.Position(), diag.InvalidCharacter)
	}
	return token.Token{Kind: token.CharLiteral, Value: token.Value{Int: int32(value)}, Start: start, End: s.Position()}, nil
}

// scanString scans a string literal body after the opening quote has
// already been consumed by NextToken.
func (s *Scanner) scanString(start token.Position) (token.Token, *diag.Error) {
	var sb strings.Builder
	for {
		ch, ok := s.nextChar()
		if !ok || ch == '\n' || ch == '\r' {
			return token.Token{}, diag.New(s.Position(), diag.MissingRightQuote)
		}
		if ch == '"' {
			break
		}
		if ch == '\\' {
			v, err := s.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			sb.WriteByte(v)
			continue
		}
		sb.WriteRune(ch)
	}
	return token.Token{Kind: token.StringLiteral, Value: token.Value{Str: sb.String()}, Start: start, End: s.Position()}, nil
}

// scanEscape scans the character(s) following a backslash already consumed
// by the caller: one of \\, \', \", \n, \r, \t, or \xHH.
func (s *Scanner) scanEscape() (byte, *diag.Error) {
	pos := s.Position()
	ch, ok := s.nextChar()
	if !ok {
		return 0, diag.New(pos, diag.UnknownEscapeCharacter)
	}
	switch ch {
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		hi, ok1 := s.nextChar()
		lo, ok2 := s.nextChar()
		if !ok1 || !ok2 || !isHexDigit(hi) || !isHexDigit(lo) {
			return 0, diag.New(pos, diag.UnknownEscapeCharacter)
		}
		return byte(hexVal(hi)*16 + hexVal(lo)), nil
	default:
		return 0, diag.New(pos, diag.UnknownEscapeCharacter)
	}
}

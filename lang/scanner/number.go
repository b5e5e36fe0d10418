package scanner

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-c0x/c0x/lang/diag"
	"github.com/go-c0x/c0x/lang/token"
)

// scanNumber handles the three numeric literal shapes spec.md §4.1 defines:
// decimal integers, 0x/0X-prefixed hex integers, and doubles (a '.' and/or
// an 'e'/'E' exponent somewhere in the digit run). first is the character
// that triggered the dispatch in NextToken, already consumed.
func (s *Scanner) scanNumber(first rune, start token.Position) (token.Token, *diag.Error) {
	var sb strings.Builder
	sb.WriteRune(first)

	if first == '.' {
		return s.scanDouble(&sb, start)
	}

	if first == '0' {
		if next, ok := s.peek(); ok && (next == 'x' || next == 'X') {
			s.nextChar()
			sb.WriteRune(next)
			return s.scanHex(&sb, start)
		}
	}

	for {
		ch, ok := s.peek()
		if !ok || !isDigit(ch) {
			break
		}
		s.nextChar()
		sb.WriteRune(ch)
	}

	if next, ok := s.peek(); ok && (next == '.' || next == 'e' || next == 'E') {
		return s.scanDouble(&sb, start)
	}

	lit := sb.String()
	end := s.Position()
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, diag.New(start, diag.IntegerOverflow)
		}
		return token.Token{}, diag.New(start, diag.InvalidInteger)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return token.Token{}, diag.New(start, diag.IntegerOverflow)
	}
	return token.Token{Kind: token.Integer, Value: token.Value{Int: int32(v)}, Start: start, End: end}, nil
}

func (s *Scanner) scanHex(sb *strings.Builder, start token.Position) (token.Token, *diag.Error) {
	digits := 0
	for {
		ch, ok := s.peek()
		if !ok {
			break
		}
		if isHexDigit(ch) {
			s.nextChar()
			sb.WriteRune(ch)
			digits++
			continue
		}
		if isLetter(ch) {
			return token.Token{}, diag.New(s.Position(), diag.InvalidInteger)
		}
		break
	}
	if digits == 0 {
		return token.Token{}, diag.New(s.Position(), diag.InvalidInteger)
	}

	lit := sb.String()
	end := s.Position()
	v, err := strconv.ParseInt(lit[2:], 16, 64)
	if err != nil || v > math.MaxInt32 {
		return token.Token{}, diag.New(start, diag.InvalidInteger)
	}
	return token.Token{Kind: token.Integer, Value: token.Value{Int: int32(v)}, Start: start, End: end}, nil
}

// scanDouble continues a literal already holding an integer part (or a bare
// leading '.') in sb, consuming an optional fractional part and an optional
// signed exponent.
func (s *Scanner) scanDouble(sb *strings.Builder, start token.Position) (token.Token, *diag.Error) {
	leadingDot := sb.Len() == 1 && sb.String() == "."

	if next, ok := s.peek(); ok && next == '.' && !leadingDot {
		s.nextChar()
		sb.WriteRune('.')
	}
	if leadingDot || strings.HasSuffix(sb.String(), ".") {
		digits := 0
		for {
			ch, ok := s.peek()
			if !ok || !isDigit(ch) {
				break
			}
			s.nextChar()
			sb.WriteRune(ch)
			digits++
		}
		if digits == 0 {
			return token.Token{}, diag.New(s.Position(), diag.InvalidDouble)
		}
	}

	if next, ok := s.peek(); ok && (next == 'e' || next == 'E') {
		s.nextChar()
		sb.WriteRune(next)
		if sign, ok := s.peek(); ok && (sign == '+' || sign == '-') {
			s.nextChar()
			sb.WriteRune(sign)
		}
		digits := 0
		for {
			ch, ok := s.peek()
			if !ok || !isDigit(ch) {
				break
			}
			s.nextChar()
			sb.WriteRune(ch)
			digits++
		}
		if digits == 0 {
			return token.Token{}, diag.New(s.Position(), diag.InvalidDouble)
		}
	}

	lit := sb.String()
	end := s.Position()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, diag.New(start, diag.DoubleOverflow)
		}
		return token.Token{}, diag.New(start, diag.InvalidDouble)
	}
	return token.Token{Kind: token.Double, Value: token.Value{Float: v}, Start: start, End: end}, nil
}

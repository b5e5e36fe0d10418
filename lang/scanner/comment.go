package scanner

import (
	"github.com/go-c0x/c0x/lang/diag"
)

// skipWhitespaceAndComments consumes whitespace, "//" line comments, and
// "/* */" block comments in any interleaving, leaving the cursor at the
// start of the next token (or at end-of-input). A '/' that does not start a
// comment is put back with rollback so NextToken can tokenize it as the
// divide operator.
func (s *Scanner) skipWhitespaceAndComments() *diag.Error {
	for {
		for {
			ch, ok := s.peek()
			if !ok || !isWhitespace(ch) {
				break
			}
			s.nextChar()
		}

		ch, ok := s.peek()
		if !ok || ch != '/' {
			return nil
		}
		s.nextChar()

		next, ok := s.peek()
		switch {
		case ok && next == '/':
			s.nextChar()
			for {
				c, ok := s.nextChar()
				if !ok || c == '\n' {
					break
				}
			}
		case ok && next == '*':
			s.nextChar()
			if err := s.skipBlockComment(); err != nil {
				return err
			}
		default:
			s.rollback()
			return nil
		}
	}
}

func (s *Scanner) skipBlockComment() *diag.Error {
	for {
		ch, ok := s.nextChar()
		if !ok {
			return diag.New(s.Position(), diag.InvalidInput)
		}
		if ch != '*' {
			continue
		}
		next, ok := s.peek()
		if ok && next == '/' {
			s.nextChar()
			return nil
		}
	}
}

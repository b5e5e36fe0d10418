// Package diag implements the flat error catalog shared by the scanner and
// the parser/emitter. Every recognizer that can fail returns a *Error
// instead of panicking or accumulating a list: the first one produced stops
// the pipeline.
//
// Grounded on original_source/Error/Error.h's ErrorCode/ExpresserError pair.
// Unlike the teacher's scanner.ErrorList (mna-nenuphar), which accumulates
// and sorts errors across a whole file set, this catalog has no
// accumulation type, matching the single-file, first-error-wins semantics
// of spec.md §4.2.
package diag

import (
	"fmt"

	"github.com/go-c0x/c0x/lang/token"
)

// Code is the flat enumeration of every error this compiler can report.
type Code int

//nolint:revive
const (
	// Input-stream classes.
	StreamError Code = iota
	EOF
	InvalidInput

	// Lexical classes.
	InvalidCharacter
	InvalidCharacterAssignment
	InvalidDouble
	InvalidInteger
	InvalidIdentifier
	InvalidNotEqual
	InvalidStringLiteral
	UnknownEscapeCharacter
	MissingRightQuote

	// Declaration classes.
	DuplicateDeclaration
	ConstantNeedValue
	InvalidVariableDeclaration
	InvalidVariableType
	NeedVariableType
	InvalidFunctionDeclaration
	InvalidFunctionReturnType
	NeedIdentifier
	NeedFunctionName
	InvalidParameter

	// Expression/statement classes.
	InvalidAssignment
	InvalidCast
	CastToVoid
	InvalidExpression
	IncompleteExpression
	InvalidStatement
	InvalidLoop
	InvalidJump
	IncompleteFunction
	NeedWhileInDoWhile
	NeedAssignSymbol
	NeedRelationalOperator
	NeedSemicolon
	NeedSemicolonOrComma
	MissingBrace
	MissingBracket
	ReturnInVoidFunction
	InvalidPrint
	InvalidScan
	InvalidFunctionCall
	CallFunctionInStartSection

	// Binding classes.
	UndeclaredIdentifier
	UndeclaredFunction
	NotDeclared
	NotInitialized
	AssignToConstant

	// Numeric classes.
	DoubleOverflow
	IntegerOverflow

	maxCode
)

var codeNames = [...]string{
	StreamError:                 "StreamError",
	EOF:                         "EOF",
	InvalidInput:                "InvalidInput",
	InvalidCharacter:            "InvalidCharacter",
	InvalidCharacterAssignment:  "InvalidCharacterAssignment",
	InvalidDouble:               "InvalidDouble",
	InvalidInteger:              "InvalidInteger",
	InvalidIdentifier:           "InvalidIdentifier",
	InvalidNotEqual:             "InvalidNotEqual",
	InvalidStringLiteral:        "InvalidStringLiteral",
	UnknownEscapeCharacter:      "UnknownEscapeCharacter",
	MissingRightQuote:           "MissingRightQuote",
	DuplicateDeclaration:        "DuplicateDeclaration",
	ConstantNeedValue:           "ConstantNeedValue",
	InvalidVariableDeclaration:  "InvalidVariableDeclaration",
	InvalidVariableType:         "InvalidVariableType",
	NeedVariableType:            "NeedVariableType",
	InvalidFunctionDeclaration:  "InvalidFunctionDeclaration",
	InvalidFunctionReturnType:   "InvalidFunctionReturnType",
	NeedIdentifier:              "NeedIdentifier",
	NeedFunctionName:            "NeedFunctionName",
	InvalidParameter:            "InvalidParameter",
	InvalidAssignment:           "InvalidAssignment",
	InvalidCast:                 "InvalidCast",
	CastToVoid:                  "CastToVoid",
	InvalidExpression:           "InvalidExpression",
	IncompleteExpression:        "IncompleteExpression",
	InvalidStatement:            "InvalidStatement",
	InvalidLoop:                 "InvalidLoop",
	InvalidJump:                 "InvalidJump",
	IncompleteFunction:          "IncompleteFunction",
	NeedWhileInDoWhile:          "NeedWhileInDoWhile",
	NeedAssignSymbol:            "NeedAssignSymbol",
	NeedRelationalOperator:      "NeedRelationalOperator",
	NeedSemicolon:               "NeedSemicolon",
	NeedSemicolonOrComma:        "NeedSemicolonOrComma",
	MissingBrace:                "MissingBrace",
	MissingBracket:              "MissingBracket",
	ReturnInVoidFunction:        "ReturnInVoidFunction",
	InvalidPrint:                "InvalidPrint",
	InvalidScan:                 "InvalidScan",
	InvalidFunctionCall:         "InvalidFunctionCall",
	CallFunctionInStartSection:  "CallFunctionInStartSection",
	UndeclaredIdentifier:        "UndeclaredIdentifier",
	UndeclaredFunction:          "UndeclaredFunction",
	NotDeclared:                 "NotDeclared",
	NotInitialized:              "NotInitialized",
	AssignToConstant:            "AssignToConstant",
	DoubleOverflow:              "DoubleOverflow",
	IntegerOverflow:             "IntegerOverflow",
}

func (c Code) String() string {
	if c >= 0 && c < maxCode && codeNames[c] != "" {
		return codeNames[c]
	}
	return "UnknownError"
}

// Error is the single error value type returned by the scanner and the
// parser/emitter. It pairs a Code with the position where it was detected.
type Error struct {
	Pos  token.Position
	Code Code
}

// New builds an *Error for code detected at pos.
func New(pos token.Position, code Code) *Error {
	return &Error{Pos: pos, Code: code}
}

// Error implements the error interface, formatting per spec.md §7:
// "Line: L Column: C Error: <name>".
func (e *Error) Error() string {
	return fmt.Sprintf("Line: %d Column: %d Error: %s", e.Pos.Line, e.Pos.Col, e.Code)
}

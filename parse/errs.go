package parse

import (
	"errors"
	"fmt"

	"github.com/dandelion-json/dandelion/token"
)

// The parser reports exactly one of these, wrapped in a *ParseErr carrying
// the position at which it was detected.
var (
	ErrInvalidValue                      = errors.New("invalid value")
	ErrInvalidStringEscape               = errors.New("invalid string escape sequence")
	ErrInvalidStringChar                 = errors.New("invalid string character")
	ErrMissingQuotationMark              = errors.New("missing quotation mark")
	ErrMissingSemicolon                  = errors.New("missing ':' after object key")
	ErrMissingKey                        = errors.New("missing object key")
	ErrMissingCommaOrClosingBracket      = errors.New("missing ',' or ']'")
	ErrMissingCommaOrClosingCurlyBracket = errors.New("missing ',' or '}'")
	ErrRootNotSingular                   = errors.New("root is not singular")
	ErrReachEOF                          = errors.New("unexpected end of input")
	ErrNumberTooBig                      = errors.New("number too big")

	errInternal = errors.New("internal parse error")
)

// Errors returns every error kind the parser can report.
func Errors() []error {
	return []error{
		ErrInvalidValue,
		ErrInvalidStringEscape,
		ErrInvalidStringChar,
		ErrMissingQuotationMark,
		ErrMissingSemicolon,
		ErrMissingKey,
		ErrMissingCommaOrClosingBracket,
		ErrMissingCommaOrClosingCurlyBracket,
		ErrRootNotSingular,
		ErrReachEOF,
		ErrNumberTooBig,
	}
}

type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func NewParseErr(e error, p *token.Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: *p}
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Kind returns the error kind of err, one of Errors(), or nil if err did
// not come from the parser.
func Kind(err error) error {
	for _, k := range Errors() {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

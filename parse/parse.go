package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/token"
)

// Parse parses d as a single JSON value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseString(string(d), opts...)
}

// ParseString is like Parse for a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{c: token.NewCursor(s)}
	if pOpts.positions != nil {
		p.positions = map[*ir.Node]*token.Pos{}
	}
	res, err := p.root()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	if pOpts.positions != nil {
		// only nodes reachable from the result; overwritten duplicate
		// keys are left out.
		_ = res.Visit(func(y *ir.Node) (bool, error) {
			if pos, ok := p.positions[y]; ok {
				pOpts.positions[y] = pos
			}
			return true, nil
		})
	}
	return res, nil
}

type parser struct {
	c         *token.Cursor
	positions map[*ir.Node]*token.Pos
}

func (p *parser) errAt(e error, off int) error {
	return NewParseErr(e, p.c.Doc().Pos(off))
}

func (p *parser) trackPos(y *ir.Node, off int) {
	if p.positions != nil {
		p.positions[y] = p.c.Doc().Pos(off)
	}
}

func (p *parser) root() (*ir.Node, error) {
	p.whitespace()
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.whitespace()
	if !p.c.AtEOF() {
		return nil, p.errAt(ErrRootNotSingular, p.c.Offset())
	}
	return res, nil
}

func (p *parser) whitespace() {
	for {
		switch p.c.Current() {
		case ' ', '\t', '\n', '\r':
			p.c.Advance(1)
		default:
			return
		}
	}
}

func (p *parser) value() (*ir.Node, error) {
	off := p.c.Offset()
	var (
		res *ir.Node
		err error
	)
	switch p.c.Current() {
	case token.EOF:
		return nil, p.errAt(ErrReachEOF, off)
	case 'n':
		res, err = p.literal("null", ir.Null())
	case 't':
		res, err = p.literal("true", ir.FromBool(true))
	case 'f':
		res, err = p.literal("false", ir.FromBool(false))
	case '"':
		var s string
		s, err = p.rawString()
		if err == nil {
			res = ir.FromString(s)
		}
	case '[':
		res, err = p.array()
	case '{':
		res, err = p.object()
	default:
		res, err = p.number()
	}
	if err != nil {
		return nil, err
	}
	p.trackPos(res, off)
	return res, nil
}

func (p *parser) literal(lit string, y *ir.Node) (*ir.Node, error) {
	n := len(lit)
	if p.c.Peek(n) != lit {
		return nil, p.errAt(ErrInvalidValue, p.c.Offset())
	}
	p.c.Advance(n)
	return y, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func digits(c *token.Cursor) {
	for isDigit(c.Current()) {
		c.Advance(1)
	}
}

// number scans the number grammar on a sub-view and only moves p.c once
// the text is known to be valid.
func (p *parser) number() (*ir.Node, error) {
	start := p.c.Offset()
	sc := p.c.Rest()
	if sc.Current() == '-' {
		sc.Advance(1)
	}
	switch r := sc.Current(); {
	case r == '0':
		sc.Advance(1)
	case '1' <= r && r <= '9':
		digits(sc)
	default:
		return nil, p.errAt(ErrInvalidValue, sc.Offset())
	}
	if sc.Current() == '.' {
		sc.Advance(1)
		if !isDigit(sc.Current()) {
			return nil, p.errAt(ErrInvalidValue, sc.Offset())
		}
		digits(sc)
	}
	if r := sc.Current(); r == 'e' || r == 'E' {
		sc.Advance(1)
		if r := sc.Current(); r == '+' || r == '-' {
			sc.Advance(1)
		}
		if !isDigit(sc.Current()) {
			return nil, p.errAt(ErrInvalidValue, sc.Offset())
		}
		digits(sc)
	}
	f, err := strconv.ParseFloat(sc.Scanned(), 64)
	if math.IsInf(f, 0) {
		return nil, p.errAt(ErrNumberTooBig, start)
	}
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, p.errAt(errInternal, start)
	}
	p.c.Commit(sc)
	return ir.FromFloat(f), nil
}

// rawString reads a quoted string starting at the opening quote and
// returns its unescaped contents.
func (p *parser) rawString() (string, error) {
	p.c.Advance(1)
	buf := &strings.Builder{}
	for {
		off := p.c.Offset()
		r := p.c.Next()
		switch {
		case r == token.EOF:
			return "", p.errAt(ErrMissingQuotationMark, off)
		case r == '"':
			return buf.String(), nil
		case r == '\\':
			eOff := p.c.Offset()
			e := p.c.Next()
			switch e {
			case token.EOF:
				return "", p.errAt(ErrMissingQuotationMark, eOff)
			case '"', '\\', '/':
				buf.WriteRune(e)
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			default:
				return "", p.errAt(ErrInvalidStringEscape, off)
			}
		case r < 0x20:
			return "", p.errAt(ErrInvalidStringChar, off)
		default:
			buf.WriteRune(r)
		}
	}
}

func (p *parser) array() (*ir.Node, error) {
	p.c.Advance(1)
	res := ir.EmptyArray()
	for {
		p.whitespace()
		switch p.c.Current() {
		case ']':
			p.c.Advance(1)
			return res, nil
		case ',':
			p.c.Advance(1)
		case token.EOF:
			return nil, p.errAt(ErrMissingCommaOrClosingBracket, p.c.Offset())
		default:
			elt, err := p.value()
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, elt)
		}
	}
}

func (p *parser) object() (*ir.Node, error) {
	p.c.Advance(1)
	res := ir.EmptyObject()
	for {
		p.whitespace()
		switch p.c.Current() {
		case '}':
			p.c.Advance(1)
			return res, nil
		case '"':
			if err := p.pair(res); err != nil {
				return nil, err
			}
		default:
			return nil, p.errAt(ErrMissingKey, p.c.Offset())
		}
		p.whitespace()
		switch p.c.Current() {
		case ',':
			p.c.Advance(1)
		case '}':
			p.c.Advance(1)
			return res, nil
		default:
			return nil, p.errAt(ErrMissingCommaOrClosingCurlyBracket, p.c.Offset())
		}
	}
}

func (p *parser) pair(obj *ir.Node) error {
	key, err := p.rawString()
	if err != nil {
		return err
	}
	p.whitespace()
	if p.c.Current() != ':' {
		return p.errAt(ErrMissingSemicolon, p.c.Offset())
	}
	p.c.Advance(1)
	p.whitespace()
	v, err := p.value()
	if err != nil {
		return err
	}
	obj.Fields[key] = v
	return nil
}

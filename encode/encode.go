package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dandelion-json/dandelion/format"
	"github.com/dandelion-json/dandelion/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	col           int
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w, as indented JSON unless options say otherwise.
// Object fields are written in sorted key order. Output other than wire
// output ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	switch es.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(" ", es.indent*es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	es.col += len(sep)
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		if err := checkString(node.String); err != nil {
			return err
		}
		return writeLeaf(w, es, ir.StringType, Quote(node.String))
	case ir.NumberType:
		v, err := formatNumber(node.Number)
		if err != nil {
			return err
		}
		return writeLeaf(w, es, ir.NumberType, v)
	case ir.BoolType:
		return writeLeaf(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return writeLeaf(w, es, ir.NullType, "null")
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

func writeLeaf(w io.Writer, es *EncState, t ir.Type, v string) error {
	es.col += len(v)
	return writeString(w, applyColor(es, t, ValueColor, v))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	keys := node.Keys()
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if len(keys) == 0 {
		return writeSep(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, k := range keys {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, k, es); err != nil {
			return err
		}
		if err := encode(node.Fields[k], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func writeField(w io.Writer, f string, es *EncState) error {
	if err := checkString(f); err != nil {
		return err
	}
	q := Quote(f)
	es.col += len(q)
	if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, q)); err != nil {
		return err
	}
	sep := ": "
	if es.wire {
		sep = ":"
	}
	return writeSep(w, es, ir.ObjectType, sep)
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

// formatNumber renders f in the shortest form that reads back as f,
// switching to exponent notation for very large and very small
// magnitudes.
func formatNumber(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: non-finite number %v", ErrEncoding, f)
	}
	abs := math.Abs(f)
	fmtByte := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	v := strconv.FormatFloat(f, fmtByte, -1, 64)
	if fmtByte == 'e' {
		// 1e-07 => 1e-7
		n := len(v)
		if n >= 4 && v[n-4] == 'e' && v[n-3] == '-' && v[n-2] == '0' {
			v = v[:n-2] + v[n-1:]
		}
	}
	return v, nil
}

// checkString rejects control characters without a short escape. Quote
// can only write those as \u escapes, which parse does not read.
func checkString(s string) error {
	for i, r := range s {
		switch r {
		case '\b', '\f', '\n', '\r', '\t':
			continue
		}
		if r < 0x20 {
			return fmt.Errorf("%w: control character %U at byte %d of %q", ErrEncoding, r, i, s)
		}
	}
	return nil
}

// Quote returns s as a JSON string literal. Only the short escapes are
// produced, except for control characters which have none and are
// written as \u00XX. Encode refuses such strings so that its output
// always parses.
func Quote(s string) string {
	buf := &strings.Builder{}
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

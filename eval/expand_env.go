package eval

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dandelion-json/dandelion/debug"
	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/ir"
)

// ExpandIR returns a copy of node in which every string has been expanded
// against env. A string of the form .[expr] is replaced by the result of
// expr; other strings have their $[expr] and .[expr] parts replaced by
// the text of the results. Expressions see node as doc. node itself is
// not modified.
func ExpandIR(node *ir.Node, env Env) (*ir.Node, error) {
	return expandIR(node, node, NewEnv(node).With(env))
}

func expandIR(root, node *ir.Node, env Env) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		res := ir.EmptyObject()
		for _, k := range node.Keys() {
			xc, err := expandIR(root, node.Fields[k], env)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ir.Key(k), err)
			}
			res.Fields[k] = xc
		}
		return res, nil
	case ir.ArrayType:
		res := ir.EmptyArray()
		for i, elt := range node.Values {
			xc, err := expandIR(root, elt, env)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ir.Idx(i), err)
			}
			res.Values = append(res.Values, xc)
		}
		return res, nil
	case ir.StringType:
		if raw := GetRaw(node.String); raw != "" {
			val, err := run(raw, env, root)
			if err != nil {
				return nil, err
			}
			repl, err := ir.FromAny(val)
			if err != nil {
				return nil, fmt.Errorf("could not translate result of %q: %w", raw, err)
			}
			return repl, nil
		}
		xs, err := expandString(node.String, env, root)
		if err != nil {
			return nil, err
		}
		return ir.FromString(xs), nil
	default:
		return node.Clone(), nil
	}
}

// GetRaw extracts the expression from a .[expr] reference, or returns ""
// if v is not one.
func GetRaw(v string) string {
	if !isRawEnvRef(v) {
		return ""
	}
	return v[2 : len(v)-1]
}

func isRawEnvRef(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]")
}

// ExpandString expands $[...] and .[...] expressions in a string.
//
// Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is kept
// as is.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, env, nil)
}

func expandString(v string, env Env, doc *ir.Node) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	for i := 0; i < n; i++ {
		c := v[i]
		switch {
		case (c == '$' || c == '.') && i+1 < n && v[i+1] == '[':
			if exprStart != -1 {
				outBuf = append(outBuf, v[exprStart:i]...)
			}
			exprStart = i
			keyBuf = keyBuf[:0]
			i++
		case exprStart == -1:
			outBuf = append(outBuf, c)
		case c == '\\' && i+1 < n:
			keyBuf = append(keyBuf, v[i+1])
			i++
		case c == ']':
			key := strings.TrimSpace(string(keyBuf))
			x, err := runWithDoc(key, env, doc)
			if err != nil {
				return "", err
			}
			if debug.Eval() {
				debug.Logf("eval %q gave %#v\n", key, x)
			}
			anyBytes, err := anyToBytes(x)
			if err != nil {
				return "", fmt.Errorf("could not marshal evaluation results for %s: %w", key, err)
			}
			outBuf = append(outBuf, anyBytes...)
			exprStart = -1
		default:
			keyBuf = append(keyBuf, c)
		}
	}
	if exprStart != -1 {
		outBuf = append(outBuf, v[exprStart:]...)
	}
	return string(outBuf), nil
}

func runWithDoc(src string, env Env, doc *ir.Node) (any, error) {
	if doc == nil {
		doc = ir.Null()
	}
	return run(src, env, doc)
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

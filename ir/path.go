package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed "$"-rooted path such as $.a[0].'b.c'. Each step names
// either an array index or an object field.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + pathString(*x.Field))
			x = x.Next
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			x = x.Next
			continue
		}
		x = x.Next
	}
	return buf.String()

}

// Indexes returns the steps of p as index keys, root first.
func (p *Path) Indexes() []Index {
	var res []Index
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			res = append(res, Key(*x.Field))
		case x.Index != nil:
			res = append(res, Idx(*x.Index))
		}
	}
	return res
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		err = parseFrag(rest, next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		err = parseFrag(frag[i+2:], next)
		if err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath follows yPath from y. A step which does not resolve yields a
// nil node and no error, as with Get.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for _, ix := range yp.Indexes() {
		res = res.Get(ix)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

// SetPath stores a copy of v at yPath, creating objects along the way
// as IndexOrInsert does. Where IndexOrInsert would panic, SetPath returns
// an error wrapping ErrIndexOutOfBounds or ErrTypeMismatch and leaves y
// unmodified.
func (y *Node) SetPath(yPath string, v *Node) error {
	yp, err := ParsePath(yPath)
	if err != nil {
		return err
	}
	ixs := yp.Indexes()
	if len(ixs) == 0 {
		if v == nil {
			v = Null()
		}
		*y = *v.Clone()
		return nil
	}
	// check the whole walk before writing anything: a missing field is
	// created as null and can then only take a further Key.
	cur := y
	for i, ix := range ixs[:len(ixs)-1] {
		if err := cur.checkIndexOrInsert(ix); err != nil {
			return fmt.Errorf("at %s: %w", prefixString(ixs[:i]), err)
		}
		next := cur.Get(ix)
		if next == nil {
			next = Null()
		}
		cur = next
	}
	last := ixs[len(ixs)-1]
	if err := cur.checkIndexOrInsert(last); err != nil {
		return fmt.Errorf("at %s: %w", prefixString(ixs[:len(ixs)-1]), err)
	}
	cur = y
	for _, ix := range ixs[:len(ixs)-1] {
		cur = cur.IndexOrInsert(ix)
	}
	cur.Set(last, v)
	return nil
}

func prefixString(ixs []Index) string {
	var buf strings.Builder
	buf.WriteByte('$')
	for _, ix := range ixs {
		buf.WriteString(ix.String())
	}
	return buf.String()
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dandelion-json/dandelion/encode"
	"github.com/dandelion-json/dandelion/format"
	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/goccy/go-yaml"
)

func TestEncodeWire(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`0`, `0`},
		{`-0`, `-0`},
		{`1.5`, `1.5`},
		{`1e10`, `10000000000`},
		{`1e21`, `1e+21`},
		{`1e-7`, `1e-7`},
		{`5e-324`, `5e-324`},
		{`"a\"b\\c\/d\n"`, `"a\"b\\c/d\n"`},
		{`"<&>"`, `"<&>"`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`[1, [2, []], {}]`, `[1,[2,[]],{}]`},
		{`{"b": 1, "a": [true, null], "c": {"d": "e"}}`, `{"a":[true,null],"b":1,"c":{"d":"e"}}`},
	}
	for _, tc := range tests {
		node, err := parse.ParseString(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	node, err := parse.ParseString(`{"b": [1, {"c": null}], "a": {}, "d": []}`)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": {},
  "b": [
    1,
    {
      "c": null
    }
  ],
  "d": []
}
`
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if got := encode.MustString(node, encode.EncodeIndent(4)); !strings.HasPrefix(got, "{\n    \"a\"") {
		t.Errorf("indent 4: got\n%s", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`{"name": "alice", "tags": ["x", "y"], "age": 33.5, "ok": true, "none": null}`,
		`[[[]], {"": {"\t": "\b\f\r"}}]`,
		`-1.7976931348623157e+308`,
		`"héllo 😀"`,
	}
	for _, doc := range docs {
		node, err := parse.ParseString(doc)
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		for _, wire := range []bool{false, true} {
			out := encode.MustString(node, encode.EncodeWire(wire))
			again, err := parse.ParseString(out)
			if err != nil {
				t.Fatalf("re-parse %q: %v", out, err)
			}
			if !ir.Equal(node, again) {
				t.Errorf("round trip of %q gave %q", doc, out)
			}
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	node, err := parse.ParseString(`{"a": [1, "two", null], "b": {"c": false}}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, wire := range []bool{false, true} {
		buf := bytes.NewBuffer(nil)
		err := encode.Encode(node, buf, encode.EncodeFormat(format.YAMLFormat), encode.EncodeWire(wire))
		if err != nil {
			t.Fatal(err)
		}
		var v any
		if err := yaml.Unmarshal(buf.Bytes(), &v); err != nil {
			t.Fatalf("yaml %q: %v", buf.String(), err)
		}
		back, err := ir.FromAny(v)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("yaml %q does not match", buf.String())
		}
	}
}

func TestEncodeColors(t *testing.T) {
	node, err := parse.ParseString(`{"a": "100%"}`)
	if err != nil {
		t.Fatal(err)
	}
	colors := encode.NewColors()
	colors.Map = map[encode.Colorable]func(string, ...any) string{
		{Type: ir.StringType, Attr: encode.ValueColor}: func(v string, _ ...any) string {
			return "<" + v + ">"
		},
		{Type: ir.ObjectType, Attr: encode.FieldColor}: func(v string, _ ...any) string {
			return "(" + v + ")"
		},
	}
	got := encode.MustString(node, encode.EncodeWire(true), encode.EncodeColors(colors))
	if want := `{("a"):<"100%">}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeNil(t *testing.T) {
	if got := encode.MustString(nil); got != "null" {
		t.Errorf("got %q", got)
	}
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"":        `""`,
		"a":       `"a"`,
		"\x01":    `"\u0001"`,
		"\x1f":    `"\u001f"`,
		"\x7f":    "\"\x7f\"",
		"/":       `"/"`,
		"tab\tx":  `"tab\tx"`,
		" é": "\" é\"",
	}
	for in, want := range tests {
		if got := encode.Quote(in); got != want {
			t.Errorf("Quote(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := encode.FormatFromOpts(encode.EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
	if f := encode.FormatFromOpts(); f != format.JSONFormat {
		t.Errorf("got %s", f)
	}
}

func TestEncodeUnreadableString(t *testing.T) {
	tests := []*ir.Node{
		ir.FromString("x\x01y"),
		ir.FromMap(map[string]*ir.Node{"a\x1f": ir.Null()}),
		ir.FromSlice([]*ir.Node{ir.FromString("\x00")}),
	}
	for _, in := range tests {
		err := encode.Encode(in, &bytes.Buffer{})
		if !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("%#v: got %v, want %v", in, err, encode.ErrEncoding)
		}
	}
	// the short escapes still encode and read back
	in := ir.FromString("\b\f\n\r\t")
	buf := &bytes.Buffer{}
	if err := encode.Encode(in, buf, encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	back, err := parse.ParseString(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(in, back) {
		t.Errorf("got %q back from %s", back.String, buf.String())
	}
}

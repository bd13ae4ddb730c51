package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/token"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	want *ir.Node
	e    error
}

func runParseTests(t *testing.T, pts []parseTest) {
	t.Helper()
	for i := range pts {
		pt := &pts[i]
		node, err := ParseString(pt.in)
		if pt.e != nil {
			if !errors.Is(err, pt.e) {
				t.Errorf("%q: got error %v, want %v", pt.in, err, pt.e)
			}
			if node != nil {
				t.Errorf("%q: got partial result %v on error", pt.in, node)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, node); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", pt.in, diff)
		}
	}
}

func num(f float64) *ir.Node {
	return ir.FromFloat(f)
}

func arr(ys ...*ir.Node) *ir.Node {
	return ir.FromSlice(ys)
}

func str(s string) *ir.Node {
	return ir.FromString(s)
}

func TestParseLiterals(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `null`, want: ir.Null()},
		{in: `true`, want: ir.FromBool(true)},
		{in: `false`, want: ir.FromBool(false)},
		{in: "  \t\r\nnull", want: ir.Null()},
		{in: " true ", want: ir.FromBool(true)},
		{in: "false\n", want: ir.FromBool(false)},
		{in: `nul`, e: ErrInvalidValue},
		{in: `nulx`, e: ErrInvalidValue},
		{in: `tru`, e: ErrInvalidValue},
		{in: `fals`, e: ErrInvalidValue},
		{in: `True`, e: ErrInvalidValue},
		{in: `?`, e: ErrInvalidValue},
		{in: `nullx`, e: ErrRootNotSingular},
		{in: `null x`, e: ErrRootNotSingular},
		{in: `true false`, e: ErrRootNotSingular},
		{in: ``, e: ErrReachEOF},
		{in: " \n\t", e: ErrReachEOF},
	})
}

func TestParseNumbers(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `0`, want: num(0)},
		{in: `-0`, want: num(math.Copysign(0, -1))},
		{in: `-0.0`, want: num(math.Copysign(0, -1))},
		{in: `1`, want: num(1)},
		{in: `-1`, want: num(-1)},
		{in: `22`, want: num(22)},
		{in: `1.5`, want: num(1.5)},
		{in: `-1.5`, want: num(-1.5)},
		{in: `3.1416`, want: num(3.1416)},
		{in: `1E10`, want: num(1e10)},
		{in: `1e10`, want: num(1e10)},
		{in: `1E+10`, want: num(1e10)},
		{in: `1E-10`, want: num(1e-10)},
		{in: `-1E10`, want: num(-1e10)},
		{in: `-1e10`, want: num(-1e10)},
		{in: `-1E+10`, want: num(-1e10)},
		{in: `-1E-10`, want: num(-1e-10)},
		{in: `1.234E+10`, want: num(1.234e10)},
		{in: `1.234E-10`, want: num(1.234e-10)},
		{in: `0e0`, want: num(0)},
		{in: `1e-10000`, want: num(0)},
		{in: `1.0000000000000002`, want: num(1.0000000000000002)},
		{in: `4.9406564584124654e-324`, want: num(4.9406564584124654e-324)},
		{in: `-4.9406564584124654e-324`, want: num(-4.9406564584124654e-324)},
		{in: `2.2250738585072009e-308`, want: num(2.2250738585072009e-308)},
		{in: `-2.2250738585072009e-308`, want: num(-2.2250738585072009e-308)},
		{in: `2.2250738585072014e-308`, want: num(2.2250738585072014e-308)},
		{in: `-2.2250738585072014e-308`, want: num(-2.2250738585072014e-308)},
		{in: `1.7976931348623157e+308`, want: num(1.7976931348623157e+308)},
		{in: `-1.7976931348623157e+308`, want: num(-1.7976931348623157e+308)},
		{in: ` 123 `, want: num(123)},
	})
}

func TestParseBadNumbers(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `+0`, e: ErrInvalidValue},
		{in: `+1`, e: ErrInvalidValue},
		{in: `.123`, e: ErrInvalidValue},
		{in: `1.`, e: ErrInvalidValue},
		{in: `0.`, e: ErrInvalidValue},
		{in: `INF`, e: ErrInvalidValue},
		{in: `inf`, e: ErrInvalidValue},
		{in: `NAN`, e: ErrInvalidValue},
		{in: `nan`, e: ErrInvalidValue},
		{in: `-`, e: ErrInvalidValue},
		{in: `--1`, e: ErrInvalidValue},
		{in: `1ee`, e: ErrInvalidValue},
		{in: `1e`, e: ErrInvalidValue},
		{in: `1e+`, e: ErrInvalidValue},
		{in: `1.e1`, e: ErrInvalidValue},
		{in: `1e309`, e: ErrNumberTooBig},
		{in: `-1e309`, e: ErrNumberTooBig},
		{in: `1.8e308`, e: ErrNumberTooBig},
		{in: `null x`, e: ErrRootNotSingular},
		{in: `1u10`, e: ErrRootNotSingular},
		{in: `0123`, e: ErrRootNotSingular},
		{in: `0x0`, e: ErrRootNotSingular},
		{in: `0x123`, e: ErrRootNotSingular},
		{in: `001`, e: ErrRootNotSingular},
		{in: `00.1`, e: ErrRootNotSingular},
		{in: `1 2`, e: ErrRootNotSingular},
	})
}

func TestParseStrings(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `""`, want: str("")},
		{in: `"Hello"`, want: str("Hello")},
		{in: `"Hello\nWorld"`, want: str("Hello\nWorld")},
		{in: `"\""`, want: str("\"")},
		{in: `"\\"`, want: str("\\")},
		{in: `"\/"`, want: str("/")},
		{in: `"\n"`, want: str("\n")},
		{in: `"\r"`, want: str("\r")},
		{in: `"\t"`, want: str("\t")},
		{in: `"\b"`, want: str("\x08")},
		{in: `"\f"`, want: str("\x0c")},
		{in: `"\"\\\/\n\r\t\b\f"`, want: str("\"\\/\n\r\t\x08\x0c")},
		{in: `"héllo 😀"`, want: str("héllo 😀")},
		{in: "\"a\xffb\"", want: str("a\uFFFDb")},
		{in: "\"\x7f\"", want: str("\x7f")},
		{in: `"\v"`, e: ErrInvalidStringEscape},
		{in: `"\'"`, e: ErrInvalidStringEscape},
		{in: `"\0"`, e: ErrInvalidStringEscape},
		{in: `"\u0041"`, e: ErrInvalidStringEscape},
		{in: "\"\x12\"", e: ErrInvalidStringChar},
		{in: "\"a\tb\"", e: ErrInvalidStringChar},
		{in: "\"a\nb\"", e: ErrInvalidStringChar},
		{in: `"\`, e: ErrMissingQuotationMark},
		{in: `"`, e: ErrMissingQuotationMark},
		{in: `"abc`, e: ErrMissingQuotationMark},
	})
}

func TestParseArrays(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `[true]`, want: arr(ir.FromBool(true))},
		{in: `[ true]`, want: arr(ir.FromBool(true))},
		{in: `[ true ]`, want: arr(ir.FromBool(true))},
		{in: `[null,null]`, want: arr(ir.Null(), ir.Null())},
		{in: `[]`, want: arr()},
		{in: `[123]`, want: arr(num(123))},
		{in: `[123 ]`, want: arr(num(123))},
		{
			in:   `[ null , false , true , 123 , "abc" ]`,
			want: arr(ir.Null(), ir.FromBool(false), ir.FromBool(true), num(123), str("abc")),
		},
		{
			in: `[ [ ] , [ 0 ] , [ 0 , 1 ] , [ 0 , 1 , 2 ] ]`,
			want: arr(
				arr(),
				arr(num(0)),
				arr(num(0), num(1)),
				arr(num(0), num(1), num(2)),
			),
		},
		{in: `[1 2]`, want: arr(num(1), num(2))},
		{in: `[1,]`, want: arr(num(1))},
		{in: `[,1]`, want: arr(num(1))},
		{in: `[`, e: ErrMissingCommaOrClosingBracket},
		{in: `[   `, e: ErrMissingCommaOrClosingBracket},
		{in: `[ null  `, e: ErrMissingCommaOrClosingBracket},
		{in: `[[] `, e: ErrMissingCommaOrClosingBracket},
		{in: `]`, e: ErrInvalidValue},
		{in: `[}`, e: ErrInvalidValue},
		{in: `[1]]`, e: ErrRootNotSingular},
	})
}

func TestParseObjects(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: `{}`, want: ir.EmptyObject()},
		{in: ` { } `, want: ir.EmptyObject()},
		{
			in: `{"a": 1, "b": [true, null], "c": {"d": "e"}}`,
			want: ir.FromMap(map[string]*ir.Node{
				"a": num(1),
				"b": arr(ir.FromBool(true), ir.Null()),
				"c": ir.FromMap(map[string]*ir.Node{"d": str("e")}),
			}),
		},
		{
			in:   `{"a":1,}`,
			want: ir.FromMap(map[string]*ir.Node{"a": num(1)}),
		},
		{
			in:   `{"a": 1, "a": 2}`,
			want: ir.FromMap(map[string]*ir.Node{"a": num(2)}),
		},
		{
			in:   `{"": ""}`,
			want: ir.FromMap(map[string]*ir.Node{"": str("")}),
		},
		{in: `{:1,`, e: ErrMissingKey},
		{in: `{1:1,`, e: ErrMissingKey},
		{in: `{true:1,`, e: ErrMissingKey},
		{in: `{false:1,`, e: ErrMissingKey},
		{in: `{null:1,`, e: ErrMissingKey},
		{in: `{[]:1,`, e: ErrMissingKey},
		{in: `{{}:1,`, e: ErrMissingKey},
		{in: `{"a":1,`, e: ErrMissingKey},
		{in: `{`, e: ErrMissingKey},
		{in: `{,}`, e: ErrMissingKey},
		{in: `{"a"}`, e: ErrMissingSemicolon},
		{in: `{"a","b"}`, e: ErrMissingSemicolon},
		{in: `{"a":1`, e: ErrMissingCommaOrClosingCurlyBracket},
		{in: `{"a":1]`, e: ErrMissingCommaOrClosingCurlyBracket},
		{in: `{"a":1 "b"`, e: ErrMissingCommaOrClosingCurlyBracket},
		{in: `{"a":{}`, e: ErrMissingCommaOrClosingCurlyBracket},
		{in: `{"a":`, e: ErrReachEOF},
		{in: `{"a":x}`, e: ErrInvalidValue},
		{in: `{"a`, e: ErrMissingQuotationMark},
	})
}

func TestParseErrPos(t *testing.T) {
	tests := []struct {
		in             string
		e              error
		off, line, col int
	}{
		{in: `[1, x]`, e: ErrInvalidValue, off: 4, col: 4},
		{in: `{"a" 1}`, e: ErrMissingSemicolon, off: 5, col: 5},
		{in: `"ab`, e: ErrMissingQuotationMark, off: 3, col: 3},
		{in: `null x`, e: ErrRootNotSingular, off: 5, col: 5},
		{in: `"a\qb"`, e: ErrInvalidStringEscape, off: 2, col: 2},
		{in: "[\n  x]", e: ErrInvalidValue, off: 4, line: 1, col: 2},
		{in: "[\"é\",\n 1e]", e: ErrInvalidValue, off: 9, line: 1, col: 3},
		{in: "", e: ErrReachEOF},
	}
	for _, tc := range tests {
		_, err := ParseString(tc.in)
		var pe *ParseErr
		if !errors.As(err, &pe) {
			t.Errorf("%q: got %v, want *ParseErr", tc.in, err)
			continue
		}
		if pe.Err != tc.e {
			t.Errorf("%q: got kind %v, want %v", tc.in, pe.Err, tc.e)
		}
		line, col := pe.Pos.LineCol()
		if pe.Pos.I != tc.off || line != tc.line || col != tc.col {
			t.Errorf("%q: got offset %d (%d:%d), want %d (%d:%d)",
				tc.in, pe.Pos.I, line, col, tc.off, tc.line, tc.col)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	kinds := Errors()
	for i, a := range kinds {
		for j, b := range kinds {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = %t", a, b, i != j)
			}
		}
	}
	_, err := ParseString(`[1,`)
	if k := Kind(err); k != ErrMissingCommaOrClosingBracket {
		t.Errorf("Kind: got %v", k)
	}
	if k := Kind(errors.New("other")); k != nil {
		t.Errorf("Kind of foreign error: got %v", k)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := ParseString(`{"a": [1, "x"]}`, ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	arrY := node.Fields["a"]
	want := map[*ir.Node]int{
		node:           0,
		arrY:           6,
		arrY.Values[0]: 7,
		arrY.Values[1]: 10,
	}
	if len(positions) != len(want) {
		t.Errorf("got %d positions, want %d", len(positions), len(want))
	}
	for y, off := range want {
		pos := positions[y]
		if pos == nil {
			t.Errorf("no position for %s node", y.Type)
			continue
		}
		if pos.I != off {
			t.Errorf("%s node: got offset %d, want %d", y.Type, pos.I, off)
		}
	}
}

func TestParsePositionsDuplicateKey(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := ParseString(`{"a": 1, "a": 2}`, ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if len(positions) != 2 {
		t.Errorf("got %d positions, want 2", len(positions))
	}
	if pos := positions[node.Fields["a"]]; pos == nil || pos.I != 14 {
		t.Errorf("got %v for surviving value", pos)
	}
}

func TestParsePositionsOnError(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	if _, err := ParseString(`[1, 2, x]`, ParsePositions(positions)); err == nil {
		t.Fatal("expected error")
	}
	if len(positions) != 0 {
		t.Errorf("got %d positions recorded on error", len(positions))
	}
	if GetPositions(ParsePositions(positions)) == nil {
		t.Errorf("GetPositions lost the map")
	}
}

func TestParseBytes(t *testing.T) {
	node, err := Parse([]byte(`[1, "two", {"three": 3}]`))
	if err != nil {
		t.Fatal(err)
	}
	want := arr(num(1), str("two"), ir.FromMap(map[string]*ir.Node{"three": num(3)}))
	if !ir.Equal(want, node) {
		t.Errorf("got %v", node)
	}
}

func TestParseDeterministic(t *testing.T) {
	in := `{"k": [1.5, "s", null, {"n": false}]}`
	a, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if a == b || a.Fields["k"] == b.Fields["k"] {
		t.Errorf("parses share nodes")
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("(-a +b)\n%s", diff)
	}
}

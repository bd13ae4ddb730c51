package eval

import (
	"testing"

	"github.com/dandelion-json/dandelion/ir"
	"github.com/dandelion-json/dandelion/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestEval(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": [1, 2, 3], "c": {"d": "x"}, "e": true}`)
	tests := []struct {
		src  string
		want string
	}{
		{`doc.a + 1`, `2`},
		{`len(doc.b)`, `3`},
		{`doc.c.d + "y"`, `"xy"`},
		{`!doc.e`, `false`},
		{`doc.b[1]`, `2`},
		{`doc.c`, `{"d": "x"}`},
		{`getpath("$.c.d")`, `"x"`},
		{`getpath("$.missing")`, `null`},
		{`haspath("$.b[2]")`, `true`},
		{`haspath("$.b[3]")`, `false`},
		{`truthy(doc.b)`, `true`},
		{`truthy(getpath("$.missing"))`, `false`},
		{`truthy("")`, `false`},
		{`map(doc.b, # * 2)`, `[2, 4, 6]`},
		{`n * 10`, `70`},
	}
	for _, tc := range tests {
		got, err := Eval(doc, tc.src, Env{"n": 7})
		if err != nil {
			t.Errorf("%s: %v", tc.src, err)
			continue
		}
		want := mustParse(t, tc.want)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.src, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	for _, src := range []string{`doc.a +`, `nosuchvar`, `getpath("a[")`} {
		if _, err := Eval(doc, src, nil); err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
}

func TestEvalAs(t *testing.T) {
	doc := mustParse(t, `{"a": "[1, 2]"}`)
	got, err := EvalAs(doc, `doc.a`, nil, AsValue)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, mustParse(t, `[1, 2]`)) {
		t.Errorf("as value: got %v", got)
	}
	got, err = EvalAs(doc, `doc.a`, nil, AsString)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.StringType || got.String != "[1, 2]" {
		t.Errorf("as string: got %v", got)
	}
	if _, err := EvalAs(doc, `1`, nil, AsString); err == nil {
		t.Errorf("as string of number: expected error")
	}
	if _, err := EvalAs(doc, `1`, nil, AsValue); err == nil {
		t.Errorf("as value of number: expected error")
	}
	if as, err := ParseAs("value"); err != nil || as != AsValue {
		t.Errorf("ParseAs: got %v %v", as, err)
	}
	if _, err := ParseAs("yaml"); err == nil {
		t.Errorf("ParseAs yaml: expected error")
	}
}

type envTest struct {
	in, out string
}

func TestExpandString(t *testing.T) {
	tests := []envTest{
		{in: "abc", out: "abc"},
		{in: "$[", out: "$["},
		{in: "$[x]", out: `X`},
		{in: " $[x]", out: ` X`},
		{in: ".[x]", out: `X`},
		{in: "$[x", out: "$[x"},
		{in: "some $[stuff] $[here]", out: `some STUFF HERE`},
		{in: "some $[stuff] $[here] trailing", out: `some STUFF HERE trailing`},
		{in: "some $[ stuff ] $[here] trailing", out: `some STUFF HERE trailing`},
		{in: "$abc", out: "$abc"},
		{in: " $abc", out: " $abc"},
		{in: "a.b", out: "a.b"},
		{in: `$["a\]b"]`, out: "a]b"},
		{in: "n=$[n + 1]", out: "n=3"},
	}
	env := Env{
		"x":     "X",
		"stuff": "STUFF",
		"here":  "HERE",
		"n":     2,
	}
	for i := range tests {
		tc := &tests[i]
		got, err := ExpandString(tc.in, env)
		if err != nil {
			t.Error(err)
			continue
		}
		if got != tc.out {
			t.Errorf("got %q want %q", got, tc.out)
		}
	}
}

func TestExpandIR(t *testing.T) {
	doc := mustParse(t, `{"name": "dj", "greeting": "hello $[doc.name]", "list": ".[[doc.name, 1]]", "n": 3}`)
	got, err := ExpandIR(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"name": "dj", "greeting": "hello dj", "list": ["dj", 1], "n": 3}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if doc.Fields["greeting"].String != "hello $[doc.name]" {
		t.Errorf("input was modified")
	}
}

package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "toml", err: ErrBadFormat},
		{in: "", err: ErrBadFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("ParseFormat(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("got %s, want %s", back, f)
		}
	}
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Errorf("unexpected suffixes %q %q", JSONFormat.Suffix(), YAMLFormat.Suffix())
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{in: "a/b.json", want: JSONFormat, ok: true},
		{in: "out.yaml", want: YAMLFormat, ok: true},
		{in: "out.txt"},
		{in: "-"},
	}
	for _, tt := range tests {
		got, ok := FromPath(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromPath(%q) = %s, %t, want %s, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

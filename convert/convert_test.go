package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stringly-format/go-stringly/format"
	"github.com/stringly-format/go-stringly/ir"
)

func TestToAny(t *testing.T) {
	n := ir.Map(
		ir.Field{Key: "a", Value: ir.String("1")},
		ir.Field{Key: "b", Value: ir.Seq(ir.String("c"), ir.String("d"))},
	)
	want := map[string]any{"a": "1", "b": []any{"c", "d"}}
	if d := cmp.Diff(want, ToAny(n)); d != "" {
		t.Error(d)
	}
	tagged := ir.Tagged("Ref", ir.String("x"))
	if d := cmp.Diff(map[string]any{"Ref": "x"}, ToAny(tagged)); d != "" {
		t.Error(d)
	}
	if got := ToAny(nil); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestFromAny(t *testing.T) {
	got := FromAny(map[string]any{"b": 1, "a": true, "c": nil})
	want := ir.Map(
		ir.Field{Key: "a", Value: ir.String("True")},
		ir.Field{Key: "b", Value: ir.String("1")},
		ir.Field{Key: "c", Value: ir.String("")},
	)
	if !got.Equal(want) {
		t.Errorf("got %#v", got)
	}
	if got := FromAny([]any{"x", 1.5}); !got.Equal(ir.Seq(ir.String("x"), ir.String("1.5"))) {
		t.Errorf("got %#v", got)
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		flat string
		json string
	}{
		{"x", `"x"`},
		{"a=1", `{"a":"1"}`},
		{"a=1,b={c,d}", `{"a":"1","b":["c","d"]}`},
		{"k=a=b", `{"k":{"a":"b"}}`},
		{"p,q,r", `["p","q","r"]`},
	}
	for _, tc := range tests {
		d, err := ToJSON(tc.flat)
		if err != nil {
			t.Errorf("ToJSON(%q): %v", tc.flat, err)
			continue
		}
		if string(d) != tc.json {
			t.Errorf("ToJSON(%q) = %s, want %s", tc.flat, d, tc.json)
		}
		back, err := FromJSON(d)
		if err != nil {
			t.Errorf("FromJSON(%s): %v", d, err)
			continue
		}
		if back != tc.flat {
			t.Errorf("FromJSON(%s) = %q, want %q", d, back, tc.flat)
		}
	}
	if _, err := FromJSON([]byte("{")); err == nil {
		t.Error("FromJSON must reject malformed input")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	flats := []string{
		"x",
		"a=1,b={c,d}",
		"b=2,a=1",
		"p,q,r",
		"k=a=b",
		"a=",
	}
	for _, flat := range flats {
		d, err := ToYAML(flat)
		if err != nil {
			t.Errorf("ToYAML(%q): %v", flat, err)
			continue
		}
		back, err := FromYAML(d)
		if err != nil {
			t.Errorf("FromYAML(%q): %v", d, err)
			continue
		}
		if back != flat {
			t.Errorf("round trip %q via %q = %q", flat, d, back)
		}
	}
}

func TestFromYAML(t *testing.T) {
	doc := "name: svc\nports:\n- \"80\"\n- 443\n"
	flat, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if flat != "name=svc,ports={80,443}" {
		t.Errorf("got %q", flat)
	}
	if _, err := FromYAML([]byte("a: [unclosed")); err == nil {
		t.Error("FromYAML must reject malformed input")
	}
}

func TestTo(t *testing.T) {
	tests := []struct {
		in       string
		from, to format.Format
		want     string
	}{
		{"a=1,b=2", format.FlatFormat, format.PrettyFormat, "a=1\nb=2\n"},
		{"a=1\nb=2\n", format.PrettyFormat, format.FlatFormat, "a=1,b=2"},
		{"a=1,b=2", format.FlatFormat, format.JSONFormat, `{"a":"1","b":"2"}`},
		{`{"a":"1"}`, format.JSONFormat, format.FlatFormat, "a=1"},
		{"a=1", format.FlatFormat, format.FlatFormat, "a=1"},
	}
	for _, tc := range tests {
		got, err := To(tc.in, tc.from, tc.to)
		if err != nil {
			t.Errorf("To(%q, %v, %v): %v", tc.in, tc.from, tc.to, err)
			continue
		}
		if got != tc.want {
			t.Errorf("To(%q, %v, %v) = %q, want %q", tc.in, tc.from, tc.to, got, tc.want)
		}
	}
	if _, err := To("x", format.Format(99), format.FlatFormat); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if _, err := To("x", format.FlatFormat, format.Format(99)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

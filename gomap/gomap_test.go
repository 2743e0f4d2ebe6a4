package gomap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stringly-format/go-stringly/ir"
	"github.com/stringly-format/go-stringly/token"
)

// assertRoundTrip marshals value, compares against want, and
// unmarshals want back into a fresh instance.
func assertRoundTrip[T any](t *testing.T, value T, want string) {
	t.Helper()
	got, err := Marshal(value)
	if err != nil {
		t.Errorf("Marshal(%#v): %v", value, err)
		return
	}
	if got != want {
		t.Errorf("Marshal(%#v) = %q, want %q", value, got, want)
	}
	var back T
	if err := Unmarshal(want, &back); err != nil {
		t.Errorf("Unmarshal(%q): %v", want, err)
		return
	}
	if d := cmp.Diff(value, back); d != "" {
		t.Errorf("Unmarshal(%q) round trip: %s", want, d)
	}
}

func assertDecode[T any](t *testing.T, want T, in string) {
	t.Helper()
	var got T
	if err := Unmarshal(in, &got); err != nil {
		t.Errorf("Unmarshal(%q): %v", in, err)
		return
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Unmarshal(%q): %s", in, d)
	}
}

func assertDecodeErr[T any](t *testing.T, in string, sentinel error) {
	t.Helper()
	var got T
	err := Unmarshal(in, &got)
	if !errors.Is(err, sentinel) {
		t.Errorf("Unmarshal(%q) = %v, want %v", in, err, sentinel)
	}
}

func TestBool(t *testing.T) {
	assertRoundTrip(t, true, "True")
	assertRoundTrip(t, false, "False")
	assertDecode(t, true, "true")
	assertDecode(t, true, "yes")
	assertDecode(t, true, "YES")
	assertDecode(t, false, "false")
	assertDecode(t, false, "no")
	assertDecode(t, false, "NO")
	assertDecodeErr[bool](t, "1", ErrNotABoolean)
}

func TestInteger(t *testing.T) {
	assertRoundTrip(t, int8(1), "1")
	assertRoundTrip(t, int16(2), "2")
	assertRoundTrip(t, int32(3), "3")
	assertRoundTrip(t, int64(4), "4")
	assertRoundTrip(t, uint16(2), "2")
	assertRoundTrip(t, uint32(3), "3")
	assertRoundTrip(t, uint64(4), "4")
	assertRoundTrip(t, -17, "-17")
	assertDecodeErr[int32](t, "1.", ErrNotAnInteger)
	assertDecodeErr[int32](t, "1a", ErrNotAnInteger)
	assertDecodeErr[uint32](t, "-1", ErrNotAnUnsignedInteger)
}

func TestFloat(t *testing.T) {
	assertRoundTrip(t, float32(1), "1")
	assertRoundTrip(t, float64(2), "2")
	assertRoundTrip(t, 1.2, "1.2")
	assertDecodeErr[float32](t, "1a", ErrNotAFloatingPointNumber)
}

func TestString(t *testing.T) {
	assertRoundTrip(t, "abc", "abc")
	assertRoundTrip(t, "", "")
	assertRoundTrip(t, "a\nb", "a\nb")
}

func TestOption(t *testing.T) {
	p := func(s string) *string { return &s }
	assertRoundTrip(t, p("1"), "1")
	assertRoundTrip(t, p(""), "{}")
	assertRoundTrip(t, p("{}"), "{{}}")
	assertRoundTrip(t, p("{"), "{")
	assertRoundTrip(t, p("}"), "}")
	assertRoundTrip(t, (*int)(nil), "")
	i := 1
	assertRoundTrip(t, &i, "1")
}

func TestSeq(t *testing.T) {
	assertRoundTrip(t, []int{}, "")
	assertRoundTrip(t, []string{""}, "{}")
	assertRoundTrip(t, []string{"", ""}, "{},{}")
	assertRoundTrip(t, []int{1}, "1")
	assertRoundTrip(t, []int{1, 2, 3}, "1,2,3")
	assertRoundTrip(t, []string{"1,2", "3", "4"}, "{1,2},3,4")
	assertRoundTrip(t, [][]int{{1, 2}, {3}}, "{1,2},3")
}

func TestArray(t *testing.T) {
	assertRoundTrip(t, [2]string{"", ""}, "{},{}")
	assertRoundTrip(t, [2]int{1, 2}, "1,2")
	assertRoundTrip(t, [2]string{"{", "}"}, "{{<}>},{<{>}}")
	assertDecodeErr[[2]int](t, "1,2,3", ErrTooManyElements)
}

func TestMap(t *testing.T) {
	assertRoundTrip(t, map[string]string{}, "")
	assertRoundTrip(t, map[string]string{"A": "B"}, "A=B")
	assertRoundTrip(t, map[string]string{"A": "B", "C": "D"}, "A=B,C=D")
	assertRoundTrip(t, map[string][]int{"A": {}, "B": {1}, "C": {2, 3}}, "A=,B=1,C={2,3}")
	assertRoundTrip(t, map[string]string{"a=b": "c"}, "{a=b}=c")
	assertDecodeErr[map[string]string](t, "abc", ErrNotAKeyValuePair)
}

type testStruct struct {
	Int int      `stringly:"int"`
	Seq []string `stringly:"seq"`
}

func TestStruct(t *testing.T) {
	assertRoundTrip(t, testStruct{Int: 1, Seq: []string{"a", "b"}}, "int=1,seq={a,b}")
	assertRoundTrip(t, struct{}{}, "")
}

type renamed struct {
	Kept    string `stringly:"k"`
	Skipped string `stringly:"-"`
	Plain   string
}

func TestStructTags(t *testing.T) {
	got, err := Marshal(renamed{Kept: "a", Skipped: "b", Plain: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "k=a,Plain=c" {
		t.Errorf("got %q", got)
	}
	var back renamed
	if err := Unmarshal("k=a,Plain=c,unknown=z", &back); err != nil {
		t.Fatal(err)
	}
	want := renamed{Kept: "a", Plain: "c"}
	if d := cmp.Diff(want, back); d != "" {
		t.Error(d)
	}
}

type Inner struct {
	X string `stringly:"x"`
}

type embedding struct {
	Inner
	Y string `stringly:"y"`
}

func TestStructEmbedded(t *testing.T) {
	assertRoundTrip(t, embedding{Inner: Inner{X: "1"}, Y: "2"}, "x=1,y=2")
}

type nested struct {
	Name string     `stringly:"name"`
	Sub  testStruct `stringly:"sub"`
}

func TestStructNested(t *testing.T) {
	v := nested{Name: "n", Sub: testStruct{Int: 5, Seq: []string{"a,b"}}}
	assertRoundTrip(t, v, "name=n,sub={int=5,seq={{a,b}}}")
}

func TestVariant(t *testing.T) {
	got, err := Marshal(Variant{Tag: "Unit"})
	if err != nil || got != "Unit" {
		t.Errorf("got %q %v", got, err)
	}
	got, err = Marshal(Variant{Tag: "Newtype", Value: 1})
	if err != nil || got != "Newtype{1}" {
		t.Errorf("got %q %v", got, err)
	}
	got, err = Marshal(Variant{Tag: "Tuple", Value: []int{1, 2}})
	if err != nil || got != "Tuple{1,2}" {
		t.Errorf("got %q %v", got, err)
	}
	got, err = Marshal(Variant{Tag: "Struct", Value: map[string]int{"a": 1}})
	if err != nil || got != "Struct{a=1}" {
		t.Errorf("got %q %v", got, err)
	}
	got, err = Marshal(Variant{Tag: "D", Value: []string{"{", "}"}})
	if err != nil || got != "D{{{<}>},{<{>}}}" {
		t.Errorf("got %q %v", got, err)
	}
	if _, err := Marshal(Variant{Tag: "bad{"}); err == nil {
		t.Error("brace tag must fail")
	}

	var v Variant
	if err := Unmarshal("Newtype{1}", &v); err != nil {
		t.Fatal(err)
	}
	if v.Tag != "Newtype" || v.Value != "1" {
		t.Errorf("got %#v", v)
	}
	if err := Unmarshal("Unit", &v); err != nil {
		t.Fatal(err)
	}
	if v.Tag != "Unit" || v.Value != nil {
		t.Errorf("got %#v", v)
	}
	assertDecodeErr[Variant](t, "key{val}}", token.ErrNotAnEnum)
}

type celsius struct {
	Deg int
}

func (c celsius) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(c.Deg) + "C"), nil
}

func (c *celsius) UnmarshalText(d []byte) error {
	s, ok := strings.CutSuffix(string(d), "C")
	if !ok {
		return fmt.Errorf("not a celsius value: %q", d)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	c.Deg = n
	return nil
}

func TestTextMarshaler(t *testing.T) {
	assertRoundTrip(t, celsius{Deg: 21}, "21C")
	assertRoundTrip(t, map[string]celsius{"t": {Deg: 3}}, "t=3C")
}

func TestNodePassthrough(t *testing.T) {
	n := ir.Map(ir.Field{Key: "a", Value: ir.String("1")})
	got, err := Marshal(n)
	if err != nil || got != "a=1" {
		t.Fatalf("got %q %v", got, err)
	}
	var back *ir.Node
	if err := Unmarshal("a=1", &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(n) {
		t.Errorf("got %#v", back)
	}
}

func TestFieldPath(t *testing.T) {
	var v nested
	err := Unmarshal("name=n,sub={int=x,seq=}", &v)
	if err == nil {
		t.Fatal("want error")
	}
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "sub.int" {
		t.Errorf("got %v", err)
	}
	if !errors.Is(err, ErrNotAnInteger) {
		t.Errorf("got %v, want ErrNotAnInteger", err)
	}
}

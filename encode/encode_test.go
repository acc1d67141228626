package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/toml-format/parse"

	"github.com/google/go-cmp/cmp"
)

func reEncode(t *testing.T, d string) string {
	t.Helper()
	tbl, err := parse.ParseString(d)
	if err != nil {
		t.Fatalf("parse %q: %v", d, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(tbl, buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

// Canonical documents encode back to themselves.
func TestEncodeFixedPoint(t *testing.T) {
	docs := []string{
		"a = 1\n",
		"a = -17\n",
		"bin = 0b1010\noct = 0o755\nhex = 0xdeadbeef\n",
		"f = 3.14\ns = 1.5e+06\nwhole = 2.0\n",
		"yes = true\nno = false\n",
		"when = 1979-05-27T07:32:00Z\n",
		"s = 'literal'\nd = \"with \\\"escape\\\"\"\n",
		"ml = '''one\ntwo'''\n",
		"a = [1, 2, 3]\n",
		"a = []\n",
		"mixed = [1, {x = 2}]\n",
		"'has space' = 1\n",
		"top = 1\n\n[server]\nport = 8080\n\n[server.limits]\nconns = 10\n",
		"[[jobs]]\nname = 'a'\n\n[[jobs]]\nname = 'b'\n",
		"# about a\na = 1 # trailing\n",
		"# section\n[s] # here\nb = 2\n",
	}
	for _, d := range docs {
		got := reEncode(t, d)
		if diff := cmp.Diff(d, got); diff != "" {
			t.Errorf("not a fixed point (-want +got):\n%s", diff)
		}
	}
}

// Non-canonical input normalizes, and the normalized form is stable.
func TestEncodeNormalizes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// scalar entries float above header sections
		{"[s]\nb = 2\n", "[s]\nb = 2\n"},
		{"a   =   1\n", "a = 1\n"},
		{"a.b = 1\n", "[a]\nb = 1\n"},
		{"\"bare\" = 1\n", "bare = 1\n"},
		{"a = [\n  1,\n  2,\n]\n", "a = [1, 2]\n"},
		// inline table provenance is not kept; tables render as sections
		{"p = {x = 1, y = 2}\n", "[p]\nx = 1\ny = 2\n"},
	}
	for _, tc := range tests {
		got := reEncode(t, tc.in)
		if got != tc.want {
			t.Errorf("reEncode(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if again := reEncode(t, got); again != got {
			t.Errorf("unstable: %q then %q", got, again)
		}
	}
}

func TestEncodeArrayComments(t *testing.T) {
	d := "a = [\n  1, # one\n  # two\n  2,\n]\n"
	got := reEncode(t, d)
	if diff := cmp.Diff(d, got); diff != "" {
		t.Errorf("comments moved (-want +got):\n%s", diff)
	}
}

func TestEncodeNoComments(t *testing.T) {
	tbl, err := parse.ParseString("# doc\na = 1 # trailing\n")
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(tbl, buf, EncodeComments(false)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a = 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeValueInline(t *testing.T) {
	tbl, err := parse.ParseString("p = {x = 1, y = [1, 2]}\n")
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := EncodeValue(tbl.Get("p").Value, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{x = 1, y = [1, 2]}" {
		t.Errorf("got %q", got)
	}
}

func TestMustString(t *testing.T) {
	tbl, err := parse.ParseString("a = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(tbl); got != "a = 1\n" {
		t.Errorf("got %q", got)
	}
}

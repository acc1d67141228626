package ast

import "testing"

func TestStyleFor(t *testing.T) {
	tests := []struct {
		in   string
		want QuoteStyle
	}{
		{"plain", SingleQuoted},
		{"has space", SingleQuoted},
		{"apos'trophe", DoubleQuoted},
		{"ctl\x01", DoubleQuoted},
		{"two\nlines", SingleQuotedMulti},
		{"it's\ntwo lines", DoubleQuotedMulti},
	}
	for _, tc := range tests {
		if got := StyleFor(tc.in); got != tc.want {
			t.Errorf("StyleFor(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestQuotedRender(t *testing.T) {
	tests := []struct {
		q    Quoted
		want string
	}{
		{Quoted{SingleQuoted, "abc"}, "'abc'"},
		{Quoted{DoubleQuoted, `say "hi"`}, `"say \"hi\""`},
		{Quoted{DoubleQuoted, "a\nb"}, `"a\nb"`},
		{Quoted{SingleQuotedMulti, "a\nb"}, "'''a\nb'''"},
		{Quoted{DoubleQuotedMulti, "it's\nhere"}, "\"\"\"it's\nhere\"\"\""},
	}
	for _, tc := range tests {
		if got := tc.q.Render(); got != tc.want {
			t.Errorf("Render(%+v) = %q, want %q", tc.q, got, tc.want)
		}
	}
}

func TestNewSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bare_key-1", "bare_key-1"},
		{"needs space", "'needs space'"},
		{"", "''"},
		{"it's", `"it's"`},
		{"dot.ted", "'dot.ted'"},
	}
	for _, tc := range tests {
		if got := NewSegment(tc.in).String(); got != tc.want {
			t.Errorf("NewSegment(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	k := KeyOf("server", "tls cfg", "port")
	if got := k.String(); got != "server.'tls cfg'.port" {
		t.Errorf("Key.String() = %q", got)
	}
	texts := k.Texts()
	if len(texts) != 3 || texts[1] != "tls cfg" {
		t.Errorf("Texts() = %v", texts)
	}
}

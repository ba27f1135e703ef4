package linecodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   string
	}{
		{name: "plain", fields: []string{"R-1", "Alice"}, want: "R-1|Alice"},
		{name: "delimiter", fields: []string{"a|b"}, want: `a\|b`},
		{name: "backslash", fields: []string{`C:\temp`}, want: `C:\\temp`},
		{name: "newline", fields: []string{"line1\nline2"}, want: `line1\nline2`},
		{name: "empty fields", fields: []string{"", ""}, want: "|"},
		{name: "utf8 untouched", fields: []string{"Ünïcödé 海景"}, want: "Ünïcödé 海景"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.fields)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n")
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := [][]string{
		{"R-100", "Alice Perera", "12 Beach Rd", "0771234567", "DELUXE", "2024-01-10", "2024-01-13"},
		{"pipe|inside", `back\slash`, "new\nline", `\|`, `\\`, `\n`, ""},
		{"", "", "", "", "", "", ""},
		{`trailing\`, "|", "\n\n", `|\|\\`},
		{"tab\tand\rcr", "emoji 🌊", "  spaced  "},
	}

	for _, fields := range cases {
		line := Encode(fields)
		assert.Equal(t, fields, Decode(line), "line %q", line)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "single field", line: "abc", want: []string{"abc"}},
		{name: "empty line", line: "", want: []string{""}},
		{name: "escaped delimiter", line: `a\|b|c`, want: []string{"a|b", "c"}},
		{name: "unknown escape is literal", line: `\x\y`, want: []string{"xy"}},
		{name: "trailing escape kept", line: `abc\`, want: []string{`abc\`}},
		{name: "trailing escape after delimiter", line: `a|\`, want: []string{"a", `\`}},
		{name: "empty trailing field", line: "a|", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.line))
		})
	}
}

func TestEscapeUnescape(t *testing.T) {
	for _, s := range []string{"", "plain", `a\b`, "a|b", "a\nb", strings.Repeat(`\|`, 10)} {
		assert.Equal(t, s, Unescape(Escape(s)))
	}
	assert.Equal(t, `x\`, Unescape(`x\`))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   \t\r"))
	assert.False(t, IsBlank(" a "))
}

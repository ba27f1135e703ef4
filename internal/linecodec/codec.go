// Package linecodec encodes an ordered list of string fields into a single
// newline-free text line and decodes it back.
//
// Fields are joined with '|'. Inside a field the backslash and the delimiter
// are prefixed with a backslash and a newline is written as the two
// characters `\n`. Every other byte is copied unchanged, so the format stays
// UTF-8 transparent.
package linecodec

import "strings"

const (
	// Delimiter separates fields on a line.
	Delimiter = '|'
	escape    = '\\'
)

// Escape encodes a single field.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\|\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case escape, Delimiter:
			b.WriteByte(escape)
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape decodes a single field. A trailing lone backslash is kept as a
// literal backslash.
func Unescape(s string) string {
	if strings.IndexByte(s, escape) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaping := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaping {
			if c == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(c)
			}
			escaping = false
			continue
		}
		if c == escape {
			escaping = true
			continue
		}
		b.WriteByte(c)
	}
	if escaping {
		b.WriteByte(escape)
	}
	return b.String()
}

// Encode escapes every field and joins them with the delimiter.
func Encode(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}
	return strings.Join(escaped, string(Delimiter))
}

// Decode splits line on unescaped delimiters and unescapes each field.
// It always returns at least one field; an empty line decodes to [""].
func Decode(line string) []string {
	fields := make([]string, 0, 8)
	var cur strings.Builder
	escaping := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaping {
			if c == 'n' {
				cur.WriteByte('\n')
			} else {
				cur.WriteByte(c)
			}
			escaping = false
			continue
		}
		switch c {
		case escape:
			escaping = true
		case Delimiter:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if escaping {
		cur.WriteByte(escape)
	}
	return append(fields, cur.String())
}

// IsBlank reports whether line carries no record.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

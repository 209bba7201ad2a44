package schema

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// PyRepr renders a decoded schema value as a Python literal. Map members
// keep document order, so re-emission of an embedded literal is
// byte-identical.
func PyRepr(v any) string {
	var b strings.Builder

	writeRepr(&b, v)

	return b.String()
}

func writeRepr(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("None")

	case bool:
		if t {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}

	case string:
		writeStrRepr(b, t)

	case json.Number:
		b.WriteString(t.String())

	case int:
		b.WriteString(strconv.Itoa(t))

	case float64:
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))

	case []any:
		b.WriteByte('[')

		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}

			writeRepr(b, e)
		}

		b.WriteByte(']')

	case *Map:
		b.WriteByte('{')

		for i, k := range t.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}

			writeStrRepr(b, k)
			b.WriteString(": ")

			val, _ := t.Get(k)
			writeRepr(b, val)
		}

		b.WriteByte('}')

	default:
		fmt.Fprintf(b, "%v", t)
	}
}

// writeStrRepr follows Python repr quoting: single quotes by default,
// double quotes when the text contains a single quote but no double quote.
func writeStrRepr(b *strings.Builder, s string) {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	b.WriteRune(quote)

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case quote:
			b.WriteByte('\\')
			b.WriteRune(quote)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteRune(quote)
}

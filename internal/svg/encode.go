package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Encode writes e and its descendants as indented SVG markup.
func Encode(w io.Writer, e *Element) error {
	bw := bufio.NewWriter(w)
	if err := encode(bw, e, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the encoded markup of e.
func (e *Element) String() string {
	var sb strings.Builder
	_ = Encode(&sb, e) //nolint:errcheck // strings.Builder does not fail
	return sb.String()
}

func encode(w *bufio.Writer, e *Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s<%s", indent, e.Tag); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		if _, err := fmt.Fprintf(w, ` %s="`, a.Name); err != nil {
			return err
		}
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		if err := w.WriteByte('"'); err != nil {
			return err
		}
	}

	if e.Text == "" && len(e.Children) == 0 {
		_, err := w.WriteString("/>\n")
		return err
	}
	if err := w.WriteByte('>'); err != nil {
		return err
	}
	if e.Text != "" {
		if err := xml.EscapeText(w, []byte(e.Text)); err != nil {
			return err
		}
	}
	if len(e.Children) > 0 {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		for _, c := range e.Children {
			if err := encode(w, c, depth+1); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(indent); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>\n", e.Tag)
	return err
}

package report

import (
	"bufio"
	"io"
	"strings"
)

// Separator sits between a label and its value on every line.
const Separator = ": "

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Reporter renders the attribute list against a Source.
type Reporter struct {
	src   Source
	attrs []Attribute
}

// New creates a Reporter for src. A nil src reports every value as empty.
func New(src Source) *Reporter {
	if src == nil {
		src = Properties{}
	}
	return &Reporter{
		src:   src,
		attrs: Attributes(),
	}
}

// Value resolves the value for a, or "" when the source does not define it.
func (r *Reporter) Value(a Attribute) string {
	v, ok := r.src.Lookup(a.Key)
	if !ok {
		return ""
	}
	return lineBreaks.Replace(v)
}

// Lines returns one "<Label>: <value>" string per attribute, in order.
func (r *Reporter) Lines() []string {
	lines := make([]string, 0, len(r.attrs))
	for _, a := range r.attrs {
		lines = append(lines, a.Label+Separator+r.Value(a))
	}
	return lines
}

// Write writes every line to w, each terminated by a newline.
func (r *Reporter) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range r.Lines() {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

package schema

import (
	"encoding/xml"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// standardAttrs is the attribute set a describe statement reports, in the order
// `mysql --xml` emits them.
var standardAttrs = []string{ColumnNameKey, "Type", "Null", "Key", "Default", "Extra"}

// Write renders the schema as the XML resultset document accepted by ParseXML,
// matching the shape of `mysql --xml` output. Standard describe attributes a
// column does not carry are emitted as xsi:nil placeholder fields, so a dumped
// document lines up row for row with a dump taken from the mysql client, and
// parsing the output yields the schema back.
func (s *Schema) Write(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("<?xml version=\"1.0\"?>\n\n")
	sb.WriteString("<resultset")
	if s.Statement != "" {
		sb.WriteString(` statement="` + xmlEscape(s.Statement) + `"`)
	}
	sb.WriteString(" xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\">\n")

	for i, col := range s.Columns {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  <row>\n")
		for _, name := range standardAttrs {
			value, ok := col.Lookup(name)
			if !ok {
				sb.WriteString("\t<field name=\"" + name + "\" xsi:nil=\"true\" />\n")
				continue
			}
			writeField(&sb, name, value)
		}
		for _, attr := range col.Attributes() {
			if slices.Contains(standardAttrs, attr.Name) {
				continue
			}
			writeField(&sb, attr.Name, attr.Value)
		}
		sb.WriteString("  </row>\n")
	}

	sb.WriteString("</resultset>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write schema XML")
	}

	return nil
}

func writeField(sb *strings.Builder, name, value string) {
	sb.WriteString("\t<field name=\"" + xmlEscape(name) + "\">")
	sb.WriteString(xmlEscape(value))
	sb.WriteString("</field>\n")
}

func xmlEscape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

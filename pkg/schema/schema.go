package schema

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ColumnNameKey is the reserved attribute that carries the source column name.
// Every parsed column descriptor is guaranteed to contain it.
const ColumnNameKey = "Field"

type (
	// Schema is an ordered list of column descriptors for a single table, one
	// descriptor per source column. Document order is preserved and is the order
	// CSV values are expected to appear in.
	Schema struct {
		// Statement is the statement that produced the dump (for example
		// "describe user") when the source document records one.
		Statement string

		// Columns holds one descriptor per source column in document order.
		Columns []*Column
	}

	// Column describes one source column as an ordered set of named attributes
	// (Field, Type, Null, Key, Default, Extra in a MySQL dump). Attributes whose
	// value was empty in the source document are not present.
	Column struct {
		attrs []Attr
	}

	// Attr is a single named column attribute.
	Attr struct {
		Name  string
		Value string
	}
)

// NewColumn builds a column descriptor from the given attributes. Duplicate
// attribute names collapse to the last value. The reserved ColumnNameKey
// attribute must be present, otherwise an error describing the collected
// attributes is returned.
func NewColumn(attrs ...Attr) (*Column, error) {
	c := &Column{attrs: make([]Attr, 0, len(attrs))}
	for _, a := range attrs {
		c.set(a.Name, a.Value)
	}

	if _, ok := c.Lookup(ColumnNameKey); !ok {
		return nil, errors.Errorf("no %q in %s", ColumnNameKey, c)
	}

	return c, nil
}

func (c *Column) set(name, value string) {
	for i := range c.attrs {
		if c.attrs[i].Name == name {
			c.attrs[i].Value = value
			return
		}
	}
	c.attrs = append(c.attrs, Attr{Name: name, Value: value})
}

// Name returns the source column name, the value of the reserved ColumnNameKey
// attribute.
func (c *Column) Name() string {
	return c.Get(ColumnNameKey)
}

// Get returns the value of the named attribute, or the empty string when the
// attribute is absent.
func (c *Column) Get(name string) string {
	v, _ := c.Lookup(name)
	return v
}

// Lookup returns the value of the named attribute and whether it is present.
func (c *Column) Lookup(name string) (string, bool) {
	for _, a := range c.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns the column's attributes in document order.
func (c *Column) Attributes() []Attr {
	return c.attrs
}

// String renders the column's attributes for diagnostics, for example
// {Field=userid, Type=int(11)}.
func (c *Column) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range c.attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name)
		sb.WriteByte('=')
		sb.WriteString(a.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Column returns the descriptor whose source column name matches name.
func (s *Schema) Column(name string) (*Column, bool) {
	for _, c := range s.Columns {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// ColumnNames returns the source column names in schema order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name()
	}
	return names
}

// Parse reads a schema document from r, detecting the format from its first
// non-space byte: '<' selects the XML resultset form, anything else the console
// describe form.
//
// Example usage:
//
//	s, err := schema.Parse(strings.NewReader(dump))
//	if err != nil {
//		log.Fatalf("parse error: %v", err)
//	}
//
//	for _, col := range s.Columns {
//		fmt.Println(col.Name())
//	}
func Parse(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read schema document")
	}

	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) == 0 {
		return nil, errors.New("empty schema document")
	}

	if trimmed[0] == '<' {
		return ParseXML(bytes.NewReader(data))
	}

	return ParseDescribe(bytes.NewReader(trimmed))
}

// ParseFile reads the schema document at path. See Parse for format detection.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open schema file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

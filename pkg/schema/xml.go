package schema

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

type (
	// xmlResultSet mirrors the document emitted by `mysql --xml`. The root
	// element name is not checked so that hand-edited dumps still parse.
	xmlResultSet struct {
		Statement string   `xml:"statement,attr"`
		Rows      []xmlRow `xml:"row"`
	}

	xmlRow struct {
		Fields []xmlField `xml:"field"`
	}

	xmlField struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	}
)

// ParseXML reads the XML resultset form of a describe dump, one <row> element
// per source column:
//
//	<resultset statement="describe user" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
//	  <row>
//	    <field name="Field">userid</field>
//	    <field name="Type">int(10) unsigned</field>
//	    <field name="Null">NO</field>
//	    <field name="Key">PRI</field>
//	    <field name="Default" xsi:nil="true" />
//	    <field name="Extra">auto_increment</field>
//	  </row>
//	</resultset>
//
// Fields with empty or absent text (including xsi:nil fields) are omitted from
// the resulting descriptor. A row without a non-empty "Field" field fails the
// whole parse.
func ParseXML(r io.Reader) (*Schema, error) {
	var doc xmlResultSet
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema XML")
	}

	s := &Schema{
		Statement: doc.Statement,
		Columns:   make([]*Column, 0, len(doc.Rows)),
	}

	for _, row := range doc.Rows {
		attrs := make([]Attr, 0, len(row.Fields))
		for _, field := range row.Fields {
			if field.Value == "" {
				continue
			}
			if field.Name == "" {
				return nil, errors.Errorf("schema field with value %q has no name attribute", field.Value)
			}
			attrs = append(attrs, Attr{Name: field.Name, Value: field.Value})
		}

		col, err := NewColumn(attrs...)
		if err != nil {
			return nil, err
		}
		s.Columns = append(s.Columns, col)
	}

	return s, nil
}

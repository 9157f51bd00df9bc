package mapping

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/schema"
)

// Generate builds a starter mapping for the given schema, mapping every source
// column to a destination column of the same name. The result is meant to be
// written out with Write and edited down by hand.
func Generate(s *schema.Schema, table string) *Mapping {
	m := &Mapping{
		Table:   table,
		Columns: make(map[string]string, len(s.Columns)),
	}
	for _, name := range s.ColumnNames() {
		m.Columns[name] = name
	}
	return m
}

// Write renders the mapping as indented JSON in the form accepted by Parse.
func (m *Mapping) Write(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal mapping")
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write mapping")
	}

	return nil
}

// Package mapping parses the JSON mapping document that routes source CSV
// columns to destination table columns.
//
// A mapping document has exactly two top-level fields:
//
//	{"table": "user", "columns": {"userid": "columns:userid"}}
//
// "table" names the destination table and "columns" maps source column names to
// destination column identifiers. Source columns absent from "columns" are
// dropped during an import. Every key and value must be a non-empty string;
// parsing fails on the first violation.
package mapping

import (
	"encoding/json"
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/schema"
)

type (
	// Mapping is a parsed mapping document.
	Mapping struct {
		// Table is the destination table name.
		Table string `json:"table"`

		// Columns maps source column names to destination column identifiers.
		Columns map[string]string `json:"columns"`
	}

	// mappingDoc separates decoding from validation so that absent fields can be
	// told apart from empty ones.
	mappingDoc struct {
		Table   *string           `json:"table"`
		Columns map[string]string `json:"columns"`
	}
)

// Parse reads a mapping document from r. It fails on malformed JSON, a missing
// or empty "table", a missing or empty "columns" object, and any empty column
// key or value, naming the offending key.
func Parse(r io.Reader) (*Mapping, error) {
	var doc mappingDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse mapping JSON")
	}

	if doc.Table == nil {
		return nil, errors.New(`mapping has no "table"`)
	}
	if *doc.Table == "" {
		return nil, errors.New(`mapping "table" is empty`)
	}
	if doc.Columns == nil {
		return nil, errors.New(`mapping has no "columns"`)
	}
	if len(doc.Columns) == 0 {
		return nil, errors.New(`mapping "columns" is empty`)
	}

	for _, key := range sortedKeys(doc.Columns) {
		if key == "" {
			return nil, errors.New("mapping has an empty column key")
		}
		if doc.Columns[key] == "" {
			return nil, errors.Errorf("%q value is empty", key)
		}
	}

	return &Mapping{Table: *doc.Table, Columns: doc.Columns}, nil
}

// ParseFile reads the mapping document at path.
func ParseFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open mapping file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Destination returns the destination column for the given source column and
// whether the source column is mapped at all.
func (m *Mapping) Destination(source string) (string, bool) {
	dst, ok := m.Columns[source]
	return dst, ok
}

// Validate checks that every mapped source column is present in the schema.
// Unmapped schema columns are fine, they are simply dropped during an import.
func (m *Mapping) Validate(s *schema.Schema) error {
	for _, key := range sortedKeys(m.Columns) {
		if _, ok := s.Column(key); !ok {
			return errors.Errorf("mapping column %q is not in the schema", key)
		}
	}
	return nil
}

// sortedKeys keeps validation order deterministic.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

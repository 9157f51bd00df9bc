package schema

import (
	"io"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// nullCell is how the mysql console renders an absent value.
const nullCell = "NULL"

var (
	// describeLexer tokenizes the bordered grid the mysql console prints for
	// "describe <table>" statements.
	describeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "EOL", Pattern: `\r?\n`},
		{Name: "Border", Pattern: `\+[+-]*\+`},
		{Name: "Pipe", Pattern: `\|`},
		{Name: "Cell", Pattern: `[^|\r\n]+`},
	})

	// describeParser is the participle parser instance for console describe output
	describeParser = participle.MustBuild[consoleTable](
		participle.Lexer(describeLexer),
	)
)

type (
	// consoleTable is the raw line structure of a console describe dump.
	consoleTable struct {
		Lines []*consoleLine `parser:"(EOL | @@)*"`
	}

	// consoleLine is either a +---+ border line or a | separated cell line. The
	// trailing Cell swallows whitespace after the closing pipe or border.
	consoleLine struct {
		Rule  bool     `parser:"( @Border"`
		Cells []string `parser:"| Pipe (@Cell? Pipe)+ ) Cell? EOL?"`
	}
)

// ParseDescribe reads the console table form of a describe dump:
//
//	+----------+------------------+------+-----+---------+----------------+
//	| Field    | Type             | Null | Key | Default | Extra          |
//	+----------+------------------+------+-----+---------+----------------+
//	| userid   | int(10) unsigned | NO   | PRI | NULL    | auto_increment |
//	| nickname | varchar(16)      | NO   | MUL |         |                |
//	+----------+------------------+------+-----+---------+----------------+
//
// The first cell line names the attributes and must include the reserved
// ColumnNameKey column. Each following cell line becomes one descriptor; cells
// that are empty or the literal NULL are omitted from it.
func ParseDescribe(r io.Reader) (*Schema, error) {
	table, err := describeParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse describe output")
	}

	var header []string
	s := &Schema{}

	for _, line := range table.Lines {
		if line.Rule {
			continue
		}

		cells := make([]string, len(line.Cells))
		for i, cell := range line.Cells {
			cells[i] = strings.TrimSpace(cell)
		}

		if header == nil {
			if !slices.Contains(cells, ColumnNameKey) {
				return nil, errors.Errorf("describe header %v has no %q column", cells, ColumnNameKey)
			}
			header = cells
			continue
		}

		if len(cells) != len(header) {
			return nil, errors.Errorf("row %d has %d cells, expected %d", len(s.Columns)+1, len(cells), len(header))
		}

		attrs := make([]Attr, 0, len(cells))
		for i, value := range cells {
			if value == "" || value == nullCell {
				continue
			}
			attrs = append(attrs, Attr{Name: header[i], Value: value})
		}

		col, err := NewColumn(attrs...)
		if err != nil {
			return nil, err
		}
		s.Columns = append(s.Columns, col)
	}

	if header == nil {
		return nil, errors.New("describe output has no header line")
	}

	return s, nil
}

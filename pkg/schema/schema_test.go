package schema_test

import (
	"strings"
	"testing"

	. "github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("detects XML form", func(t *testing.T) {
		s, err := Parse(strings.NewReader(userXML))
		require.NoError(t, err)
		require.Equal(t, "describe user", s.Statement)
		require.Len(t, s.Columns, 4)
	})

	t.Run("detects console form", func(t *testing.T) {
		s, err := Parse(strings.NewReader(userDescribe))
		require.NoError(t, err)
		require.Len(t, s.Columns, 4)
	})

	t.Run("ignores leading whitespace", func(t *testing.T) {
		for _, doc := range []string{
			"\n\n  " + strings.TrimLeft(userXML, "\n"),
			"\n\n" + userDescribe,
		} {
			s, err := Parse(strings.NewReader(doc))
			require.NoError(t, err)
			require.Len(t, s.Columns, 4)
		}
	})

	t.Run("empty document fails", func(t *testing.T) {
		for _, doc := range []string{"", "   \n\t"} {
			s, err := Parse(strings.NewReader(doc))
			require.Error(t, err)
			require.Nil(t, s)
			require.Contains(t, err.Error(), "empty schema document")
		}
	})
}

func TestParseFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := ParseFile("testdata/user.xml")
		require.NoError(t, err)
		require.Equal(t, []string{"userid", "nickname", "email", "created"}, s.ColumnNames())
	})

	t.Run("console file", func(t *testing.T) {
		s, err := ParseFile("testdata/user.txt")
		require.NoError(t, err)
		require.Len(t, s.Columns, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := ParseFile("testdata/nonexistent.xml")
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to open schema file")
	})
}

func TestNewColumn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		col, err := NewColumn(
			Attr{Name: "Field", Value: "userid"},
			Attr{Name: "Type", Value: "int(11)"},
		)
		require.NoError(t, err)
		require.Equal(t, "userid", col.Name())
		require.Equal(t, "int(11)", col.Get("Type"))
		require.Empty(t, col.Get("Extra"))

		_, ok := col.Lookup("Extra")
		require.False(t, ok)
	})

	t.Run("requires the Field attribute", func(t *testing.T) {
		col, err := NewColumn(Attr{Name: "Type", Value: "int(11)"})
		require.Error(t, err)
		require.Nil(t, col)
		require.EqualError(t, err, `no "Field" in {Type=int(11)}`)
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		col, err := NewColumn(
			Attr{Name: "Field", Value: "userid"},
			Attr{Name: "Type", Value: "int(11)"},
			Attr{Name: "Type", Value: "bigint(20)"},
		)
		require.NoError(t, err)
		require.Equal(t, "bigint(20)", col.Get("Type"))
		require.Len(t, col.Attributes(), 2)
	})
}

func TestColumnString(t *testing.T) {
	col, err := NewColumn(
		Attr{Name: "Field", Value: "userid"},
		Attr{Name: "Null", Value: "NO"},
	)
	require.NoError(t, err)
	require.Equal(t, "{Field=userid, Null=NO}", col.String())
}

func TestSchemaColumn(t *testing.T) {
	s, err := Parse(strings.NewReader(userXML))
	require.NoError(t, err)

	col, ok := s.Column("nickname")
	require.True(t, ok)
	require.Equal(t, "varchar(16)", col.Get("Type"))

	_, ok = s.Column("missing")
	require.False(t, ok)
}

package schema_test

import (
	_ "embed"
	"strings"
	"testing"

	. "github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/user.xml
var userXML string

func TestParseXML(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := ParseXML(strings.NewReader(userXML))
		require.NoError(t, err)
		require.Equal(t, "describe user", s.Statement)
		require.Len(t, s.Columns, 4)
		require.Equal(t, []string{"userid", "nickname", "email", "created"}, s.ColumnNames())

		userid := s.Columns[0]
		require.Equal(t, "userid", userid.Name())
		require.Equal(t, "int(10) unsigned", userid.Get("Type"))
		require.Equal(t, "NO", userid.Get("Null"))
		require.Equal(t, "PRI", userid.Get("Key"))
		require.Equal(t, "auto_increment", userid.Get("Extra"))
	})

	t.Run("empty fields are omitted", func(t *testing.T) {
		s, err := ParseXML(strings.NewReader(userXML))
		require.NoError(t, err)

		// xsi:nil Default on userid
		_, ok := s.Columns[0].Lookup("Default")
		require.False(t, ok)

		// empty-text Default and Extra on nickname
		nickname := s.Columns[1]
		_, ok = nickname.Lookup("Default")
		require.False(t, ok)
		_, ok = nickname.Lookup("Extra")
		require.False(t, ok)
		require.Len(t, nickname.Attributes(), 4)
	})

	t.Run("row without Field fails", func(t *testing.T) {
		doc := `
<resultset xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <row>
	<field name="Type">varchar(16)</field>
	<field name="Null">NO</field>
  </row>
</resultset>`
		s, err := ParseXML(strings.NewReader(doc))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), `no "Field" in`)
		require.Contains(t, err.Error(), "varchar(16)")
	})

	t.Run("empty Field text fails", func(t *testing.T) {
		doc := `
<resultset xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <row>
	<field name="Field"></field>
	<field name="Type">varchar(16)</field>
  </row>
</resultset>`
		s, err := ParseXML(strings.NewReader(doc))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), `no "Field" in`)
	})

	t.Run("field without name attribute fails", func(t *testing.T) {
		doc := `
<resultset>
  <row>
	<field name="Field">userid</field>
	<field>int(11)</field>
  </row>
</resultset>`
		s, err := ParseXML(strings.NewReader(doc))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "no name attribute")
	})

	t.Run("malformed document fails", func(t *testing.T) {
		s, err := ParseXML(strings.NewReader("<resultset><row></resultset>"))
		require.Error(t, err)
		require.Nil(t, s)
		require.Contains(t, err.Error(), "failed to parse schema XML")
	})

	t.Run("empty resultset", func(t *testing.T) {
		s, err := ParseXML(strings.NewReader("<resultset></resultset>"))
		require.NoError(t, err)
		require.Empty(t, s.Columns)
	})
}

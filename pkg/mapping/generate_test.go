package mapping_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/saintstack/mysqlimport/pkg/mapping"
	"github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGenerate(t *testing.T) {
	s, err := schema.Parse(strings.NewReader(userTable))
	require.NoError(t, err)

	m := Generate(s, "user")
	require.Equal(t, "user", m.Table)
	require.Equal(t, map[string]string{
		"userid":   "userid",
		"nickname": "nickname",
	}, m.Columns)
}

func TestWrite(t *testing.T) {
	s, err := schema.Parse(strings.NewReader(userTable))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Generate(s, "user").Write(&buf))
	golden.Assert(t, buf.String(), "init.golden")
}

func TestWriteRoundTrip(t *testing.T) {
	s, err := schema.Parse(strings.NewReader(userTable))
	require.NoError(t, err)

	var buf bytes.Buffer
	m := Generate(s, "user")
	require.NoError(t, m.Write(&buf))

	reparsed, err := Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, m, reparsed)
}

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saintstack/mysqlimport/pkg/cmd/testutil"
	"github.com/saintstack/mysqlimport/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestValidateCommand_FlagConfiguration(t *testing.T) {
	command := validate(validateParams{})

	require.Equal(t, "validate", command.Name)
	require.Len(t, command.Flags, 2)

	strictFlag := command.Flags[0].(*cli.BoolFlag)
	require.Equal(t, "strict", strictFlag.Name)

	skipHeaderFlag := command.Flags[1].(*cli.BoolFlag)
	require.Equal(t, "skip-header", skipHeaderFlag.Name)
}

func TestValidateCommand(t *testing.T) {
	command := validate(validateParams{})

	var out bytes.Buffer
	command.Writer = &out
	command.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := command.Run(t.Context(), []string{
		"validate", "--skip-header",
		"testdata/user.csv", "testdata/user.xml", "testdata/user.json",
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Validated 2 rows for user")
	require.Contains(t, out.String(), "2 source columns dropped")
}

func TestValidateCommand_StrictMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"table":"user","columns":{"userid":"userid","wrong":"wrong"}}`), consts.ModeFile))

	err := testutil.RunCommand(t, validate(validateParams{}),
		"--strict", "--skip-header", "testdata/user.csv", "testdata/user.xml", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `mapping column "wrong" is not in the schema`)

	// The same mapping passes when strict mode is off
	err = testutil.RunCommand(t, validate(validateParams{}),
		"--skip-header", "testdata/user.csv", "testdata/user.xml", path)
	require.NoError(t, err)
}

func TestValidateCommand_MissingSchema(t *testing.T) {
	err := testutil.RunCommand(t, validate(validateParams{}),
		"testdata/user.csv", "nope.xml", "testdata/user.json")
	require.Error(t, err)

	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	require.Equal(t, 3, coder.ExitCode())
}

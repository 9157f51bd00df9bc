package utils_test

import (
	"testing"

	"github.com/saintstack/mysqlimport/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestBacktickIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare table name",
			input:    "user",
			expected: "`user`",
		},
		{
			name:     "database qualified table",
			input:    "staging.user",
			expected: "`staging`.`user`",
		},
		{
			name:     "destination column with a colon",
			input:    "columns:userid",
			expected: "`columns:userid`",
		},
		{
			name:     "already backticked",
			input:    "`user`",
			expected: "`user`",
		},
		{
			name:     "only the database part backticked",
			input:    "`staging`.user",
			expected: "`staging`.`user`",
		},
		{
			name:     "empty name",
			input:    "",
			expected: "",
		},
		{
			name:     "name with spaces",
			input:    "my table",
			expected: "`my table`",
		},
		{
			name:     "backticked name containing dots",
			input:    "`db.table`",
			expected: "`db.table`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.BacktickIdentifier(tt.input))
		})
	}
}

func TestBacktickQualifiedName(t *testing.T) {
	tests := []struct {
		name     string
		database *string
		table    string
		expected string
	}{
		{
			name:     "database and table",
			database: utils.Ptr("staging"),
			table:    "user",
			expected: "`staging`.`user`",
		},
		{
			name:     "nil database",
			database: nil,
			table:    "user",
			expected: "`user`",
		},
		{
			name:     "empty database",
			database: utils.Ptr(""),
			table:    "user",
			expected: "`user`",
		},
		{
			name:     "backticked database",
			database: utils.Ptr("`staging`"),
			table:    "user",
			expected: "`staging`.`user`",
		},
		{
			name:     "backticked table",
			database: utils.Ptr("staging"),
			table:    "`user`",
			expected: "`staging`.`user`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.BacktickQualifiedName(tt.database, tt.table))
		})
	}
}

package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/utils"
)

const (
	journalDatabase = "mysqlcsvimport"
	journalTable    = "imports"
)

// journalDDL bootstraps the import journal. IF NOT EXISTS keeps both
// statements idempotent, so they run unconditionally before each journaled
// load.
var journalDDL = []string{
	`CREATE DATABASE IF NOT EXISTS mysqlcsvimport
ENGINE = Atomic
COMMENT 'mysqlcsvimport journal database'`,

	`CREATE TABLE IF NOT EXISTS mysqlcsvimport.imports (
    id String COMMENT 'Unique id for this run',
    target_table String COMMENT 'The destination table',
    data_file String COMMENT 'The data file that was loaded',
    rows UInt64 COMMENT 'The number of rows inserted',
    duration_ms UInt64 COMMENT 'How long the load took',
    error Nullable(String) COMMENT 'The error that stopped the load (if any)',
    version String COMMENT 'The version of mysqlcsvimport used',
    started_at DateTime(3, 'UTC') COMMENT 'The UTC time at which the load started'
)
ENGINE = MergeTree()
ORDER BY started_at
COMMENT 'Table used to track imports'`,
}

// ensureJournal creates the journal database and table if they don't exist.
func (i *Importer) ensureJournal(ctx context.Context) error {
	for _, stmt := range journalDDL {
		if err := i.config.Target.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to bootstrap import journal")
		}
	}

	return nil
}

// recordImport writes one journal row for this run, successful or not.
// Failures are reported as warnings; the load result stands either way.
func (i *Importer) recordImport(ctx context.Context, started time.Time, result *Result, runErr error) {
	insertSQL := utils.NewSQLBuilder().
		InsertInto(utils.Ptr(journalDatabase), journalTable).
		Columns("id", "target_table", "data_file", "rows", "duration_ms", "error", "version", "started_at").
		Values(8).
		StringWithoutSemicolon()

	var errorValue *string
	if runErr != nil {
		errorValue = utils.Ptr(runErr.Error())
	}

	err := i.config.Target.Exec(ctx, insertSQL,
		uuid.NewString(),
		result.Table,
		i.config.DataFile,
		uint64(result.Rows),
		uint64(result.Duration.Milliseconds()),
		errorValue,
		i.config.Version,
		started,
	)
	if err != nil {
		fmt.Printf("Warning: failed to record import: %v\n", err)
	}
}

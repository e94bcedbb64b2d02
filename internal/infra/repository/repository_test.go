//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDBTX satisfies db.DBTX for repositories that only Exec. It records the
// statement and arguments and returns a canned result.
type fakeDBTX struct {
	execSQL  string
	execArgs []any
	tag      pgconn.CommandTag
	err      error
}

func (f *fakeDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = sql
	f.execArgs = args
	return f.tag, f.err
}

func (f *fakeDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("Query not expected in this test")
}

func (f *fakeDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("QueryRow not expected in this test")
}

// Copyright 2019 Anapaya Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package db

import (
	"context"
	"database/sql"
)

// Sqler contains the common functions of *sql.DB and *sql.Tx.
type Sqler interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Querier contains the read functions common to *sql.DB and *sql.Tx. The
// read pool of a Sqlite database satisfies it, and so does a transaction,
// which allows reads inside a transaction to observe its uncommitted writes.
type Querier interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// DoInTx executes the action in a transaction. If db already is a
// transaction the action runs in the existing transaction and the
// transaction is left alone, otherwise a new transaction is created that is
// committed on success and rolled back on error.
func DoInTx(ctx context.Context, db Sqler,
	action func(context.Context, *sql.Tx) error) error {

	tx, ok := db.(*sql.Tx)
	if !ok {
		var err error
		if tx, err = db.(*sql.DB).BeginTx(ctx, nil); err != nil {
			return NewTxError("create tx", err)
		}
	}
	if err := action(ctx, tx); err != nil {
		if !ok {
			_ = tx.Rollback()
		}
		return err
	}
	if !ok {
		if err := tx.Commit(); err != nil {
			return NewTxError("commit", err)
		}
	}
	return nil
}

// DeleteInTx executes the delete function in a transaction and returns the
// number of deleted rows.
func DeleteInTx(ctx context.Context, db Sqler,
	del func(tx *sql.Tx) (sql.Result, error)) (int, error) {

	var res sql.Result
	err := DoInTx(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		res, err = del(tx)
		return err
	})
	if err != nil {
		return 0, NewWriteError("delete", err)
	}
	deleted, _ := res.RowsAffected()
	return int(deleted), nil
}

// Copyright 2025 ETH Zurich, Anapaya Systems
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
	"errors"
	"fmt"
	"net/url"
	"runtime"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // sqlite driver
)

// Reader is the read-only surface of a connection pool.
type Reader interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Stats() sql.DBStats
}

// SqliteConfig allows configuring the sqlite database instance.
type SqliteConfig struct {
	// MaxOpenReadConns limits the read pool. Zero selects a default based
	// on the number of CPUs.
	MaxOpenReadConns int
	// MaxIdleReadConns limits the idle connections kept in the read pool.
	// Zero keeps the database/sql default.
	MaxIdleReadConns int
	// InMemory backs the database by memory instead of a file. The path is
	// then the name of the shared in-memory database and must be unique
	// within the process.
	InMemory bool
}

// NewSqlite opens a sqlite database with separate read and write connection
// pools. The write pool is limited to a single connection, serializing all
// writes. The read pool defaults to a limit based on the number of CPUs,
// which the config can raise or lower.
//
// The [Sqlite.Full] pool can perform any operation, including writes and
// transactions. The [Sqlite.ReadOnly] pool must only be used for reads.
// Read-only transactions are not supported.
func NewSqlite(path string, cfg *SqliteConfig) (*Sqlite, error) {
	var c SqliteConfig
	if cfg != nil {
		c = *cfg
	}

	// A plain :memory: database is private to each connection, so the read
	// pool and the write pool would not see the same data. Named in-memory
	// databases with a shared cache do not have that problem, only those
	// are accepted.
	if strings.Contains(path, ":memory:") {
		return nil, fmt.Errorf("use explicitly named memory database")
	}
	noFile, ok := strings.CutPrefix(path, "file:")

	connParams := make(url.Values)
	// SQLite starts transactions in DEFERRED mode and upgrades them to
	// write transactions when the first write statement is issued. The
	// upgrade fails immediately with SQLITE_BUSY when another connection
	// holds the lock, without respecting busy_timeout. Starting every
	// transaction with BEGIN IMMEDIATE takes the write lock up front,
	// where busy_timeout does apply.
	connParams.Add("_txlock", "immediate")
	// In WAL journal mode readers do not block the writer and the writer
	// does not block readers, unlike with the default rollback journal.
	connParams.Add("_pragma", "journal_mode(WAL)")
	// busy_timeout is in milliseconds. The default of 0 turns every lock
	// contention into an immediate SQLITE_BUSY error.
	connParams.Add("_pragma", "busy_timeout(1000)")
	// With synchronous=NORMAL the engine still syncs at the critical
	// moments. WAL mode is safe from corruption under NORMAL.
	connParams.Add("_pragma", "synchronous(NORMAL)")
	// Foreign keys are off by default for backwards compatibility, the
	// schema relies on them for its ownership cascades.
	connParams.Add("_pragma", "foreign_keys(1)")
	if c.InMemory {
		registerMemoryDB(noFile)
		connParams.Add("mode", "memory")
		// The shared cache attaches the read and the write pool to the
		// same in-memory database.
		connParams.Add("cache", "shared")
	}

	connURL := path + "?" + connParams.Encode()
	if !ok {
		connURL = "file:" + connURL
	}

	write, err := sql.Open("sqlite", connURL)
	if err != nil {
		return nil, fmt.Errorf("opening write database: %w", err)
	}
	write.SetMaxOpenConns(1)

	read, err := sql.Open("sqlite", connURL)
	if err != nil {
		defer write.Close()
		return nil, fmt.Errorf("opening read database: %w", err)
	}
	if c.MaxOpenReadConns == 0 {
		c.MaxOpenReadConns = max(4, runtime.NumCPU())
	}
	read.SetMaxOpenConns(c.MaxOpenReadConns)
	if c.MaxIdleReadConns != 0 {
		read.SetMaxIdleConns(c.MaxIdleReadConns)
	}

	db := &Sqlite{
		Full:     write,
		ReadOnly: read,
	}
	if c.InMemory {
		runtime.AddCleanup(db, func(name string) { unregisterMemoryDB(name) }, noFile)
	}
	return db, nil
}

// Sqlite bundles the two connection pools of one database.
type Sqlite struct {
	Full     *sql.DB
	ReadOnly Reader
}

// Setup applies the schema to a fresh database and records schemaVersion as
// its user_version. A database that already carries a different version is
// rejected, there is no migration support.
func (db *Sqlite) Setup(schema string, schemaVersion int) error {
	var existingVersion int
	if err := db.Full.QueryRow("PRAGMA user_version;").Scan(&existingVersion); err != nil {
		return fmt.Errorf("checking database schema version: %w", err)
	}
	switch {
	case existingVersion == 0:
		if _, err := db.Full.Exec(schema); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
		_, err := db.Full.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
		if err != nil {
			return fmt.Errorf("writing schema version: %w", err)
		}
		return nil
	case existingVersion != schemaVersion:
		return fmt.Errorf("database schema version mismatch: expected %d, have %d",
			schemaVersion, existingVersion,
		)
	default:
		return nil
	}
}

// Checkpoint runs a WAL checkpoint with FULL mode on the write database.
func (db *Sqlite) Checkpoint(ctx context.Context) (CheckpointStats, error) {
	return Checkpoint(ctx, db.Full, "FULL")
}

type CheckpointStats struct {
	Busy         int
	LogFrames    int
	Checkpointed int
}

// Checkpoint runs a WAL checkpoint with the given mode (PASSIVE, FULL,
// RESTART, TRUNCATE). It returns the three integers that SQLite reports:
//
//	busy        = number of frames not checkpointed due to active readers
//	log         = total frames in the WAL
//	checkpointed= frames actually checkpointed
func Checkpoint(ctx context.Context, db *sql.DB, mode string) (CheckpointStats, error) {
	var busy, logFrames, checkpointed int
	query := fmt.Sprintf("PRAGMA wal_checkpoint(%s);", mode)
	if err := db.QueryRowContext(ctx, query).Scan(&busy, &logFrames, &checkpointed); err != nil {
		return CheckpointStats{}, fmt.Errorf("performing checkpoint: %w", err)
	}
	return CheckpointStats{
		Busy:         busy,
		LogFrames:    logFrames,
		Checkpointed: checkpointed,
	}, nil
}

// Close closes both pools.
func (db *Sqlite) Close() error {
	var errs []error

	if err := db.Full.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing write db: %w", err))
	}
	if err := db.ReadOnly.(*sql.DB).Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing read db: %w", err))
	}
	return errors.Join(errs...)
}

// memoryDBCheck guards against two in-memory databases sharing a name. With
// the shared cache they would silently be the same database.
var memoryDBCheck = struct {
	mtx sync.Mutex
	dbs map[string]struct{}
}{
	dbs: make(map[string]struct{}),
}

func registerMemoryDB(name string) {
	memoryDBCheck.mtx.Lock()
	defer memoryDBCheck.mtx.Unlock()
	if _, ok := memoryDBCheck.dbs[name]; ok {
		panic(fmt.Sprintf("memory database with name %s already exists", name))
	}
	memoryDBCheck.dbs[name] = struct{}{}
}

func unregisterMemoryDB(name string) {
	memoryDBCheck.mtx.Lock()
	defer memoryDBCheck.mtx.Unlock()
	delete(memoryDBCheck.dbs, name)
}

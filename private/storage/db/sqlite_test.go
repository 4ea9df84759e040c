// Copyright 2025 SCION Association
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
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCount keeps the names of the in-memory test databases unique, reusing a
// name panics for the lifetime of the first instance.
var memCount atomic.Int32

const testSchema = `CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT NOT NULL);`

func TestNewSqliteRejectsAnonymousMemory(t *testing.T) {
	_, err := NewSqlite(":memory:", &SqliteConfig{InMemory: true})
	assert.Error(t, err)
	_, err = NewSqlite("file::memory:", nil)
	assert.Error(t, err)
}

func TestMemoryDBNamesAreUnique(t *testing.T) {
	name := fmt.Sprintf("db_helper_test_%d", memCount.Add(1))
	db, err := NewSqlite(name, &SqliteConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Panics(t, func() {
		_, _ = NewSqlite(name, &SqliteConfig{InMemory: true})
	})
}

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helper.db")
	db, err := NewSqlite(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Setup(testSchema, 3))
	// Setup is idempotent on a database that matches.
	require.NoError(t, db.Setup(testSchema, 3))
	require.NoError(t, db.Close())

	// A schema version mismatch is detected on reopen.
	db, err = NewSqlite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	err = db.Setup(testSchema, 4)
	assert.ErrorContains(t, err, "schema version mismatch")
}

func TestPoolLimits(t *testing.T) {
	name := fmt.Sprintf("db_helper_test_%d", memCount.Add(1))
	db, err := NewSqlite(name, &SqliteConfig{
		MaxOpenReadConns: 2,
		InMemory:         true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.Equal(t, 2, db.ReadOnly.Stats().MaxOpenConnections)
	assert.Equal(t, 1, db.Full.Stats().MaxOpenConnections)
}

func TestCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helper.db")
	db, err := NewSqlite(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Setup(testSchema, 1))

	_, err = db.Full.Exec(`INSERT INTO kv (k, v) VALUES ('a', '1'), ('b', '2')`)
	require.NoError(t, err)

	stats, err := db.Checkpoint(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Busy)
	assert.Greater(t, stats.LogFrames, 0)
	// Without active readers a FULL checkpoint transfers the whole log.
	assert.Equal(t, stats.LogFrames, stats.Checkpointed)
}

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

package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nsiproto/supa/private/storage/db"
	"github.com/nsiproto/supa/private/storage/reservation/sqlite"
	"github.com/nsiproto/supa/reservation/reservationdbtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// dbCount keeps the names of the in-memory test databases unique, reusing a
// name would silently share state between tests.
var dbCount atomic.Int32

func newBackend(t *testing.T) *sqlite.Backend {
	name := fmt.Sprintf("reservationdb_test_%d", dbCount.Add(1))
	b, err := sqlite.New(name, &db.SqliteConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

var _ reservationdbtest.Testable = (*TestBackend)(nil)

type TestBackend struct {
	*sqlite.Backend
}

func (b *TestBackend) Prepare(t *testing.T, _ context.Context) {
	b.Backend = newBackend(t)
}

func TestReservationDBSuite(t *testing.T) {
	tdb := &TestBackend{}
	reservationdbtest.Test(t, tdb)
}

// TestOpenExisting tests that New does not overwrite an existing database if
// versions match.
func TestOpenExisting(t *testing.T) {
	tmpF := tempFilename(t)
	b, err := sqlite.New(tmpF, nil)
	require.NoError(t, err, "Failed to open DB")
	res := reservationdbtest.AllocReservation("existing")
	reservationdbtest.InsertReservation(t, b, res)
	require.NoError(t, b.Close())

	// Open existing database
	b, err = sqlite.New(tmpF, nil)
	require.NoError(t, err)
	defer b.Close()
	ctx, cancelF := context.WithTimeout(context.Background(), time.Second)
	defer cancelF()
	got, err := b.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(res, got))
}

// TestOpenNewer tests that New does not overwrite an existing database if
// it's of a newer version.
func TestOpenNewer(t *testing.T) {
	tmpF := tempFilename(t)
	b, err := sqlite.New(tmpF, nil)
	require.NoError(t, err, "Failed to open DB")
	// Write a newer version
	_, err = b.DB().Exec(fmt.Sprintf("PRAGMA user_version = %d", sqlite.SchemaVersion+1))
	require.NoError(t, err)
	require.NoError(t, b.Close())

	b, err = sqlite.New(tmpF, nil)
	assert.Error(t, err)
	assert.Nil(t, b)
}

func tempFilename(t *testing.T) string {
	return filepath.Join(t.TempDir(), "reservation.db")
}

// TestSchemaBackstops writes around the validation layer to check that the
// schema itself is the last line of defense.
func TestSchemaBackstops(t *testing.T) {
	b := newBackend(t)

	inst := `
	INSERT INTO reservations (connection_id, protocol_version, correlation_id,
		requester_nsa, provider_nsa, global_reservation_id, version,
		start_time, end_time, bandwidth, directionality, symmetric,
		src_domain, src_network_type, src_port, src_vlans,
		dst_domain, dst_network_type, dst_port, dst_vlans,
		reservation_state, provisioning_state, lifecycle_state)
	VALUES (?, 'v2', ?, 'requester', 'provider', 'global', 1,
		'2026-08-24 09:00:00', '2026-08-31 17:30:00', 100, 'BI_DIRECTIONAL', 1,
		'dom', 'topology', 'p1', '1779',
		'dom', 'topology', 'p2', '1779',
		?, ?, ?)
	`
	insert := func(reservationState string, provisioningState any,
		lifecycleState string) (uuid.UUID, error) {

		id := uuid.New()
		_, err := b.DB().Exec(inst, id.String(), uuid.NewString(),
			reservationState, provisioningState, lifecycleState)
		return id, err
	}

	connID, err := insert("ReserveStart", nil, "Created")
	require.NoError(t, err)

	_, err = insert("ReserveDone", nil, "Created")
	assert.True(t, db.IsConstraintViolation(err), "unknown reservation state")
	_, err = insert("ReserveStart", nil, "Gone")
	assert.True(t, db.IsConstraintViolation(err), "unknown lifecycle state")
	// The nullable state column accepts NULL only, not the empty string.
	_, err = insert("ReserveStart", "", "Created")
	assert.True(t, db.IsConstraintViolation(err), "empty provisioning state")

	// Sibling orders are unique per parent even when the renumbering logic
	// is bypassed.
	_, err = b.DB().Exec(
		`INSERT INTO path_traces (path_trace_id, ag_connection_id,
			connection_id) VALUES ('trace', 'ag-1', ?)`, connID.String())
	require.NoError(t, err)
	pathID := uuid.NewString()
	_, err = b.DB().Exec(
		`INSERT INTO paths (path_id, path_trace_id, ag_connection_id)
			VALUES (?, 'trace', 'ag-1')`, pathID)
	require.NoError(t, err)
	_, err = b.DB().Exec(
		`INSERT INTO segments (segment_id, path_id, upa_connection_id,
			"order") VALUES ('seg-a', ?, 'upa-a', 0)`, pathID)
	require.NoError(t, err)
	_, err = b.DB().Exec(
		`INSERT INTO segments (segment_id, path_id, upa_connection_id,
			"order") VALUES ('seg-b', ?, 'upa-b', 0)`, pathID)
	assert.True(t, db.IsConstraintViolation(err), "duplicate sibling order")
}

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

package reservationdb_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsiproto/supa/pkg/metrics"
	"github.com/nsiproto/supa/pkg/private/prom"
	dblib "github.com/nsiproto/supa/private/storage/db"
	reservationdb "github.com/nsiproto/supa/private/storage/reservation/metrics"
	"github.com/nsiproto/supa/private/storage/reservation/sqlite"
	"github.com/nsiproto/supa/reservation"
	"github.com/nsiproto/supa/reservation/mock_reservation"
	"github.com/nsiproto/supa/reservation/reservationdbtest"
)

var dbCount atomic.Int32

func newWrappedDB(t *testing.T, c metrics.Counter) reservation.DB {
	name := fmt.Sprintf("reservationdb_metrics_test_%d", dbCount.Add(1))
	b, err := sqlite.New(name, &dblib.SqliteConfig{InMemory: true})
	require.NoError(t, err)
	db := reservationdb.WrapDB(b, reservationdb.Config{
		Driver:       "sqlite",
		QueriesTotal: c,
	})
	t.Cleanup(func() { db.Close() })
	return db
}

var _ reservationdbtest.Testable = (*TestBackend)(nil)

type TestBackend struct {
	reservation.DB
}

func (b *TestBackend) Prepare(t *testing.T, _ context.Context) {
	b.DB = newWrappedDB(t, metrics.NewTestCounter())
}

// TestReservationDBSuite runs the whole acceptance suite through the metrics
// wrapper, so every operation is checked to forward arguments and results
// unchanged.
func TestReservationDBSuite(t *testing.T) {
	tdb := &TestBackend{}
	reservationdbtest.Test(t, tdb)
}

func TestObservedLabels(t *testing.T) {
	c := metrics.NewTestCounter()
	db := newWrappedDB(t, c)
	ctx, cancelF := context.WithTimeout(context.Background(), time.Second)
	defer cancelF()

	value := func(op, result string) float64 {
		return metrics.CounterValue(metrics.CounterWith(c,
			"driver", "sqlite", "operation", op, prom.LabelResult, result))
	}

	res := reservationdbtest.AllocReservation("observed")
	require.NoError(t, db.CreateReservation(ctx, res))
	assert.Equal(t, float64(1), value("create_reservation", prom.Success))

	bad := reservationdbtest.AllocReservation("observed bad")
	bad.Directionality = "Sideways"
	assert.Error(t, db.CreateReservation(ctx, bad))
	assert.Equal(t, float64(1), value("create_reservation", "err_invalid_input_data"))

	_, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	assert.Equal(t, float64(1), value("get_reservation", prom.Success))

	err = db.SetPortEnabled(ctx, uuid.New(), true)
	assert.Error(t, err)
	assert.Equal(t, float64(1), value("set_port_enabled", "err_write"))

	tx, err := db.BeginTransaction(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, float64(1), value("tx_begin", prom.Success))
	assert.Equal(t, float64(1), value("tx_commit", prom.Success))
	// Rolling back a committed transaction reports the engine's error to the
	// caller, but does not count as a failed query.
	assert.Error(t, tx.Rollback())
	assert.Equal(t, float64(1), value("tx_rollback", prom.Success))
}

// TestPromQueryCounter connects the wrapper to a real prometheus counter
// vector and checks the exported series.
func TestPromQueryCounter(t *testing.T) {
	qv := prom.NewCounterVec("supa", "reservationdb", "queries_total",
		"Total queries to the reservation database.",
		[]string{"driver", "operation", prom.LabelResult})
	db := newWrappedDB(t, metrics.NewPromCounter(qv))
	ctx, cancelF := context.WithTimeout(context.Background(), time.Second)
	defer cancelF()

	res := reservationdbtest.AllocReservation("prom counter")
	require.NoError(t, db.CreateReservation(ctx, res))
	// A second insert under the same connection id violates the primary key.
	assert.Error(t, db.CreateReservation(ctx, res))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		qv.WithLabelValues("sqlite", "create_reservation", prom.Success)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		qv.WithLabelValues("sqlite", "create_reservation", "err_write")))
}

// TestForwarding checks against mocks that the wrapper hands every call to
// the wrapped DB and returns its results unchanged.
func TestForwarding(t *testing.T) {
	mctrl := gomock.NewController(t)
	defer mctrl.Finish()
	inner := mock_reservation.NewMockDB(mctrl)
	c := metrics.NewTestCounter()
	db := reservationdb.WrapDB(inner, reservationdb.Config{
		Driver:       "mem",
		QueriesTotal: c,
	})
	ctx := context.Background()

	value := func(op, result string) float64 {
		return metrics.CounterValue(metrics.CounterWith(c,
			"driver", "mem", "operation", op, prom.LabelResult, result))
	}

	res := reservationdbtest.AllocReservation("forwarded")
	inner.EXPECT().CreateReservation(gomock.Any(), res).Return(nil)
	require.NoError(t, db.CreateReservation(ctx, res))

	inner.EXPECT().GetReservation(gomock.Any(), res.ConnectionID).Return(res, nil)
	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	assert.Same(t, res, got)

	tx := mock_reservation.NewMockTransaction(mctrl)
	inner.EXPECT().BeginTransaction(gomock.Any(), gomock.Nil()).Return(tx, nil)
	wtx, err := db.BeginTransaction(ctx, nil)
	require.NoError(t, err)

	stats := reservation.InsertStats{Inserted: 7}
	trace := &reservation.PathTrace{}
	tx.EXPECT().PutPathTrace(gomock.Any(), trace).Return(stats, nil)
	gotStats, err := wtx.PutPathTrace(ctx, trace)
	require.NoError(t, err)
	assert.Equal(t, stats, gotStats)

	// sql.ErrTxDone on rollback is surfaced to the caller but counted as a
	// successful query.
	tx.EXPECT().Rollback().Return(sql.ErrTxDone)
	assert.ErrorIs(t, wtx.Rollback(), sql.ErrTxDone)
	assert.Equal(t, float64(1), value("tx_rollback", prom.Success))
}

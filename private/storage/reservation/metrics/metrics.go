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

package reservationdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"

	"github.com/nsiproto/supa/connection/fsm"
	"github.com/nsiproto/supa/pkg/metrics"
	"github.com/nsiproto/supa/pkg/private/prom"
	dblib "github.com/nsiproto/supa/private/storage/db"
	"github.com/nsiproto/supa/private/tracing"
	"github.com/nsiproto/supa/reservation"
)

type promOp string

const (
	promOpCreateReservation    promOp = "create_reservation"
	promOpGetReservation       promOp = "get_reservation"
	promOpListReservations     promOp = "list_reservations"
	promOpSetReservationState  promOp = "set_reservation_state"
	promOpSetProvisioningState promOp = "set_provisioning_state"
	promOpSetLifecycleState    promOp = "set_lifecycle_state"
	promOpSetSelectedVlans     promOp = "set_selected_vlans"
	promOpSetParameter         promOp = "set_parameter"
	promOpGetParameters        promOp = "get_parameters"
	promOpPutPathTrace         promOp = "put_path_trace"
	promOpGetPathTrace         promOp = "get_path_trace"
	promOpRemoveSegment        promOp = "remove_segment"
	promOpRemoveStp            promOp = "remove_stp"
	promOpDeleteReservation    promOp = "delete_reservation"
	promOpCreatePort           promOp = "create_port"
	promOpGetPort              promOp = "get_port"
	promOpGetPortByName        promOp = "get_port_by_name"
	promOpListPorts            promOp = "list_ports"
	promOpSetPortEnabled       promOp = "set_port_enabled"
	promOpCreateConnection     promOp = "create_connection"
	promOpGetConnection        promOp = "get_connection"
	promOpListConnections      promOp = "list_connections_for_port"

	promOpBeginTx    promOp = "tx_begin"
	promOpCommitTx   promOp = "tx_commit"
	promOpRollbackTx promOp = "tx_rollback"
)

type Config struct {
	Driver       string
	QueriesTotal metrics.Counter
}

// WrapDB wraps the given reservation DB into one that also exports metrics.
// The driver name will be added as a label to all metrics, so that multiple
// reservation DBs can be differentiated.
func WrapDB(rsvDB reservation.DB, cfg Config) reservation.DB {
	return &metricsReservationDB{
		metricsExecutor: &metricsExecutor{
			rsvDB:   rsvDB,
			metrics: &Observer{Cfg: cfg},
		},
		db: rsvDB,
	}
}

type Observer struct {
	Cfg Config
}

func (c *Observer) Observe(ctx context.Context, op promOp, action func(ctx context.Context) error) {
	span, ctx := opentracing.StartSpanFromContext(ctx,
		fmt.Sprintf("reservationdb.%s", string(op)))
	defer span.Finish()
	err := action(ctx)

	label := dblib.ErrToMetricLabel(err)
	tracing.Error(span, err)
	tracing.ResultLabel(span, label)

	labels := queryLabels{
		Driver:    c.Cfg.Driver,
		Operation: string(op),
		Result:    label,
	}
	metrics.CounterInc(metrics.CounterWith(c.Cfg.QueriesTotal, labels.Expand()...))
}

type queryLabels struct {
	Driver    string
	Operation string
	Result    string
}

func (l queryLabels) Expand() []string {
	return []string{"driver", l.Driver, "operation", l.Operation, prom.LabelResult, l.Result}
}

var _ (reservation.DB) = (*metricsReservationDB)(nil)

// metricsReservationDB is a reservation DB wrapper that exports the counts of
// operations as prometheus metrics.
type metricsReservationDB struct {
	*metricsExecutor
	// db is only needed to have the BeginTransaction and Close methods.
	db reservation.DB
}

func (db *metricsReservationDB) BeginTransaction(ctx context.Context,
	opts *sql.TxOptions) (reservation.Transaction, error) {

	var tx reservation.Transaction
	var err error
	db.metricsExecutor.metrics.Observe(ctx, promOpBeginTx, func(ctx context.Context) error {
		tx, err = db.db.BeginTransaction(ctx, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &metricsTransaction{
		tx:  tx,
		ctx: ctx,
		metricsExecutor: &metricsExecutor{
			rsvDB:   tx,
			metrics: db.metricsExecutor.metrics,
		},
	}, err
}

func (db *metricsReservationDB) Close() error {
	return db.db.Close()
}

var _ (reservation.Transaction) = (*metricsTransaction)(nil)

type metricsTransaction struct {
	*metricsExecutor
	tx  reservation.Transaction
	ctx context.Context
}

func (tx *metricsTransaction) Commit() error {
	var err error
	tx.metrics.Observe(tx.ctx, promOpCommitTx, func(_ context.Context) error {
		err = tx.tx.Commit()
		return err
	})
	return err
}

func (tx *metricsTransaction) Rollback() error {
	var err error
	tx.metrics.Observe(tx.ctx, promOpRollbackTx, func(_ context.Context) error {
		err = tx.tx.Rollback()
		if err == sql.ErrTxDone {
			return nil
		}
		return err
	})
	return err
}

var _ (reservation.ReadWrite) = (*metricsExecutor)(nil)

type metricsExecutor struct {
	rsvDB   reservation.ReadWrite
	metrics *Observer
}

func (db *metricsExecutor) CreateReservation(ctx context.Context,
	res *reservation.Reservation) error {

	var err error
	db.metrics.Observe(ctx, promOpCreateReservation, func(ctx context.Context) error {
		err = db.rsvDB.CreateReservation(ctx, res)
		return err
	})
	return err
}

func (db *metricsExecutor) GetReservation(ctx context.Context,
	connectionID uuid.UUID) (*reservation.Reservation, error) {

	var res *reservation.Reservation
	var err error
	db.metrics.Observe(ctx, promOpGetReservation, func(ctx context.Context) error {
		res, err = db.rsvDB.GetReservation(ctx, connectionID)
		return err
	})
	return res, err
}

func (db *metricsExecutor) ListReservations(ctx context.Context,
	query *reservation.ReservationQuery) ([]*reservation.Reservation, error) {

	span, ctx := opentracing.StartSpanFromContext(ctx,
		fmt.Sprintf("reservationdb.%s", string(promOpListReservations)))
	defer span.Finish()
	if query != nil {
		span.SetTag("query.lifecycle_states", query.LifecycleStates)
		span.SetTag("query.end_time_before", query.EndTimeBefore)
	}

	res, err := db.rsvDB.ListReservations(ctx, query)
	label := dblib.ErrToMetricLabel(err)
	labels := queryLabels{
		Driver:    db.metrics.Cfg.Driver,
		Operation: string(promOpListReservations),
		Result:    label,
	}
	metrics.CounterInc(metrics.CounterWith(db.metrics.Cfg.QueriesTotal, labels.Expand()...))

	tracing.Error(span, err)
	tracing.ResultLabel(span, label)
	span.SetTag("result.size", len(res))
	return res, err
}

func (db *metricsExecutor) SetReservationState(ctx context.Context, connectionID uuid.UUID,
	state fsm.ReservationState) error {

	var err error
	db.metrics.Observe(ctx, promOpSetReservationState, func(ctx context.Context) error {
		err = db.rsvDB.SetReservationState(ctx, connectionID, state)
		return err
	})
	return err
}

func (db *metricsExecutor) SetProvisioningState(ctx context.Context, connectionID uuid.UUID,
	state fsm.ProvisioningState) error {

	var err error
	db.metrics.Observe(ctx, promOpSetProvisioningState, func(ctx context.Context) error {
		err = db.rsvDB.SetProvisioningState(ctx, connectionID, state)
		return err
	})
	return err
}

func (db *metricsExecutor) SetLifecycleState(ctx context.Context, connectionID uuid.UUID,
	state fsm.LifecycleState) error {

	var err error
	db.metrics.Observe(ctx, promOpSetLifecycleState, func(ctx context.Context) error {
		err = db.rsvDB.SetLifecycleState(ctx, connectionID, state)
		return err
	})
	return err
}

func (db *metricsExecutor) SetSelectedVlans(ctx context.Context, connectionID uuid.UUID,
	src, dst int) error {

	var err error
	db.metrics.Observe(ctx, promOpSetSelectedVlans, func(ctx context.Context) error {
		err = db.rsvDB.SetSelectedVlans(ctx, connectionID, src, dst)
		return err
	})
	return err
}

func (db *metricsExecutor) SetParameter(ctx context.Context, connectionID uuid.UUID,
	key, value string) error {

	var err error
	db.metrics.Observe(ctx, promOpSetParameter, func(ctx context.Context) error {
		err = db.rsvDB.SetParameter(ctx, connectionID, key, value)
		return err
	})
	return err
}

func (db *metricsExecutor) GetParameters(ctx context.Context,
	connectionID uuid.UUID) ([]reservation.Parameter, error) {

	var params []reservation.Parameter
	var err error
	db.metrics.Observe(ctx, promOpGetParameters, func(ctx context.Context) error {
		params, err = db.rsvDB.GetParameters(ctx, connectionID)
		return err
	})
	return params, err
}

func (db *metricsExecutor) PutPathTrace(ctx context.Context,
	trace *reservation.PathTrace) (reservation.InsertStats, error) {

	var stats reservation.InsertStats
	var err error
	db.metrics.Observe(ctx, promOpPutPathTrace, func(ctx context.Context) error {
		stats, err = db.rsvDB.PutPathTrace(ctx, trace)
		return err
	})
	return stats, err
}

func (db *metricsExecutor) GetPathTrace(ctx context.Context,
	connectionID uuid.UUID) (*reservation.PathTrace, error) {

	var trace *reservation.PathTrace
	var err error
	db.metrics.Observe(ctx, promOpGetPathTrace, func(ctx context.Context) error {
		trace, err = db.rsvDB.GetPathTrace(ctx, connectionID)
		return err
	})
	return trace, err
}

func (db *metricsExecutor) RemoveSegment(ctx context.Context,
	key reservation.SegmentKey) error {

	var err error
	db.metrics.Observe(ctx, promOpRemoveSegment, func(ctx context.Context) error {
		err = db.rsvDB.RemoveSegment(ctx, key)
		return err
	})
	return err
}

func (db *metricsExecutor) RemoveStp(ctx context.Context, stpID string) error {
	var err error
	db.metrics.Observe(ctx, promOpRemoveStp, func(ctx context.Context) error {
		err = db.rsvDB.RemoveStp(ctx, stpID)
		return err
	})
	return err
}

func (db *metricsExecutor) DeleteReservation(ctx context.Context,
	connectionID uuid.UUID) error {

	var err error
	db.metrics.Observe(ctx, promOpDeleteReservation, func(ctx context.Context) error {
		err = db.rsvDB.DeleteReservation(ctx, connectionID)
		return err
	})
	return err
}

func (db *metricsExecutor) CreatePort(ctx context.Context, port *reservation.Port) error {
	var err error
	db.metrics.Observe(ctx, promOpCreatePort, func(ctx context.Context) error {
		err = db.rsvDB.CreatePort(ctx, port)
		return err
	})
	return err
}

func (db *metricsExecutor) GetPort(ctx context.Context,
	portID uuid.UUID) (*reservation.Port, error) {

	var port *reservation.Port
	var err error
	db.metrics.Observe(ctx, promOpGetPort, func(ctx context.Context) error {
		port, err = db.rsvDB.GetPort(ctx, portID)
		return err
	})
	return port, err
}

func (db *metricsExecutor) GetPortByName(ctx context.Context,
	name string) (*reservation.Port, error) {

	var port *reservation.Port
	var err error
	db.metrics.Observe(ctx, promOpGetPortByName, func(ctx context.Context) error {
		port, err = db.rsvDB.GetPortByName(ctx, name)
		return err
	})
	return port, err
}

func (db *metricsExecutor) ListPorts(ctx context.Context,
	onlyEnabled bool) ([]*reservation.Port, error) {

	var ports []*reservation.Port
	var err error
	db.metrics.Observe(ctx, promOpListPorts, func(ctx context.Context) error {
		ports, err = db.rsvDB.ListPorts(ctx, onlyEnabled)
		return err
	})
	return ports, err
}

func (db *metricsExecutor) SetPortEnabled(ctx context.Context, portID uuid.UUID,
	enabled bool) error {

	var err error
	db.metrics.Observe(ctx, promOpSetPortEnabled, func(ctx context.Context) error {
		err = db.rsvDB.SetPortEnabled(ctx, portID, enabled)
		return err
	})
	return err
}

func (db *metricsExecutor) CreateConnection(ctx context.Context,
	conn *reservation.Connection) error {

	var err error
	db.metrics.Observe(ctx, promOpCreateConnection, func(ctx context.Context) error {
		err = db.rsvDB.CreateConnection(ctx, conn)
		return err
	})
	return err
}

func (db *metricsExecutor) GetConnection(ctx context.Context,
	connectionID uuid.UUID) (*reservation.Connection, error) {

	var conn *reservation.Connection
	var err error
	db.metrics.Observe(ctx, promOpGetConnection, func(ctx context.Context) error {
		conn, err = db.rsvDB.GetConnection(ctx, connectionID)
		return err
	})
	return conn, err
}

func (db *metricsExecutor) ListConnectionsForPort(ctx context.Context,
	portID uuid.UUID) ([]*reservation.Connection, error) {

	var conns []*reservation.Connection
	var err error
	db.metrics.Observe(ctx, promOpListConnections, func(ctx context.Context) error {
		conns, err = db.rsvDB.ListConnectionsForPort(ctx, portID)
		return err
	})
	return conns, err
}

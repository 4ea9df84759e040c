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

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nsiproto/supa/connection/fsm"
	"github.com/nsiproto/supa/private/storage/db"
	"github.com/nsiproto/supa/reservation"
)

var _ reservation.DB = (*Backend)(nil)

type Backend struct {
	db *db.Sqlite
	*executor
}

// New returns a new SQLite backend opening a database at the given path. If
// no database exists a new database is created. If the schema version of the
// stored database is different from the one in schema.go, an error is
// returned.
func New(path string, cfg *db.SqliteConfig) (*Backend, error) {
	sdb, err := db.NewSqlite(path, cfg)
	if err != nil {
		return nil, err
	}
	if err := sdb.Setup(Schema, SchemaVersion); err != nil {
		sdb.Close()
		return nil, err
	}
	return &Backend{
		executor: &executor{
			db:   sdb.Full,
			read: sdb.ReadOnly,
		},
		db: sdb,
	}, nil
}

// DB returns the underlying read-write database handle.
func (b *Backend) DB() *sql.DB {
	return b.db.Full
}

// BeginTransaction begins a transaction on the database.
func (b *Backend) BeginTransaction(ctx context.Context,
	opts *sql.TxOptions) (reservation.Transaction, error) {

	b.Lock()
	defer b.Unlock()
	tx, err := b.db.Full.BeginTx(ctx, opts)
	if err != nil {
		return nil, db.NewTxError("create tx", err)
	}
	return &transaction{
		// Reads on the transaction observe its uncommitted writes.
		executor: &executor{
			db:   tx,
			read: tx,
		},
		tx: tx,
	}, nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}

var _ reservation.Transaction = (*transaction)(nil)

type transaction struct {
	*executor
	tx *sql.Tx
}

func (tx *transaction) Commit() error {
	tx.Lock()
	defer tx.Unlock()
	return tx.tx.Commit()
}

func (tx *transaction) Rollback() error {
	tx.Lock()
	defer tx.Unlock()
	return tx.tx.Rollback()
}

var _ reservation.ReadWrite = (*executor)(nil)

type executor struct {
	sync.RWMutex
	// db runs statements and transactions on the write connection.
	db db.Sqler
	// read runs read statements. Outside of a transaction it is backed by
	// the read-only pool.
	read db.Querier
}

// scanner is the scan part common to sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// nullString maps the empty string to NULL. The schema records absent
// optional text as NULL, never as the empty string.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullVlan maps the zero VLAN to NULL. VLAN 0 is reserved by 802.1Q, so it
// doubles as the not-selected marker.
func nullVlan(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func (e *executor) CreateReservation(ctx context.Context,
	res *reservation.Reservation) error {

	if res == nil {
		return db.NewInputDataError("reservation must not be nil", nil)
	}
	if res.ConnectionID == (uuid.UUID{}) {
		res.ConnectionID = uuid.New()
	}
	if res.StartTime.IsZero() {
		res.StartTime = time.Now()
	}
	if res.EndTime.IsZero() {
		res.EndTime = reservation.NoEndDate
	}
	if res.Directionality == "" {
		res.Directionality = reservation.Bidirectional
	}
	if res.ReservationState == "" {
		res.ReservationState = fsm.ReserveStart
	}
	if res.LifecycleState == "" {
		res.LifecycleState = fsm.Created
	}
	if err := validateReservation(res); err != nil {
		return err
	}
	e.Lock()
	defer e.Unlock()
	return db.DoInTx(ctx, e.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := insertReservation(ctx, tx, res); err != nil {
			return err
		}
		return insertParameters(ctx, tx, res.ConnectionID, res.Parameters)
	})
}

func validateReservation(res *reservation.Reservation) error {
	if err := res.Directionality.Validate(); err != nil {
		return db.NewInputDataError("directionality", err)
	}
	if err := res.ReservationState.Validate(); err != nil {
		return db.NewInputDataError("reservation state", err)
	}
	// The provisioning state stays unset until the initial reservation has
	// been committed.
	if res.ProvisioningState != "" {
		if err := res.ProvisioningState.Validate(); err != nil {
			return db.NewInputDataError("provisioning state", err)
		}
	}
	if err := res.LifecycleState.Validate(); err != nil {
		return db.NewInputDataError("lifecycle state", err)
	}
	return nil
}

func insertReservation(ctx context.Context, tx *sql.Tx,
	res *reservation.Reservation) error {

	inst := `
	INSERT INTO reservations (connection_id, protocol_version, correlation_id,
		requester_nsa, provider_nsa, reply_to, session_security_attributes,
		global_reservation_id, description, version, start_time, end_time,
		bandwidth, directionality, symmetric,
		src_domain, src_network_type, src_port, src_vlans, src_selected_vlan,
		dst_domain, dst_network_type, dst_port, dst_vlans, dst_selected_vlan,
		reservation_state, provisioning_state, lifecycle_state)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.ExecContext(ctx, inst,
		db.UUID(res.ConnectionID), res.ProtocolVersion, db.UUID(res.CorrelationID),
		res.RequesterNSA, res.ProviderNSA, nullString(res.ReplyTo),
		nullString(res.SessionSecurityAttributes),
		res.GlobalReservationID, nullString(res.Description), res.Version,
		db.NewUtcTime(res.StartTime), db.NewUtcTime(res.EndTime),
		res.Bandwidth, res.Directionality.String(), res.Symmetric,
		res.SrcDomain, res.SrcNetworkType, res.SrcPort, res.SrcVlans,
		nullVlan(res.SrcSelectedVlan),
		res.DstDomain, res.DstNetworkType, res.DstPort, res.DstVlans,
		nullVlan(res.DstSelectedVlan),
		res.ReservationState.String(),
		nullString(string(res.ProvisioningState)),
		res.LifecycleState.String(),
	)
	if err != nil {
		return db.NewWriteError("insert reservation", err,
			"connection_id", res.ConnectionID)
	}
	return nil
}

func insertParameters(ctx context.Context, tx *sql.Tx, connectionID uuid.UUID,
	params []reservation.Parameter) error {

	if len(params) == 0 {
		return nil
	}
	inst := `INSERT INTO parameters (connection_id, key, value) VALUES (?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, inst)
	if err != nil {
		return db.NewWriteError("prepare insert into parameters", err)
	}
	defer stmt.Close()
	for _, p := range params {
		if _, err := stmt.ExecContext(ctx, db.UUID(connectionID), p.Key,
			p.Value); err != nil {

			return db.NewWriteError("insert parameter", err,
				"connection_id", connectionID, "key", p.Key)
		}
	}
	return nil
}

// reservationCols is the column list shared by all reservation selects, in
// scanReservation order.
const reservationCols = `connection_id, protocol_version, correlation_id,
	requester_nsa, provider_nsa, reply_to, session_security_attributes,
	global_reservation_id, description, version, start_time, end_time,
	bandwidth, directionality, symmetric,
	src_domain, src_network_type, src_port, src_vlans, src_selected_vlan,
	dst_domain, dst_network_type, dst_port, dst_vlans, dst_selected_vlan,
	reservation_state, provisioning_state, lifecycle_state`

func scanReservation(row scanner) (*reservation.Reservation, error) {
	var res reservation.Reservation
	var connID, corrID db.UUID
	var replyTo, sessionSec, description sql.NullString
	var start, end db.UtcTime
	var directionality string
	var srcVlan, dstVlan sql.NullInt64
	var rsmState, lsmState string
	var psmState sql.NullString
	err := row.Scan(&connID, &res.ProtocolVersion, &corrID,
		&res.RequesterNSA, &res.ProviderNSA, &replyTo, &sessionSec,
		&res.GlobalReservationID, &description, &res.Version, &start, &end,
		&res.Bandwidth, &directionality, &res.Symmetric,
		&res.SrcDomain, &res.SrcNetworkType, &res.SrcPort, &res.SrcVlans,
		&srcVlan,
		&res.DstDomain, &res.DstNetworkType, &res.DstPort, &res.DstVlans,
		&dstVlan,
		&rsmState, &psmState, &lsmState)
	if err != nil {
		return nil, err
	}
	res.ConnectionID = uuid.UUID(connID)
	res.CorrelationID = uuid.UUID(corrID)
	res.ReplyTo = replyTo.String
	res.SessionSecurityAttributes = sessionSec.String
	res.Description = description.String
	res.StartTime = start.Time()
	res.EndTime = end.Time()
	res.Directionality = reservation.Directionality(directionality)
	res.SrcSelectedVlan = int(srcVlan.Int64)
	res.DstSelectedVlan = int(dstVlan.Int64)
	res.ReservationState = fsm.ReservationState(rsmState)
	res.ProvisioningState = fsm.ProvisioningState(psmState.String)
	res.LifecycleState = fsm.LifecycleState(lsmState)
	return &res, nil
}

func (e *executor) GetReservation(ctx context.Context,
	connectionID uuid.UUID) (*reservation.Reservation, error) {

	e.RLock()
	defer e.RUnlock()
	query := `SELECT ` + reservationCols + ` FROM reservations
		WHERE connection_id = ?`
	res, err := scanReservation(
		e.read.QueryRowContext(ctx, query, db.UUID(connectionID)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, db.NewReadError("lookup reservation", err,
			"connection_id", connectionID)
	}
	params, err := e.getParameters(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	res.Parameters = params
	return res, nil
}

func (e *executor) ListReservations(ctx context.Context,
	query *reservation.ReservationQuery) ([]*reservation.Reservation, error) {

	e.RLock()
	defer e.RUnlock()
	q := `SELECT ` + reservationCols + ` FROM reservations`
	var conds []string
	var args []any
	if query != nil {
		if len(query.LifecycleStates) > 0 {
			marks := make([]string, 0, len(query.LifecycleStates))
			for _, state := range query.LifecycleStates {
				if err := state.Validate(); err != nil {
					return nil, db.NewInputDataError("lifecycle state", err)
				}
				marks = append(marks, "?")
				args = append(args, state.String())
			}
			conds = append(conds, fmt.Sprintf("lifecycle_state IN (%s)",
				strings.Join(marks, ", ")))
		}
		if !query.EndTimeBefore.IsZero() {
			conds = append(conds, "end_time < ?")
			args = append(args, db.NewUtcTime(query.EndTimeBefore))
		}
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY start_time, connection_id`
	rows, err := e.read.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, db.NewReadError("list reservations", err)
	}
	defer rows.Close()
	var results []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, db.NewReadError("scan reservation", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, db.NewReadError("list reservations", err)
	}
	return results, nil
}

// updateReservation runs the update statement with the given arguments plus
// the connection id and verifies that it touched the reservation.
func (e *executor) updateReservation(ctx context.Context,
	connectionID uuid.UUID, inst string, args ...any) error {

	e.Lock()
	defer e.Unlock()
	args = append(args, db.UUID(connectionID))
	res, err := e.db.ExecContext(ctx, inst, args...)
	if err != nil {
		return db.NewWriteError("update reservation", err,
			"connection_id", connectionID)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return db.NewWriteError("retrieve affected rows", err,
			"connection_id", connectionID)
	}
	if rows == 0 {
		return db.NewWriteError("reservation does not exist", nil,
			"connection_id", connectionID)
	}
	return nil
}

func (e *executor) SetReservationState(ctx context.Context,
	connectionID uuid.UUID, state fsm.ReservationState) error {

	if err := state.Validate(); err != nil {
		return db.NewInputDataError("reservation state", err)
	}
	inst := `UPDATE reservations SET reservation_state = ?
		WHERE connection_id = ?`
	return e.updateReservation(ctx, connectionID, inst, state.String())
}

func (e *executor) SetProvisioningState(ctx context.Context,
	connectionID uuid.UUID, state fsm.ProvisioningState) error {

	if err := state.Validate(); err != nil {
		return db.NewInputDataError("provisioning state", err)
	}
	inst := `UPDATE reservations SET provisioning_state = ?
		WHERE connection_id = ?`
	return e.updateReservation(ctx, connectionID, inst, state.String())
}

func (e *executor) SetLifecycleState(ctx context.Context,
	connectionID uuid.UUID, state fsm.LifecycleState) error {

	if err := state.Validate(); err != nil {
		return db.NewInputDataError("lifecycle state", err)
	}
	inst := `UPDATE reservations SET lifecycle_state = ?
		WHERE connection_id = ?`
	return e.updateReservation(ctx, connectionID, inst, state.String())
}

func (e *executor) SetSelectedVlans(ctx context.Context,
	connectionID uuid.UUID, src, dst int) error {

	inst := `UPDATE reservations SET src_selected_vlan = ?,
		dst_selected_vlan = ? WHERE connection_id = ?`
	return e.updateReservation(ctx, connectionID, inst,
		nullVlan(src), nullVlan(dst))
}

func (e *executor) SetParameter(ctx context.Context, connectionID uuid.UUID,
	key, value string) error {

	e.Lock()
	defer e.Unlock()
	inst := `
	INSERT INTO parameters (connection_id, key, value) VALUES (?, ?, ?)
	ON CONFLICT (connection_id, key) DO UPDATE SET value = excluded.value
	`
	_, err := e.db.ExecContext(ctx, inst, db.UUID(connectionID), key, value)
	if err != nil {
		return db.NewWriteError("upsert parameter", err,
			"connection_id", connectionID, "key", key)
	}
	return nil
}

func (e *executor) GetParameters(ctx context.Context,
	connectionID uuid.UUID) ([]reservation.Parameter, error) {

	e.RLock()
	defer e.RUnlock()
	return e.getParameters(ctx, connectionID)
}

func (e *executor) getParameters(ctx context.Context,
	connectionID uuid.UUID) ([]reservation.Parameter, error) {

	query := `SELECT key, value FROM parameters WHERE connection_id = ?
		ORDER BY key`
	rows, err := e.read.QueryContext(ctx, query, db.UUID(connectionID))
	if err != nil {
		return nil, db.NewReadError("list parameters", err,
			"connection_id", connectionID)
	}
	defer rows.Close()
	var params []reservation.Parameter
	for rows.Next() {
		var p reservation.Parameter
		var value sql.NullString
		if err := rows.Scan(&p.Key, &value); err != nil {
			return nil, db.NewReadError("scan parameter", err)
		}
		p.Value = value.String
		params = append(params, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.NewReadError("list parameters", err)
	}
	return params, nil
}

func (e *executor) PutPathTrace(ctx context.Context,
	trace *reservation.PathTrace) (reservation.InsertStats, error) {

	var stats reservation.InsertStats
	if trace == nil {
		return stats, db.NewInputDataError("path trace must not be nil", nil)
	}
	if trace.ID == "" || trace.AgConnectionID == "" {
		return stats, db.NewInputDataError("incomplete path trace key", nil,
			"path_trace_id", trace.ID, "ag_connection_id", trace.AgConnectionID)
	}
	if trace.ConnectionID == (uuid.UUID{}) {
		return stats, db.NewInputDataError("missing connection id", nil)
	}
	for _, path := range trace.Paths {
		if path.ID == (uuid.UUID{}) {
			path.ID = uuid.New()
		}
	}
	e.Lock()
	defer e.Unlock()
	err := db.DoInTx(ctx, e.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		stats, err = replacePathTrace(ctx, tx, trace)
		return err
	})
	if err != nil {
		return reservation.InsertStats{}, err
	}
	return stats, nil
}

func replacePathTrace(ctx context.Context, tx *sql.Tx,
	trace *reservation.PathTrace) (reservation.InsertStats, error) {

	var stats reservation.InsertStats
	// The engine cascades the delete down to paths, segments and stps.
	_, err := tx.ExecContext(ctx,
		`DELETE FROM path_traces WHERE connection_id = ?`,
		db.UUID(trace.ConnectionID))
	if err != nil {
		return stats, db.NewWriteError("delete previous path trace", err,
			"connection_id", trace.ConnectionID)
	}
	inst := `INSERT INTO path_traces (path_trace_id, ag_connection_id,
		connection_id) VALUES (?, ?, ?)`
	_, err = tx.ExecContext(ctx, inst, trace.ID, trace.AgConnectionID,
		db.UUID(trace.ConnectionID))
	if err != nil {
		return stats, db.NewWriteError("insert path trace", err,
			"connection_id", trace.ConnectionID)
	}
	stats.Inserted++
	for _, path := range trace.Paths {
		if err := insertPath(ctx, tx, trace, path, &stats); err != nil {
			return reservation.InsertStats{}, err
		}
	}
	return stats, nil
}

func insertPath(ctx context.Context, tx *sql.Tx,
	trace *reservation.PathTrace, path *reservation.Path,
	stats *reservation.InsertStats) error {

	inst := `INSERT INTO paths (path_id, path_trace_id, ag_connection_id)
		VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, inst, db.UUID(path.ID), trace.ID,
		trace.AgConnectionID); err != nil {

		return db.NewWriteError("insert path", err, "path_id", path.ID)
	}
	stats.Inserted++
	for i, seg := range path.Segments {
		if err := insertSegment(ctx, tx, path.ID, seg, i, stats); err != nil {
			return err
		}
	}
	return nil
}

func insertSegment(ctx context.Context, tx *sql.Tx, pathID uuid.UUID,
	seg *reservation.Segment, order int,
	stats *reservation.InsertStats) error {

	inst := `INSERT INTO segments (segment_id, path_id, upa_connection_id,
		"order") VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, inst, seg.ID, db.UUID(pathID),
		seg.UpaConnectionID, order); err != nil {

		return db.NewWriteError("insert segment", err,
			"segment_id", seg.ID, "path_id", pathID)
	}
	stats.Inserted++
	inst = `INSERT INTO stps (stp_id, segment_id, path_id, "order")
		VALUES (?, ?, ?, ?)`
	for i, stpID := range seg.Stps {
		if _, err := tx.ExecContext(ctx, inst, stpID, seg.ID, db.UUID(pathID),
			i); err != nil {

			return db.NewWriteError("insert stp", err,
				"stp_id", stpID, "segment_id", seg.ID)
		}
		stats.Inserted++
	}
	return nil
}

func (e *executor) GetPathTrace(ctx context.Context,
	connectionID uuid.UUID) (*reservation.PathTrace, error) {

	e.RLock()
	defer e.RUnlock()
	query := `SELECT path_trace_id, ag_connection_id FROM path_traces
		WHERE connection_id = ?`
	trace := &reservation.PathTrace{ConnectionID: connectionID}
	err := e.read.QueryRowContext(ctx, query, db.UUID(connectionID)).
		Scan(&trace.ID, &trace.AgConnectionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, db.NewReadError("lookup path trace", err,
			"connection_id", connectionID)
	}
	if err := e.loadPaths(ctx, trace); err != nil {
		return nil, err
	}
	return trace, nil
}

func (e *executor) loadPaths(ctx context.Context,
	trace *reservation.PathTrace) error {

	// Paths carry no order column, rowid preserves the order the batch
	// insert wrote them in.
	query := `SELECT path_id FROM paths
		WHERE path_trace_id = ? AND ag_connection_id = ? ORDER BY rowid`
	rows, err := e.read.QueryContext(ctx, query, trace.ID,
		trace.AgConnectionID)
	if err != nil {
		return db.NewReadError("list paths", err)
	}
	defer rows.Close()
	paths := make(map[uuid.UUID]*reservation.Path)
	for rows.Next() {
		var id db.UUID
		if err := rows.Scan(&id); err != nil {
			return db.NewReadError("scan path", err)
		}
		path := &reservation.Path{ID: uuid.UUID(id)}
		trace.Paths = append(trace.Paths, path)
		paths[path.ID] = path
	}
	if err := rows.Err(); err != nil {
		return db.NewReadError("list paths", err)
	}
	return e.loadSegments(ctx, trace, paths)
}

func (e *executor) loadSegments(ctx context.Context,
	trace *reservation.PathTrace,
	paths map[uuid.UUID]*reservation.Path) error {

	query := `
	SELECT s.segment_id, s.path_id, s.upa_connection_id
	FROM segments s
	JOIN paths p ON s.path_id = p.path_id
	WHERE p.path_trace_id = ? AND p.ag_connection_id = ?
	ORDER BY s.path_id, s."order"
	`
	rows, err := e.read.QueryContext(ctx, query, trace.ID,
		trace.AgConnectionID)
	if err != nil {
		return db.NewReadError("list segments", err)
	}
	defer rows.Close()
	segments := make(map[reservation.SegmentKey]*reservation.Segment)
	for rows.Next() {
		var segID, upaID string
		var pathID db.UUID
		if err := rows.Scan(&segID, &pathID, &upaID); err != nil {
			return db.NewReadError("scan segment", err)
		}
		seg := &reservation.Segment{ID: segID, UpaConnectionID: upaID}
		key := reservation.SegmentKey{ID: segID, PathID: uuid.UUID(pathID)}
		paths[key.PathID].Segments = append(paths[key.PathID].Segments, seg)
		segments[key] = seg
	}
	if err := rows.Err(); err != nil {
		return db.NewReadError("list segments", err)
	}
	return e.loadStps(ctx, trace, segments)
}

func (e *executor) loadStps(ctx context.Context,
	trace *reservation.PathTrace,
	segments map[reservation.SegmentKey]*reservation.Segment) error {

	query := `
	SELECT t.stp_id, t.segment_id, t.path_id
	FROM stps t
	JOIN paths p ON t.path_id = p.path_id
	WHERE p.path_trace_id = ? AND p.ag_connection_id = ?
	ORDER BY t.segment_id, t.path_id, t."order"
	`
	rows, err := e.read.QueryContext(ctx, query, trace.ID,
		trace.AgConnectionID)
	if err != nil {
		return db.NewReadError("list stps", err)
	}
	defer rows.Close()
	for rows.Next() {
		var stpID, segID string
		var pathID db.UUID
		if err := rows.Scan(&stpID, &segID, &pathID); err != nil {
			return db.NewReadError("scan stp", err)
		}
		key := reservation.SegmentKey{ID: segID, PathID: uuid.UUID(pathID)}
		segments[key].Stps = append(segments[key].Stps, stpID)
	}
	if err := rows.Err(); err != nil {
		return db.NewReadError("list stps", err)
	}
	return nil
}

func (e *executor) RemoveSegment(ctx context.Context,
	key reservation.SegmentKey) error {

	e.Lock()
	defer e.Unlock()
	return db.DoInTx(ctx, e.db, func(ctx context.Context, tx *sql.Tx) error {
		inst := `DELETE FROM segments WHERE segment_id = ? AND path_id = ?`
		res, err := tx.ExecContext(ctx, inst, key.ID, db.UUID(key.PathID))
		if err != nil {
			return db.NewWriteError("delete segment", err,
				"segment_id", key.ID, "path_id", key.PathID)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return db.NewWriteError("retrieve affected rows", err)
		}
		if rows == 0 {
			return db.NewWriteError("segment does not exist", nil,
				"segment_id", key.ID, "path_id", key.PathID)
		}
		return renumberSegments(ctx, tx, key.PathID)
	})
}

// renumberSegments closes the gap a deletion left in the order of the
// surviving segments of the path. Orders are assigned ascending and every
// row moves to an order at most as large as its current one, so the updates
// cannot trip the sibling uniqueness constraint.
func renumberSegments(ctx context.Context, tx *sql.Tx,
	pathID uuid.UUID) error {

	query := `SELECT segment_id, "order" FROM segments WHERE path_id = ?
		ORDER BY "order"`
	rows, err := tx.QueryContext(ctx, query, db.UUID(pathID))
	if err != nil {
		return db.NewReadError("list surviving segments", err,
			"path_id", pathID)
	}
	defer rows.Close()
	type position struct {
		id    string
		order int
	}
	var survivors []position
	for rows.Next() {
		var p position
		if err := rows.Scan(&p.id, &p.order); err != nil {
			return db.NewReadError("scan segment order", err)
		}
		survivors = append(survivors, p)
	}
	if err := rows.Err(); err != nil {
		return db.NewReadError("list surviving segments", err)
	}
	inst := `UPDATE segments SET "order" = ?
		WHERE segment_id = ? AND path_id = ?`
	for i, p := range survivors {
		if p.order == i {
			continue
		}
		if _, err := tx.ExecContext(ctx, inst, i, p.id,
			db.UUID(pathID)); err != nil {

			return db.NewWriteError("renumber segment", err,
				"segment_id", p.id, "path_id", pathID)
		}
	}
	return nil
}

func (e *executor) RemoveStp(ctx context.Context, stpID string) error {
	e.Lock()
	defer e.Unlock()
	return db.DoInTx(ctx, e.db, func(ctx context.Context, tx *sql.Tx) error {
		var segID string
		var pathID db.UUID
		query := `SELECT segment_id, path_id FROM stps WHERE stp_id = ?`
		err := tx.QueryRowContext(ctx, query, stpID).Scan(&segID, &pathID)
		if err == sql.ErrNoRows {
			return db.NewWriteError("stp does not exist", nil, "stp_id", stpID)
		}
		if err != nil {
			return db.NewReadError("lookup stp", err, "stp_id", stpID)
		}
		inst := `DELETE FROM stps WHERE stp_id = ?`
		if _, err := tx.ExecContext(ctx, inst, stpID); err != nil {
			return db.NewWriteError("delete stp", err, "stp_id", stpID)
		}
		return renumberStps(ctx, tx, segID, uuid.UUID(pathID))
	})
}

// renumberStps closes the gap a deletion left in the order of the surviving
// stps of the segment, see renumberSegments.
func renumberStps(ctx context.Context, tx *sql.Tx, segmentID string,
	pathID uuid.UUID) error {

	query := `SELECT stp_id, "order" FROM stps
		WHERE segment_id = ? AND path_id = ? ORDER BY "order"`
	rows, err := tx.QueryContext(ctx, query, segmentID, db.UUID(pathID))
	if err != nil {
		return db.NewReadError("list surviving stps", err,
			"segment_id", segmentID)
	}
	defer rows.Close()
	type position struct {
		id    string
		order int
	}
	var survivors []position
	for rows.Next() {
		var p position
		if err := rows.Scan(&p.id, &p.order); err != nil {
			return db.NewReadError("scan stp order", err)
		}
		survivors = append(survivors, p)
	}
	if err := rows.Err(); err != nil {
		return db.NewReadError("list surviving stps", err)
	}
	inst := `UPDATE stps SET "order" = ? WHERE stp_id = ?`
	for i, p := range survivors {
		if p.order == i {
			continue
		}
		if _, err := tx.ExecContext(ctx, inst, i, p.id); err != nil {
			return db.NewWriteError("renumber stp", err, "stp_id", p.id)
		}
	}
	return nil
}

func (e *executor) DeleteReservation(ctx context.Context,
	connectionID uuid.UUID) error {

	e.Lock()
	defer e.Unlock()
	// The engine cascades the delete to the path trace tree, the parameters
	// and the connection.
	inst := `DELETE FROM reservations WHERE connection_id = ?`
	res, err := e.db.ExecContext(ctx, inst, db.UUID(connectionID))
	if err != nil {
		return db.NewWriteError("delete reservation", err,
			"connection_id", connectionID)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return db.NewWriteError("retrieve affected rows", err,
			"connection_id", connectionID)
	}
	if rows == 0 {
		return db.NewWriteError("reservation does not exist", nil,
			"connection_id", connectionID)
	}
	return nil
}

func (e *executor) CreatePort(ctx context.Context,
	port *reservation.Port) error {

	if port == nil {
		return db.NewInputDataError("port must not be nil", nil)
	}
	if port.ID == (uuid.UUID{}) {
		port.ID = uuid.New()
	}
	e.Lock()
	defer e.Unlock()
	inst := `INSERT INTO ports (port_id, name, vlans, remote_stp, bandwidth,
		enabled) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := e.db.ExecContext(ctx, inst, db.UUID(port.ID), port.Name,
		port.Vlans, nullString(port.RemoteStp), port.Bandwidth, port.Enabled)
	if err != nil {
		return db.NewWriteError("insert port", err,
			"port_id", port.ID, "name", port.Name)
	}
	return nil
}

func scanPort(row scanner) (*reservation.Port, error) {
	var port reservation.Port
	var id db.UUID
	var remoteStp sql.NullString
	if err := row.Scan(&id, &port.Name, &port.Vlans, &remoteStp,
		&port.Bandwidth, &port.Enabled); err != nil {

		return nil, err
	}
	port.ID = uuid.UUID(id)
	port.RemoteStp = remoteStp.String
	return &port, nil
}

func (e *executor) GetPort(ctx context.Context,
	portID uuid.UUID) (*reservation.Port, error) {

	e.RLock()
	defer e.RUnlock()
	return e.getPort(ctx, `port_id = ?`, db.UUID(portID))
}

func (e *executor) GetPortByName(ctx context.Context,
	name string) (*reservation.Port, error) {

	e.RLock()
	defer e.RUnlock()
	return e.getPort(ctx, `name = ?`, name)
}

func (e *executor) getPort(ctx context.Context, cond string,
	arg any) (*reservation.Port, error) {

	query := `SELECT port_id, name, vlans, remote_stp, bandwidth, enabled
		FROM ports WHERE ` + cond
	port, err := scanPort(e.read.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, db.NewReadError("lookup port", err)
	}
	return port, nil
}

func (e *executor) ListPorts(ctx context.Context,
	onlyEnabled bool) ([]*reservation.Port, error) {

	e.RLock()
	defer e.RUnlock()
	query := `SELECT port_id, name, vlans, remote_stp, bandwidth, enabled
		FROM ports`
	if onlyEnabled {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY name`
	rows, err := e.read.QueryContext(ctx, query)
	if err != nil {
		return nil, db.NewReadError("list ports", err)
	}
	defer rows.Close()
	var ports []*reservation.Port
	for rows.Next() {
		port, err := scanPort(rows)
		if err != nil {
			return nil, db.NewReadError("scan port", err)
		}
		ports = append(ports, port)
	}
	if err := rows.Err(); err != nil {
		return nil, db.NewReadError("list ports", err)
	}
	return ports, nil
}

func (e *executor) SetPortEnabled(ctx context.Context, portID uuid.UUID,
	enabled bool) error {

	e.Lock()
	defer e.Unlock()
	inst := `UPDATE ports SET enabled = ? WHERE port_id = ?`
	res, err := e.db.ExecContext(ctx, inst, enabled, db.UUID(portID))
	if err != nil {
		return db.NewWriteError("update port", err, "port_id", portID)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return db.NewWriteError("retrieve affected rows", err,
			"port_id", portID)
	}
	if rows == 0 {
		return db.NewWriteError("port does not exist", nil, "port_id", portID)
	}
	return nil
}

func (e *executor) CreateConnection(ctx context.Context,
	conn *reservation.Connection) error {

	if conn == nil {
		return db.NewInputDataError("connection must not be nil", nil)
	}
	e.Lock()
	defer e.Unlock()
	inst := `
	INSERT INTO connections (connection_id, bandwidth, source_port_id,
		source_vlan, dest_port_id, dest_vlan, subscription_id)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := e.db.ExecContext(ctx, inst, db.UUID(conn.ConnectionID),
		conn.Bandwidth, db.UUID(conn.SourcePortID), conn.SourceVlan,
		db.UUID(conn.DestPortID), conn.DestVlan, db.UUID(conn.SubscriptionID))
	if err != nil {
		return db.NewWriteError("insert connection", err,
			"connection_id", conn.ConnectionID)
	}
	return nil
}

const connectionCols = `connection_id, bandwidth, source_port_id,
	source_vlan, dest_port_id, dest_vlan, subscription_id`

func scanConnection(row scanner) (*reservation.Connection, error) {
	var conn reservation.Connection
	var id, srcPort, dstPort, subscription db.UUID
	if err := row.Scan(&id, &conn.Bandwidth, &srcPort, &conn.SourceVlan,
		&dstPort, &conn.DestVlan, &subscription); err != nil {

		return nil, err
	}
	conn.ConnectionID = uuid.UUID(id)
	conn.SourcePortID = uuid.UUID(srcPort)
	conn.DestPortID = uuid.UUID(dstPort)
	conn.SubscriptionID = uuid.UUID(subscription)
	return &conn, nil
}

func (e *executor) GetConnection(ctx context.Context,
	connectionID uuid.UUID) (*reservation.Connection, error) {

	e.RLock()
	defer e.RUnlock()
	query := `SELECT ` + connectionCols + ` FROM connections
		WHERE connection_id = ?`
	conn, err := scanConnection(
		e.read.QueryRowContext(ctx, query, db.UUID(connectionID)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, db.NewReadError("lookup connection", err,
			"connection_id", connectionID)
	}
	return conn, nil
}

func (e *executor) ListConnectionsForPort(ctx context.Context,
	portID uuid.UUID) ([]*reservation.Connection, error) {

	e.RLock()
	defer e.RUnlock()
	query := `SELECT ` + connectionCols + ` FROM connections
		WHERE source_port_id = ?1 OR dest_port_id = ?1
		ORDER BY connection_id`
	rows, err := e.read.QueryContext(ctx, query, db.UUID(portID))
	if err != nil {
		return nil, db.NewReadError("list connections", err,
			"port_id", portID)
	}
	defer rows.Close()
	var conns []*reservation.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, db.NewReadError("scan connection", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, db.NewReadError("list connections", err)
	}
	return conns, nil
}

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

package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/nsiproto/supa/connection/fsm"
)

// InsertStats provides statistics about a tree insertion.
type InsertStats struct {
	// Inserted is the number of inserted rows.
	Inserted int
}

// ReservationQuery restricts the result set of ListReservations. Zero valued
// fields do not restrict.
type ReservationQuery struct {
	// LifecycleStates restricts to reservations in any of the given
	// lifecycle states.
	LifecycleStates []fsm.LifecycleState
	// EndTimeBefore restricts to reservations whose end time lies strictly
	// before the given instant.
	EndTimeBefore time.Time
}

// ReadWrite defines all read and write operations of the reservation DB.
//
// The DB only persists and validates; it never serializes concurrent state
// transitions that target the same connection id. That is the caller's job,
// the engine's constraints are merely the last-resort guard.
type ReadWrite interface {
	// CreateReservation inserts the reservation together with its
	// parameters. A zero ConnectionID is replaced with a generated one,
	// unset schedule, directionality and state fields are filled with their
	// defaults. The passed reservation is updated in place.
	CreateReservation(ctx context.Context, res *Reservation) error
	// GetReservation returns the reservation with the given connection id
	// including its parameters, or nil if there is none.
	GetReservation(ctx context.Context, connectionID uuid.UUID) (*Reservation, error)
	// ListReservations returns the reservations matching the query, ordered
	// by start time. A nil query returns all reservations. The parameter
	// bags are not loaded.
	ListReservations(ctx context.Context, query *ReservationQuery) ([]*Reservation, error)
	// SetReservationState moves the reservation to the given reservation
	// state. Updating a reservation that does not exist is an error.
	SetReservationState(ctx context.Context, connectionID uuid.UUID,
		state fsm.ReservationState) error
	// SetProvisioningState moves the reservation to the given provisioning
	// state. Updating a reservation that does not exist is an error.
	SetProvisioningState(ctx context.Context, connectionID uuid.UUID,
		state fsm.ProvisioningState) error
	// SetLifecycleState moves the reservation to the given lifecycle state.
	// Updating a reservation that does not exist is an error.
	SetLifecycleState(ctx context.Context, connectionID uuid.UUID,
		state fsm.LifecycleState) error
	// SetSelectedVlans records the VLANs chosen at provisioning time for
	// the source and destination side.
	SetSelectedVlans(ctx context.Context, connectionID uuid.UUID, src, dst int) error
	// SetParameter inserts or updates one entry of the reservation's
	// key/value extension bag.
	SetParameter(ctx context.Context, connectionID uuid.UUID, key, value string) error
	// GetParameters returns the reservation's key/value extension bag.
	GetParameters(ctx context.Context, connectionID uuid.UUID) ([]Parameter, error)
	// PutPathTrace replaces the reservation's path trace tree with the
	// given one in a single transaction. Zero path IDs are generated, order
	// columns are derived from the slice positions. It returns the number
	// of rows the new tree consists of.
	PutPathTrace(ctx context.Context, trace *PathTrace) (InsertStats, error)
	// GetPathTrace returns the reservation's full path trace tree with all
	// children in persisted order, or nil if there is none.
	GetPathTrace(ctx context.Context, connectionID uuid.UUID) (*PathTrace, error)
	// RemoveSegment deletes the segment including its STPs and renumbers
	// the surviving sibling segments contiguously, all in one transaction.
	RemoveSegment(ctx context.Context, key SegmentKey) error
	// RemoveStp deletes the STP rows with the given STP identifier and
	// renumbers the surviving siblings contiguously, all in one
	// transaction.
	RemoveStp(ctx context.Context, stpID string) error
	// DeleteReservation deletes the reservation; the engine cascades the
	// delete to the owned path trace tree, parameters and connection.
	DeleteReservation(ctx context.Context, connectionID uuid.UUID) error
	// CreatePort inserts the port. A zero ID is replaced with a generated
	// one and the passed port is updated in place.
	CreatePort(ctx context.Context, port *Port) error
	// GetPort returns the port with the given id, or nil if there is none.
	GetPort(ctx context.Context, portID uuid.UUID) (*Port, error)
	// GetPortByName returns the port with the given unique name, or nil if
	// there is none.
	GetPortByName(ctx context.Context, name string) (*Port, error)
	// ListPorts returns all ports ordered by name, restricted to enabled
	// ones if onlyEnabled is set.
	ListPorts(ctx context.Context, onlyEnabled bool) ([]*Port, error)
	// SetPortEnabled flips the enabled flag of the port. Ports are never
	// deleted, existing connections keep referencing disabled ports.
	SetPortEnabled(ctx context.Context, portID uuid.UUID, enabled bool) error
	// CreateConnection inserts the realized connection of a reservation.
	CreateConnection(ctx context.Context, conn *Connection) error
	// GetConnection returns the connection of the reservation with the
	// given connection id, or nil if there is none.
	GetConnection(ctx context.Context, connectionID uuid.UUID) (*Connection, error)
	// ListConnectionsForPort returns all connections that reference the
	// port on either side.
	ListConnectionsForPort(ctx context.Context, portID uuid.UUID) ([]*Connection, error)
}

// Transaction wraps all reservation DB operations in a transaction.
type Transaction interface {
	ReadWrite
	Commit() error
	Rollback() error
}

// DB defines the interface that all reservation DB backends have to
// implement.
type DB interface {
	ReadWrite
	BeginTransaction(ctx context.Context, opts *sql.TxOptions) (Transaction, error)
	Close() error
}

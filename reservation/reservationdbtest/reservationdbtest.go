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

// Package reservationdbtest provides the acceptance test suite that every
// reservation DB backend has to pass.
package reservationdbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nsiproto/supa/connection/fsm"
	dblib "github.com/nsiproto/supa/private/storage/db"
	"github.com/nsiproto/supa/reservation"
)

const timeout = 3 * time.Second

var (
	startTime = time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	endTime   = time.Date(2026, 8, 31, 17, 30, 0, 0, time.UTC)
)

// allocCounter keeps identifiers that the schema wants globally unique
// distinct across allocations within one test database.
var allocCounter atomic.Int32

// Testable extends the reservation db interface with methods that are needed
// for testing.
type Testable interface {
	reservation.DB
	// Prepare should reset the internal state so that the DB is empty and is
	// ready to be tested.
	Prepare(t *testing.T, ctx context.Context)
}

// Test should be used to test any implementation of the reservation.DB
// interface. An implementation should at least have one test method that
// calls this test-suite.
func Test(t *testing.T, db Testable) {
	testWrapper := func(test func(*testing.T, reservation.DB)) func(t *testing.T) {
		return func(t *testing.T) {
			prepareCtx, cancelF := context.WithTimeout(context.Background(), 2*timeout)
			defer cancelF()
			db.Prepare(t, prepareCtx)
			test(t, db)
		}
	}
	t.Run("CreateReservation fills defaults",
		testWrapper(testCreateReservationDefaults))
	t.Run("CreateReservation round trips",
		testWrapper(testCreateReservationRoundTrip))
	t.Run("CreateReservation rejects invalid input",
		testWrapper(testCreateReservationInvalidInput))
	t.Run("CreateReservation enforces the schedule order",
		testWrapper(testCreateReservationScheduleOrder))
	t.Run("CreateReservation enforces a unique correlation id",
		testWrapper(testCreateReservationDuplicateCorrelationID))
	t.Run("ListReservations filters and orders",
		testWrapper(testListReservations))
	t.Run("state updates round trip",
		testWrapper(testStateUpdates))
	t.Run("state updates validate input and existence",
		testWrapper(testStateUpdateErrors))
	t.Run("SetParameter upserts",
		testWrapper(testSetParameter))
	t.Run("PutPathTrace round trips the tree",
		testWrapper(testPutPathTrace))
	t.Run("PutPathTrace replaces the tree wholesale",
		testWrapper(testPutPathTraceReplaces))
	t.Run("PutPathTrace rejects invalid input",
		testWrapper(testPutPathTraceInvalidInput))
	t.Run("RemoveSegment renumbers the survivors",
		testWrapper(testRemoveSegment))
	t.Run("RemoveStp renumbers the survivors",
		testWrapper(testRemoveStp))
	t.Run("DeleteReservation cascades to the owned tree",
		testWrapper(testDeleteReservation))
	t.Run("ports round trip",
		testWrapper(testPorts))
	t.Run("ListPorts filters disabled ports",
		testWrapper(testListPorts))
	t.Run("connections round trip",
		testWrapper(testConnections))
	t.Run("transactions commit and roll back",
		testWrapper(testTransactions))
}

// AllocReservation builds a reservation with all fields set, so that a
// retrieved copy must compare equal to it.
func AllocReservation(description string) *reservation.Reservation {
	n := allocCounter.Add(1)
	return &reservation.Reservation{
		ConnectionID:              uuid.New(),
		ProtocolVersion:           "application/vnd.ogf.nsi.cs.v2.provider+soap",
		CorrelationID:             uuid.New(),
		RequesterNSA:              "urn:ogf:network:example.domain:2021:nsa:requester",
		ProviderNSA:               "urn:ogf:network:example.domain:2021:nsa:supa",
		ReplyTo:                   "https://requester.example.domain/reply",
		SessionSecurityAttributes: "session-token",
		GlobalReservationID:       fmt.Sprintf("urn:uuid:global-%d", n),
		Description:               description,
		Version:                   1,
		StartTime:                 startTime,
		EndTime:                   endTime,
		Bandwidth:                 1000,
		Directionality:            reservation.Bidirectional,
		Symmetric:                 true,
		SrcDomain:                 "example.domain:2001",
		SrcNetworkType:            "topology",
		SrcPort:                   "port12",
		SrcVlans:                  "1779-1799",
		DstDomain:                 "example.domain:2001",
		DstNetworkType:            "topology",
		DstPort:                   "port23",
		DstVlans:                  "1779-1799",
		ReservationState:          fsm.ReserveStart,
		LifecycleState:            fsm.Created,
		Parameters: []reservation.Parameter{
			{Key: "pathTrace", Value: "enabled"},
		},
	}
}

// InsertReservation creates the reservation and fails the test on error.
func InsertReservation(t *testing.T, db reservation.ReadWrite,
	res *reservation.Reservation) {

	t.Helper()
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	require.NoError(t, db.CreateReservation(ctx, res))
}

// allocPathTrace builds a two path trace tree with identifiers that stay
// unique across allocations.
func allocPathTrace(connectionID uuid.UUID) *reservation.PathTrace {
	n := allocCounter.Add(1)
	segID := func(domain string) string {
		return fmt.Sprintf("urn:ogf:network:%s-%d:2021:nsa:supa", domain, n)
	}
	stpID := func(domain, port string) string {
		return fmt.Sprintf("urn:ogf:network:%s-%d:2021:topology:%s?vlan=1779",
			domain, n, port)
	}
	return &reservation.PathTrace{
		PathTraceKey: reservation.PathTraceKey{
			ID:             "urn:ogf:network:example.domain:2021:nsa:aggr",
			AgConnectionID: uuid.NewString(),
		},
		ConnectionID: connectionID,
		Paths: []*reservation.Path{
			{
				Segments: []*reservation.Segment{
					{
						ID:              segID("domain-a"),
						UpaConnectionID: fmt.Sprintf("A-%d", n),
						Stps: []string{
							stpID("domain-a", "in"),
							stpID("domain-a", "out"),
						},
					},
					{
						ID:              segID("domain-b"),
						UpaConnectionID: fmt.Sprintf("B-%d", n),
						Stps: []string{
							stpID("domain-b", "in"),
							stpID("domain-b", "out"),
						},
					},
				},
			},
			{
				Segments: []*reservation.Segment{
					{
						ID:              segID("domain-c"),
						UpaConnectionID: fmt.Sprintf("C-%d", n),
						Stps: []string{
							stpID("domain-c", "in"),
						},
					},
				},
			},
		},
	}
}

func allocPort(name string, enabled bool) *reservation.Port {
	return &reservation.Port{
		ID:        uuid.New(),
		Name:      name,
		Vlans:     "1779-1799",
		RemoteStp: "urn:ogf:network:remote.domain:2021:topology:" + name,
		Bandwidth: 10000,
		Enabled:   enabled,
	}
}

func testCreateReservationDefaults(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := &reservation.Reservation{
		ProtocolVersion:     "application/vnd.ogf.nsi.cs.v2.provider+soap",
		CorrelationID:       uuid.New(),
		RequesterNSA:        "urn:ogf:network:example.domain:2021:nsa:requester",
		ProviderNSA:         "urn:ogf:network:example.domain:2021:nsa:supa",
		GlobalReservationID: "urn:uuid:global-defaults",
		Bandwidth:           100,
		SrcDomain:           "example.domain:2001",
		SrcNetworkType:      "topology",
		SrcPort:             "port12",
		SrcVlans:            "1779",
		DstDomain:           "example.domain:2001",
		DstNetworkType:      "topology",
		DstPort:             "port23",
		DstVlans:            "1779",
	}
	require.NoError(t, db.CreateReservation(ctx, res))
	assert.NotEqual(t, uuid.UUID{}, res.ConnectionID)

	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.WithinDuration(t, time.Now(), got.StartTime, time.Minute)
	assert.Equal(t, reservation.NoEndDate, got.EndTime)
	assert.Equal(t, reservation.Bidirectional, got.Directionality)
	assert.Equal(t, fsm.ReserveStart, got.ReservationState)
	assert.Empty(t, got.ProvisioningState)
	assert.Equal(t, fsm.Created, got.LifecycleState)
}

func testCreateReservationRoundTrip(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("round trip")
	res.ProvisioningState = fsm.Released
	res.SrcSelectedVlan = 1779
	res.DstSelectedVlan = 1799
	res.Parameters = append(res.Parameters,
		reservation.Parameter{Key: "safnari", Value: "true"})
	require.NoError(t, db.CreateReservation(ctx, res))

	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(res, got))

	got, err = db.GetReservation(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testCreateReservationInvalidInput(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	invalid := map[string]func(*reservation.Reservation){
		"directionality":     func(r *reservation.Reservation) { r.Directionality = "LOOPBACK" },
		"reservation state":  func(r *reservation.Reservation) { r.ReservationState = "ReserveDone" },
		"provisioning state": func(r *reservation.Reservation) { r.ProvisioningState = "Deployed" },
		"lifecycle state":    func(r *reservation.Reservation) { r.LifecycleState = "Gone" },
	}
	for name, corrupt := range invalid {
		t.Run(name, func(t *testing.T) {
			res := AllocReservation("invalid " + name)
			corrupt(res)
			err := db.CreateReservation(ctx, res)
			assert.ErrorIs(t, err, dblib.ErrInvalidInputData)
		})
	}
}

func testCreateReservationScheduleOrder(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("schedule order")
	res.EndTime = res.StartTime
	err := db.CreateReservation(ctx, res)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))
}

func testCreateReservationDuplicateCorrelationID(t *testing.T,
	db reservation.DB) {

	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	correlationID := uuid.New()
	var created atomic.Int32
	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			res := AllocReservation("duplicate correlation id")
			res.CorrelationID = correlationID
			err := db.CreateReservation(ctx, res)
			if err == nil {
				created.Add(1)
				return nil
			}
			if !dblib.IsConstraintViolation(err) {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), created.Load())
}

func testListReservations(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	var all []*reservation.Reservation
	for i, state := range []fsm.LifecycleState{
		fsm.Created, fsm.Terminated, fsm.PassedEndTime,
	} {
		res := AllocReservation(fmt.Sprintf("list %d", i))
		res.StartTime = startTime.Add(time.Duration(i) * time.Hour)
		res.EndTime = endTime.Add(time.Duration(i) * 24 * time.Hour)
		res.LifecycleState = state
		// ListReservations does not load the parameter bags.
		res.Parameters = nil
		InsertReservation(t, db, res)
		all = append(all, res)
	}

	got, err := db.ListReservations(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(all, got), "ordered by start time")

	got, err = db.ListReservations(ctx, &reservation.ReservationQuery{
		LifecycleStates: []fsm.LifecycleState{fsm.Terminated, fsm.PassedEndTime},
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(all[1:], got))

	got, err = db.ListReservations(ctx, &reservation.ReservationQuery{
		EndTimeBefore: endTime.Add(25 * time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(all[:2], got))

	got, err = db.ListReservations(ctx, &reservation.ReservationQuery{
		LifecycleStates: []fsm.LifecycleState{fsm.PassedEndTime},
		EndTimeBefore:   endTime.Add(25 * time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = db.ListReservations(ctx, &reservation.ReservationQuery{
		LifecycleStates: []fsm.LifecycleState{"Gone"},
	})
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)
}

func testStateUpdates(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("state updates")
	InsertReservation(t, db, res)

	require.NoError(t,
		db.SetReservationState(ctx, res.ConnectionID, fsm.ReserveHeld))
	require.NoError(t,
		db.SetProvisioningState(ctx, res.ConnectionID, fsm.Provisioning))
	require.NoError(t,
		db.SetLifecycleState(ctx, res.ConnectionID, fsm.Terminating))
	require.NoError(t,
		db.SetSelectedVlans(ctx, res.ConnectionID, 1779, 1780))

	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, fsm.ReserveHeld, got.ReservationState)
	assert.Equal(t, fsm.Provisioning, got.ProvisioningState)
	assert.Equal(t, fsm.Terminating, got.LifecycleState)
	assert.Equal(t, 1779, got.SrcSelectedVlan)
	assert.Equal(t, 1780, got.DstSelectedVlan)
}

func testStateUpdateErrors(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("state update errors")
	InsertReservation(t, db, res)

	err := db.SetReservationState(ctx, res.ConnectionID, "ReserveDone")
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)
	err = db.SetProvisioningState(ctx, res.ConnectionID, "Deployed")
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)
	err = db.SetLifecycleState(ctx, res.ConnectionID, "Gone")
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)

	missing := uuid.New()
	err = db.SetReservationState(ctx, missing, fsm.ReserveHeld)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	err = db.SetProvisioningState(ctx, missing, fsm.Provisioned)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	err = db.SetLifecycleState(ctx, missing, fsm.Terminated)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	err = db.SetSelectedVlans(ctx, missing, 2, 3)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)

	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res.ReservationState, got.ReservationState)
	assert.Equal(t, res.LifecycleState, got.LifecycleState)
}

func testSetParameter(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("parameters")
	res.Parameters = nil
	InsertReservation(t, db, res)

	require.NoError(t, db.SetParameter(ctx, res.ConnectionID, "zeta", "1"))
	require.NoError(t, db.SetParameter(ctx, res.ConnectionID, "alpha", "2"))
	require.NoError(t, db.SetParameter(ctx, res.ConnectionID, "zeta", "3"))

	params, err := db.GetParameters(ctx, res.ConnectionID)
	require.NoError(t, err)
	expected := []reservation.Parameter{
		{Key: "alpha", Value: "2"},
		{Key: "zeta", Value: "3"},
	}
	assert.Equal(t, expected, params)

	err = db.SetParameter(ctx, uuid.New(), "orphan", "1")
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))
}

func testPutPathTrace(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("path trace")
	InsertReservation(t, db, res)
	trace := allocPathTrace(res.ConnectionID)

	stats, err := db.PutPathTrace(ctx, trace)
	require.NoError(t, err)
	// 1 trace + 2 paths + 3 segments + 5 stps.
	assert.Equal(t, reservation.InsertStats{Inserted: 11}, stats)
	for _, path := range trace.Paths {
		assert.NotEqual(t, uuid.UUID{}, path.ID, "path id generated")
	}

	got, err := db.GetPathTrace(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(trace, got))

	got, err = db.GetPathTrace(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testPutPathTraceReplaces(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("path trace replace")
	InsertReservation(t, db, res)

	first := allocPathTrace(res.ConnectionID)
	_, err := db.PutPathTrace(ctx, first)
	require.NoError(t, err)

	second := allocPathTrace(res.ConnectionID)
	second.Paths = second.Paths[:1]
	stats, err := db.PutPathTrace(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, reservation.InsertStats{Inserted: 8}, stats)

	got, err := db.GetPathTrace(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(second, got), "previous tree fully replaced")
}

func testPutPathTraceInvalidInput(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("path trace invalid")
	InsertReservation(t, db, res)

	_, err := db.PutPathTrace(ctx, nil)
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)

	trace := allocPathTrace(res.ConnectionID)
	trace.AgConnectionID = ""
	_, err = db.PutPathTrace(ctx, trace)
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)

	trace = allocPathTrace(uuid.UUID{})
	_, err = db.PutPathTrace(ctx, trace)
	assert.ErrorIs(t, err, dblib.ErrInvalidInputData)

	// The owning reservation must exist.
	trace = allocPathTrace(uuid.New())
	_, err = db.PutPathTrace(ctx, trace)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))
}

func testRemoveSegment(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("remove segment")
	InsertReservation(t, db, res)

	segment := func(hop string) *reservation.Segment {
		return &reservation.Segment{
			ID:              "urn:ogf:network:" + hop + ".example:2021:nsa:supa",
			UpaConnectionID: "UPA-" + hop,
			Stps: []string{
				"urn:ogf:network:" + hop + ".example:2021:topology:in?vlan=7",
				"urn:ogf:network:" + hop + ".example:2021:topology:out?vlan=7",
			},
		}
	}
	path := &reservation.Path{Segments: []*reservation.Segment{
		segment("hop-a"), segment("hop-b"), segment("hop-c"), segment("hop-d"),
	}}
	trace := allocPathTrace(res.ConnectionID)
	trace.Paths = []*reservation.Path{path}
	_, err := db.PutPathTrace(ctx, trace)
	require.NoError(t, err)

	key := reservation.SegmentKey{ID: path.Segments[1].ID, PathID: path.ID}
	require.NoError(t, db.RemoveSegment(ctx, key))

	got, err := db.GetPathTrace(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Paths, 1)
	want := []*reservation.Segment{
		path.Segments[0], path.Segments[2], path.Segments[3],
	}
	assert.Empty(t, cmp.Diff(want, got.Paths[0].Segments),
		"survivors contiguous in original order")

	err = db.RemoveSegment(ctx, key)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
}

func testRemoveStp(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("remove stp")
	InsertReservation(t, db, res)

	seg := &reservation.Segment{
		ID:              "urn:ogf:network:renumber.example:2021:nsa:supa",
		UpaConnectionID: "UPA-RENUMBER",
		Stps: []string{
			"urn:ogf:network:renumber.example:2021:topology:p0?vlan=7",
			"urn:ogf:network:renumber.example:2021:topology:p1?vlan=7",
			"urn:ogf:network:renumber.example:2021:topology:p2?vlan=7",
			"urn:ogf:network:renumber.example:2021:topology:p3?vlan=7",
		},
	}
	trace := allocPathTrace(res.ConnectionID)
	trace.Paths = []*reservation.Path{{Segments: []*reservation.Segment{seg}}}
	_, err := db.PutPathTrace(ctx, trace)
	require.NoError(t, err)

	removed := seg.Stps[1]
	require.NoError(t, db.RemoveStp(ctx, removed))

	got, err := db.GetPathTrace(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Paths, 1)
	require.Len(t, got.Paths[0].Segments, 1)
	want := []string{seg.Stps[0], seg.Stps[2], seg.Stps[3]}
	assert.Equal(t, want, got.Paths[0].Segments[0].Stps,
		"survivors contiguous in original order")

	err = db.RemoveStp(ctx, removed)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
}

func testDeleteReservation(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	doomed := AllocReservation("doomed")
	keep := AllocReservation("keep")
	InsertReservation(t, db, doomed)
	InsertReservation(t, db, keep)

	src := allocPort("delete-src", true)
	dst := allocPort("delete-dst", true)
	require.NoError(t, db.CreatePort(ctx, src))
	require.NoError(t, db.CreatePort(ctx, dst))

	doomedTrace := allocPathTrace(doomed.ConnectionID)
	keepTrace := allocPathTrace(keep.ConnectionID)
	for _, trace := range []*reservation.PathTrace{doomedTrace, keepTrace} {
		_, err := db.PutPathTrace(ctx, trace)
		require.NoError(t, err)
	}
	for _, res := range []*reservation.Reservation{doomed, keep} {
		require.NoError(t, db.CreateConnection(ctx, &reservation.Connection{
			ConnectionID:   res.ConnectionID,
			Bandwidth:      res.Bandwidth,
			SourcePortID:   src.ID,
			SourceVlan:     1779,
			DestPortID:     dst.ID,
			DestVlan:       1799,
			SubscriptionID: uuid.New(),
		}))
	}

	require.NoError(t, db.DeleteReservation(ctx, doomed.ConnectionID))

	gone, err := db.GetReservation(ctx, doomed.ConnectionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	goneTrace, err := db.GetPathTrace(ctx, doomed.ConnectionID)
	require.NoError(t, err)
	assert.Nil(t, goneTrace)
	goneParams, err := db.GetParameters(ctx, doomed.ConnectionID)
	require.NoError(t, err)
	assert.Empty(t, goneParams)
	goneConn, err := db.GetConnection(ctx, doomed.ConnectionID)
	require.NoError(t, err)
	assert.Nil(t, goneConn)

	// The sibling reservation and the ports stay untouched.
	kept, err := db.GetReservation(ctx, keep.ConnectionID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(keep, kept))
	keptTrace, err := db.GetPathTrace(ctx, keep.ConnectionID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(keepTrace, keptTrace))
	keptConn, err := db.GetConnection(ctx, keep.ConnectionID)
	require.NoError(t, err)
	assert.NotNil(t, keptConn)
	keptPort, err := db.GetPort(ctx, src.ID)
	require.NoError(t, err)
	assert.NotNil(t, keptPort)

	err = db.DeleteReservation(ctx, doomed.ConnectionID)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
}

func testPorts(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	port := &reservation.Port{
		Name:      "port-round-trip",
		Vlans:     "1779-1799",
		Bandwidth: 40000,
		Enabled:   true,
	}
	require.NoError(t, db.CreatePort(ctx, port))
	assert.NotEqual(t, uuid.UUID{}, port.ID, "port id generated")

	got, err := db.GetPort(ctx, port.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(port, got))

	got, err = db.GetPortByName(ctx, port.Name)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(port, got))

	got, err = db.GetPort(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	got, err = db.GetPortByName(ctx, "no such port")
	require.NoError(t, err)
	assert.Nil(t, got)

	dup := allocPort(port.Name, true)
	err = db.CreatePort(ctx, dup)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))
}

func testListPorts(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	charlie := allocPort("charlie", true)
	alpha := allocPort("alpha", true)
	bravo := allocPort("bravo", false)
	for _, port := range []*reservation.Port{charlie, alpha, bravo} {
		require.NoError(t, db.CreatePort(ctx, port))
	}

	all, err := db.ListPorts(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(
		[]*reservation.Port{alpha, bravo, charlie}, all), "ordered by name")

	enabled, err := db.ListPorts(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]*reservation.Port{alpha, charlie}, enabled))

	require.NoError(t, db.SetPortEnabled(ctx, bravo.ID, true))
	require.NoError(t, db.SetPortEnabled(ctx, charlie.ID, false))
	enabled, err = db.ListPorts(ctx, true)
	require.NoError(t, err)
	bravo.Enabled = true
	assert.Empty(t, cmp.Diff([]*reservation.Port{alpha, bravo}, enabled))

	err = db.SetPortEnabled(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
}

func testConnections(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()
	res := AllocReservation("connection")
	InsertReservation(t, db, res)
	src := allocPort("conn-src", true)
	dst := allocPort("conn-dst", true)
	require.NoError(t, db.CreatePort(ctx, src))
	require.NoError(t, db.CreatePort(ctx, dst))

	conn := &reservation.Connection{
		ConnectionID:   res.ConnectionID,
		Bandwidth:      res.Bandwidth,
		SourcePortID:   src.ID,
		SourceVlan:     1779,
		DestPortID:     dst.ID,
		DestVlan:       1799,
		SubscriptionID: uuid.New(),
	}
	require.NoError(t, db.CreateConnection(ctx, conn))

	got, err := db.GetConnection(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(conn, got))

	got, err = db.GetConnection(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	// The connection is found from either side.
	for _, portID := range []uuid.UUID{src.ID, dst.ID} {
		conns, err := db.ListConnectionsForPort(ctx, portID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff([]*reservation.Connection{conn}, conns))
	}

	// Disabling a port does not detach its connections.
	require.NoError(t, db.SetPortEnabled(ctx, src.ID, false))
	conns, err := db.ListConnectionsForPort(ctx, src.ID)
	require.NoError(t, err)
	assert.Len(t, conns, 1)

	other := AllocReservation("connection dup subscription")
	InsertReservation(t, db, other)
	dup := *conn
	dup.ConnectionID = other.ConnectionID
	err = db.CreateConnection(ctx, &dup)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))

	// The owning reservation must exist.
	orphan := *conn
	orphan.ConnectionID = uuid.New()
	orphan.SubscriptionID = uuid.New()
	err = db.CreateConnection(ctx, &orphan)
	assert.ErrorIs(t, err, dblib.ErrWriteFailed)
	assert.True(t, dblib.IsConstraintViolation(err))
}

func testTransactions(t *testing.T, db reservation.DB) {
	ctx, cancelF := context.WithTimeout(context.Background(), timeout)
	defer cancelF()

	committed := AllocReservation("committed")
	tx, err := db.BeginTransaction(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tx.CreateReservation(ctx, committed))
	// Uncommitted writes are visible inside the transaction.
	inside, err := tx.GetReservation(ctx, committed.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, inside)
	require.NoError(t, tx.Commit())

	got, err := db.GetReservation(ctx, committed.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(committed, got))

	rolledBack := AllocReservation("rolled back")
	tx, err = db.BeginTransaction(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, tx.CreateReservation(ctx, rolledBack))
	require.NoError(t, tx.Rollback())

	got, err = db.GetReservation(ctx, rolledBack.ConnectionID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

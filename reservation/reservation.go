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

// Package reservation defines the entities of the connection provider's data
// model and the interfaces of the database that persists them.
//
// A Reservation records a request for a point-to-point network service. It
// owns an optional PathTrace tree (ordered Paths, Segments and STP
// identifiers, as reported by path computation), an open set of Parameters,
// and, once provisioned, a Connection that pairs two Ports with the selected
// VLANs and the deployed subscription.
package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsiproto/supa/connection/fsm"
	"github.com/nsiproto/supa/pkg/nsi"
	"github.com/nsiproto/supa/pkg/private/serrors"
)

// NoEndDate is the end time recorded for reservations without an explicit
// end. It is far enough in the future to outlive any deployment and lies on
// a whole second, so the storage codec's truncation leaves it untouched.
var NoEndDate = time.Date(2108, 12, 31, 23, 59, 59, 0, time.UTC)

// Directionality of the requested point-to-point service.
type Directionality string

// The directionality values.
const (
	Bidirectional  Directionality = "BI_DIRECTIONAL"
	Unidirectional Directionality = "UNI_DIRECTIONAL"
)

// Validate checks that the value is a legal directionality.
func (d Directionality) Validate() error {
	switch d {
	case Bidirectional, Unidirectional:
		return nil
	}
	return serrors.New("unknown directionality", "directionality", string(d))
}

func (d Directionality) String() string {
	return string(d)
}

// Reservation is a request to hold network resources for a point-to-point
// service, tracked through three independent state axes.
type Reservation struct {
	// ConnectionID identifies the reservation. It is the only generated
	// identifier in the model; all externally meaningful identifiers keep
	// their natural textual form.
	ConnectionID uuid.UUID

	// Header as carried by the originating protocol request.
	ProtocolVersion           string
	CorrelationID             uuid.UUID
	RequesterNSA              string
	ProviderNSA               string
	ReplyTo                   string
	SessionSecurityAttributes string

	GlobalReservationID string
	Description         string
	Version             int

	// Schedule window. StartTime must lie strictly before EndTime.
	StartTime time.Time
	EndTime   time.Time

	// Point-to-point service parameters.
	Bandwidth      int64 // in Mbps
	Directionality Directionality
	Symmetric      bool

	SrcDomain       string
	SrcNetworkType  string
	SrcPort         string
	SrcVlans        string
	SrcSelectedVlan int
	DstDomain       string
	DstNetworkType  string
	DstPort         string
	DstVlans        string
	DstSelectedVlan int

	// State columns, one per state machine. The provisioning state stays
	// empty until the initial reservation has been committed.
	ReservationState  fsm.ReservationState
	ProvisioningState fsm.ProvisioningState
	LifecycleState    fsm.LifecycleState

	// Parameters is the open key/value extension bag of the reservation.
	Parameters []Parameter
}

// SourceStp returns the source endpoint of the reservation. With selected
// set, the vlan label carries the VLAN chosen at provisioning time instead
// of the requested range.
func (r *Reservation) SourceStp(selected bool) nsi.Stp {
	return stp(r.SrcDomain, r.SrcNetworkType, r.SrcPort, r.SrcVlans,
		r.SrcSelectedVlan, selected)
}

// DestStp returns the destination endpoint of the reservation. With selected
// set, the vlan label carries the VLAN chosen at provisioning time instead
// of the requested range.
func (r *Reservation) DestStp(selected bool) nsi.Stp {
	return stp(r.DstDomain, r.DstNetworkType, r.DstPort, r.DstVlans,
		r.DstSelectedVlan, selected)
}

func stp(domain, networkType, port, vlans string, selectedVlan int,
	selected bool) nsi.Stp {

	if selected {
		vlans = strconv.Itoa(selectedVlan)
	}
	return nsi.Stp{
		Domain:      domain,
		NetworkType: networkType,
		Port:        port,
		Labels:      "vlan=" + vlans,
	}
}

func (r *Reservation) String() string {
	return formatEntity("Reservation", []attribute{
		{"connection_id", r.ConnectionID},
		{"protocol_version", r.ProtocolVersion},
		{"correlation_id", r.CorrelationID},
		{"requester_nsa", r.RequesterNSA},
		{"provider_nsa", r.ProviderNSA},
		{"reply_to", r.ReplyTo},
		{"global_reservation_id", r.GlobalReservationID},
		{"description", r.Description},
		{"version", r.Version},
		{"start_time", r.StartTime},
		{"end_time", r.EndTime},
		{"bandwidth", r.Bandwidth},
		{"directionality", r.Directionality},
		{"symmetric", r.Symmetric},
		{"src_stp", r.SourceStp(false)},
		{"dst_stp", r.DestStp(false)},
		{"reservation_state", r.ReservationState},
		{"provisioning_state", r.ProvisioningState},
		{"lifecycle_state", r.LifecycleState},
	})
}

// Parameter is one entry of a reservation's key/value extension bag.
type Parameter struct {
	Key   string
	Value string
}

func (p Parameter) String() string {
	return formatEntity("Parameter", []attribute{
		{"key", p.Key},
		{"value", p.Value},
	})
}

// PathTraceKey is the natural composite key of a path trace: the identifier
// of the aggregator NSA that started the trace and the connection id that
// aggregator assigned.
type PathTraceKey struct {
	ID             string
	AgConnectionID string
}

func (k PathTraceKey) String() string {
	return formatEntity("PathTraceKey", []attribute{
		{"path_trace_id", k.ID},
		{"ag_connection_id", k.AgConnectionID},
	})
}

// PathTrace records the multi-domain path a reservation traverses, as
// reported by path computation. A reservation owns at most one path trace.
type PathTrace struct {
	PathTraceKey
	// ConnectionID is the owning reservation.
	ConnectionID uuid.UUID
	// Paths in the order reported.
	Paths []*Path
}

func (t *PathTrace) String() string {
	return formatEntity("PathTrace", []attribute{
		{"path_trace_id", t.ID},
		{"ag_connection_id", t.AgConnectionID},
		{"connection_id", t.ConnectionID},
		{"paths", len(t.Paths)},
	})
}

// Path is one alternative path of a path trace, composed of ordered
// segments.
type Path struct {
	// ID is generated at write time when zero.
	ID uuid.UUID
	// Segments in path order. Persisted order is derived from the slice
	// positions.
	Segments []*Segment
}

func (p *Path) String() string {
	return formatEntity("Path", []attribute{
		{"path_id", p.ID},
		{"segments", len(p.Segments)},
	})
}

// SegmentKey is the natural composite key of a segment within a path trace.
type SegmentKey struct {
	// ID is the identifier of the NSA that owns the segment.
	ID string
	// PathID is the path the segment belongs to.
	PathID uuid.UUID
}

func (k SegmentKey) String() string {
	return formatEntity("SegmentKey", []attribute{
		{"segment_id", k.ID},
		{"path_id", k.PathID},
	})
}

// Segment is a per-domain hop of a path: the portion of the path that a
// single NSA is responsible for, composed of ordered STP identifiers.
type Segment struct {
	// ID is the identifier of the NSA that owns the segment.
	ID string
	// UpaConnectionID is the connection id the owning uPA assigned to its
	// portion of the path. It is externally issued and not necessarily
	// UUID shaped.
	UpaConnectionID string
	// Stps holds the STP identifiers of the segment in path order.
	// Persisted order is derived from the slice positions.
	Stps []string
}

func (s *Segment) String() string {
	return formatEntity("Segment", []attribute{
		{"segment_id", s.ID},
		{"upa_connection_id", s.UpaConnectionID},
		{"stps", len(s.Stps)},
	})
}

// Port is a network termination point known to this system, independent of
// any specific reservation. Ports are never hard-deleted: connections keep
// referencing them after they are disabled.
type Port struct {
	ID        uuid.UUID
	Name      string
	Vlans     string
	RemoteStp string
	Bandwidth int64 // in Mbps
	Enabled   bool
}

func (p *Port) String() string {
	return formatEntity("Port", []attribute{
		{"port_id", p.ID},
		{"name", p.Name},
		{"vlans", p.Vlans},
		{"remote_stp", p.RemoteStp},
		{"bandwidth", p.Bandwidth},
		{"enabled", p.Enabled},
	})
}

// Connection is the realized, provisioned pairing of two ports with the
// selected VLANs and a reference to the lightpath deployed in the external
// provisioning system. It shares its reservation's primary key.
type Connection struct {
	ConnectionID   uuid.UUID
	Bandwidth      int64 // in Mbps
	SourcePortID   uuid.UUID
	SourceVlan     int
	DestPortID     uuid.UUID
	DestVlan       int
	SubscriptionID uuid.UUID
}

func (c *Connection) String() string {
	return formatEntity("Connection", []attribute{
		{"connection_id", c.ConnectionID},
		{"bandwidth", c.Bandwidth},
		{"source_port_id", c.SourcePortID},
		{"source_vlan", c.SourceVlan},
		{"dest_port_id", c.DestPortID},
		{"dest_vlan", c.DestVlan},
		{"subscription_id", c.SubscriptionID},
	})
}

type attribute struct {
	key   string
	value any
}

// formatEntity renders an entity as Name(key=value, ...) from its declared
// attribute list.
func formatEntity(name string, attrs []attribute) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", a.key, a.value)
	}
	sb.WriteByte(')')
	return sb.String()
}

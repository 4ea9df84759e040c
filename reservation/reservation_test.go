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

package reservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nsiproto/supa/pkg/nsi"
	"github.com/nsiproto/supa/reservation"
)

func TestStpAccessors(t *testing.T) {
	res := &reservation.Reservation{
		SrcDomain:       "example.domain:2001",
		SrcNetworkType:  "topology",
		SrcPort:         "port1",
		SrcVlans:        "100-200",
		SrcSelectedVlan: 123,
		DstDomain:       "remote.domain:2013",
		DstNetworkType:  "production",
		DstPort:         "port2",
		DstVlans:        "1779",
		DstSelectedVlan: 1779,
	}
	assert.Equal(t, nsi.Stp{
		Domain:      "example.domain:2001",
		NetworkType: "topology",
		Port:        "port1",
		Labels:      "vlan=100-200",
	}, res.SourceStp(false))
	assert.Equal(t, nsi.Stp{
		Domain:      "example.domain:2001",
		NetworkType: "topology",
		Port:        "port1",
		Labels:      "vlan=123",
	}, res.SourceStp(true))
	assert.Equal(t,
		"urn:ogf:network:remote.domain:2013:production:port2?vlan=1779",
		res.DestStp(false).String(),
	)
	assert.Equal(t,
		"urn:ogf:network:remote.domain:2013:production:port2?vlan=1779",
		res.DestStp(true).String(),
	)
}

func TestDirectionalityValidate(t *testing.T) {
	assert.NoError(t, reservation.Bidirectional.Validate())
	assert.NoError(t, reservation.Unidirectional.Validate())
	assert.Error(t, reservation.Directionality("SIDEWAYS").Validate())
	assert.Error(t, reservation.Directionality("").Validate())
}

func TestNoEndDate(t *testing.T) {
	// The sentinel must survive the storage codec's whole second
	// truncation and UTC conversion unchanged.
	assert.Equal(t, reservation.NoEndDate, reservation.NoEndDate.Truncate(time.Second))
	assert.Equal(t, reservation.NoEndDate, reservation.NoEndDate.UTC())
	assert.True(t, reservation.NoEndDate.After(time.Now().AddDate(50, 0, 0)))
}

func TestEntityString(t *testing.T) {
	connID := uuid.MustParse("5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84")
	portID := uuid.MustParse("9e0b7a2e-4c36-45cf-b81b-5a3a1950ae31")

	param := reservation.Parameter{Key: "protectionType", Value: "PROTECTED"}
	assert.Equal(t, "Parameter(key=protectionType, value=PROTECTED)", param.String())

	segKey := reservation.SegmentKey{ID: "urn:ogf:network:example.domain:2001:nsa", PathID: portID}
	assert.Equal(t,
		"SegmentKey(segment_id=urn:ogf:network:example.domain:2001:nsa, "+
			"path_id=9e0b7a2e-4c36-45cf-b81b-5a3a1950ae31)",
		segKey.String(),
	)

	conn := &reservation.Connection{
		ConnectionID: connID,
		Bandwidth:    1000,
		SourcePortID: portID,
		SourceVlan:   100,
		DestPortID:   portID,
		DestVlan:     200,
	}
	assert.Contains(t, conn.String(), "Connection(connection_id=5b0b87c8")
	assert.Contains(t, conn.String(), "source_vlan=100")
	assert.Contains(t, conn.String(), "dest_vlan=200")

	trace := &reservation.PathTrace{
		PathTraceKey: reservation.PathTraceKey{
			ID:             "urn:ogf:network:example.domain:2001:nsa",
			AgConnectionID: "AG-1",
		},
		ConnectionID: connID,
		Paths:        []*reservation.Path{{}, {}},
	}
	assert.Contains(t, trace.String(), "ag_connection_id=AG-1")
	assert.Contains(t, trace.String(), "paths=2")
}

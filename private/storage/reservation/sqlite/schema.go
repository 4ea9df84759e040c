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
	"fmt"
	"strings"

	"github.com/nsiproto/supa/connection/fsm"
	"github.com/nsiproto/supa/reservation"
)

// SchemaVersion is the version of the SQLite schema understood by this
// backend. Whenever changes to the schema are made, this version number must
// be increased to prevent data corruption between incompatible database
// schemas. Note that the state column CHECK constraints are generated from
// the value sets declared in connection/fsm, so adding a state is a schema
// change like any other.
const SchemaVersion = 1

// Schema is the SQLite database layout. The engine enforces the referential
// integrity of the ownership tree (cascade deletes), the uniqueness of
// correlation_id, subscription_id, port name and sibling order, and the
// legality of the enumerated columns. All timestamp columns store offset-less
// TEXT that is UTC by contract, see the UtcTime codec.
var Schema = fmt.Sprintf(`
	CREATE TABLE reservations(
		connection_id TEXT NOT NULL PRIMARY KEY,
		protocol_version TEXT NOT NULL,
		correlation_id TEXT NOT NULL UNIQUE,
		requester_nsa TEXT NOT NULL,
		provider_nsa TEXT NOT NULL,
		reply_to TEXT,
		session_security_attributes TEXT,
		global_reservation_id TEXT NOT NULL,
		description TEXT,
		version INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		bandwidth INTEGER NOT NULL,
		directionality TEXT NOT NULL CHECK(directionality IN ('%s', '%s')),
		symmetric BOOLEAN NOT NULL,
		src_domain TEXT NOT NULL,
		src_network_type TEXT NOT NULL,
		src_port TEXT NOT NULL,
		src_vlans TEXT NOT NULL,
		src_selected_vlan INTEGER,
		dst_domain TEXT NOT NULL,
		dst_network_type TEXT NOT NULL,
		dst_port TEXT NOT NULL,
		dst_vlans TEXT NOT NULL,
		dst_selected_vlan INTEGER,
		reservation_state TEXT NOT NULL CHECK(reservation_state IN (%s)),
		provisioning_state TEXT CHECK(provisioning_state IN (%s)),
		lifecycle_state TEXT NOT NULL CHECK(lifecycle_state IN (%s)),
		CHECK(start_time < end_time)
	);
	CREATE INDEX idx_reservations_start_time ON reservations(start_time);
	CREATE INDEX idx_reservations_end_time ON reservations(end_time);

	CREATE TABLE path_traces(
		path_trace_id TEXT NOT NULL,
		ag_connection_id TEXT NOT NULL,
		connection_id TEXT NOT NULL,
		PRIMARY KEY (path_trace_id, ag_connection_id),
		FOREIGN KEY (connection_id)
			REFERENCES reservations(connection_id) ON DELETE CASCADE
	);
	CREATE INDEX idx_path_traces_connection_id ON path_traces(connection_id);

	CREATE TABLE paths(
		path_id TEXT NOT NULL PRIMARY KEY,
		path_trace_id TEXT NOT NULL,
		ag_connection_id TEXT NOT NULL,
		FOREIGN KEY (path_trace_id, ag_connection_id)
			REFERENCES path_traces(path_trace_id, ag_connection_id)
			ON DELETE CASCADE
	);
	CREATE INDEX idx_paths_path_trace ON paths(path_trace_id, ag_connection_id);

	CREATE TABLE segments(
		segment_id TEXT NOT NULL,
		path_id TEXT NOT NULL,
		upa_connection_id TEXT NOT NULL,
		"order" INTEGER NOT NULL,
		PRIMARY KEY (segment_id, path_id),
		FOREIGN KEY (path_id) REFERENCES paths(path_id) ON DELETE CASCADE,
		UNIQUE (path_id, "order")
	);

	CREATE TABLE stps(
		stp_id TEXT NOT NULL PRIMARY KEY,
		segment_id TEXT NOT NULL,
		path_id TEXT NOT NULL,
		"order" INTEGER NOT NULL,
		FOREIGN KEY (segment_id, path_id)
			REFERENCES segments(segment_id, path_id) ON DELETE CASCADE,
		UNIQUE (segment_id, "order")
	);
	CREATE INDEX idx_stps_segment ON stps(segment_id, path_id);

	CREATE TABLE parameters(
		connection_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT,
		PRIMARY KEY (connection_id, key),
		FOREIGN KEY (connection_id)
			REFERENCES reservations(connection_id) ON DELETE CASCADE
	);

	CREATE TABLE ports(
		port_id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		vlans TEXT NOT NULL,
		remote_stp TEXT,
		bandwidth INTEGER NOT NULL,
		enabled BOOLEAN NOT NULL
	);

	CREATE TABLE connections(
		connection_id TEXT NOT NULL PRIMARY KEY,
		bandwidth INTEGER NOT NULL,
		source_port_id TEXT NOT NULL,
		source_vlan INTEGER NOT NULL,
		dest_port_id TEXT NOT NULL,
		dest_vlan INTEGER NOT NULL,
		subscription_id TEXT NOT NULL UNIQUE,
		FOREIGN KEY (connection_id)
			REFERENCES reservations(connection_id) ON DELETE CASCADE,
		FOREIGN KEY (source_port_id) REFERENCES ports(port_id),
		FOREIGN KEY (dest_port_id) REFERENCES ports(port_id)
	);
	CREATE INDEX idx_connections_source_port_id ON connections(source_port_id);
	CREATE INDEX idx_connections_dest_port_id ON connections(dest_port_id);
	`,
	reservation.Bidirectional, reservation.Unidirectional,
	quoteStates(fsm.ReservationStates()),
	quoteStates(fsm.ProvisioningStates()),
	quoteStates(fsm.LifecycleStates()),
)

func quoteStates[T ~string](states []T) string {
	quoted := make([]string, 0, len(states))
	for _, s := range states {
		quoted = append(quoted, "'"+string(s)+"'")
	}
	return strings.Join(quoted, ", ")
}

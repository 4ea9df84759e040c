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

// Package nsi contains value types for Network Service Interface
// identifiers.
package nsi

import (
	"regexp"
	"strings"

	"github.com/nsiproto/supa/pkg/private/serrors"
)

const urnPrefix = "urn:ogf:network:"

// An STP URN has the form
//
//	urn:ogf:network:<domain>:<network type>:<port>?<labels>
//
// where the domain carries a trailing four digit year per the NML naming
// convention (for example "netherlight.net:2013") and the labels part is
// optional.
var stpRegexp = regexp.MustCompile(
	`^urn:ogf:network:([^:]+:\d{4}):([^:]+):([^?]+)(?:\?(.+))?$`)

// Stp is a service termination point, the endpoint of a point-to-point
// connection in a network topology.
type Stp struct {
	// Domain identifies the network, including the year of registration,
	// e.g. "example.domain:2001".
	Domain string
	// NetworkType identifies the topology within the domain.
	NetworkType string
	// Port is the name of the port within the topology. It may itself
	// contain colons.
	Port string
	// Labels further qualify the port, e.g. "vlan=1779" or "vlan=100-200".
	// Empty means the port is unqualified.
	Labels string
}

// ParseStp parses an STP URN.
func ParseStp(raw string) (Stp, error) {
	m := stpRegexp.FindStringSubmatch(raw)
	if m == nil {
		return Stp{}, serrors.New("invalid STP URN", "stp", raw)
	}
	return Stp{
		Domain:      m[1],
		NetworkType: m[2],
		Port:        m[3],
		Labels:      m[4],
	}, nil
}

// String returns the URN representation of the STP. The labels part is
// omitted when no labels are set.
func (s Stp) String() string {
	urn := urnPrefix + s.Domain + ":" + s.NetworkType + ":" + s.Port
	if s.Labels != "" {
		urn += "?" + s.Labels
	}
	return urn
}

// VlanRanges returns the value of the vlan label, or the empty string if the
// STP carries no vlan label.
func (s Stp) VlanRanges() string {
	for _, label := range strings.Split(s.Labels, "&") {
		if v, ok := strings.CutPrefix(label, "vlan="); ok {
			return v
		}
	}
	return ""
}

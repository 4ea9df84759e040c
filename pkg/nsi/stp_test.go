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

package nsi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsiproto/supa/pkg/nsi"
)

func TestParseStp(t *testing.T) {
	testCases := map[string]struct {
		raw       string
		want      nsi.Stp
		assertErr assert.ErrorAssertionFunc
	}{
		"with vlan label": {
			raw: "urn:ogf:network:netherlight.net:2013:production7:port1?vlan=1779",
			want: nsi.Stp{
				Domain:      "netherlight.net:2013",
				NetworkType: "production7",
				Port:        "port1",
				Labels:      "vlan=1779",
			},
			assertErr: assert.NoError,
		},
		"with vlan range": {
			raw: "urn:ogf:network:example.domain:2001:topology:port?vlan=100-200",
			want: nsi.Stp{
				Domain:      "example.domain:2001",
				NetworkType: "topology",
				Port:        "port",
				Labels:      "vlan=100-200",
			},
			assertErr: assert.NoError,
		},
		"without labels": {
			raw: "urn:ogf:network:example.domain:2001:topology:port",
			want: nsi.Stp{
				Domain:      "example.domain:2001",
				NetworkType: "topology",
				Port:        "port",
			},
			assertErr: assert.NoError,
		},
		"port with colons": {
			raw: "urn:ogf:network:surf.nl:2020:production:node01:1:10?vlan=2-4094",
			want: nsi.Stp{
				Domain:      "surf.nl:2020",
				NetworkType: "production",
				Port:        "node01:1:10",
				Labels:      "vlan=2-4094",
			},
			assertErr: assert.NoError,
		},
		"missing prefix": {
			raw:       "network:example.domain:2001:topology:port",
			assertErr: assert.Error,
		},
		"missing year": {
			raw:       "urn:ogf:network:example.domain:topology:port",
			assertErr: assert.Error,
		},
		"missing port": {
			raw:       "urn:ogf:network:example.domain:2001:topology",
			assertErr: assert.Error,
		},
		"empty labels after separator": {
			raw:       "urn:ogf:network:example.domain:2001:topology:port?",
			assertErr: assert.Error,
		},
		"empty": {
			raw:       "",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			stp, err := nsi.ParseStp(tc.raw)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, stp)
			assert.Equal(t, tc.raw, stp.String())
		})
	}
}

func TestStpString(t *testing.T) {
	stp := nsi.Stp{
		Domain:      "example.domain:2001",
		NetworkType: "topology",
		Port:        "port",
	}
	assert.Equal(t, "urn:ogf:network:example.domain:2001:topology:port", stp.String())

	stp.Labels = "vlan=1779"
	assert.Equal(t, "urn:ogf:network:example.domain:2001:topology:port?vlan=1779",
		stp.String())
}

func TestVlanRanges(t *testing.T) {
	testCases := map[string]struct {
		labels string
		want   string
	}{
		"single vlan":     {labels: "vlan=1779", want: "1779"},
		"vlan range":      {labels: "vlan=100-200", want: "100-200"},
		"multiple labels": {labels: "foo=bar&vlan=23", want: "23"},
		"no vlan label":   {labels: "foo=bar", want: ""},
		"no labels":       {labels: "", want: ""},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			stp := nsi.Stp{Labels: tc.labels}
			assert.Equal(t, tc.want, stp.VlanRanges())
		})
	}
}

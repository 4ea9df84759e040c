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

package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsiproto/supa/connection/fsm"
)

func TestReservationStateValidate(t *testing.T) {
	for _, s := range fsm.ReservationStates() {
		assert.NoError(t, s.Validate(), "state %s", s)
	}
	assert.Error(t, fsm.ReservationState("ReserveDone").Validate())
	assert.Error(t, fsm.ReservationState("").Validate())
	// States of the other machines are not reservation states.
	assert.Error(t, fsm.ReservationState(fsm.Provisioned).Validate())
}

func TestProvisioningStateValidate(t *testing.T) {
	for _, s := range fsm.ProvisioningStates() {
		assert.NoError(t, s.Validate(), "state %s", s)
	}
	assert.Error(t, fsm.ProvisioningState("Deprovisioned").Validate())
	assert.Error(t, fsm.ProvisioningState("").Validate())
}

func TestLifecycleStateValidate(t *testing.T) {
	for _, s := range fsm.LifecycleStates() {
		assert.NoError(t, s.Validate(), "state %s", s)
	}
	assert.Error(t, fsm.LifecycleState("Destroyed").Validate())
	assert.Error(t, fsm.LifecycleState("").Validate())
}

func TestStatesDistinct(t *testing.T) {
	seen := map[string]struct{}{}
	for _, s := range fsm.ReservationStates() {
		seen[s.String()] = struct{}{}
	}
	assert.Len(t, seen, len(fsm.ReservationStates()))

	seen = map[string]struct{}{}
	for _, s := range fsm.ProvisioningStates() {
		seen[s.String()] = struct{}{}
	}
	assert.Len(t, seen, len(fsm.ProvisioningStates()))

	seen = map[string]struct{}{}
	for _, s := range fsm.LifecycleStates() {
		seen[s.String()] = struct{}{}
	}
	assert.Len(t, seen, len(fsm.LifecycleStates()))
}

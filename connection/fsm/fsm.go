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

// Package fsm declares the state value sets of the NSI connection service
// state machines: the reservation, provisioning and lifecycle states of a
// connection.
//
// Only the legal values live here, transition logic belongs to the protocol
// layer. The storage layer consumes the value sets both to validate state
// writes and to assemble schema level CHECK constraints, so adding a state
// widens storage and validation in one place.
package fsm

import (
	"slices"

	"github.com/nsiproto/supa/pkg/private/serrors"
)

// ReservationState is a state of the reservation state machine (RSM).
type ReservationState string

// The reservation state machine states.
const (
	ReserveStart      ReservationState = "ReserveStart"
	ReserveChecking   ReservationState = "ReserveChecking"
	ReserveHeld       ReservationState = "ReserveHeld"
	ReserveCommitting ReservationState = "ReserveCommitting"
	ReserveFailed     ReservationState = "ReserveFailed"
	ReserveTimeout    ReservationState = "ReserveTimeout"
	ReserveAborting   ReservationState = "ReserveAborting"
)

var reservationStates = []ReservationState{
	ReserveStart,
	ReserveChecking,
	ReserveHeld,
	ReserveCommitting,
	ReserveFailed,
	ReserveTimeout,
	ReserveAborting,
}

// ReservationStates returns the set of legal reservation states.
func ReservationStates() []ReservationState {
	return slices.Clone(reservationStates)
}

// Validate checks that the value is a member of the reservation state set.
func (s ReservationState) Validate() error {
	if !slices.Contains(reservationStates, s) {
		return serrors.New("unknown reservation state", "state", string(s))
	}
	return nil
}

func (s ReservationState) String() string {
	return string(s)
}

// ProvisioningState is a state of the provision state machine (PSM). A
// connection only enters the PSM once its initial reservation has been
// committed.
type ProvisioningState string

// The provision state machine states.
const (
	Released     ProvisioningState = "Released"
	Provisioning ProvisioningState = "Provisioning"
	Provisioned  ProvisioningState = "Provisioned"
	Releasing    ProvisioningState = "Releasing"
)

var provisioningStates = []ProvisioningState{
	Released,
	Provisioning,
	Provisioned,
	Releasing,
}

// ProvisioningStates returns the set of legal provisioning states.
func ProvisioningStates() []ProvisioningState {
	return slices.Clone(provisioningStates)
}

// Validate checks that the value is a member of the provisioning state set.
func (s ProvisioningState) Validate() error {
	if !slices.Contains(provisioningStates, s) {
		return serrors.New("unknown provisioning state", "state", string(s))
	}
	return nil
}

func (s ProvisioningState) String() string {
	return string(s)
}

// LifecycleState is a state of the lifecycle state machine (LSM).
type LifecycleState string

// The lifecycle state machine states.
const (
	Created       LifecycleState = "Created"
	Failed        LifecycleState = "Failed"
	Terminating   LifecycleState = "Terminating"
	Terminated    LifecycleState = "Terminated"
	PassedEndTime LifecycleState = "PassedEndTime"
)

var lifecycleStates = []LifecycleState{
	Created,
	Failed,
	Terminating,
	Terminated,
	PassedEndTime,
}

// LifecycleStates returns the set of legal lifecycle states.
func LifecycleStates() []LifecycleState {
	return slices.Clone(lifecycleStates)
}

// Validate checks that the value is a member of the lifecycle state set.
func (s LifecycleState) Validate() error {
	if !slices.Contains(lifecycleStates, s) {
		return serrors.New("unknown lifecycle state", "state", string(s))
	}
	return nil
}

func (s LifecycleState) String() string {
	return string(s)
}

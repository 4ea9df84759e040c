// Copyright 2017 ETH Zurich
// Copyright 2018 ETH Zurich, Anapaya Systems
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

// Package prom holds the shared prometheus label vocabulary and registration
// helpers. Metrics of different subsystems use the same label names and
// result values so that dashboards can aggregate across them.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Common label names.
const (
	// LabelResult is the label for result classifications.
	LabelResult = "result"
)

// Common result values.
const (
	// Success is no error.
	Success = "ok_success"
	// ErrNotClassified is an error that is not further classified.
	ErrNotClassified = "err_not_classified"
	// ErrTimeout is a timeout error.
	ErrTimeout = "err_timeout"
)

// Labels allows to safely pass label values into prometheus.
type Labels interface {
	Labels() []string
	Values() []string
}

// SafeRegister registers c and returns the registered collector. If c was
// already registered the already registered collector is returned. In case of
// any other error this method panicks (as MustRegister).
func SafeRegister(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

// NewCounterVecWithLabels creates a prometheus counter vec that is registered
// with the default registry.
func NewCounterVecWithLabels(ns, sub, name, help string, label Labels) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: ns,
		Subsystem: sub,
		Name:      name,
		Help:      help,
	}
	c := prometheus.NewCounterVec(opts, label.Labels())
	ret := SafeRegister(c).(*prometheus.CounterVec)
	return ret
}

// NewCounterVec creates a new prometheus counter vec that is registered with the default registry.
func NewCounterVec(namespace, subsystem, name, help string,
	labelNames []string) *prometheus.CounterVec {

	return NewCounterVecWithLabels(namespace, subsystem, name, help,
		initLabels{labelNames: labelNames})
}

type initLabels struct {
	labelNames []string
}

func (l initLabels) Labels() []string {
	return l.labelNames
}

func (l initLabels) Values() []string {
	return nil
}

// Copyright 2019 Anapaya Systems
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

// Package metrics defines interfaces for the counter, gauge and histogram
// metric types, together with implementations backed by Prometheus and
// implementations for use in tests.
//
// Code that wants to be instrumented holds the interface types and never
// constructs them itself, so callers decide which implementation to plug in.
// A nil metric means metrics are disabled; the helper functions in this
// package (CounterInc, GaugeSet, ...) are nil-safe so instrumented code does
// not need to guard every update.
package metrics

import (
	"fmt"
	"strings"
	"sync"
)

// Counter describes a metric that accumulates values monotonically.
type Counter interface {
	Add(delta float64)
	With(labelValues ...string) Counter
}

// Gauge describes a metric that takes specific values over time.
type Gauge interface {
	Set(value float64)
	Add(delta float64)
	With(labelValues ...string) Gauge
}

// Histogram describes a metric that takes repeated observations of the same
// kind of thing, and produces a statistical summary of those observations,
// typically expressed as quantiles or buckets.
type Histogram interface {
	Observe(value float64)
	With(labelValues ...string) Histogram
}

// CounterInc increases the passed in counter by 1, if it is not nil.
func CounterInc(c Counter) {
	CounterAdd(c, 1)
}

// CounterAdd increases the passed in counter by delta, if it is not nil.
func CounterAdd(c Counter, delta float64) {
	if c != nil {
		c.Add(delta)
	}
}

// CounterWith returns a counter with the labels applied, if it is not nil.
func CounterWith(c Counter, labelValues ...string) Counter {
	if c == nil {
		return nil
	}
	return c.With(labelValues...)
}

// GaugeSet sets the passed in gauge to the value, if it is not nil.
func GaugeSet(g Gauge, value float64) {
	if g != nil {
		g.Set(value)
	}
}

// GaugeAdd increases the passed in gauge by delta, if it is not nil.
func GaugeAdd(g Gauge, delta float64) {
	if g != nil {
		g.Add(delta)
	}
}

// GaugeWith returns a gauge with the labels applied, if it is not nil.
func GaugeWith(g Gauge, labelValues ...string) Gauge {
	if g == nil {
		return nil
	}
	return g.With(labelValues...)
}

// HistogramObserve adds an observation to the histogram, if it is not nil.
func HistogramObserve(h Histogram, value float64) {
	if h != nil {
		h.Observe(value)
	}
}

// HistogramWith returns a histogram with the labels applied, if it is not
// nil.
func HistogramWith(h Histogram, labelValues ...string) Histogram {
	if h == nil {
		return nil
	}
	return h.With(labelValues...)
}

// NewTestCounter creates a counter for testing. Its value can be read back
// with CounterValue.
func NewTestCounter() Counter {
	return &TestCounter{
		mtx:    &sync.Mutex{},
		values: make(map[string]float64),
	}
}

// TestCounter implements the Counter interface for testing purposes. Each
// label combination is tracked separately.
type TestCounter struct {
	mtx    *sync.Mutex
	values map[string]float64
	lvs    labelValuesSlice
}

// Add implements Counter.
func (c *TestCounter) Add(delta float64) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.values[strings.Join(c.lvs, ",")] += delta
}

// With implements Counter.
func (c *TestCounter) With(labelValues ...string) Counter {
	return &TestCounter{
		mtx:    c.mtx,
		values: c.values,
		lvs:    c.lvs.With(labelValues...),
	}
}

func (c *TestCounter) value() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.values[strings.Join(c.lvs, ",")]
}

// CounterValue extracts the value of a counter created via NewTestCounter,
// for the label combination the counter currently carries. It panics if the
// counter has a different implementation.
func CounterValue(c Counter) float64 {
	tc, ok := c.(*TestCounter)
	if !ok {
		panic(fmt.Sprintf("counter of type %T does not support value extraction", c))
	}
	return tc.value()
}

// NewTestGauge creates a gauge for testing. Its value can be read back with
// GaugeValue.
func NewTestGauge() Gauge {
	return &TestGauge{
		mtx:    &sync.Mutex{},
		values: make(map[string]float64),
	}
}

// TestGauge implements the Gauge interface for testing purposes. Each label
// combination is tracked separately.
type TestGauge struct {
	mtx    *sync.Mutex
	values map[string]float64
	lvs    labelValuesSlice
}

// Set implements Gauge.
func (g *TestGauge) Set(value float64) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.values[strings.Join(g.lvs, ",")] = value
}

// Add implements Gauge.
func (g *TestGauge) Add(delta float64) {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.values[strings.Join(g.lvs, ",")] += delta
}

// With implements Gauge.
func (g *TestGauge) With(labelValues ...string) Gauge {
	return &TestGauge{
		mtx:    g.mtx,
		values: g.values,
		lvs:    g.lvs.With(labelValues...),
	}
}

func (g *TestGauge) value() float64 {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.values[strings.Join(g.lvs, ",")]
}

// GaugeValue extracts the value of a gauge created via NewTestGauge, for the
// label combination the gauge currently carries. It panics if the gauge has a
// different implementation.
func GaugeValue(g Gauge) float64 {
	tg, ok := g.(*TestGauge)
	if !ok {
		panic(fmt.Sprintf("gauge of type %T does not support value extraction", g))
	}
	return tg.value()
}

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

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/nsiproto/supa/pkg/metrics"
)

func TestTestCounter(t *testing.T) {
	c := metrics.NewTestCounter()
	red := c.With("color", "red")
	blue := c.With("color", "blue")
	red.Add(2)
	blue.Add(3)
	red.Add(1)
	assert.Equal(t, 3.0, metrics.CounterValue(red))
	assert.Equal(t, 3.0, metrics.CounterValue(blue))
	assert.Equal(t, 0.0, metrics.CounterValue(c))
}

func TestTestGauge(t *testing.T) {
	g := metrics.NewTestGauge()
	workerA := g.With("worker", "a")
	workerB := g.With("worker", "b")
	workerA.Set(42)
	workerA.Add(-2)
	workerB.Set(1)
	assert.Equal(t, 40.0, metrics.GaugeValue(workerA))
	assert.Equal(t, 1.0, metrics.GaugeValue(workerB))
	assert.Equal(t, 0.0, metrics.GaugeValue(g))
}

func TestNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.CounterInc(nil)
		metrics.CounterAdd(nil, 2)
		metrics.GaugeSet(nil, 1)
		metrics.GaugeAdd(nil, 1)
		metrics.HistogramObserve(nil, 1)
		assert.Nil(t, metrics.CounterWith(nil, "key", "value"))
		assert.Nil(t, metrics.GaugeWith(nil, "key", "value"))
		assert.Nil(t, metrics.HistogramWith(nil, "key", "value"))
	})
}

func TestPromCounter(t *testing.T) {
	assert.Nil(t, metrics.NewPromCounter(nil))

	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counter", Help: "test counter"},
		[]string{"result"},
	)
	c := metrics.NewPromCounter(cv)
	c.With("result", "ok").Add(2)
	metrics.CounterInc(metrics.CounterWith(c, "result", "ok"))
	assert.Equal(t, 3.0, testutil.ToFloat64(cv.WithLabelValues("ok")))
}

func TestPromGauge(t *testing.T) {
	assert.Nil(t, metrics.NewPromGauge(nil))

	gv := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "test_gauge", Help: "test gauge"},
		[]string{"worker"},
	)
	g := metrics.NewPromGauge(gv)
	g.With("worker", "one").Set(42)
	g.With("worker", "one").Add(-2)
	assert.Equal(t, 40.0, testutil.ToFloat64(gv.WithLabelValues("one")))
}

func TestPromHistogram(t *testing.T) {
	assert.Nil(t, metrics.NewPromHistogram(nil))

	hv := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "test_histogram",
			Help:    "test histogram",
			Buckets: []float64{1, 10, 100},
		},
		[]string{"operation"},
	)
	h := metrics.NewPromHistogram(hv)
	h.With("operation", "read").Observe(0.5)
	h.With("operation", "read").Observe(20)
	assert.Equal(t, 1, testutil.CollectAndCount(hv))
}

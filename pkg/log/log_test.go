// Copyright 2020 Anapaya Systems
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

package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsiproto/supa/pkg/log"
	"github.com/nsiproto/supa/pkg/metrics"
	"github.com/nsiproto/supa/private/config"
)

func TestSetup(t *testing.T) {
	tests := map[string]struct {
		cfg       log.Config
		assertErr assert.ErrorAssertionFunc
	}{
		"empty, no error": {
			cfg:       log.Config{},
			assertErr: assert.NoError,
		},
		"invalid console level": {
			cfg:       log.Config{Console: log.ConsoleConfig{Level: "invalid"}},
			assertErr: assert.Error,
		},
		"invalid stacktrace level": {
			cfg:       log.Config{Console: log.ConsoleConfig{StacktraceLevel: "invalid"}},
			assertErr: assert.Error,
		},
		"json format": {
			cfg:       log.Config{Console: log.ConsoleConfig{Format: "json"}},
			assertErr: assert.NoError,
		},
		"debug level with stacktraces": {
			cfg: log.Config{
				Console: log.ConsoleConfig{Level: "debug", StacktraceLevel: "all"},
			},
			assertErr: assert.NoError,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := log.Setup(test.cfg)
			test.assertErr(t, err)
		})
	}
	log.Discard()
}

func TestConfigValidate(t *testing.T) {
	cfg := log.Config{Console: log.ConsoleConfig{Level: "invalid"}}
	assert.Error(t, cfg.Validate())
	cfg = log.Config{Console: log.ConsoleConfig{Level: "debug"}}
	assert.NoError(t, cfg.Validate())
}

func TestConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg log.Config
	cfg.Sample(&sample, nil, nil)

	var decoded log.Config
	require.NoError(t, config.Decode(sample.Bytes(), &decoded))
	assert.NoError(t, decoded.Validate())
	assert.Equal(t, log.DefaultConsoleLevel, decoded.Console.Level)
	assert.Equal(t, log.DefaultConsoleFormat, decoded.Console.Format)
	assert.Equal(t, log.DefaultStacktraceLevel, decoded.Console.StacktraceLevel)
}

func TestEnabled(t *testing.T) {
	require.NoError(t, log.Setup(log.Config{Console: log.ConsoleConfig{Level: "error"}}))
	defer log.Discard()

	assert.False(t, log.Root().Enabled(log.DebugLevel))
	assert.False(t, log.Root().Enabled(log.InfoLevel))
	assert.True(t, log.Root().Enabled(log.ErrorLevel))
}

func TestEntriesCounter(t *testing.T) {
	c := metrics.NewTestCounter()
	err := log.Setup(
		log.Config{Console: log.ConsoleConfig{Level: "debug"}},
		log.WithEntriesCounter(log.EntriesCounter{
			Debug: c.With("level", "debug"),
			Info:  c.With("level", "info"),
			Error: c.With("level", "error"),
		}),
	)
	require.NoError(t, err)
	defer log.Discard()

	log.Debug("emitted at debug")
	log.Info("emitted at info")
	log.Info("also emitted at info")
	log.Error("emitted at error")

	assert.Equal(t, 1.0, metrics.CounterValue(c.With("level", "debug")))
	assert.Equal(t, 2.0, metrics.CounterValue(c.With("level", "info")))
	assert.Equal(t, 1.0, metrics.CounterValue(c.With("level", "error")))
}

func TestHandlePanic(t *testing.T) {
	// Inside tests HandlePanic rethrows instead of exiting the process.
	assert.Panics(t, func() {
		defer log.HandlePanic()
		panic("oops")
	})
}

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

package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsiproto/supa/private/config"
	"github.com/nsiproto/supa/private/storage"
	"github.com/nsiproto/supa/reservation/reservationdbtest"
)

func TestDBConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg storage.DBConfig
	config.WriteSample(&sample, nil, nil,
		config.OverrideName(
			config.FormatData(
				&cfg,
				storage.SetID(storage.SampleReservationDB, "upa-example").Connection,
			),
			"reservation_db",
		),
	)

	// The generated sample must load back through the regular config path.
	file := filepath.Join(t.TempDir(), "supa.toml")
	require.NoError(t, os.WriteFile(file, sample.Bytes(), 0644))
	var loaded struct {
		ReservationDB storage.DBConfig `toml:"reservation_db,omitempty"`
	}
	require.NoError(t, config.LoadFile(file, &loaded))
	assert.Equal(t, "/share/data/upa-example.reservation.db",
		loaded.ReservationDB.Connection)
}

func TestDBConfigDefaults(t *testing.T) {
	var cfg storage.DBConfig
	config.InitAll(&cfg)
	assert.Equal(t, storage.DefaultPath, cfg.Connection)
	assert.NoError(t, config.ValidateAll(&cfg))

	var preset storage.DBConfig
	config.InitAll(preset.WithDefault("/share/data/upa.reservation.db"))
	assert.Equal(t, "/share/data/upa.reservation.db", preset.Connection)
}

func TestNewReservationStorage(t *testing.T) {
	cfg := storage.DBConfig{
		Connection: filepath.Join(t.TempDir(), "reservation.db"),
	}
	db, err := storage.NewReservationStorage(cfg)
	require.NoError(t, err)
	defer db.Close()

	res := reservationdbtest.AllocReservation("factory")
	reservationdbtest.InsertReservation(t, db, res)
	ctx, cancelF := context.WithTimeout(context.Background(), time.Second)
	defer cancelF()
	got, err := db.GetReservation(ctx, res.ConnectionID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

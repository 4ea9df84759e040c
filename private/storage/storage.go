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

// Package storage provides factories for the application storage backends.
package storage

import (
	"fmt"
	"io"

	"github.com/nsiproto/supa/pkg/log"
	"github.com/nsiproto/supa/private/config"
	"github.com/nsiproto/supa/private/storage/db"
	sqlitereservationdb "github.com/nsiproto/supa/private/storage/reservation/sqlite"
	"github.com/nsiproto/supa/reservation"
)

// Backend indicates the database backend type.
type Backend string

const (
	// BackendSqlite indicates an sqlite backend.
	BackendSqlite Backend = "sqlite"
	// DefaultPath indicates the default connection string for a generic database.
	DefaultPath = "/share/supa.db"
	// DefaultReservationDBPath is the default connection string for the
	// reservation database. The provider NSA id is interpolated.
	DefaultReservationDBPath = "/share/data/%s.reservation.db"
)

// SampleReservationDB is the default sample for the reservation database.
var SampleReservationDB = DBConfig{
	Connection: DefaultReservationDBPath,
}

// SetID returns a clone of the configuration that has the ID set on the
// connection string.
func SetID(cfg DBConfig, id string) *DBConfig {
	cfg.Connection = fmt.Sprintf(cfg.Connection, id)
	return &cfg
}

var _ (config.Config) = (*DBConfig)(nil)

// DBConfig is the configuration for the connection to a database.
type DBConfig struct {
	Connection   string `toml:"connection,omitempty"`
	MaxOpenConns int    `toml:"max_open_conns,omitempty"`
	MaxIdleConns int    `toml:"max_idle_conns,omitempty"`
}

type writeDefault struct {
	*DBConfig
	defaultPath string
}

func (w writeDefault) InitDefaults() {
	if w.Connection == "" {
		w.Connection = w.defaultPath
	}
}

func (cfg *DBConfig) WithDefault(path string) config.Defaulter {
	return writeDefault{DBConfig: cfg, defaultPath: path}
}

func (cfg *DBConfig) InitDefaults() {
	if cfg.Connection == "" {
		cfg.Connection = DefaultPath
	}
}

func (cfg *DBConfig) Validate() error {
	return nil
}

// Sample writes a config sample to the writer.
func (cfg *DBConfig) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	config.WriteString(dst, sample)
}

// ConfigName is the key in the toml file.
func (cfg *DBConfig) ConfigName() string {
	return "db"
}

// NewReservationStorage opens the reservation database. The connection limits
// of the configuration apply to the read pool, writes are serialized on a
// single connection by the sqlite helper.
func NewReservationStorage(c DBConfig) (reservation.DB, error) {
	log.Info("Connecting ReservationDB",
		"backend", BackendSqlite, "connection", c.Connection)
	rdb, err := sqlitereservationdb.New(c.Connection, &db.SqliteConfig{
		MaxOpenReadConns: c.MaxOpenConns,
		MaxIdleReadConns: c.MaxIdleConns,
	})
	if err != nil {
		return nil, err
	}
	return rdb, nil
}

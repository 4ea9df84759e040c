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

package db

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nsiproto/supa/pkg/private/serrors"
)

// UUID persists a UUID as its canonical 36 character hyphenated lower-case
// text form. Nullable columns are handled by sql.Null[UUID], which passes
// NULL through untouched in both directions.
type UUID uuid.UUID

// Value implements driver.Valuer.
func (u UUID) Value() (driver.Value, error) {
	return uuid.UUID(u).String(), nil
}

// Scan implements sql.Scanner. It accepts the textual forms understood by
// uuid.Parse and the raw 16 byte form.
func (u *UUID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		id, err := ParseUUID(v)
		if err != nil {
			return err
		}
		*u = UUID(id)
		return nil
	case []byte:
		if len(v) == 16 {
			id, err := uuid.FromBytes(v)
			if err != nil {
				return serrors.JoinNoStack(ErrInvalidValue, err, "uuid", v)
			}
			*u = UUID(id)
			return nil
		}
		return u.Scan(string(v))
	default:
		return serrors.JoinNoStack(ErrInvalidValue, nil,
			"type", fmt.Sprintf("%T", src))
	}
}

func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// ParseUUID parses the textual form of a UUID. Failure is reported as
// ErrInvalidValue.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, serrors.JoinNoStack(ErrInvalidValue, err, "uuid", s)
	}
	return id, nil
}

// utcTimeLayout is the stored form: offset-less wall clock text that is UTC
// by contract.
const utcTimeLayout = "2006-01-02 15:04:05"

// UtcTime persists a timestamp as offset-less TEXT that is UTC by contract.
// Values constructed with NewUtcTime or read from the database are timezone
// qualified. The zero value is unqualified and refuses to be stored: that is
// the guard against silently persisting ambiguous local time.
//
// Encoding converts to UTC and truncates to whole seconds, sub-second
// precision is not preserved. Decoding is asymmetric on purpose: text
// without an offset is labeled UTC without any conversion, while a zoned
// time handed back by the driver is converted to UTC. The asymmetry is what
// keeps storage timezone-agnostic while domain values stay timezone-aware.
type UtcTime struct {
	t         time.Time
	qualified bool
}

// NewUtcTime wraps a timezone qualified timestamp for storage.
func NewUtcTime(t time.Time) UtcTime {
	return UtcTime{t: t, qualified: true}
}

// Time returns the wrapped timestamp.
func (u UtcTime) Time() time.Time {
	return u.t
}

// Value implements driver.Valuer.
func (u UtcTime) Value() (driver.Value, error) {
	if !u.qualified {
		return nil, serrors.JoinNoStack(ErrNaiveTimestamp, nil,
			"timestamp", u.t.Format(utcTimeLayout))
	}
	return u.t.UTC().Truncate(time.Second).Format(utcTimeLayout), nil
}

// Scan implements sql.Scanner.
func (u *UtcTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		u.t = v.UTC()
		u.qualified = true
		return nil
	case string:
		return u.scanText(v)
	case []byte:
		return u.scanText(string(v))
	default:
		return serrors.JoinNoStack(ErrInvalidValue, nil,
			"type", fmt.Sprintf("%T", src))
	}
}

func (u *UtcTime) scanText(s string) error {
	t, err := time.ParseInLocation(utcTimeLayout, s, time.UTC)
	if err != nil {
		// Values written by other tooling may carry an offset, those are
		// converted instead of labeled.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return serrors.JoinNoStack(ErrInvalidValue, err, "timestamp", s)
		}
		t = t.UTC()
	}
	u.t = t
	u.qualified = true
	return nil
}

// ParseUtcTime parses an RFC 3339 timestamp and converts it to UTC.
// Offset-less text is rejected with ErrNaiveTimestamp.
func ParseUtcTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if _, naive := time.Parse("2006-01-02T15:04:05", s); naive == nil {
			return time.Time{}, serrors.JoinNoStack(ErrNaiveTimestamp, nil,
				"timestamp", s)
		}
		return time.Time{}, serrors.JoinNoStack(ErrInvalidValue, err,
			"timestamp", s)
	}
	return t.UTC(), nil
}

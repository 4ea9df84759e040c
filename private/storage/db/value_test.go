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
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84")

	v, err := UUID(id).Value()
	require.NoError(t, err)
	assert.Equal(t, "5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84", v)

	var scanned UUID
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, id, uuid.UUID(scanned))
}

func TestUUIDScan(t *testing.T) {
	id := uuid.MustParse("5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84")
	testCases := map[string]struct {
		src  any
		want uuid.UUID
		err  error
	}{
		"text":       {src: id.String(), want: id},
		"text bytes": {src: []byte(id.String()), want: id},
		"raw bytes":  {src: id[:], want: id},
		"malformed":  {src: "not-a-uuid", err: ErrInvalidValue},
		"wrong type": {src: 42, err: ErrInvalidValue},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var u UUID
			err := u.Scan(tc.src)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, uuid.UUID(u))
		})
	}
}

func TestNullUUID(t *testing.T) {
	var n sql.Null[UUID]
	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, n.Scan("5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84"))
	assert.True(t, n.Valid)
	assert.Equal(t, "5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84", n.V.String())
}

func TestParseUUID(t *testing.T) {
	id, err := ParseUUID("5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84")
	require.NoError(t, err)
	assert.Equal(t, "5b0b87c8-0d1f-4b58-8e1a-9f5ab54cdc84", id.String())

	_, err = ParseUUID("5b0b87c8")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUtcTimeValue(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	testCases := map[string]struct {
		input UtcTime
		want  string
		err   error
	}{
		"utc whole second": {
			input: NewUtcTime(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)),
			want:  "2026-03-14 09:26:53",
		},
		"zoned is converted": {
			input: NewUtcTime(time.Date(2026, 3, 14, 11, 26, 53, 0, zone)),
			want:  "2026-03-14 09:26:53",
		},
		"sub-second is truncated": {
			input: NewUtcTime(time.Date(2026, 3, 14, 9, 26, 53, 999999999, time.UTC)),
			want:  "2026-03-14 09:26:53",
		},
		"unqualified is refused": {
			input: UtcTime{},
			err:   ErrNaiveTimestamp,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			v, err := tc.input.Value()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestUtcTimeScan(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	testCases := map[string]struct {
		src  any
		want time.Time
		err  error
	}{
		"offset-less text is labeled utc": {
			src:  "2026-03-14 09:26:53",
			want: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		"zoned text is converted": {
			src:  "2026-03-14T11:26:53+02:00",
			want: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		"zoned time is converted": {
			src:  time.Date(2026, 3, 14, 11, 26, 53, 0, zone),
			want: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		"garbage": {
			src: "yesterday",
			err: ErrInvalidValue,
		},
		"wrong type": {
			src: 42,
			err: ErrInvalidValue,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var u UtcTime
			err := u.Scan(tc.src)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.Time())
		})
	}
}

func TestUtcTimeRoundTrip(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	orig := time.Date(2026, 3, 14, 9, 26, 53, 123456789, zone)

	v, err := NewUtcTime(orig).Value()
	require.NoError(t, err)

	var scanned UtcTime
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, orig.UTC().Truncate(time.Second), scanned.Time())

	// A second trip is the identity.
	v2, err := scanned.Value()
	require.NoError(t, err)
	assert.Equal(t, v, v2)
}

func TestParseUtcTime(t *testing.T) {
	testCases := map[string]struct {
		src  string
		want time.Time
		err  error
	}{
		"utc": {
			src:  "2026-03-14T09:26:53Z",
			want: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		"zoned is converted": {
			src:  "2026-03-14T11:26:53+02:00",
			want: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		"offset-less is naive": {
			src: "2026-03-14T09:26:53",
			err: ErrNaiveTimestamp,
		},
		"garbage": {
			src: "2026-03-14",
			err: ErrInvalidValue,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ts, err := ParseUtcTime(tc.src)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ts)
		})
	}
}

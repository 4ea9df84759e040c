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

package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nsiproto/supa/pkg/private/serrors"
)

func TestErrToMetricLabel(t *testing.T) {
	testCases := map[string]struct {
		err  error
		want string
	}{
		"nil":        {err: nil, want: "ok_success"},
		"timeout":    {err: context.DeadlineExceeded, want: "err_timeout"},
		"input data": {err: NewInputDataError("test", nil), want: "err_invalid_input_data"},
		"data":       {err: NewDataError("test", nil), want: "err_data_invalid"},
		"read":       {err: NewReadError("test", nil), want: "err_read"},
		"write":      {err: NewWriteError("test", nil), want: "err_write"},
		"tx":         {err: NewTxError("test", nil), want: "err_tx"},
		"other":      {err: serrors.New("test"), want: "err_not_classified"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrToMetricLabel(tc.err))
		})
	}
}

func TestIsConstraintViolationNonDriverErrors(t *testing.T) {
	assert.False(t, IsConstraintViolation(nil))
	assert.False(t, IsConstraintViolation(serrors.New("test")))
	assert.False(t, IsConstraintViolation(NewWriteError("test", nil)))
}

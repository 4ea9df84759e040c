// Copyright 2019 ETH Zurich, Anapaya Systems
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
	"context"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsiproto/supa/pkg/log"
	"github.com/nsiproto/supa/pkg/log/testlog"
)

func TestFromCtx(t *testing.T) {
	assert.NotNil(t, log.FromCtx(context.Background()))

	logger := testlog.NewLogger(t)
	ctx := log.CtxWith(context.Background(), logger)
	assert.Equal(t, logger, log.FromCtx(ctx))
}

func TestWithLabels(t *testing.T) {
	logger := testlog.NewLogger(t)
	ctx := log.CtxWith(context.Background(), logger)

	newCtx, newLogger := log.WithLabels(ctx, "component", "storage")
	assert.NotNil(t, newLogger)
	assert.Equal(t, newLogger, log.FromCtx(newCtx))
	newLogger.Debug("labeled entry")
}

func TestSpanAttached(t *testing.T) {
	tracer := mocktracer.New()
	span := tracer.StartSpan("query")
	ctx := opentracing.ContextWithSpan(context.Background(), span)

	logger := log.FromCtx(ctx)
	_, ok := logger.(log.Span)
	require.True(t, ok)

	logger.Info("recorded on the span", "key", "value")
	span.Finish()

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Logs(), 1)
}

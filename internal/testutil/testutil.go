// Copyright The CloudPanel API Authors
// SPDX-License-Identifier: Apache-2.0

package testutil // import "github.com/josephgodwinkimani/cloudpanel-api-sub001/internal/testutil"

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger returns a test logger that only surfaces errors.
func Logger(t testing.TB) *zap.SugaredLogger {
	return zaptest.NewLogger(t, zaptest.Level(zapcore.ErrorLevel)).Sugar()
}

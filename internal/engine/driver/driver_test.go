package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vdex/internal/adapters/memenv"
	"go.trai.ch/vdex/internal/adapters/telemetry"
	"go.trai.ch/vdex/internal/core/ports"
	"go.trai.ch/vdex/internal/core/ports/mocks"
	"go.trai.ch/vdex/internal/engine/driver"
	"go.trai.ch/vdex/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

func newDriver(t *testing.T, verifier ports.ClassVerifier, env ports.Environment) *driver.Driver {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return driver.New(verifier, env, logger, telemetry.NewNoOpTracer(), 2)
}

func TestDriver_RecordsVerifiedBits(t *testing.T) {
	ctrl := gomock.NewController(t)

	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/A;", 0x0001, "")
	m1.DefineClass("Lm1/B;", 0x0001, "")
	env := memenv.NewEnv(m1)

	verifier := mocks.NewMockClassVerifier(ctrl)
	verifier.EXPECT().VerifyClass(gomock.Any(), gomock.Any(), 0, gomock.Any()).Return(ports.OutcomeVerified, nil)
	verifier.EXPECT().VerifyClass(gomock.Any(), gomock.Any(), 1, gomock.Any()).Return(ports.OutcomeSoftFail, nil)

	rec := tracker.New([]ports.Module{m1}, true)
	d := newDriver(t, verifier, env)

	require.NoError(t, d.Run(context.Background(), rec))

	// Soft failures still count as verified.
	assert.True(t, rec.VerifiedClasses(m1).Get(0))
	assert.True(t, rec.VerifiedClasses(m1).Get(1))
}

func TestDriver_HardFailLeavesBitClear(t *testing.T) {
	ctrl := gomock.NewController(t)

	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/A;", 0x0001, "")
	env := memenv.NewEnv(m1)

	verifier := mocks.NewMockClassVerifier(ctrl)
	verifier.EXPECT().VerifyClass(gomock.Any(), gomock.Any(), 0, gomock.Any()).Return(ports.OutcomeHardFail, nil)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	rec := tracker.New([]ports.Module{m1}, true)
	d := driver.New(verifier, env, logger, telemetry.NewNoOpTracer(), 1)

	require.NoError(t, d.Run(context.Background(), rec))
	assert.False(t, rec.VerifiedClasses(m1).Get(0))
}

func TestDriver_EclipsedClassSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)

	// The classpath module defines the same descriptor and takes precedence,
	// so m1's definition is recorded as redefined and never verified.
	cp := memenv.NewModule("cp")
	cp.DefineClass("Lm1/A;", 0x0001, "")
	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/A;", 0x0001, "")
	env := memenv.NewEnv(cp, m1)

	verifier := mocks.NewMockClassVerifier(ctrl)

	rec := tracker.New([]ports.Module{m1}, true)
	d := newDriver(t, verifier, env)

	require.NoError(t, d.Run(context.Background(), rec))

	assert.True(t, rec.RedefinedClasses(m1).Get(0))
	assert.False(t, rec.VerifiedClasses(m1).Get(0))
}

func TestDriver_VerifierErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)

	m1 := memenv.NewModule("m1")
	m1.DefineClass("Lm1/A;", 0x0001, "")
	env := memenv.NewEnv(m1)

	wantErr := errors.New("metadata unavailable")
	verifier := mocks.NewMockClassVerifier(ctrl)
	verifier.EXPECT().VerifyClass(gomock.Any(), gomock.Any(), 0, gomock.Any()).Return(ports.OutcomeHardFail, wantErr)

	rec := tracker.New([]ports.Module{m1}, true)
	d := newDriver(t, verifier, env)

	err := d.Run(context.Background(), rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

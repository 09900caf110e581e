package service

import (
	"context"
	"testing"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2025, time.September, 14, 10, 0, 0, 0, time.UTC)
}

func TestIdentifierGenerator_SequenceFromRemoteCount(t *testing.T) {
	gen := NewIdentifierGenerator(&testutil.FakeRemote{PlanCount: 2})
	gen.now = fixedNow

	assert.Equal(t, "ACM-2025-09-003", gen.Generate(context.Background(), "Acme"))
}

func TestIdentifierGenerator_RemoteFailureDegradesToOne(t *testing.T) {
	gen := NewIdentifierGenerator(&testutil.FakeRemote{Fail: true, PlanCount: 7})
	gen.now = fixedNow

	assert.Equal(t, "ACM-2025-09-001", gen.Generate(context.Background(), "Acme"))
}

func TestIdentifierGenerator_UnconfiguredRemote(t *testing.T) {
	gen := NewIdentifierGenerator(&testutil.FakeRemote{Unconfigured: true})
	gen.now = fixedNow

	assert.Equal(t, "UC-2025-09-001", gen.Generate(context.Background(), "!!!"))
}

func TestIdentifierGenerator_NilSequenceSource(t *testing.T) {
	gen := NewIdentifierGenerator(nil)
	gen.now = fixedNow

	assert.Equal(t, "IBM-2025-09-001", gen.Generate(context.Background(), "IBM"))
}

package remote

import (
	"context"
	"testing"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/config"
	"github.com/manjulsinghal1410/use-case-maps/internal/template"
	"github.com/stretchr/testify/assert"
)

func TestClient_Unconfigured(t *testing.T) {
	c := NewClient(config.DefaultRemote())
	ctx := context.Background()

	assert.False(t, c.Configured())
	assert.ErrorIs(t, c.Ping(ctx), ErrNotConfigured)
	assert.ErrorIs(t, c.SaveActivityRows(ctx, nil), ErrNotConfigured)

	_, err := c.FetchTemplate(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.LoadIndex(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.LoadMapDetails(ctx, "42")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CountPlansInMonth(ctx, "Acme", 2025, time.September)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConditionalFromOutcome(t *testing.T) {
	tests := []struct {
		outcome string
		want    template.Conditional
	}{
		{"Identify possible help needed from SSA, Product or third parties", template.CondSSA},
		{"Identify and agree evaluation strategy for the POC", template.CondPOC},
		{"Confirm budget and sign off process", template.CondNone},
		{"", template.CondNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, conditionalFromOutcome(tt.outcome), "outcome %q", tt.outcome)
	}
}

package service

import (
	"context"
	"time"

	"github.com/manjulsinghal1410/use-case-maps/internal/domain"
)

// SequenceSource supplies the per-customer monthly plan count used to pick
// the next sequence number. The remote store implements it.
type SequenceSource interface {
	CountPlansInMonth(ctx context.Context, customer string, year int, month time.Month) (int, error)
}

// IdentifierGenerator produces readable plan identifiers. The sequence is
// read-then-used without locking: two concurrent creations for the same
// customer in the same month can collide; kept as a documented limitation.
type IdentifierGenerator struct {
	seq SequenceSource
	now func() time.Time
}

// NewIdentifierGenerator builds a generator. seq may be nil, in which case
// every identifier gets sequence 001.
func NewIdentifierGenerator(seq SequenceSource) *IdentifierGenerator {
	return &IdentifierGenerator{seq: seq, now: time.Now}
}

// Generate builds the identifier for a new plan. Sequence lookup failures
// degrade silently to 1; identifier generation never blocks a creation.
func (g *IdentifierGenerator) Generate(ctx context.Context, customer string) string {
	now := g.now()
	seq := 1
	if g.seq != nil {
		if count, err := g.seq.CountPlansInMonth(ctx, customer, now.Year(), now.Month()); err == nil {
			seq = count + 1
		}
	}
	return domain.FormatPlanID(customer, now, seq)
}

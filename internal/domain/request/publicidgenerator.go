package request

import (
	"context"
	"fmt"
	"time"
)

// maxRegenerateAttempts bounds collision regeneration. The sequence counter is
// the primary uniqueness mechanism; exhausting the bound means the counter is
// corrupted relative to the request table and is surfaced as a loud failure.
const maxRegenerateAttempts = 5

// ErrIdentifierSpaceExhausted signals that collision retries ran out.
var ErrIdentifierSpaceExhausted = fmt.Errorf("identifier space exhausted: sequence counter out of sync with request table")

// PublicIDGenerator produces collision-free public identifiers.
type PublicIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// PrefixProvider supplies the configured identifier prefix (a system setting).
type PrefixProvider func(ctx context.Context) string

// SequencePublicIDGenerator formats prefix + year + zero-padded sequence
// (e.g. OFSHDG2024001) from an atomically incremented counter, then verifies
// the identifier against the request table before accepting it.
type SequencePublicIDGenerator struct {
	sequences SequenceRepository
	requests  RequestRepository
	prefix    PrefixProvider
}

func NewSequencePublicIDGenerator(
	sequences SequenceRepository,
	requests RequestRepository,
	prefix PrefixProvider,
) *SequencePublicIDGenerator {
	return &SequencePublicIDGenerator{
		sequences: sequences,
		requests:  requests,
		prefix:    prefix,
	}
}

func (g *SequencePublicIDGenerator) Generate(ctx context.Context) (string, error) {
	prefix := g.prefix(ctx)
	year := time.Now().UTC().Year()
	counterName := fmt.Sprintf("public_id:%s:%d", prefix, year)

	for attempt := 0; attempt < maxRegenerateAttempts; attempt++ {
		seq, err := g.sequences.Increment(ctx, counterName)
		if err != nil {
			return "", fmt.Errorf("failed to increment sequence %s: %w", counterName, err)
		}

		publicID := fmt.Sprintf("%s%d%03d", prefix, year, seq)

		exists, err := g.requests.ExistsByPublicID(ctx, publicID)
		if err != nil {
			return "", fmt.Errorf("failed to verify public ID uniqueness: %w", err)
		}
		if !exists {
			return publicID, nil
		}
	}

	return "", ErrIdentifierSpaceExhausted
}

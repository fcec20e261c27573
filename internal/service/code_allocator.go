package service

import (
	"context"
	"fmt"

	"eventteams/internal/repository"
)

// teamCodeCounter is the counter namespace for team codes. One record per
// deployment.
const teamCodeCounter = "team_codes"

// CodeAllocator issues globally unique, monotonically increasing team codes.
// Allocate must run inside the same transaction that inserts the team, so a
// team is never created without a code and the counter never advances without
// a team.
type CodeAllocator struct {
	counters repository.CounterRepository
	prefix   string
}

// NewCodeAllocator creates a new CodeAllocator.
func NewCodeAllocator(counters repository.CounterRepository, prefix string) *CodeAllocator {
	return &CodeAllocator{
		counters: counters,
		prefix:   prefix,
	}
}

// Allocate advances the counter and returns the rendered code.
func (a *CodeAllocator) Allocate(ctx context.Context) (string, error) {
	seq, err := a.counters.Next(ctx, teamCodeCounter)
	if err != nil {
		return "", err
	}

	return FormatTeamCode(a.prefix, seq), nil
}

// FormatTeamCode renders a sequence number as the wire-format team code:
// fixed prefix, dash, sequence zero-padded to width 5. Downstream consumers
// key off this exact shape.
func FormatTeamCode(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%05d", prefix, seq)
}

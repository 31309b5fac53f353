package job

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues J-YYYYMMDD-NNNN numbers from an in-memory
// per-day counter. Production uses the database-backed generator so numbers
// survive restarts.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	dateKey := now.Format("20060102")

	counter := g.counters[dateKey]
	counter++
	g.counters[dateKey] = counter

	number := fmt.Sprintf("J-%s-%04d", dateKey, counter)
	return number, nil
}

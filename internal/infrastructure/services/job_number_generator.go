package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"fieldops/internal/shared/constants"
)

// JobNumberGenerator issues J-YYYYMMDD-NNNN numbers, seeding the per-day
// sequence from MAX(number) so numbering survives restarts.
type JobNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewJobNumberGenerator(db *gorm.DB) *JobNumberGenerator {
	return &JobNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *JobNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("J-%s-", dateStr)

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *JobNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	pattern := fmt.Sprintf("J-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table(constants.TableJobs).
		Select("MAX(number)").
		Where("number LIKE ?", pattern).
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max job number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, fmt.Sprintf("J-%s-%%d", dateStr), &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}

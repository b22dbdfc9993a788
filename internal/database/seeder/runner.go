// Package seeder loads the demo accounts, companies and postings used for
// local development. Every seeder is idempotent.
package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobhunt/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner executes Seeders in order and stops at the first failure. When
// Only is non-empty, seeders whose name is not listed are skipped.
type Runner struct {
	Seeders []Seeder
	Only    []string
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return database.ErrNoDB
	}

	for _, s := range r.selected() {
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[seeder] %s done in %s", s.Name(), time.Since(start).Round(time.Millisecond))
		}
	}
	return nil
}

func (r Runner) selected() []Seeder {
	want := make(map[string]bool, len(r.Only))
	for _, name := range r.Only {
		want[name] = true
	}

	out := make([]Seeder, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if len(want) > 0 && !want[s.Name()] {
			continue
		}
		out = append(out, s)
	}
	return out
}

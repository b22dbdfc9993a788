package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobhunt/internal/database"
)

type recordingSeeder struct {
	name string
	err  error
	ran  *[]string
}

func (s recordingSeeder) Name() string { return s.name }

func (s recordingSeeder) Run(context.Context, database.DB) error {
	*s.ran = append(*s.ran, s.name)
	return s.err
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); !errors.Is(err, database.ErrNoDB) {
		t.Fatalf("expected ErrNoDB, got %v", err)
	}
}

func TestDefaults_Order(t *testing.T) {
	want := []string{"users", "user_profiles", "companies", "jobs"}
	got := Defaults()
	if len(got) != len(want) {
		t.Fatalf("expected %d seeders, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Name() != want[i] {
			t.Fatalf("seeder %d: expected %s, got %s", i, want[i], got[i].Name())
		}
	}
}

func TestRunner_StopsOnFirstError(t *testing.T) {
	var ran []string
	r := Runner{Seeders: []Seeder{
		recordingSeeder{name: "a", ran: &ran},
		recordingSeeder{name: "b", err: errors.New("boom"), ran: &ran},
		recordingSeeder{name: "c", ran: &ran},
	}}

	err := r.Run(context.Background(), stubDB{})
	if err == nil || !strings.Contains(err.Error(), "seed b") {
		t.Fatalf("expected wrapped seed error, got %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("expected 2 seeders run, got %v", ran)
	}
}

func TestRunner_Only(t *testing.T) {
	var ran []string
	r := Runner{
		Seeders: []Seeder{
			recordingSeeder{name: "users", ran: &ran},
			nil,
			recordingSeeder{name: "jobs", ran: &ran},
		},
		Only: []string{"jobs"},
	}
	if err := r.Run(context.Background(), stubDB{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 1 || ran[0] != "jobs" {
		t.Fatalf("expected only jobs to run, got %v", ran)
	}
}

func TestMissingColumns(t *testing.T) {
	present := map[string]bool{"id": true, "name": true}

	if err := missingColumns("companies", present, []string{"id", "name"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := missingColumns("companies", present, []string{"id", "created_by", "created_at"})
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "created_by, created_at") {
		t.Fatalf("expected missing columns listed, got %v", err)
	}
}

type stubDB struct{ database.DB }

package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"railmadad/internal/infra"
	"railmadad/internal/modules/grievance"
)

func TestListEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grievances.db")
	out, err := runCLI(t, "list", "--db", dbPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No grievances stored yet.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestListShowsStoredGrievances(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grievances.db")

	db, err := infra.NewDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := grievance.NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	rec := &grievance.Record{
		Grievance:         "My berth was dirty",
		Category:          grievance.ParseCategory("Coach Cleanliness"),
		TrainOrStation:    grievance.ParseDomain("Train"),
		FollowUpResponses: "Which coach?: B2",
	}
	if err := store.Persist(context.Background(), rec); err != nil {
		t.Fatalf("persist: %v", err)
	}

	out, err := runCLI(t, "list", "--db", dbPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Coach Cleanliness") || !strings.Contains(out, "My berth was dirty") {
		t.Errorf("stored grievance not listed, got: %q", out)
	}
}

func TestListLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "grievances.db")

	db, err := infra.NewDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := grievance.NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := 0; i < 5; i++ {
		rec := &grievance.Record{
			Grievance:         "late again",
			Category:          grievance.ParseCategory("Punctuality"),
			TrainOrStation:    grievance.ParseDomain("Train"),
			FollowUpResponses: "How late?: very",
		}
		if err := store.Persist(context.Background(), rec); err != nil {
			t.Fatalf("persist: %v", err)
		}
	}

	out, err := runCLI(t, "list", "--db", dbPath, "--limit", "2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := strings.Count(out, "late again"); got != 2 {
		t.Errorf("expected 2 rows, got %d: %q", got, out)
	}
}

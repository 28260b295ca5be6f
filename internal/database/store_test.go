package database

import (
	"errors"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/augur/internal/prediction"
)

// TestNewDBService verifies that the database initializes correctly
// with the embedded schema using an in-memory SQLite instance.
func TestNewDBService(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService(:memory:) failed: %v", err)
	}
	defer svc.Close()
}

// TestInsertAndListPredictions verifies insertion order is preserved
// and every field survives the round trip.
func TestInsertAndListPredictions(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	created := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	due := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)

	// IDs deliberately out of numeric order
	records := []prediction.Record{
		{ID: 5, Title: "Culinary prediction", Description: "The cheese will be good", Certainty: 0.4, Created: created, Due: &due},
		{ID: 1, Title: "Economic prediction", Description: "I will win the lotto", Certainty: 0.1, Created: created},
	}
	for _, r := range records {
		if err := svc.InsertPrediction(r); err != nil {
			t.Fatalf("InsertPrediction(%d) failed: %v", r.ID, err)
		}
	}

	got, err := svc.ListPredictions()
	if err != nil {
		t.Fatalf("ListPredictions failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(got))
	}
	if got[0].ID() != 5 || got[1].ID() != 1 {
		t.Errorf("expected insertion order [5 1], got [%d %d]", got[0].ID(), got[1].ID())
	}
	if got[0].Title() != "Culinary prediction" || got[0].Description() != "The cheese will be good" {
		t.Errorf("unexpected first prediction: %+v", got[0].Record())
	}
	if got[0].Certainty() != 0.4 {
		t.Errorf("expected certainty 0.4, got %v", got[0].Certainty())
	}
	if !got[0].Created().Equal(created) {
		t.Errorf("expected created %v, got %v", created, got[0].Created())
	}
	if d, ok := got[0].Due(); !ok || !d.Equal(due) {
		t.Errorf("expected due %v, got %v (set=%v)", due, d, ok)
	}
	if _, ok := got[1].Due(); ok {
		t.Error("expected second prediction to have no due date")
	}
}

// TestTimestampsOutsideNanosecondRange checks dates that do not fit in
// int64 nanoseconds since the epoch come back unchanged.
func TestTimestampsOutsideNanosecondRange(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	created := time.Date(1600, time.January, 2, 3, 4, 5, 6, time.UTC)
	due := time.Date(2500, time.July, 4, 12, 0, 0, 999, time.UTC)
	if err := svc.InsertPrediction(prediction.Record{
		ID: 7, Title: "far out", Certainty: 0.5, Created: created, Due: &due,
	}); err != nil {
		t.Fatalf("InsertPrediction failed: %v", err)
	}

	got, err := svc.GetPrediction(7)
	if err != nil {
		t.Fatalf("GetPrediction failed: %v", err)
	}
	if !got.Created().Equal(created) {
		t.Errorf("expected created %v, got %v", created, got.Created())
	}
	if d, ok := got.Due(); !ok || !d.Equal(due) {
		t.Errorf("expected due %v, got %v (set=%v)", due, d, ok)
	}
}

func TestInsertRejectsInvalidCertainty(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	err = svc.InsertPrediction(prediction.Record{ID: 1, Title: "bad", Certainty: 1.3})
	if !errors.Is(err, prediction.ErrCertaintyOutOfRange) {
		t.Fatalf("expected ErrCertaintyOutOfRange, got %v", err)
	}
}

func TestInsertDuplicateID(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	r := prediction.Record{ID: 1, Title: "a", Certainty: 0.5}
	if err := svc.InsertPrediction(r); err != nil {
		t.Fatalf("InsertPrediction failed: %v", err)
	}
	if err := svc.InsertPrediction(r); err == nil {
		t.Error("expected error inserting duplicate id")
	}
}

// TestBatchInsertIsAtomic verifies a failing record rolls back the batch.
func TestBatchInsertIsAtomic(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	err = svc.BatchInsertPredictions([]prediction.Record{
		{ID: 1, Title: "ok", Certainty: 0.2},
		{ID: 2, Title: "bad", Certainty: -1},
	})
	if err == nil {
		t.Fatal("expected batch insert to fail")
	}

	got, err := svc.ListPredictions()
	if err != nil {
		t.Fatalf("ListPredictions failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store after rollback, got %d predictions", len(got))
	}

	if err := svc.BatchInsertPredictions([]prediction.Record{
		{ID: 1, Title: "a", Certainty: 0.2},
		{ID: 2, Title: "b", Certainty: 0.9},
	}); err != nil {
		t.Fatalf("BatchInsertPredictions failed: %v", err)
	}
	got, _ = svc.ListPredictions()
	if len(got) != 2 {
		t.Errorf("expected 2 predictions, got %d", len(got))
	}
}

func TestGetPrediction(t *testing.T) {
	svc, err := NewDBService(MemoryPath)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	if err := svc.InsertPrediction(prediction.Record{ID: 42, Title: "answer", Certainty: 1}); err != nil {
		t.Fatalf("InsertPrediction failed: %v", err)
	}

	p, err := svc.GetPrediction(42)
	if err != nil {
		t.Fatalf("GetPrediction failed: %v", err)
	}
	if p.Title() != "answer" {
		t.Errorf("expected title answer, got %q", p.Title())
	}

	if _, err := svc.GetPrediction(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

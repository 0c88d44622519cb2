package lifecycle

import (
	"errors"
	"strings"
	"testing"
	"time"

	"construction_console/internal/domain/entities"
)

var fixedNow = time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC)

func TestRevise_FirstRevision(t *testing.T) {
	orig := entities.Estimate{
		ID:             "e-1",
		EstimateNumber: "EST-123456",
		Version:        1,
		Status:         entities.EstimateStatusConverted,
		CreatedAt:      fixedNow.Add(-48 * time.Hour),
		CustomerDetails: entities.CustomerDetails{
			CustomerName: "Ravi",
			PhoneNumber:  "9876543210",
		},
		Items: []entities.EstimateLineItem{{ItemName: "Slab", Rate: 100, Qty: 1}},
		Terms: []string{"t1"},
	}

	draft := Revise(orig, fixedNow)

	if draft.EstimateNumber != "EST-123456-R2" {
		t.Fatalf("expected EST-123456-R2, got %s", draft.EstimateNumber)
	}
	if draft.Version != 2 {
		t.Fatalf("expected version 2, got %d", draft.Version)
	}
	if draft.ParentID != "e-1" {
		t.Fatalf("expected parent e-1, got %q", draft.ParentID)
	}
	if draft.Status != entities.EstimateStatusPending {
		t.Fatalf("expected Pending, got %s", draft.Status)
	}
	if draft.ID == "" || draft.ID == orig.ID {
		t.Fatalf("expected fresh id, got %q", draft.ID)
	}
	if !draft.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected new createdAt, got %v", draft.CreatedAt)
	}
	if draft.CustomerName != "Ravi" || len(draft.Items) != 1 || len(draft.Terms) != 1 {
		t.Fatalf("expected copied fields, got %+v", draft)
	}

	draft.Items[0].Rate = 999
	if orig.Items[0].Rate != 100 {
		t.Fatalf("draft shares line items with the source")
	}
}

func TestRevise_ChainsToOriginal(t *testing.T) {
	orig := entities.Estimate{ID: "root", EstimateNumber: "EST-000001", Version: 1}

	second := Revise(orig, fixedNow)
	third := Revise(second, fixedNow.Add(time.Minute))

	if third.ParentID != "root" {
		t.Fatalf("expected parent root, got %q", third.ParentID)
	}
	if third.Version != 3 {
		t.Fatalf("expected version 3, got %d", third.Version)
	}
	if third.EstimateNumber != "EST-000001-R3" {
		t.Fatalf("expected EST-000001-R3, got %s", third.EstimateNumber)
	}
}

func TestRevise_MissingVersionCountsAsOne(t *testing.T) {
	draft := Revise(entities.Estimate{ID: "x", EstimateNumber: "EST-42"}, fixedNow)
	if draft.Version != 2 || draft.EstimateNumber != "EST-42-R2" {
		t.Fatalf("unexpected draft: version=%d number=%s", draft.Version, draft.EstimateNumber)
	}
}

func TestBaseNumber(t *testing.T) {
	cases := map[string]string{
		"EST-123456":       "EST-123456",
		"EST-123456-R2":    "EST-123456",
		"EST-123456-R12":   "EST-123456",
		"EST-123456-R2-R3": "EST-123456",
		"EST-R-1":          "EST-R-1",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			if got := BaseNumber(in); got != want {
				t.Fatalf("BaseNumber(%q) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	for _, from := range entities.EstimateStatuses {
		for _, to := range entities.EstimateStatuses {
			got, err := Transition(entities.Estimate{Status: from}, to)
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error %v", from, to, err)
			}
			if got.Status != to {
				t.Fatalf("%s -> %s: got %s", from, to, got.Status)
			}
		}
	}

	if _, err := Transition(entities.Estimate{}, "Archived"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if st, err := ParseStatus("Converted"); err != nil || st != entities.EstimateStatusConverted {
		t.Fatalf("unexpected result %q %v", st, err)
	}
	if _, err := ParseStatus("converted"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestNewEstimateNumber(t *testing.T) {
	now := time.UnixMilli(1741339800123)
	if got := NewEstimateNumber(now); got != "EST-800123" {
		t.Fatalf("expected EST-800123, got %s", got)
	}
}

func TestFallbackID(t *testing.T) {
	id := FallbackID(fixedNow)
	parts := strings.Split(id, "-")
	if len(parts) != 3 || parts[0] != "est" || parts[1] == "" || parts[2] == "" {
		t.Fatalf("unexpected fallback id %q", id)
	}
	if FallbackID(fixedNow) == id {
		t.Fatalf("fallback ids should not repeat")
	}
}

func TestPrepareNew(t *testing.T) {
	e := PrepareNew(entities.Estimate{}, fixedNow)
	if e.ID == "" {
		t.Fatalf("expected id")
	}
	if !strings.HasPrefix(e.EstimateNumber, "EST-") || len(e.EstimateNumber) != 10 {
		t.Fatalf("unexpected number %s", e.EstimateNumber)
	}
	if e.Date != "07/03/2025" {
		t.Fatalf("expected 07/03/2025, got %s", e.Date)
	}
	if e.Version != 1 || e.Status != entities.EstimateStatusPending {
		t.Fatalf("unexpected version/status %d %s", e.Version, e.Status)
	}
	if len(e.Terms) != len(DefaultTerms) {
		t.Fatalf("expected default terms, got %d", len(e.Terms))
	}

	kept := PrepareNew(entities.Estimate{ID: "keep", Status: entities.EstimateStatusRejected, Terms: []string{"own"}, Version: 4}, fixedNow)
	if kept.ID != "keep" || kept.Status != entities.EstimateStatusRejected || kept.Version != 4 || len(kept.Terms) != 1 {
		t.Fatalf("caller fields overwritten: %+v", kept)
	}
}

func TestChain(t *testing.T) {
	all := []entities.Estimate{
		{ID: "r3", ParentID: "root", Version: 3},
		{ID: "other", Version: 1},
		{ID: "root", Version: 1},
		{ID: "r2", ParentID: "root", Version: 2},
	}
	got := Chain(all, "root")
	if len(got) != 3 {
		t.Fatalf("expected 3 estimates, got %d", len(got))
	}
	for i, want := range []string{"root", "r2", "r3"} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

package response

import (
	"testing"
	"time"

	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/insights"
	"construction_console/internal/domain/pricing"
	"construction_console/internal/usecase"
	"construction_console/internal/usecase/interfaces"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-250307-1234",
		CustomerDetails: entities.CustomerDetails{
			CustomerName: "Ravi",
			PhoneNumber:  "9876543210",
			ProjectType:  entities.ProjectTypeResidential,
		},
		Items:              []entities.EstimateLineItem{{ItemName: "Brick Work", Total: 1000, GSTRate: 18, GSTAmount: 180}},
		GSTCalculationMode: entities.TaxModeAuto,
		DiscountType:       entities.DiscountTypePercent,
		TotalAmount:        1180,
		Status:             entities.EstimateStatusConverted,
		ParentID:           "est-0",
		Version:            2,
		CreatedAt:          now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateNumber != "EST-250307-1234" || res.ParentID != "est-0" || res.Version != 2 {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if res.CustomerName != "Ravi" || res.ProjectType != "Resident" {
		t.Fatalf("unexpected customer fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].GSTAmount != 180 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Status != "Converted" || res.DiscountType != "percent" || res.TotalAmount != 1180 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Terms == nil {
		t.Fatalf("expected empty terms slice, got nil")
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected date: %v", res.CreatedAt)
	}
}

func TestFromSavedEstimate(t *testing.T) {
	saved := usecase.SavedEstimate{
		Estimate: entities.Estimate{ID: "est-1"},
		Pricing: pricing.Result{
			SubTotal:     100,
			TaxBreakdown: []pricing.TaxBucket{{Rate: 18, Amount: 18}},
			Discount:     200,
			GrandTotal:   -82,
		},
		Created: true,
		Reconcile: usecase.ReconcileResult{
			Customer:         entities.Customer{ID: "CUST-1"},
			CustomerCreated:  true,
			ProvisionedItems: []entities.Item{{Name: "Brick Work"}, {Name: "Tiles"}},
		},
		Warnings: []string{usecase.WarningNegativeTotal},
	}

	res := FromSavedEstimate(saved)
	if !res.Created || res.Estimate.ID != "est-1" {
		t.Fatalf("unexpected estimate: %+v", res)
	}
	if !res.Pricing.Negative || len(res.Pricing.TaxBreakdown) != 1 {
		t.Fatalf("unexpected pricing: %+v", res.Pricing)
	}
	if res.Reconcile.CustomerID != "CUST-1" || !res.Reconcile.CustomerCreated {
		t.Fatalf("unexpected reconcile: %+v", res.Reconcile)
	}
	if len(res.Reconcile.ProvisionedItems) != 2 || res.Reconcile.ProvisionedItems[1] != "Tiles" {
		t.Fatalf("unexpected provisioned items: %+v", res.Reconcile.ProvisionedItems)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", res.Warnings)
	}

	empty := FromSavedEstimate(usecase.SavedEstimate{})
	if empty.Warnings == nil || empty.Reconcile.ProvisionedItems == nil {
		t.Fatalf("expected empty slices, got %+v", empty)
	}
}

func TestFromReport(t *testing.T) {
	r := insights.Report{
		Total:          3,
		Converted:      1,
		ConversionRate: 33.3,
		MonthlyTrend:   []insights.MonthBucket{{Name: "Mar 2025", Estimates: 3, Business: 1, Value: 5000}},
	}
	res := FromReport(r)
	if res.Total != 3 || res.ConversionRate != 33.3 {
		t.Fatalf("unexpected report: %+v", res)
	}
	if len(res.MonthlyTrend) != 1 || res.MonthlyTrend[0].Name != "Mar 2025" {
		t.Fatalf("unexpected trend: %+v", res.MonthlyTrend)
	}
}

func TestFromSyncStatus(t *testing.T) {
	paths := []outbox.PathStatus{
		{Path: "users/t/items/a", Kind: interfaces.WriteSet, State: outbox.StateFailed, Attempts: 3, LastError: "denied"},
	}
	res := FromSyncStatus(outbox.Summary{Synced: 4, Failed: 1}, paths)
	if res.Synced != 4 || res.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", res)
	}
	if len(res.Paths) != 1 || res.Paths[0].State != "failed" || res.Paths[0].Kind != "set" {
		t.Fatalf("unexpected paths: %+v", res.Paths)
	}
}

func TestFromCatalog(t *testing.T) {
	items := FromItems([]entities.Item{{ID: "i-1", Type: entities.ItemTypeGoods, Name: "Cement", GSTRate: 28}})
	if len(items) != 1 || items[0].Type != "Goods" || items[0].GSTRate != 28 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if got := FromCustomers(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	f := FromFollowUp(entities.FollowUp{ID: "FLW-1", Status: entities.FollowUpStatusCancelled})
	if f.Status != "Cancelled" {
		t.Fatalf("unexpected follow-up: %+v", f)
	}
}

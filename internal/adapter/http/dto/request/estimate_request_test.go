package request

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"construction_console/internal/domain/entities"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v, ""); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	return v
}

func f64(v float64) *float64 { return &v }

func validEstimateRequest() EstimateRequest {
	return EstimateRequest{
		CustomerName: " Ravi Patel ",
		PhoneNumber:  "9876543210",
		SiteAddress:  "Plot 12, Alkapuri",
		Items: []LineItemRequest{
			{ItemName: "Brick Work", LH: "10", WD: "2", Unit: "Sqft", Rate: 50, Qty: f64(1), GSTRate: 18},
		},
	}
}

func TestEstimateRequest_ToEntity(t *testing.T) {
	r := validEstimateRequest()
	r.ParentID = " est-1 "
	r.Version = 2

	e := r.ToEntity(" est-2 ")
	if e.ID != "est-2" || e.ParentID != "est-1" || e.Version != 2 {
		t.Fatalf("unexpected identity: %+v", e)
	}
	if e.CustomerName != "Ravi Patel" || e.PhoneNumber != "9876543210" {
		t.Fatalf("unexpected customer: %+v", e.CustomerDetails)
	}
	if len(e.Items) != 1 || e.Items[0].ItemName != "Brick Work" || e.Items[0].GSTRate != 18 {
		t.Fatalf("unexpected items: %+v", e.Items)
	}
	if e.GSTCalculationMode != entities.TaxModeAuto || e.DiscountType != entities.DiscountTypeAmount {
		t.Fatalf("expected default modifiers, got %q %q", e.GSTCalculationMode, e.DiscountType)
	}
}

func TestPriceRequest_ToEntity(t *testing.T) {
	r := PriceRequest{
		Items:            []LineItemRequest{{ItemName: "Tiles", Rate: 100, Qty: f64(3)}},
		ModifiersRequest: ModifiersRequest{GSTCalculationMode: "manual", ManualGST: 250, DiscountValue: 10, DiscountType: "percent"},
	}
	e := r.ToEntity()
	if e.GSTCalculationMode != entities.TaxModeManual || e.ManualGST != 250 {
		t.Fatalf("unexpected tax mode: %+v", e)
	}
	if e.DiscountType != entities.DiscountTypePercent || e.DiscountValue != 10 {
		t.Fatalf("unexpected discount: %+v", e)
	}
	if len(e.Items) != 1 || e.Items[0].Qty != 3 || e.Items[0].Volume != 1 {
		t.Fatalf("unexpected items: %+v", e.Items)
	}
}

func TestEstimateRequest_Validation(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name   string
		mutate func(r *EstimateRequest)
		ok     bool
	}{
		{"valid", func(r *EstimateRequest) {}, true},
		{"international phone", func(r *EstimateRequest) { r.PhoneNumber = "+919876543210" }, true},
		{"missing name", func(r *EstimateRequest) { r.CustomerName = "" }, false},
		{"bad phone", func(r *EstimateRequest) { r.PhoneNumber = "12345" }, false},
		{"bad alternate phone", func(r *EstimateRequest) { r.AltMob = "abc" }, false},
		{"missing site", func(r *EstimateRequest) { r.SiteAddress = "" }, false},
		{"no items", func(r *EstimateRequest) { r.Items = nil }, false},
		{"item without name", func(r *EstimateRequest) { r.Items[0].ItemName = "" }, false},
		{"unknown tax rate", func(r *EstimateRequest) { r.Items[0].GSTRate = 7 }, false},
		{"negative volume", func(r *EstimateRequest) { r.Items[0].Volume = f64(-2) }, false},
		{"unknown discount type", func(r *EstimateRequest) { r.DiscountType = "coupon" }, false},
		{"negative discount", func(r *EstimateRequest) { r.DiscountValue = -1 }, false},
		{"bad email", func(r *EstimateRequest) { r.Email = "not-an-email" }, false},
		{"unknown status", func(r *EstimateRequest) { r.Status = "Approved" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validEstimateRequest()
			tc.mutate(&r)
			err := v.Struct(r)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestCatalogRequests_Validation(t *testing.T) {
	v := newValidator(t)

	if err := v.Struct(ItemRequest{Name: "Cement", GSTRate: 28}); err != nil {
		t.Fatalf("expected valid item, got %v", err)
	}
	if err := v.Struct(ItemRequest{Name: "Cement", GSTRate: 15}); err == nil {
		t.Fatalf("expected invalid tax rate")
	}
	if err := v.Struct(ItemRequest{Name: "Cement", Type: "Labour"}); err == nil {
		t.Fatalf("expected invalid type")
	}

	if err := v.Struct(CustomerRequest{Name: "Asha", Phone: "9876543210"}); err != nil {
		t.Fatalf("expected valid customer, got %v", err)
	}
	if err := v.Struct(CustomerRequest{Name: "Asha"}); err == nil {
		t.Fatalf("expected missing phone")
	}

	if err := v.Struct(FollowUpRequest{CustomerID: "CUST-1", Date: "2025-03-07", Reason: "Site visit"}); err != nil {
		t.Fatalf("expected valid follow-up, got %v", err)
	}
	if err := v.Struct(FollowUpRequest{CustomerID: "CUST-1", Date: "07/03/2025", Reason: "Site visit"}); err == nil {
		t.Fatalf("expected invalid date")
	}
	if err := v.Struct(FollowUpRequest{CustomerID: "CUST-1", Date: "2025-03-07", Time: "25:00", Reason: "x"}); err == nil {
		t.Fatalf("expected invalid time")
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("9876543210", "in") {
		t.Fatalf("expected local number to be valid")
	}
	if IsValidPhone("", "IN") || IsValidPhone("98765", "IN") {
		t.Fatalf("expected short numbers to be invalid")
	}
}

func TestRequests_ToEntity(t *testing.T) {
	item := ItemRequest{Type: "Service", Name: " Plumbing ", Unit: "Running Ft", SaleRate: 40, GSTRate: 18}.ToEntity("i-1")
	if item.ID != "i-1" || item.Name != "Plumbing" || item.Type != entities.ItemTypeService {
		t.Fatalf("unexpected item: %+v", item)
	}

	c := CustomerRequest{Name: "Asha ", Phone: " 9876543210", AltPhone: "9123456780"}.ToEntity("CUST-1")
	if c.ID != "CUST-1" || c.Name != "Asha" || c.Phone != "9876543210" || c.AltPhone != "9123456780" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	f := FollowUpRequest{CustomerID: "CUST-1", Date: "2025-03-07", Reason: " Call ", Status: "Completed"}.ToEntity("FLW-1")
	if f.ID != "FLW-1" || f.Reason != "Call" || f.Status != entities.FollowUpStatusCompleted {
		t.Fatalf("unexpected follow-up: %+v", f)
	}
}

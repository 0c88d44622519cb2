package request

import (
	"strings"

	"construction_console/internal/domain/entities"
)

type LineItemRequest struct {
	ItemID   string   `json:"item_id"`
	ItemName string   `json:"item_name" binding:"required"`
	LH       string   `json:"lh"`
	WD       string   `json:"wd"`
	Unit     string   `json:"unit"`
	Volume   *float64 `json:"volume" binding:"omitempty,gte=0"`
	Rate     float64  `json:"rate"`
	Qty      *float64 `json:"qty"`
	GSTRate  float64  `json:"gst_rate" binding:"gst_rate"`
}

// ToEntity maps the row onto a line item. Volume and quantity default to 1 when absent;
// the volume is replaced by LH x WD when both dimensions are numeric.
func (r LineItemRequest) ToEntity() entities.EstimateLineItem {
	return entities.EstimateLineItem{
		ItemID:   strings.TrimSpace(r.ItemID),
		ItemName: strings.TrimSpace(r.ItemName),
		LH:       r.LH,
		WD:       r.WD,
		Unit:     r.Unit,
		Volume:   valueOr(r.Volume, 1),
		Rate:     r.Rate,
		Qty:      valueOr(r.Qty, 1),
		GSTRate:  r.GSTRate,
	}
}

// ModifiersRequest are the estimate-level pricing inputs.
type ModifiersRequest struct {
	GSTCalculationMode string  `json:"gst_calculation_mode" binding:"omitempty,oneof=auto manual"`
	ManualGST          float64 `json:"manual_gst"`
	DiscountValue      float64 `json:"discount_value" binding:"gte=0"`
	DiscountType       string  `json:"discount_type" binding:"omitempty,oneof=amount percent"`
}

func (r ModifiersRequest) apply(e *entities.Estimate) {
	e.GSTCalculationMode = entities.TaxMode(r.GSTCalculationMode)
	if e.GSTCalculationMode == "" {
		e.GSTCalculationMode = entities.TaxModeAuto
	}
	e.ManualGST = r.ManualGST
	e.DiscountValue = r.DiscountValue
	e.DiscountType = entities.DiscountType(r.DiscountType)
	if e.DiscountType == "" {
		e.DiscountType = entities.DiscountTypeAmount
	}
}

// PriceRequest previews totals without saving anything.
type PriceRequest struct {
	Items []LineItemRequest `json:"items" binding:"dive"`
	ModifiersRequest
}

func (r PriceRequest) ToEntity() entities.Estimate {
	e := entities.Estimate{Items: lineItems(r.Items)}
	r.ModifiersRequest.apply(&e)
	return e
}

// EstimateRequest is the estimate form. Customer name, phone, site address and at least one
// line item are required at submission.
type EstimateRequest struct {
	EstimateNumber string `json:"estimate_number"`
	Date           string `json:"date"`

	CustomerName   string `json:"customer_name" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required,phone"`
	AltMob         string `json:"alt_mob" binding:"omitempty,phone"`
	Email          string `json:"email" binding:"omitempty,email"`
	PAN            string `json:"pan"`
	Profession     string `json:"profession"`
	CurrentAddress string `json:"current_address"`
	SiteAddress    string `json:"site_address" binding:"required"`
	FamilyMember   string `json:"family_member"`
	ProjectType    string `json:"project_type"`
	Scope          string `json:"scope"`
	Budget         string `json:"budget"`
	CompletionTime string `json:"completion_time"`
	SalaryIncome   string `json:"salary_income"`

	Items []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	ModifiersRequest
	Terms  []string `json:"terms"`
	Status string   `json:"status" binding:"omitempty,oneof=Pending Converted Rejected"`

	// Revision drafts come back with their identity; a plain form leaves these empty.
	ParentID string `json:"parent_id"`
	Version  int    `json:"version" binding:"gte=0"`
}

func (r EstimateRequest) ToEntity(id string) entities.Estimate {
	e := entities.Estimate{
		ID:             strings.TrimSpace(id),
		EstimateNumber: strings.TrimSpace(r.EstimateNumber),
		Date:           strings.TrimSpace(r.Date),
		CustomerDetails: entities.CustomerDetails{
			CustomerName:   strings.TrimSpace(r.CustomerName),
			PhoneNumber:    strings.TrimSpace(r.PhoneNumber),
			AltMob:         strings.TrimSpace(r.AltMob),
			Email:          strings.TrimSpace(r.Email),
			PAN:            strings.TrimSpace(r.PAN),
			Profession:     r.Profession,
			CurrentAddress: strings.TrimSpace(r.CurrentAddress),
			SiteAddress:    strings.TrimSpace(r.SiteAddress),
			FamilyMember:   r.FamilyMember,
			ProjectType:    entities.ProjectType(r.ProjectType),
			Scope:          entities.ProjectScope(r.Scope),
			Budget:         r.Budget,
			CompletionTime: r.CompletionTime,
			SalaryIncome:   r.SalaryIncome,
		},
		Items:    lineItems(r.Items),
		Terms:    r.Terms,
		Status:   entities.EstimateStatus(r.Status),
		ParentID: strings.TrimSpace(r.ParentID),
		Version:  r.Version,
	}
	r.ModifiersRequest.apply(&e)
	return e
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func lineItems(in []LineItemRequest) []entities.EstimateLineItem {
	out := make([]entities.EstimateLineItem, 0, len(in))
	for _, li := range in {
		out = append(out, li.ToEntity())
	}
	return out
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

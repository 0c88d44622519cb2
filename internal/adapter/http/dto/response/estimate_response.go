package response

import (
	"time"

	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/pricing"
	"construction_console/internal/usecase"
)

type LineItemResponse struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	LH        string  `json:"lh"`
	WD        string  `json:"wd"`
	Unit      string  `json:"unit"`
	Volume    float64 `json:"volume"`
	Rate      float64 `json:"rate"`
	Qty       float64 `json:"qty"`
	Total     float64 `json:"total"`
	GSTRate   float64 `json:"gst_rate"`
	GSTAmount float64 `json:"gst_amount"`
}

type EstimateResponse struct {
	ID             string `json:"id"`
	EstimateNumber string `json:"estimate_number"`
	Date           string `json:"date"`

	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	AltMob         string `json:"alt_mob,omitempty"`
	Email          string `json:"email,omitempty"`
	PAN            string `json:"pan,omitempty"`
	Profession     string `json:"profession,omitempty"`
	CurrentAddress string `json:"current_address"`
	SiteAddress    string `json:"site_address"`
	FamilyMember   string `json:"family_member,omitempty"`
	ProjectType    string `json:"project_type"`
	Scope          string `json:"scope"`
	Budget         string `json:"budget,omitempty"`
	CompletionTime string `json:"completion_time,omitempty"`
	SalaryIncome   string `json:"salary_income,omitempty"`

	Items              []LineItemResponse `json:"items"`
	SubTotal           float64            `json:"sub_total"`
	GSTExtra           float64            `json:"gst_extra"`
	GSTCalculationMode string             `json:"gst_calculation_mode"`
	ManualGST          float64            `json:"manual_gst"`
	Discount           float64            `json:"discount"`
	DiscountValue      float64            `json:"discount_value"`
	DiscountType       string             `json:"discount_type"`
	TotalAmount        float64            `json:"total_amount"`
	Terms              []string           `json:"terms"`

	Status    string    `json:"status"`
	ParentID  string    `json:"parent_id,omitempty"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	terms := e.Terms
	if terms == nil {
		terms = []string{}
	}
	return EstimateResponse{
		ID:                 e.ID,
		EstimateNumber:     e.EstimateNumber,
		Date:               e.Date,
		CustomerName:       e.CustomerName,
		PhoneNumber:        e.PhoneNumber,
		AltMob:             e.AltMob,
		Email:              e.Email,
		PAN:                e.PAN,
		Profession:         e.Profession,
		CurrentAddress:     e.CurrentAddress,
		SiteAddress:        e.SiteAddress,
		FamilyMember:       e.FamilyMember,
		ProjectType:        string(e.ProjectType),
		Scope:              string(e.Scope),
		Budget:             e.Budget,
		CompletionTime:     e.CompletionTime,
		SalaryIncome:       e.SalaryIncome,
		Items:              FromLineItems(e.Items),
		SubTotal:           e.SubTotal,
		GSTExtra:           e.GSTExtra,
		GSTCalculationMode: string(e.GSTCalculationMode),
		ManualGST:          e.ManualGST,
		Discount:           e.Discount,
		DiscountValue:      e.DiscountValue,
		DiscountType:       string(e.DiscountType),
		TotalAmount:        e.TotalAmount,
		Terms:              terms,
		Status:             string(e.Status),
		ParentID:           e.ParentID,
		Version:            e.Version,
		CreatedAt:          e.CreatedAt,
	}
}

func FromEstimates(in []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(in))
	for _, e := range in {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromLineItems(in []entities.EstimateLineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(in))
	for _, li := range in {
		out = append(out, LineItemResponse{
			ItemID:    li.ItemID,
			ItemName:  li.ItemName,
			LH:        li.LH,
			WD:        li.WD,
			Unit:      li.Unit,
			Volume:    li.Volume,
			Rate:      li.Rate,
			Qty:       li.Qty,
			Total:     li.Total,
			GSTRate:   li.GSTRate,
			GSTAmount: li.GSTAmount,
		})
	}
	return out
}

type TaxBucketResponse struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// PricingResponse is the totals panel of the estimate form.
type PricingResponse struct {
	Items        []LineItemResponse  `json:"items"`
	SubTotal     float64             `json:"sub_total"`
	AutoTax      float64             `json:"auto_tax"`
	TaxBreakdown []TaxBucketResponse `json:"tax_breakdown"`
	EffectiveTax float64             `json:"effective_tax"`
	Discount     float64             `json:"discount"`
	GrandTotal   float64             `json:"grand_total"`
	Negative     bool                `json:"negative"`
}

func FromPricing(r pricing.Result) PricingResponse {
	buckets := make([]TaxBucketResponse, 0, len(r.TaxBreakdown))
	for _, b := range r.TaxBreakdown {
		buckets = append(buckets, TaxBucketResponse{Rate: b.Rate, Amount: b.Amount})
	}
	return PricingResponse{
		Items:        FromLineItems(r.Items),
		SubTotal:     r.SubTotal,
		AutoTax:      r.AutoTax,
		TaxBreakdown: buckets,
		EffectiveTax: r.EffectiveTax,
		Discount:     r.Discount,
		GrandTotal:   r.GrandTotal,
		Negative:     r.IsNegative(),
	}
}

type ReconcileResponse struct {
	CustomerID       string   `json:"customer_id"`
	CustomerCreated  bool     `json:"customer_created"`
	CustomerUpdated  bool     `json:"customer_updated"`
	ProvisionedItems []string `json:"provisioned_items"`
}

type SavedEstimateResponse struct {
	Estimate  EstimateResponse  `json:"estimate"`
	Pricing   PricingResponse   `json:"pricing"`
	Created   bool              `json:"created"`
	Reconcile ReconcileResponse `json:"reconcile"`
	Warnings  []string          `json:"warnings"`
}

func FromSavedEstimate(s usecase.SavedEstimate) SavedEstimateResponse {
	provisioned := make([]string, 0, len(s.Reconcile.ProvisionedItems))
	for _, item := range s.Reconcile.ProvisionedItems {
		provisioned = append(provisioned, item.Name)
	}
	warnings := s.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return SavedEstimateResponse{
		Estimate: FromEstimate(s.Estimate),
		Pricing:  FromPricing(s.Pricing),
		Created:  s.Created,
		Reconcile: ReconcileResponse{
			CustomerID:       s.Reconcile.Customer.ID,
			CustomerCreated:  s.Reconcile.CustomerCreated,
			CustomerUpdated:  s.Reconcile.CustomerUpdated,
			ProvisionedItems: provisioned,
		},
		Warnings: warnings,
	}
}

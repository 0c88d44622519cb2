package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - Every status is reachable from every other status; the operator always has the final say.
//   - New estimates and fresh revisions start as Pending.
type EstimateStatus string

const (
	EstimateStatusPending   EstimateStatus = "Pending"
	EstimateStatusConverted EstimateStatus = "Converted"
	EstimateStatusRejected  EstimateStatus = "Rejected"
)

// EstimateStatuses lists every status in display order.
var EstimateStatuses = []EstimateStatus{EstimateStatusPending, EstimateStatusConverted, EstimateStatusRejected}

func (s EstimateStatus) IsValid() bool {
	switch s {
	case EstimateStatusPending, EstimateStatusConverted, EstimateStatusRejected:
		return true
	}
	return false
}

// TaxMode selects how the effective tax of an estimate is obtained.
type TaxMode string

const (
	TaxModeAuto   TaxMode = "auto"
	TaxModeManual TaxMode = "manual"
)

// DiscountType selects how DiscountValue is interpreted.
type DiscountType string

const (
	DiscountTypeAmount  DiscountType = "amount"
	DiscountTypePercent DiscountType = "percent"
)

type ProjectType string

const (
	ProjectTypeResidential ProjectType = "Resident"
	ProjectTypeCommercial  ProjectType = "Commercial"
	ProjectTypeIndustrial  ProjectType = "Industry"
)

type ProjectScope string

const (
	ProjectScopeTurnkey         ProjectScope = "New Construction (Turnkey)"
	ProjectScopeBoxConstruction ProjectScope = "New Box Construction"
	ProjectScopeRenovation      ProjectScope = "Renovation"
	ProjectScopeInteriorDesign  ProjectScope = "Interior Design"
)

func (s ProjectScope) IsValid() bool {
	switch s {
	case ProjectScopeTurnkey, ProjectScopeBoxConstruction, ProjectScopeRenovation, ProjectScopeInteriorDesign:
		return true
	}
	return false
}

// EstimateLineItem is one priced row of an estimate. It has no identity of its own.
//
// Volume is the multiplier derived from LH x WD when both parse as numbers; Total and GSTAmount
// are always recomputed by the pricing engine and never set independently.
type EstimateLineItem struct {
	ItemID    string  `json:"itemId"`
	ItemName  string  `json:"itemName"`
	LH        string  `json:"lh"`
	WD        string  `json:"wd"`
	Unit      string  `json:"unit"`
	Volume    float64 `json:"volume"`
	Rate      float64 `json:"rate"`
	Qty       float64 `json:"qty"`
	Total     float64 `json:"total"`
	GSTRate   float64 `json:"gstRate"`
	GSTAmount float64 `json:"gstAmount"`
}

// CustomerDetails is the customer snapshot captured on an estimate.
type CustomerDetails struct {
	CustomerName   string       `json:"customerName"`
	PhoneNumber    string       `json:"phoneNumber"`
	AltMob         string       `json:"altMob"`
	Email          string       `json:"email"`
	PAN            string       `json:"pan"`
	Profession     string       `json:"profession"`
	CurrentAddress string       `json:"currentAddress"`
	SiteAddress    string       `json:"siteAddress"`
	FamilyMember   string       `json:"familyMember"`
	ProjectType    ProjectType  `json:"projectType"`
	Scope          ProjectScope `json:"scope"`
	Budget         string       `json:"budget"`
	CompletionTime string       `json:"completionTime"`
	SalaryIncome   string       `json:"salaryIncome"`
}

// Estimate is the priced, revisable business document stored at /estimates/{id}.
//
// Monetary representation:
//   - SubTotal, GSTExtra (effective tax), Discount (resolved amount) and TotalAmount are derived
//     by the pricing engine at save time.
//   - ManualGST keeps the operator's manual tax figure so switching modes is lossless.
//
// Versioning:
//   - ParentID always references the original estimate of a revision chain.
type Estimate struct {
	ID             string `json:"id"`
	EstimateNumber string `json:"estimateNumber"`
	Date           string `json:"date"`
	CustomerDetails

	Items              []EstimateLineItem `json:"items"`
	SubTotal           float64            `json:"subTotal"`
	GSTExtra           float64            `json:"gstExtra"`
	GSTCalculationMode TaxMode            `json:"gstCalculationMode"`
	ManualGST          float64            `json:"manualGst"`
	Discount           float64            `json:"discount"`
	DiscountValue      float64            `json:"discountValue"`
	DiscountType       DiscountType       `json:"discountType"`
	TotalAmount        float64            `json:"totalAmount"`
	Terms              []string           `json:"terms"`

	Status    EstimateStatus `json:"status"`
	ParentID  string         `json:"parentId,omitempty"`
	Version   int            `json:"version"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (e Estimate) EntityID() string { return e.ID }

func (e Estimate) WithID(id string) Estimate {
	e.ID = id
	return e
}

// RootID returns the id of the original estimate of e's revision chain.
func (e Estimate) RootID() string {
	if e.ParentID != "" {
		return e.ParentID
	}
	return e.ID
}

// Clone returns a copy of e that shares no slices with it.
func (e Estimate) Clone() Estimate {
	if e.Items != nil {
		items := make([]EstimateLineItem, len(e.Items))
		copy(items, e.Items)
		e.Items = items
	}
	if e.Terms != nil {
		terms := make([]string, len(e.Terms))
		copy(terms, e.Terms)
		e.Terms = terms
	}
	return e
}

package response

import (
	"time"

	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/insights"
)

type ItemResponse struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	HSNCode  string  `json:"hsn_code"`
	SaleRate float64 `json:"sale_rate"`
	GSTRate  float64 `json:"gst_rate"`
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse{
		ID:       i.ID,
		Type:     string(i.Type),
		Name:     i.Name,
		Unit:     i.Unit,
		HSNCode:  i.HSNCode,
		SaleRate: i.SaleRate,
		GSTRate:  i.GSTRate,
	}
}

func FromItems(in []entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(in))
	for _, i := range in {
		out = append(out, FromItem(i))
	}
	return out
}

type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	AltPhone    string    `json:"alt_phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address"`
	SiteAddress string    `json:"site_address,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		AltPhone:    c.AltPhone,
		Email:       c.Email,
		Address:     c.Address,
		SiteAddress: c.SiteAddress,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}

func FromCustomers(in []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCustomer(c))
	}
	return out
}

// AutofillResponse holds the estimate form fields known for a phone number.
type AutofillResponse struct {
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	AltMob         string `json:"alt_mob,omitempty"`
	Email          string `json:"email,omitempty"`
	CurrentAddress string `json:"current_address"`
	SiteAddress    string `json:"site_address"`
}

func FromCustomerDetails(d entities.CustomerDetails) AutofillResponse {
	return AutofillResponse{
		CustomerName:   d.CustomerName,
		PhoneNumber:    d.PhoneNumber,
		AltMob:         d.AltMob,
		Email:          d.Email,
		CurrentAddress: d.CurrentAddress,
		SiteAddress:    d.SiteAddress,
	}
}

type FollowUpResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromFollowUp(f entities.FollowUp) FollowUpResponse {
	return FollowUpResponse{
		ID:           f.ID,
		CustomerID:   f.CustomerID,
		CustomerName: f.CustomerName,
		Date:         f.Date,
		Time:         f.Time,
		Reason:       f.Reason,
		Notes:        f.Notes,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
	}
}

func FromFollowUps(in []entities.FollowUp) []FollowUpResponse {
	out := make([]FollowUpResponse, 0, len(in))
	for _, f := range in {
		out = append(out, FromFollowUp(f))
	}
	return out
}

type CompanyInfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func FromCompanyInfo(c entities.CompanyInfo) CompanyInfoResponse {
	return CompanyInfoResponse{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

type LogoResponse struct {
	DataURL string `json:"data_url"`
}

type MonthResponse struct {
	Name      string  `json:"name"`
	Estimates int     `json:"estimates"`
	Business  int     `json:"business"`
	Value     float64 `json:"value"`
}

type InsightsResponse struct {
	Total           int             `json:"total"`
	Pending         int             `json:"pending"`
	Converted       int             `json:"converted"`
	Rejected        int             `json:"rejected"`
	TotalValue      float64         `json:"total_value"`
	BusinessValue   float64         `json:"business_value"`
	ConversionRate  float64         `json:"conversion_rate"`
	ExpectedRevenue float64         `json:"expected_revenue"`
	MonthlyTrend    []MonthResponse `json:"monthly_trend"`
}

func FromReport(r insights.Report) InsightsResponse {
	trend := make([]MonthResponse, 0, len(r.MonthlyTrend))
	for _, m := range r.MonthlyTrend {
		trend = append(trend, MonthResponse{Name: m.Name, Estimates: m.Estimates, Business: m.Business, Value: m.Value})
	}
	return InsightsResponse{
		Total:           r.Total,
		Pending:         r.Pending,
		Converted:       r.Converted,
		Rejected:        r.Rejected,
		TotalValue:      r.TotalValue,
		BusinessValue:   r.BusinessValue,
		ConversionRate:  r.ConversionRate,
		ExpectedRevenue: r.ExpectedRevenue,
		MonthlyTrend:    trend,
	}
}

type SyncPathResponse struct {
	Path      string    `json:"path"`
	Kind      string    `json:"kind"`
	State     string    `json:"state"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SyncStatusResponse reports how far local changes have reached the remote store.
type SyncStatusResponse struct {
	Pending int                `json:"pending"`
	Synced  int                `json:"synced"`
	Failed  int                `json:"failed"`
	Paths   []SyncPathResponse `json:"paths"`
}

func FromSyncStatus(summary outbox.Summary, paths []outbox.PathStatus) SyncStatusResponse {
	out := SyncStatusResponse{
		Pending: summary.Pending,
		Synced:  summary.Synced,
		Failed:  summary.Failed,
		Paths:   make([]SyncPathResponse, 0, len(paths)),
	}
	for _, p := range paths {
		out.Paths = append(out.Paths, SyncPathResponse{
			Path:      p.Path,
			Kind:      string(p.Kind),
			State:     string(p.State),
			Attempts:  p.Attempts,
			LastError: p.LastError,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return out
}

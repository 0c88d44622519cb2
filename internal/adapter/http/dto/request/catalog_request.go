package request

import (
	"strings"

	"construction_console/internal/domain/entities"
)

type ItemRequest struct {
	Type     string  `json:"type" binding:"omitempty,oneof=Goods Service"`
	Name     string  `json:"name" binding:"required"`
	Unit     string  `json:"unit"`
	HSNCode  string  `json:"hsn_code"`
	SaleRate float64 `json:"sale_rate" binding:"gte=0"`
	GSTRate  float64 `json:"gst_rate" binding:"gst_rate"`
}

func (r ItemRequest) ToEntity(id string) entities.Item {
	return entities.Item{
		ID:       id,
		Type:     entities.ItemType(r.Type),
		Name:     strings.TrimSpace(r.Name),
		Unit:     strings.TrimSpace(r.Unit),
		HSNCode:  strings.TrimSpace(r.HSNCode),
		SaleRate: r.SaleRate,
		GSTRate:  r.GSTRate,
	}
}

type CustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required,phone"`
	AltPhone    string `json:"alt_phone" binding:"omitempty,phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
	SiteAddress string `json:"site_address"`
	Notes       string `json:"notes"`
}

func (r CustomerRequest) ToEntity(id string) entities.Customer {
	return entities.Customer{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Phone:       strings.TrimSpace(r.Phone),
		AltPhone:    strings.TrimSpace(r.AltPhone),
		Email:       strings.TrimSpace(r.Email),
		Address:     strings.TrimSpace(r.Address),
		SiteAddress: strings.TrimSpace(r.SiteAddress),
		Notes:       r.Notes,
	}
}

// FollowUpRequest schedules a call back. Date is YYYY-MM-DD and Time HH:MM.
type FollowUpRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string `json:"time" binding:"omitempty,datetime=15:04"`
	Reason     string `json:"reason" binding:"required"`
	Notes      string `json:"notes"`
	Status     string `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
}

func (r FollowUpRequest) ToEntity(id string) entities.FollowUp {
	return entities.FollowUp{
		ID:         id,
		CustomerID: strings.TrimSpace(r.CustomerID),
		Date:       r.Date,
		Time:       r.Time,
		Reason:     strings.TrimSpace(r.Reason),
		Notes:      r.Notes,
		Status:     entities.FollowUpStatus(r.Status),
	}
}

type CompanyInfoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CompanyInfoRequest) ToEntity() entities.CompanyInfo {
	return entities.CompanyInfo{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

// LogoRequest carries the logo as a base64 image data URL.
type LogoRequest struct {
	DataURL string `json:"data_url" binding:"required"`
}

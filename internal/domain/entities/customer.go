package entities

import "time"

// Customer is a party estimates are prepared for, stored at /customers/{id}.
// Phone is the matching key used when estimates are saved; it is not enforced unique by the store.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	AltPhone    string    `json:"altPhone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	SiteAddress string    `json:"siteAddress"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Customer) EntityID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}

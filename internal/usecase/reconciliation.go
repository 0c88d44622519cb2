package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

// ReconcileResult reports the side writes issued for one estimate save.
type ReconcileResult struct {
	Customer         entities.Customer `json:"customer"`
	CustomerCreated  bool              `json:"customerCreated"`
	CustomerUpdated  bool              `json:"customerUpdated"`
	ProvisionedItems []entities.Item   `json:"provisionedItems"`
}

// Reconciler keeps the customer list and the catalog in step with saved estimates.
//
// Customers are matched on the exact phone number. Catalog items are matched on the
// case-insensitive name; unknown line names become Goods items. The writes are not atomic
// with the estimate write and the last writer wins.
type Reconciler struct {
	ws        *Workspace
	customers interfaces.ICustomerRepository
	items     interfaces.IItemRepository
	now       func() time.Time
	log       *logrus.Entry
}

func NewReconciler(ws *Workspace, customers interfaces.ICustomerRepository, items interfaces.IItemRepository) *Reconciler {
	return &Reconciler{
		ws:        ws,
		customers: customers,
		items:     items,
		now:       time.Now,
		log:       config.Module("reconciliation"),
	}
}

// Reconcile runs the customer upsert and the catalog provisioning independently; a failed
// customer write does not stop new items from being provisioned. Errors of both are joined.
func (r *Reconciler) Reconcile(ctx context.Context, e entities.Estimate) (ReconcileResult, error) {
	var res ReconcileResult

	c, created, updated, customerErr := r.upsertCustomer(ctx, e)
	if customerErr == nil {
		res.Customer, res.CustomerCreated, res.CustomerUpdated = c, created, updated
	}

	items, itemsErr := r.provisionItems(ctx, e.Items)
	res.ProvisionedItems = items
	return res, errors.Join(customerErr, itemsErr)
}

func (r *Reconciler) upsertCustomer(ctx context.Context, e entities.Estimate) (entities.Customer, bool, bool, error) {
	existing, found := r.ws.Customers.Find(func(c entities.Customer) bool {
		return c.Phone == e.PhoneNumber
	})

	if found {
		if existing.Name == e.CustomerName &&
			existing.Address == e.CurrentAddress &&
			existing.SiteAddress == e.SiteAddress {
			return existing, false, false, nil
		}
		existing.Name = e.CustomerName
		existing.Address = e.CurrentAddress
		existing.SiteAddress = e.SiteAddress
		if existing.Email == "" {
			existing.Email = e.Email
		}
		r.ws.Customers.Put(existing)
		if err := r.customers.Update(ctx, existing); err != nil {
			return existing, false, false, err
		}
		r.log.WithField("id", existing.ID).Info("customer details refreshed from estimate")
		return existing, false, true, nil
	}

	c := entities.Customer{
		ID:          NewCustomerID(),
		Name:        e.CustomerName,
		Phone:       e.PhoneNumber,
		AltPhone:    e.AltMob,
		Email:       e.Email,
		Address:     e.CurrentAddress,
		SiteAddress: e.SiteAddress,
		CreatedAt:   r.now().UTC(),
	}
	r.ws.Customers.Put(c)
	if err := r.customers.Create(ctx, c); err != nil {
		return c, false, false, err
	}
	r.log.WithField("id", c.ID).Info("customer created from estimate")
	return c, true, false, nil
}

func (r *Reconciler) provisionItems(ctx context.Context, lines []entities.EstimateLineItem) ([]entities.Item, error) {
	known := make(map[string]struct{})
	for _, it := range r.ws.Items.List() {
		known[strings.ToLower(it.Name)] = struct{}{}
	}

	out := make([]entities.Item, 0)
	for _, li := range lines {
		if strings.TrimSpace(li.ItemName) == "" {
			continue
		}
		key := strings.ToLower(li.ItemName)
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}

		id := li.ItemID
		if id == "" {
			id = uuid.NewString()
		}
		item := entities.Item{
			ID:       id,
			Type:     entities.ItemTypeGoods,
			Name:     li.ItemName,
			Unit:     li.Unit,
			HSNCode:  "",
			SaleRate: li.Rate,
			GSTRate:  li.GSTRate,
		}
		r.ws.Items.Put(item)
		if err := r.items.Create(ctx, item); err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}

// NewCustomerID allocates a customer id.
func NewCustomerID() string {
	return "CUST-" + uuid.NewString()
}

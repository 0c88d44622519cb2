package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerPhone = errors.New("customer phone is required")
)

// AutofillMinPhoneLength is the shortest phone number the estimate form looks up.
const AutofillMinPhoneLength = 10

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) []entities.Customer
	Search(ctx context.Context, term string) []entities.Customer
	FindByPhone(ctx context.Context, phone string) (entities.Customer, error)
	Autofill(ctx context.Context, phone string) (entities.CustomerDetails, bool)
	Estimates(ctx context.Context, id string) ([]entities.Estimate, error)
}

type CustomerUseCase struct {
	ws   *Workspace
	repo interfaces.ICustomerRepository
	now  func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(ws *Workspace, repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{ws: ws, repo: repo, now: time.Now}
}

func validateCustomer(c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return c, ErrInvalidCustomerName
	}
	if c.Phone == "" {
		return c, ErrInvalidCustomerPhone
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c, err := validateCustomer(c)
	if err != nil {
		return entities.Customer{}, err
	}
	c.ID = NewCustomerID()
	c.CreatedAt = u.now().UTC()

	u.ws.Customers.Put(c)
	if err := u.repo.Create(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	existing, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	c, err = validateCustomer(c)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = existing.CreatedAt
	}

	u.ws.Customers.Put(c)
	if err := u.repo.Update(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ws.Customers.Delete(c.ID)
	return u.repo.Delete(ctx, c.ID)
}

func (u *CustomerUseCase) GetByID(_ context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, ok := u.ws.Customers.Get(id)
	if !ok {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(_ context.Context) []entities.Customer {
	return u.ws.Customers.List()
}

// Search matches the name case-insensitively or any part of the phone number.
func (u *CustomerUseCase) Search(ctx context.Context, term string) []entities.Customer {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.List(ctx)
	}
	lower := strings.ToLower(term)
	return u.ws.Customers.Filter(func(c entities.Customer) bool {
		return strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.Phone, term)
	})
}

func (u *CustomerUseCase) FindByPhone(_ context.Context, phone string) (entities.Customer, error) {
	phone = strings.TrimSpace(phone)
	c, ok := u.ws.Customers.Find(func(c entities.Customer) bool { return c.Phone == phone })
	if !ok || phone == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// Autofill returns the estimate customer fields known for phone.
// Numbers shorter than AutofillMinPhoneLength are not looked up.
func (u *CustomerUseCase) Autofill(ctx context.Context, phone string) (entities.CustomerDetails, bool) {
	phone = strings.TrimSpace(phone)
	if len(phone) < AutofillMinPhoneLength {
		return entities.CustomerDetails{}, false
	}
	c, err := u.FindByPhone(ctx, phone)
	if err != nil {
		return entities.CustomerDetails{}, false
	}
	return entities.CustomerDetails{
		CustomerName:   c.Name,
		PhoneNumber:    c.Phone,
		AltMob:         c.AltPhone,
		Email:          c.Email,
		CurrentAddress: c.Address,
		SiteAddress:    c.SiteAddress,
	}, true
}

// Estimates lists the customer's estimates, matched by phone, newest first.
func (u *CustomerUseCase) Estimates(ctx context.Context, id string) ([]entities.Estimate, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0)
	for _, e := range u.ws.SortedEstimates() {
		if e.PhoneNumber == c.Phone {
			out = append(out, e)
		}
	}
	return out, nil
}

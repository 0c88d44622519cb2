package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"construction_console/internal/domain/entities"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrFollowUpNotFound       = errors.New("follow-up not found")
	ErrInvalidFollowUpID      = errors.New("invalid follow-up id")
	ErrInvalidFollowUpDate    = errors.New("follow-up date must be YYYY-MM-DD")
	ErrInvalidFollowUpTime    = errors.New("follow-up time must be HH:MM")
	ErrInvalidFollowUpReason  = errors.New("follow-up reason is required")
	ErrInvalidFollowUpStatus  = errors.New("invalid follow-up status")
	ErrFollowUpCustomerAbsent = errors.New("follow-up customer not found")
)

type IFollowUpUseCase interface {
	Create(ctx context.Context, f entities.FollowUp) (entities.FollowUp, error)
	Update(ctx context.Context, f entities.FollowUp) (entities.FollowUp, error)
	Toggle(ctx context.Context, id string) (entities.FollowUp, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.FollowUp, error)
	List(ctx context.Context) []entities.FollowUp
}

type FollowUpUseCase struct {
	ws   *Workspace
	repo interfaces.IFollowUpRepository
	now  func() time.Time
}

var _ IFollowUpUseCase = (*FollowUpUseCase)(nil)

func NewFollowUpUseCase(ws *Workspace, repo interfaces.IFollowUpRepository) *FollowUpUseCase {
	return &FollowUpUseCase{ws: ws, repo: repo, now: time.Now}
}

// prepare validates f and denormalizes the customer name onto it.
func (u *FollowUpUseCase) prepare(f entities.FollowUp) (entities.FollowUp, error) {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Reason = strings.TrimSpace(f.Reason)

	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return f, ErrInvalidFollowUpDate
	}
	if f.Time == "" {
		f.Time = entities.DefaultFollowUpTime
	}
	if _, err := time.Parse("15:04", f.Time); err != nil {
		return f, ErrInvalidFollowUpTime
	}
	if f.Reason == "" {
		return f, ErrInvalidFollowUpReason
	}
	if f.Status == "" {
		f.Status = entities.FollowUpStatusPending
	}
	if !f.Status.IsValid() {
		return f, ErrInvalidFollowUpStatus
	}

	c, ok := u.ws.Customers.Get(strings.TrimSpace(f.CustomerID))
	if !ok {
		return f, ErrFollowUpCustomerAbsent
	}
	f.CustomerID = c.ID
	f.CustomerName = c.Name
	return f, nil
}

func (u *FollowUpUseCase) Create(ctx context.Context, f entities.FollowUp) (entities.FollowUp, error) {
	f.Status = entities.FollowUpStatusPending
	f, err := u.prepare(f)
	if err != nil {
		return entities.FollowUp{}, err
	}
	f.ID = "FLW-" + uuid.NewString()
	f.CreatedAt = u.now().UTC()

	u.ws.FollowUps.Put(f)
	if err := u.repo.Create(ctx, f); err != nil {
		return f, err
	}
	return f, nil
}

func (u *FollowUpUseCase) Update(ctx context.Context, f entities.FollowUp) (entities.FollowUp, error) {
	existing, err := u.GetByID(ctx, f.ID)
	if err != nil {
		return entities.FollowUp{}, err
	}
	if f.Status == "" {
		f.Status = existing.Status
	}
	f, err = u.prepare(f)
	if err != nil {
		return entities.FollowUp{}, err
	}
	f.ID = existing.ID
	f.CreatedAt = existing.CreatedAt

	u.ws.FollowUps.Put(f)
	if err := u.repo.Update(ctx, f); err != nil {
		return f, err
	}
	return f, nil
}

// Toggle flips a follow-up between Pending and Completed.
func (u *FollowUpUseCase) Toggle(ctx context.Context, id string) (entities.FollowUp, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.FollowUp{}, err
	}
	f = f.Toggled()

	u.ws.FollowUps.Put(f)
	if err := u.repo.Update(ctx, f); err != nil {
		return f, err
	}
	return f, nil
}

func (u *FollowUpUseCase) Delete(ctx context.Context, id string) error {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ws.FollowUps.Delete(f.ID)
	return u.repo.Delete(ctx, f.ID)
}

func (u *FollowUpUseCase) GetByID(_ context.Context, id string) (entities.FollowUp, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FollowUp{}, ErrInvalidFollowUpID
	}
	f, ok := u.ws.FollowUps.Get(id)
	if !ok {
		return entities.FollowUp{}, ErrFollowUpNotFound
	}
	return f, nil
}

// List orders follow-ups by scheduled date and time, earliest first.
func (u *FollowUpUseCase) List(_ context.Context) []entities.FollowUp {
	list := u.ws.FollowUps.List()
	sort.SliceStable(list, func(i, j int) bool {
		return scheduleKey(list[i]) < scheduleKey(list[j])
	})
	return list
}

func scheduleKey(f entities.FollowUp) string {
	clock := f.Time
	if clock == "" {
		clock = entities.DefaultFollowUpTime
	}
	return f.Date + " " + clock
}

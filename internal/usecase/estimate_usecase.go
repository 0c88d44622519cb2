package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"construction_console/internal/config"
	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/lifecycle"
	"construction_console/internal/domain/pricing"
	"construction_console/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidStatus     = errors.New("invalid estimate status")
)

// WarningNegativeTotal is returned when the discount exceeds subtotal plus tax.
const WarningNegativeTotal = "total amount is negative: discount exceeds subtotal plus tax"

// EstimateFilter narrows List. Empty fields match everything.
type EstimateFilter struct {
	Status entities.EstimateStatus
	Phone  string
}

// SavedEstimate is the outcome of Save.
type SavedEstimate struct {
	Estimate  entities.Estimate `json:"estimate"`
	Pricing   pricing.Result    `json:"pricing"`
	Created   bool              `json:"created"`
	Reconcile ReconcileResult   `json:"reconcile"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// IEstimateUseCase exposes the estimate operations of the console:
//   - Price previews totals without saving
//   - Save reconciles the customer and catalog, then writes the estimate
//   - Revise drafts the next version; the draft is saved like any other estimate
type IEstimateUseCase interface {
	Price(e entities.Estimate) (entities.Estimate, pricing.Result)
	Save(ctx context.Context, e entities.Estimate) (SavedEstimate, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.Estimate, error)
	Revise(ctx context.Context, id string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, filter EstimateFilter) []entities.Estimate
	Revisions(ctx context.Context, id string) ([]entities.Estimate, error)
}

type EstimateUseCase struct {
	ws         *Workspace
	repo       interfaces.IEstimateRepository
	reconciler *Reconciler
	now        func() time.Time
	log        *logrus.Entry
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(ws *Workspace, repo interfaces.IEstimateRepository, reconciler *Reconciler) *EstimateUseCase {
	return &EstimateUseCase{
		ws:         ws,
		repo:       repo,
		reconciler: reconciler,
		now:        time.Now,
		log:        config.Module("estimate"),
	}
}

func (u *EstimateUseCase) Price(e entities.Estimate) (entities.Estimate, pricing.Result) {
	return pricing.Apply(e)
}

// Save stores e. An estimate whose id is already known is merged into the stored one;
// anything else is created, keeping the identity fields the caller set (a revision draft
// carries its own id, number, version and parent).
func (u *EstimateUseCase) Save(ctx context.Context, e entities.Estimate) (SavedEstimate, error) {
	e = e.Clone()
	e.ID = strings.TrimSpace(e.ID)
	for i := range e.Items {
		if e.Items[i].ItemID == "" {
			e.Items[i].ItemID = uuid.NewString()
		}
	}

	existing, exists := entities.Estimate{}, false
	if e.ID != "" {
		existing, exists = u.ws.Estimates.Get(e.ID)
	}
	if exists {
		e = keepIdentity(e, existing)
	} else {
		e = lifecycle.PrepareNew(e, u.now().UTC())
	}

	priced, result := pricing.Apply(e)
	out := SavedEstimate{Estimate: priced, Pricing: result, Created: !exists}
	fields := logrus.Fields{"id": priced.ID, "number": priced.EstimateNumber}
	if result.IsNegative() {
		out.Warnings = append(out.Warnings, WarningNegativeTotal)
		u.log.WithFields(fields).WithField("total", result.GrandTotal).Warn("estimate saved with negative total")
	}

	// Reconciliation writes are dispatched first so they precede the estimate on the journal.
	rec, err := u.reconciler.Reconcile(ctx, priced)
	if err != nil {
		config.LogError(config.GetLogger(), "estimate", "Save", "reconciliation failed", fields, err)
	}
	out.Reconcile = rec

	u.ws.Estimates.Put(priced)
	if exists {
		err = u.repo.Update(ctx, priced)
	} else {
		err = u.repo.Create(ctx, priced)
	}
	if err != nil {
		return out, fmt.Errorf("save estimate %s: %w", priced.ID, err)
	}
	return out, nil
}

func keepIdentity(e, existing entities.Estimate) entities.Estimate {
	if e.EstimateNumber == "" {
		e.EstimateNumber = existing.EstimateNumber
	}
	if e.Date == "" {
		e.Date = existing.Date
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = existing.CreatedAt
	}
	if e.Version < 1 {
		e.Version = existing.Version
	}
	if e.ParentID == "" {
		e.ParentID = existing.ParentID
	}
	if !e.Status.IsValid() {
		e.Status = existing.Status
	}
	if len(e.Terms) == 0 {
		e.Terms = existing.Terms
	}
	return e
}

func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.Estimate, error) {
	st, err := lifecycle.ParseStatus(strings.TrimSpace(status))
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	e, err = lifecycle.Transition(e, st)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	u.ws.Estimates.Put(e)
	if err := u.repo.Update(ctx, e); err != nil {
		return e, err
	}
	return e, nil
}

// Revise returns an unsaved draft of the next revision of the estimate.
func (u *EstimateUseCase) Revise(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return lifecycle.Revise(e, u.now().UTC()), nil
}

func (u *EstimateUseCase) Delete(ctx context.Context, id string) error {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ws.Estimates.Delete(e.ID)
	return u.repo.Delete(ctx, e.ID)
}

func (u *EstimateUseCase) GetByID(_ context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, ok := u.ws.Estimates.Get(id)
	if !ok {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// List returns estimates newest first.
func (u *EstimateUseCase) List(_ context.Context, filter EstimateFilter) []entities.Estimate {
	out := make([]entities.Estimate, 0)
	for _, e := range u.ws.SortedEstimates() {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Phone != "" && e.PhoneNumber != filter.Phone {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Revisions lists the revision chain the estimate belongs to, oldest version first.
func (u *EstimateUseCase) Revisions(ctx context.Context, id string) ([]entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.Chain(u.ws.Estimates.List(), e.RootID()), nil
}

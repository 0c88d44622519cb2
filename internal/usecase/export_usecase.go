package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"construction_console/internal/domain/entities"
)

// Export is a full copy of the tenant's data read from the remote store.
type Export struct {
	Items      []entities.Item       `json:"items"`
	Estimates  []entities.Estimate   `json:"estimates"`
	Customers  []entities.Customer   `json:"customers"`
	FollowUps  []entities.FollowUp   `json:"followups"`
	Logo       string                `json:"logo,omitempty"`
	Info       *entities.CompanyInfo `json:"info,omitempty"`
	ExportedAt time.Time             `json:"exportedAt"`
}

type IExportUseCase interface {
	Export(ctx context.Context) (Export, error)
}

type ExportUseCase struct {
	repos Repositories
	now   func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(repos Repositories) *ExportUseCase {
	return &ExportUseCase{repos: repos, now: time.Now}
}

// Export reads every collection concurrently. The first failing read cancels the rest.
func (u *ExportUseCase) Export(ctx context.Context) (Export, error) {
	out := Export{ExportedAt: u.now().UTC()}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Items, err = u.repos.Items.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Estimates, err = u.repos.Estimates.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Customers, err = u.repos.Customers.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.FollowUps, err = u.repos.FollowUps.List(ctx)
		return err
	})
	g.Go(func() error {
		info, found, err := u.repos.Company.GetInfo(ctx)
		if err != nil {
			return err
		}
		if found {
			out.Info = &info
		}
		return nil
	})
	g.Go(func() error {
		logo, _, err := u.repos.Company.GetLogo(ctx)
		if err != nil {
			return err
		}
		out.Logo = logo
		return nil
	})

	if err := g.Wait(); err != nil {
		return Export{}, err
	}
	return out, nil
}

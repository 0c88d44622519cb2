package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/insights"
	mock_interfaces "construction_console/internal/usecase/interfaces/mocks"
)

type repoMocks struct {
	items     *mock_interfaces.MockIItemRepository
	estimates *mock_interfaces.MockIEstimateRepository
	customers *mock_interfaces.MockICustomerRepository
	followUps *mock_interfaces.MockIFollowUpRepository
	company   *mock_interfaces.MockICompanyRepository
}

func newRepoMocks(t *testing.T) (repoMocks, Repositories) {
	ctrl := gomock.NewController(t)
	m := repoMocks{
		items:     mock_interfaces.NewMockIItemRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		followUps: mock_interfaces.NewMockIFollowUpRepository(ctrl),
		company:   mock_interfaces.NewMockICompanyRepository(ctrl),
	}
	return m, Repositories{Items: m.items, Estimates: m.estimates, Customers: m.customers, FollowUps: m.followUps, Company: m.company}
}

func TestWorkspace_StartAndClose(t *testing.T) {
	m, repos := newRepoMocks(t)
	ws := NewWorkspace(repos)

	stopped := 0
	stop := func() { stopped++ }

	m.items.EXPECT().Sync(gomock.Any(), gomock.Any()).DoAndReturn(func(onSnapshot func([]entities.Item), _ func(error)) func() {
		onSnapshot([]entities.Item{{ID: "i1", Name: "Cement"}})
		return stop
	})
	m.estimates.EXPECT().Sync(gomock.Any(), gomock.Any()).DoAndReturn(func(onSnapshot func([]entities.Estimate), onError func(error)) func() {
		onSnapshot([]entities.Estimate{
			{ID: "old", CreatedAt: fixedNow.Add(-time.Hour)},
			{ID: "new", CreatedAt: fixedNow},
		})
		onError(errors.New("permission denied"))
		return stop
	})
	m.customers.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(stop)
	m.followUps.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(stop)
	m.company.EXPECT().WatchInfo(gomock.Any(), gomock.Any()).DoAndReturn(func(onValue func(entities.CompanyInfo, bool), _ func(error)) func() {
		onValue(entities.CompanyInfo{Name: "Shah Builders"}, true)
		return stop
	})
	m.company.EXPECT().WatchLogo(gomock.Any(), gomock.Any()).DoAndReturn(func(onValue func(string, bool), _ func(error)) func() {
		onValue("", false)
		return stop
	})

	ws.Start()
	ws.Start()

	if !ws.Items.Ready() || ws.Items.Len() != 1 {
		t.Fatalf("items view not fed")
	}
	if ws.Customers.Ready() {
		t.Fatalf("customers view must wait for its first snapshot")
	}
	if list := ws.SortedEstimates(); list[0].ID != "new" {
		t.Fatalf("expected newest first, got %v", ids(list))
	}
	if info := ws.CompanyInfo(); info.Name != "Shah Builders" || info.Address != entities.DefaultCompanyInfo().Address {
		t.Fatalf("unexpected info: %+v", info)
	}
	if _, ok := ws.Logo(); ok {
		t.Fatalf("expected no logo")
	}

	ws.Close()
	ws.Close()
	if stopped != 6 {
		t.Fatalf("expected 6 unsubscribes, got %d", stopped)
	}
}

func TestInsightsUseCase_Report(t *testing.T) {
	ws := NewWorkspace(Repositories{})
	ws.Estimates.Replace([]entities.Estimate{
		{ID: "a", TotalAmount: 1000, Status: entities.EstimateStatusConverted, CreatedAt: fixedNow},
		{ID: "b", TotalAmount: 3000, Status: entities.EstimateStatusPending, CreatedAt: fixedNow},
		{ID: "c", TotalAmount: 500, Status: entities.EstimateStatusRejected, CreatedAt: fixedNow.AddDate(-1, 0, 0)},
	})
	uc := NewInsightsUseCase(ws, time.UTC)

	all := uc.Report(context.Background(), insights.Range{})
	if all.Total != 3 || all.Converted != 1 || all.BusinessValue != 1000 || all.TotalValue != 4500 {
		t.Fatalf("unexpected report: %+v", all)
	}

	recent := uc.Report(context.Background(), insights.Range{Start: fixedNow.AddDate(0, -1, 0)})
	if recent.Total != 2 || recent.ConversionRate != 50 {
		t.Fatalf("unexpected ranged report: %+v", recent)
	}
}

func TestExportUseCase(t *testing.T) {
	t.Run("collects every collection", func(t *testing.T) {
		m, repos := newRepoMocks(t)
		uc := NewExportUseCase(repos)
		uc.now = func() time.Time { return fixedNow }

		m.items.EXPECT().List(gomock.Any()).Return([]entities.Item{{ID: "i1"}}, nil)
		m.estimates.EXPECT().List(gomock.Any()).Return([]entities.Estimate{{ID: "e1"}, {ID: "e2"}}, nil)
		m.customers.EXPECT().List(gomock.Any()).Return([]entities.Customer{}, nil)
		m.followUps.EXPECT().List(gomock.Any()).Return([]entities.FollowUp{{ID: "FLW-1"}}, nil)
		m.company.EXPECT().GetInfo(gomock.Any()).Return(entities.CompanyInfo{Name: "Shah Builders"}, true, nil)
		m.company.EXPECT().GetLogo(gomock.Any()).Return("data:image/png;base64,AAAA", true, nil)

		out, err := uc.Export(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out.Items) != 1 || len(out.Estimates) != 2 || len(out.FollowUps) != 1 || out.Info == nil || out.Logo == "" {
			t.Fatalf("unexpected export: %+v", out)
		}
		if !out.ExportedAt.Equal(fixedNow) {
			t.Fatalf("unexpected timestamp %v", out.ExportedAt)
		}
	})

	t.Run("first error fails the export", func(t *testing.T) {
		m, repos := newRepoMocks(t)
		uc := NewExportUseCase(repos)

		m.items.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset"))
		m.estimates.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.customers.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.followUps.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		m.company.EXPECT().GetInfo(gomock.Any()).Return(entities.CompanyInfo{}, false, nil).AnyTimes()
		m.company.EXPECT().GetLogo(gomock.Any()).Return("", false, nil).AnyTimes()

		if _, err := uc.Export(context.Background()); err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected connection reset, got %v", err)
		}
	})
}

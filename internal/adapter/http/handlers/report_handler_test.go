package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"construction_console/internal/adapter/http/handlers/mocks"
	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/domain/entities"
	"construction_console/internal/domain/insights"
	"construction_console/internal/usecase"
	"construction_console/internal/usecase/interfaces"
)

func TestCompanyHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockICompanyUseCase) {
		uc := mocks.NewMockICompanyUseCase(gomock.NewController(t))
		h := NewCompanyHandler(uc)
		r := gin.New()
		r.GET("/v1/company/info", h.GetInfo)
		r.PUT("/v1/company/info", h.UpdateInfo)
		r.GET("/v1/company/logo", h.GetLogo)
		r.PUT("/v1/company/logo", h.UpdateLogo)
		r.DELETE("/v1/company/logo", h.DeleteLogo)
		return r, uc
	}

	t.Run("info defaults", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetInfo(gomock.Any()).Return(entities.DefaultCompanyInfo())

		w := perform(r, http.MethodGet, "/v1/company/info", "")
		if decodeBody(t, w)["name"] != entities.DefaultCompanyInfo().Name {
			t.Fatalf("unexpected info: %s", w.Body.String())
		}
	})

	t.Run("update info", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().UpdateInfo(gomock.Any(), entities.CompanyInfo{Name: "Acme Builders"}).
			Return(entities.CompanyInfo{Name: "Acme Builders"}.WithDefaults(), nil)

		w := perform(r, http.MethodPut, "/v1/company/info", `{"name":"Acme Builders"}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["name"] != "Acme Builders" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("update info rejects bad email", func(t *testing.T) {
		r, _ := setup(t)
		if w := perform(r, http.MethodPut, "/v1/company/info", `{"email":"nope"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("logo", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetLogo(gomock.Any()).Return("", usecase.ErrLogoNotFound)
		uc.EXPECT().UpdateLogo(gomock.Any(), "data:text/plain;base64,aGk=").Return(usecase.ErrInvalidLogo)
		uc.EXPECT().UpdateLogo(gomock.Any(), "data:image/png;base64,aGk=").Return(nil)
		uc.EXPECT().DeleteLogo(gomock.Any()).Return(nil)

		if w := perform(r, http.MethodGet, "/v1/company/logo", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := perform(r, http.MethodPut, "/v1/company/logo", `{"data_url":"data:text/plain;base64,aGk="}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		w := perform(r, http.MethodPut, "/v1/company/logo", `{"data_url":"data:image/png;base64,aGk="}`)
		if w.Code != http.StatusOK || decodeBody(t, w)["data_url"] != "data:image/png;base64,aGk=" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if w := perform(r, http.MethodDelete, "/v1/company/logo", ""); w.Code != http.StatusPreconditionRequired {
			t.Fatalf("expected 428, got %d", w.Code)
		}
		if w := perform(r, http.MethodDelete, "/v1/company/logo?confirm=true", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("logo too large", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().UpdateLogo(gomock.Any(), gomock.Any()).Return(usecase.ErrLogoTooLarge)

		if w := perform(r, http.MethodPut, "/v1/company/logo", `{"data_url":"data:image/png;base64,aGk="}`); w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})
}

func newReportRouter(t *testing.T, tracker SyncStatusReader) (*gin.Engine, *mocks.MockIInsightsUseCase, *mocks.MockIExportUseCase) {
	ctrl := gomock.NewController(t)
	ins := mocks.NewMockIInsightsUseCase(ctrl)
	exp := mocks.NewMockIExportUseCase(ctrl)
	loc := time.FixedZone("IST", 5*3600+1800)
	h := NewReportHandler(ins, exp, tracker, loc)

	r := gin.New()
	r.GET("/v1/insights", h.GetInsights)
	r.GET("/v1/export", h.Export)
	r.GET("/v1/sync", h.GetSyncStatus)
	return r, ins, exp
}

func TestReportHandler_GetInsights(t *testing.T) {
	t.Run("range is inclusive in the console timezone", func(t *testing.T) {
		r, ins, _ := newReportRouter(t, outbox.NewTracker())
		ins.EXPECT().Report(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rng insights.Range) insights.Report {
			wantStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
			if !rng.Start.Equal(wantStart) {
				t.Fatalf("unexpected start %v", rng.Start)
			}
			wantEnd := time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.FixedZone("IST", 5*3600+1800))
			if !rng.End.Equal(wantEnd) {
				t.Fatalf("unexpected end %v", rng.End)
			}
			return insights.Report{Total: 4, Converted: 1, ConversionRate: 25}
		})

		w := perform(r, http.MethodGet, "/v1/insights?start=2025-03-01&end=2025-03-31", "")
		body := decodeBody(t, w)
		if w.Code != http.StatusOK || body["total"] != 4.0 || body["conversion_rate"] != 25.0 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("open range", func(t *testing.T) {
		r, ins, _ := newReportRouter(t, outbox.NewTracker())
		ins.EXPECT().Report(gomock.Any(), insights.Range{}).Return(insights.Report{})

		if w := perform(r, http.MethodGet, "/v1/insights", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		r, _, _ := newReportRouter(t, outbox.NewTracker())
		for _, q := range []string{"start=03/01/2025", "end=tomorrow", "start=2025-03-10&end=2025-03-01"} {
			if w := perform(r, http.MethodGet, "/v1/insights?"+q, ""); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", q, w.Code)
			}
		}
	})
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, _, exp := newReportRouter(t, outbox.NewTracker())
		exportedAt := time.Date(2025, 3, 7, 6, 30, 0, 0, time.UTC)
		exp.EXPECT().Export(gomock.Any()).Return(usecase.Export{
			Items:      []entities.Item{{ID: "i-1"}},
			ExportedAt: exportedAt,
		}, nil)

		w := perform(r, http.MethodGet, "/v1/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="console-export-20250307-120000.json"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		items, _ := decodeBody(t, w)["items"].([]any)
		if len(items) != 1 {
			t.Fatalf("unexpected export: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, _, exp := newReportRouter(t, outbox.NewTracker())
		exp.EXPECT().Export(gomock.Any()).Return(usecase.Export{}, errors.New("store unavailable"))

		if w := perform(r, http.MethodGet, "/v1/export", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReportHandler_GetSyncStatus(t *testing.T) {
	tracker := outbox.NewTracker()
	tracker.Pending(interfaces.WriteOp{Kind: interfaces.WriteSet, Path: "users/t/items/a"})
	tracker.Synced("users/t/items/a", 1)
	tracker.Pending(interfaces.WriteOp{Kind: interfaces.WriteDelete, Path: "users/t/items/b"})
	tracker.Failed("users/t/items/b", 3, errors.New("denied"))

	r, _, _ := newReportRouter(t, tracker)

	w := perform(r, http.MethodGet, "/v1/sync", "")
	body := decodeBody(t, w)
	if body["synced"] != 1.0 || body["failed"] != 1.0 {
		t.Fatalf("unexpected summary: %s", w.Body.String())
	}
	if paths, _ := body["paths"].([]any); len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", body["paths"])
	}

	w = perform(r, http.MethodGet, "/v1/sync?state=FAILED", "")
	paths, _ := decodeBody(t, w)["paths"].([]any)
	if len(paths) != 1 {
		t.Fatalf("expected 1 failed path, got %s", w.Body.String())
	}
	if p, _ := paths[0].(map[string]any); p["last_error"] != "denied" {
		t.Fatalf("unexpected path: %v", p)
	}

	if w := perform(r, http.MethodGet, "/v1/sync?state=lost", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

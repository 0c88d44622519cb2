package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	response "construction_console/internal/adapter/http/dto/response"
	"construction_console/internal/adapter/persistence/outbox"
	"construction_console/internal/domain/insights"
	"construction_console/internal/usecase"
	"construction_console/pkg"
)

const queryDateLayout = "2006-01-02"

var (
	errInvalidDateRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "start and end must be YYYY-MM-DD with start before end", http.StatusBadRequest)
	errInvalidSyncState = pkg.NewDomainErrorSimple("INVALID_SYNC_STATE", "state must be pending, synced or failed", http.StatusBadRequest)
)

// SyncStatusReader is implemented by *outbox.Tracker.
type SyncStatusReader interface {
	Summary() outbox.Summary
	Snapshot(state outbox.State) []outbox.PathStatus
}

// ReportHandler serves the read-only views over the whole workspace: insights, the data
// export and the sync state of queued writes.
type ReportHandler struct {
	insights usecase.IInsightsUseCase
	export   usecase.IExportUseCase
	sync     SyncStatusReader
	loc      *time.Location
}

func NewReportHandler(insightsUC usecase.IInsightsUseCase, exportUC usecase.IExportUseCase, sync SyncStatusReader, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{insights: insightsUC, export: exportUC, sync: sync, loc: loc}
}

// GetInsights reports on estimates created between ?start= and ?end=, both inclusive
// calendar days in the console timezone. Missing bounds are open.
func (h *ReportHandler) GetInsights(c *gin.Context) {
	rng, err := h.parseRange(c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, errInvalidDateRange)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(h.insights.Report(c.Request.Context(), rng)))
}

func (h *ReportHandler) parseRange(start, end string) (insights.Range, error) {
	var rng insights.Range
	if s := strings.TrimSpace(start); s != "" {
		t, err := time.ParseInLocation(queryDateLayout, s, h.loc)
		if err != nil {
			return rng, err
		}
		rng.Start = t
	}
	if s := strings.TrimSpace(end); s != "" {
		t, err := time.ParseInLocation(queryDateLayout, s, h.loc)
		if err != nil {
			return rng, err
		}
		rng.End = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !rng.Start.IsZero() && !rng.End.IsZero() && rng.End.Before(rng.Start) {
		return rng, fmt.Errorf("end %s before start %s", end, start)
	}
	return rng, nil
}

// Export downloads every record of the tenant as stored remotely.
func (h *ReportHandler) Export(c *gin.Context) {
	data, err := h.export.Export(c.Request.Context())
	if err != nil {
		respondError(c, internalError(err))
		return
	}
	filename := fmt.Sprintf("console-export-%s.json", data.ExportedAt.In(h.loc).Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, data)
}

// GetSyncStatus lists the sync state of every written path, optionally filtered by ?state=.
func (h *ReportHandler) GetSyncStatus(c *gin.Context) {
	state := outbox.State(strings.ToLower(strings.TrimSpace(c.Query("state"))))
	switch state {
	case "", outbox.StatePending, outbox.StateSynced, outbox.StateFailed:
	default:
		respondError(c, errInvalidSyncState)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncStatus(h.sync.Summary(), h.sync.Snapshot(state)))
}

package usecase

import (
	"context"
	"time"

	"construction_console/internal/domain/insights"
)

type IInsightsUseCase interface {
	Report(ctx context.Context, rng insights.Range) insights.Report
}

type InsightsUseCase struct {
	ws  *Workspace
	loc *time.Location
}

var _ IInsightsUseCase = (*InsightsUseCase)(nil)

func NewInsightsUseCase(ws *Workspace, loc *time.Location) *InsightsUseCase {
	return &InsightsUseCase{ws: ws, loc: loc}
}

func (u *InsightsUseCase) Report(_ context.Context, rng insights.Range) insights.Report {
	return insights.Build(u.ws.Estimates.List(), rng, u.loc)
}

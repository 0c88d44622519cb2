package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"construction_console/internal/domain/entities"
)

func est(status entities.EstimateStatus, amount float64, created time.Time) entities.Estimate {
	return entities.Estimate{Status: status, TotalAmount: amount, CreatedAt: created}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestBuild(t *testing.T) {
	estimates := []entities.Estimate{
		est(entities.EstimateStatusConverted, 1000, day(2025, 1, 15)),
		est(entities.EstimateStatusPending, 500, day(2025, 1, 20)),
		est(entities.EstimateStatusRejected, 250, day(2025, 2, 3)),
		est(entities.EstimateStatusConverted, 250, day(2025, 3, 9)),
	}

	rep := Build(estimates, Range{}, time.UTC)

	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, 2, rep.Converted)
	assert.Equal(t, 1, rep.Pending)
	assert.Equal(t, 1, rep.Rejected)
	assert.Equal(t, 2000.0, rep.TotalValue)
	assert.Equal(t, 1250.0, rep.BusinessValue)
	assert.Equal(t, 50.0, rep.ConversionRate)
	assert.Equal(t, 1000.0, rep.ExpectedRevenue)

	require.Len(t, rep.MonthlyTrend, 3)
	jan := rep.MonthlyTrend[0]
	assert.Equal(t, "Jan 2025", jan.Name)
	assert.Equal(t, 2, jan.Estimates)
	assert.Equal(t, 1, jan.Business)
	assert.Equal(t, 1500.0, jan.Value)
	assert.Equal(t, "Feb 2025", rep.MonthlyTrend[1].Name)
	assert.Equal(t, "Mar 2025", rep.MonthlyTrend[2].Name)
}

func TestBuildRange(t *testing.T) {
	estimates := []entities.Estimate{
		est(entities.EstimateStatusConverted, 1000, day(2025, 1, 15)),
		est(entities.EstimateStatusPending, 500, day(2025, 2, 20)),
		est(entities.EstimateStatusPending, 700, day(2025, 4, 1)),
	}

	rep := Build(estimates, Range{Start: day(2025, 2, 1), End: day(2025, 3, 31)}, time.UTC)
	assert.Equal(t, 1, rep.Total)
	assert.Equal(t, 500.0, rep.TotalValue)
	assert.Equal(t, 0.0, rep.ConversionRate)
}

func TestBuildKeepsLastSixMonths(t *testing.T) {
	var estimates []entities.Estimate
	for m := time.January; m <= time.August; m++ {
		estimates = append(estimates, est(entities.EstimateStatusPending, 100, day(2024, m, 10)))
	}

	rep := Build(estimates, Range{}, time.UTC)
	require.Len(t, rep.MonthlyTrend, MaxTrendMonths)
	assert.Equal(t, "Mar 2024", rep.MonthlyTrend[0].Name)
	assert.Equal(t, "Aug 2024", rep.MonthlyTrend[5].Name)
}

func TestBuildRoundsConversionRate(t *testing.T) {
	estimates := []entities.Estimate{
		est(entities.EstimateStatusConverted, 300, day(2025, 5, 1)),
		est(entities.EstimateStatusPending, 300, day(2025, 5, 2)),
		est(entities.EstimateStatusRejected, 300, day(2025, 5, 3)),
	}
	rep := Build(estimates, Range{}, time.UTC)
	assert.Equal(t, 33.33, rep.ConversionRate)
}

func TestBuildEmpty(t *testing.T) {
	rep := Build(nil, Range{}, nil)
	assert.Equal(t, 0, rep.Total)
	assert.Equal(t, 0.0, rep.ConversionRate)
	assert.Empty(t, rep.MonthlyTrend)
}

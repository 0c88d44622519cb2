// Package insights summarises the estimate pipeline for the analytics view.
package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"construction_console/internal/domain/entities"
)

// MaxTrendMonths is how many monthly buckets the trend keeps.
const MaxTrendMonths = 6

// Range bounds the estimates considered by createdAt. Zero bounds are open.
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

type MonthBucket struct {
	Name      string  `json:"name"`
	Estimates int     `json:"estimates"`
	Business  int     `json:"business"`
	Value     float64 `json:"value"`

	month time.Time
}

type Report struct {
	Total           int           `json:"total"`
	Pending         int           `json:"pending"`
	Converted       int           `json:"converted"`
	Rejected        int           `json:"rejected"`
	TotalValue      float64       `json:"totalValue"`
	BusinessValue   float64       `json:"businessValue"`
	ConversionRate  float64       `json:"conversionRate"`
	ExpectedRevenue float64       `json:"expectedRevenue"`
	MonthlyTrend    []MonthBucket `json:"monthlyTrend"`
}

// Build computes the report for estimates created within rng. Months are bucketed in loc.
func Build(estimates []entities.Estimate, rng Range, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}

	var (
		rep      Report
		total    = decimal.Zero
		business = decimal.Zero
		months   = make(map[time.Time]*MonthBucket)
	)

	for _, e := range estimates {
		if !rng.contains(e.CreatedAt) {
			continue
		}
		rep.Total++
		amount := decimal.NewFromFloat(e.TotalAmount)
		total = total.Add(amount)

		switch e.Status {
		case entities.EstimateStatusConverted:
			rep.Converted++
			business = business.Add(amount)
		case entities.EstimateStatusRejected:
			rep.Rejected++
		default:
			rep.Pending++
		}

		local := e.CreatedAt.In(loc)
		key := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		b, ok := months[key]
		if !ok {
			b = &MonthBucket{Name: key.Format("Jan 2006"), month: key}
			months[key] = b
		}
		b.Estimates++
		b.Value = decimal.NewFromFloat(b.Value).Add(amount).InexactFloat64()
		if e.Status == entities.EstimateStatusConverted {
			b.Business++
		}
	}

	rep.TotalValue = total.InexactFloat64()
	rep.BusinessValue = business.InexactFloat64()
	if rep.Total > 0 {
		rate := decimal.NewFromInt(int64(rep.Converted)).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(rep.Total)))
		rep.ConversionRate = rate.Round(2).InexactFloat64()
		rep.ExpectedRevenue = total.Mul(rate).Div(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	rep.MonthlyTrend = trend(months)
	return rep
}

func trend(months map[time.Time]*MonthBucket) []MonthBucket {
	out := make([]MonthBucket, 0, len(months))
	for _, b := range months {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].month.Before(out[j].month) })
	if len(out) > MaxTrendMonths {
		out = out[len(out)-MaxTrendMonths:]
	}
	return out
}

package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

const (
	// DefaultSurgeThreshold is the 3-day growth rate, in percent, above
	// which a series counts as surging.
	DefaultSurgeThreshold = 50.0

	growthWindow   = 3
	lookbackWindow = 7
)

// sortedByDate returns a copy of the series in chronological order. The
// caller-supplied order is not trusted. Duplicate dates are kept as-is; the
// upstream aggregation is expected to emit one record per day.
func sortedByDate(series []schema.TimeSeriesPoint) []schema.TimeSeriesPoint {
	pts := make([]schema.TimeSeriesPoint, len(series))
	copy(pts, series)
	sort.SliceStable(pts, func(i, j int) bool {
		di, erri := utils.ParseDay(pts[i].Date)
		dj, errj := utils.ParseDay(pts[j].Date)
		if erri != nil || errj != nil {
			return false
		}
		return di.Before(dj)
	})
	return pts
}

func sumCounts(pts []schema.TimeSeriesPoint) float64 {
	var sum float64
	for _, p := range pts {
		sum += float64(p.CaseCount)
	}
	return sum
}

// CalculateGrowthMetrics derives the short-window growth rate, doubling time
// and daily velocity of a series. It needs at least two points.
func CalculateGrowthMetrics(series []schema.TimeSeriesPoint) schema.GrowthMetrics {
	if len(series) < 2 {
		return schema.GrowthMetrics{
			Error: "insufficient data (need at least 2 days)",
		}
	}

	pts := sortedByDate(series)
	n := len(pts)

	// Growth rate: last 3 days against the 3 days before them. With fewer
	// than 6 points the windows shrink to whatever tail exists.
	window := pts
	if n > 2*growthWindow {
		window = pts[n-2*growthWindow:]
	}
	recentStart := len(window) - growthWindow
	if recentStart < 0 {
		recentStart = 0
	}
	recent := sumCounts(window[recentStart:])
	previousEnd := growthWindow
	if previousEnd > len(window) {
		previousEnd = len(window)
	}
	previous := sumCounts(window[:previousEnd])

	// A zero prior-period sum makes the percentage undefined; it is pinned
	// to zero instead of raising.
	var growthRate float64
	if previous > 0 {
		growthRate = (recent - previous) / previous * 100
	}

	// Doubling time over the most recent week, from the classic
	// exponential-doubling formula. Only meaningful while growing from a
	// non-zero base.
	week := pts
	if n > lookbackWindow {
		week = pts[n-lookbackWindow:]
	}
	var doublingTime *float64
	first := float64(week[0].CaseCount)
	last := float64(week[len(week)-1].CaseCount)
	if first > 0 && last > first {
		d := float64(len(week)-1) * math.Ln2 / math.Log(last/first)
		d = round1(d)
		doublingTime = &d
	}

	// Velocity: mean day-over-day delta across the lookback window.
	deltas := len(week) - 1
	var velocity float64
	if deltas > 0 {
		velocity = (last - first) / float64(deltas)
	}

	var trend string
	switch {
	case growthRate > 20:
		trend = schema.TrendRapidGrowth
	case growthRate > 5:
		trend = schema.TrendGrowing
	case growthRate > -5:
		trend = schema.TrendStable
	default:
		trend = schema.TrendDeclining
	}

	return schema.GrowthMetrics{
		Success:          true,
		GrowthRate3Day:   round1(growthRate),
		DoublingTimeDays: doublingTime,
		DailyVelocity:    round1(velocity),
		Trend:            trend,
		CurrentCases:     pts[n-1].CaseCount,
		PreviousCases:    pts[0].CaseCount,
		LatestDate:       pts[n-1].Date,
	}
}

// DetectSurge flags a growth-rate excursion above the threshold and grades
// its severity. A non-positive threshold falls back to the default.
func DetectSurge(series []schema.TimeSeriesPoint, threshold float64) schema.SurgeDetection {
	if threshold <= 0 {
		threshold = DefaultSurgeThreshold
	}

	metrics := CalculateGrowthMetrics(series)
	if !metrics.Success {
		return schema.SurgeDetection{Error: metrics.Error}
	}

	isSurge := metrics.GrowthRate3Day > threshold

	var severity schema.Severity
	switch {
	case metrics.GrowthRate3Day > 100:
		severity = schema.SeverityCritical
	case metrics.GrowthRate3Day > 50:
		severity = schema.SeverityHigh
	case metrics.GrowthRate3Day > 20:
		severity = schema.SeverityMedium
	default:
		severity = schema.SeverityLow
	}

	detection := schema.SurgeDetection{
		Success:  true,
		IsSurge:  isSurge,
		Severity: severity,
		Metrics:  &metrics,
	}
	if isSurge {
		detection.AlertMessage = fmt.Sprintf("Cases increased by %.1f%% in 3 days", metrics.GrowthRate3Day)
	}
	return detection
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

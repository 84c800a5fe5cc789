package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

const (
	// MinObservations is the smallest series a model can be fitted on.
	MinObservations = 3

	// linearMarginRatio is the fixed prediction band of the linear model,
	// expressed as a fraction of the point estimate.
	linearMarginRatio = 0.2

	// seasonalSpanDays is the minimum series span for the weekly seasonal
	// model to be worth fitting.
	seasonalSpanDays = 14

	// zValue95 is the normal quantile of the 95% prediction interval.
	zValue95 = 1.96
)

// Model type names reported in forecast results.
const (
	ModelTypeLinear   = "linear_regression"
	ModelTypeSeasonal = "seasonal_trend"
)

// CaseForecastModel projects future daily case counts from a historical
// series. Fit must succeed before Forecast returns predictions; models are
// fitted fresh per request and keep no state between invocations.
type CaseForecastModel interface {
	// Fit trains the model. It returns false when the series has fewer
	// than MinObservations usable points, leaving the model untrained.
	Fit(series []schema.TimeSeriesPoint) bool

	// Forecast projects the requested number of days, starting the day
	// after the latest fitted observation. Calling it on an untrained
	// model yields a failure result with an empty prediction list.
	Forecast(days int) schema.ForecastResult
}

// NewCaseForecastModel returns the default model: weekly seasonal trend
// decomposition when the fitted series spans at least two weeks, plain
// linear regression otherwise.
func NewCaseForecastModel() CaseForecastModel {
	return &autoModel{}
}

// NewLinearModel returns the deterministic least-squares fallback model.
func NewLinearModel() CaseForecastModel {
	return &linearModel{}
}

// NewSeasonalTrendModel returns the trend plus weekly seasonality model.
func NewSeasonalTrendModel() CaseForecastModel {
	return &seasonalModel{}
}

// observation is one usable input point, with its day offset from the first
// observation.
type observation struct {
	date time.Time
	day  float64
	y    float64
}

// prepareObservations parses, sorts and offsets a series. Points with
// unparseable dates are dropped.
func prepareObservations(series []schema.TimeSeriesPoint) []observation {
	obs := make([]observation, 0, len(series))
	for _, p := range series {
		d, err := utils.ParseDay(p.Date)
		if err != nil {
			continue
		}
		obs = append(obs, observation{date: d, y: float64(p.CaseCount)})
	}

	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].date.Before(obs[j].date)
	})

	if len(obs) > 0 {
		base := obs[0].date
		for i := range obs {
			obs[i].day = float64(utils.DayOffset(base, obs[i].date))
		}
	}
	return obs
}

// leastSquares fits y = intercept + slope*day by ordinary least squares.
func leastSquares(obs []observation) (slope, intercept float64) {
	n := float64(len(obs))
	var sumX, sumY, sumXY, sumXX float64
	for _, o := range obs {
		sumX += o.day
		sumY += o.y
		sumXY += o.day * o.y
		sumXX += o.day * o.day
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func notTrainedResult() schema.ForecastResult {
	return schema.ForecastResult{
		Success:     false,
		Error:       "model not trained, call Fit first",
		Predictions: []schema.ForecastPoint{},
	}
}

// newForecastPoint rounds and clamps one projected day. Counts cannot go
// negative, so every value is floored at zero before rounding.
func newForecastPoint(date time.Time, predicted, lower, upper float64) schema.ForecastPoint {
	half := math.Abs(upper-lower) / 2
	return schema.ForecastPoint{
		Date:               utils.FormatDay(date),
		PredictedCases:     clampCount(predicted),
		LowerBound:         clampCount(lower),
		UpperBound:         clampCount(upper),
		ConfidenceInterval: fmt.Sprintf("±%d", int(math.Round(half))),
	}
}

func clampCount(v float64) int {
	if v < 0 {
		return 0
	}
	return int(math.Round(v))
}

// linearModel is the fallback strategy: ordinary least squares of case count
// against day offset, with a fixed ±20% prediction band.
type linearModel struct {
	trained   bool
	slope     float64
	intercept float64
	baseDate  time.Time
	lastDate  time.Time
}

func (m *linearModel) Fit(series []schema.TimeSeriesPoint) bool {
	obs := prepareObservations(series)
	if len(obs) < MinObservations {
		return false
	}

	m.slope, m.intercept = leastSquares(obs)
	m.baseDate = obs[0].date
	m.lastDate = obs[len(obs)-1].date
	m.trained = true
	return true
}

func (m *linearModel) Forecast(days int) schema.ForecastResult {
	if !m.trained {
		return notTrainedResult()
	}

	predictions := make([]schema.ForecastPoint, 0, days)
	for offset := 1; offset <= days; offset++ {
		date := m.lastDate.AddDate(0, 0, offset)
		day := float64(utils.DayOffset(m.baseDate, date))
		predicted := m.intercept + m.slope*day
		margin := math.Abs(predicted * linearMarginRatio)
		predictions = append(predictions, newForecastPoint(date, predicted, predicted-margin, predicted+margin))
	}

	return schema.ForecastResult{
		Success:     true,
		Predictions: predictions,
		ModelType:   ModelTypeLinear,
	}
}

// seasonalModel decomposes the series into a least-squares trend and a mean
// day-of-week component, with a 95% prediction interval taken from the
// residual spread. Weekly seasonality only; daily and yearly patterns are
// out of reach at this resolution and window.
type seasonalModel struct {
	trained   bool
	slope     float64
	intercept float64
	weekday   [7]float64
	sigma     float64
	baseDate  time.Time
	lastDate  time.Time
}

func (m *seasonalModel) Fit(series []schema.TimeSeriesPoint) bool {
	obs := prepareObservations(series)
	if len(obs) < MinObservations {
		return false
	}

	m.slope, m.intercept = leastSquares(obs)
	m.baseDate = obs[0].date
	m.lastDate = obs[len(obs)-1].date

	var sums, counts [7]float64
	for _, o := range obs {
		w := int(o.date.Weekday())
		sums[w] += o.y - (m.intercept + m.slope*o.day)
		counts[w]++
	}
	for w := range m.weekday {
		if counts[w] > 0 {
			m.weekday[w] = sums[w] / counts[w]
		}
	}

	var sqSum float64
	for _, o := range obs {
		residual := o.y - (m.intercept + m.slope*o.day) - m.weekday[int(o.date.Weekday())]
		sqSum += residual * residual
	}
	if len(obs) > 1 {
		m.sigma = math.Sqrt(sqSum / float64(len(obs)-1))
	}

	m.trained = true
	return true
}

func (m *seasonalModel) Forecast(days int) schema.ForecastResult {
	if !m.trained {
		return notTrainedResult()
	}

	predictions := make([]schema.ForecastPoint, 0, days)
	for offset := 1; offset <= days; offset++ {
		date := m.lastDate.AddDate(0, 0, offset)
		day := float64(utils.DayOffset(m.baseDate, date))
		predicted := m.intercept + m.slope*day + m.weekday[int(date.Weekday())]
		margin := zValue95 * m.sigma
		predictions = append(predictions, newForecastPoint(date, predicted, predicted-margin, predicted+margin))
	}

	return schema.ForecastResult{
		Success:     true,
		Predictions: predictions,
		ModelType:   ModelTypeSeasonal,
	}
}

// autoModel picks the fitting strategy per series at Fit time.
type autoModel struct {
	inner CaseForecastModel
}

func (m *autoModel) Fit(series []schema.TimeSeriesPoint) bool {
	obs := prepareObservations(series)
	if len(obs) < MinObservations {
		m.inner = nil
		return false
	}

	span := obs[len(obs)-1].date.Sub(obs[0].date)
	if span >= seasonalSpanDays*24*time.Hour && len(obs) >= seasonalSpanDays {
		m.inner = &seasonalModel{}
	} else {
		m.inner = &linearModel{}
	}
	return m.inner.Fit(series)
}

func (m *autoModel) Forecast(days int) schema.ForecastResult {
	if m.inner == nil {
		return notTrainedResult()
	}
	return m.inner.Forecast(days)
}

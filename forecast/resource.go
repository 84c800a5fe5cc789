package forecast

import (
	"math"

	"github.com/pulmoguard/surveillance-api/schema"
)

// ResourceRatios are the linear, memoryless multipliers that turn one day's
// predicted cases into that day's resource demand. AvgStayDays is declared
// for occupancy modeling but deliberately not applied: demand is derived from
// each day's new cases only, which is a known understatement of true
// pressure.
type ResourceRatios struct {
	SevereRatio     float64
	ICUBedRatio     float64
	VentilatorRatio float64
	OxygenPerCase   float64
	AvgStayDays     int
}

// DefaultResourceRatios returns the conversion constants observed in
// historical pneumonia admissions.
func DefaultResourceRatios() ResourceRatios {
	return ResourceRatios{
		SevereRatio:     0.20,
		ICUBedRatio:     0.30,
		VentilatorRatio: 0.10,
		OxygenPerCase:   2,
		AvgStayDays:     7,
	}
}

// ResourceDemandPredictor maps a case forecast into daily ICU bed, ventilator
// and oxygen demand against a capacity snapshot.
type ResourceDemandPredictor struct {
	ratios ResourceRatios
}

// NewResourceDemandPredictor builds a predictor. A nil ratios argument uses
// the defaults.
func NewResourceDemandPredictor(ratios *ResourceRatios) *ResourceDemandPredictor {
	r := DefaultResourceRatios()
	if ratios != nil {
		r = *ratios
	}
	return &ResourceDemandPredictor{ratios: r}
}

// PredictResourceNeeds derives a per-day demand timeline and its summary. An
// empty forecast is a failure, not a panic. The capacity snapshot is never
// mutated.
func (p *ResourceDemandPredictor) PredictResourceNeeds(caseForecast []schema.ForecastPoint, capacity schema.CapacitySnapshot) schema.ResourceForecast {
	if len(caseForecast) == 0 {
		return schema.ResourceForecast{
			Success: false,
			Error:   "no forecast data provided",
		}
	}

	// Guard the utilization denominator; a region reporting zero ICU beds
	// still gets a finite percentage.
	icuCapacity := capacity.ICUBeds
	if icuCapacity < 1 {
		icuCapacity = 1
	}

	timeline := make([]schema.ResourceDay, 0, len(caseForecast))
	for _, day := range caseForecast {
		cases := float64(day.PredictedCases)
		icuNeeded := roundCount(cases * p.ratios.ICUBedRatio)

		gap := icuNeeded - capacity.ICUBeds
		if gap < 0 {
			gap = 0
		}

		timeline = append(timeline, schema.ResourceDay{
			Date:                   day.Date,
			PredictedCases:         day.PredictedCases,
			SevereCases:            roundCount(cases * p.ratios.SevereRatio),
			ICUBedsNeeded:          icuNeeded,
			VentilatorsNeeded:      roundCount(cases * p.ratios.VentilatorRatio),
			OxygenUnitsNeeded:      roundCount(cases * p.ratios.OxygenPerCase),
			ICUBedGap:              gap,
			ICUCapacityUtilization: round1(float64(icuNeeded) / float64(icuCapacity) * 100),
		})
	}

	// Peak day is the first chronological occurrence of the maximum
	// predicted case count.
	peak := timeline[0]
	var totalGapDays int
	var maxUtilization float64
	for _, day := range timeline {
		if day.PredictedCases > peak.PredictedCases {
			peak = day
		}
		totalGapDays += day.ICUBedGap
		if day.ICUCapacityUtilization > maxUtilization {
			maxUtilization = day.ICUCapacityUtilization
		}
	}

	return schema.ResourceForecast{
		Success:  true,
		Timeline: timeline,
		Summary: &schema.ResourceSummary{
			PeakDate:              peak.Date,
			PeakCases:             peak.PredictedCases,
			PeakICUBedsNeeded:     peak.ICUBedsNeeded,
			PeakVentilatorsNeeded: peak.VentilatorsNeeded,
			TotalICUGapDays:       totalGapDays,
			MaxICUUtilization:     maxUtilization,
		},
	}
}

func roundCount(v float64) int {
	return int(math.Round(v))
}

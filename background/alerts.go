package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/pulmoguard/surveillance-api/forecast"
	"github.com/pulmoguard/surveillance-api/schema"
)

const (
	sweepHistoryDays  = 30
	sweepForecastDays = 7
)

// regionCapacity pools the registered beds and reported resources of every
// hospital in a region.
func (m *BackgroundManager) regionCapacity(regionType, regionID string) (schema.CapacitySnapshot, schema.ResourceStatus, error) {
	var city, state, country string
	switch regionType {
	case schema.RegionTypeCity:
		city = regionID
	case schema.RegionTypeCountry:
		country = regionID
	default:
		state = regionID
	}

	capacity, err := m.store.TotalCapacity(city, state, country)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}

	hospitals, err := m.store.ListHospitals(city, state, country)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}

	ids := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		ids = append(ids, h.ID.String())
	}

	status, ventilators, err := m.mongo.RegionResourceStatus(ids)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}
	capacity.VentilatorsAvailable = ventilators

	return capacity, status, nil
}

// sweepRegion runs every alert check against one region and persists what
// fires.
func (m *BackgroundManager) sweepRegion(regionType string, summary schema.RegionalSummary) (int, error) {
	series, err := m.mongo.RegionalTimeseries(summary.RegionID, sweepHistoryDays)
	if nil != err {
		return 0, err
	}

	capacity, status, err := m.regionCapacity(regionType, summary.RegionID)
	if nil != err {
		return 0, err
	}

	resourceForecast := schema.ResourceForecast{Success: false}
	model := forecast.NewCaseForecastModel()
	if model.Fit(series) {
		result := model.Forecast(sweepForecastDays)
		if result.Success {
			predictor := forecast.NewResourceDemandPredictor(nil)
			resourceForecast = predictor.PredictResourceNeeds(result.Predictions, capacity)
		}
	}

	regionName := summary.RegionName
	if regionName == "" {
		regionName = summary.RegionID
	}

	alerts := m.engine.GenerateAllAlerts(regionName, summary.RegionID, series, resourceForecast, capacity, status)
	if err := m.mongo.CreateAlerts(alerts); nil != err {
		return 0, err
	}
	return len(alerts), nil
}

// GenerateRegionAlerts walks the newest summary of every region of a type,
// evaluates all alert checks and persists the alerts that fire. It returns
// the number of alerts generated.
func (m *BackgroundManager) GenerateRegionAlerts(regionType string) (int, error) {
	if regionType == "" {
		regionType = schema.RegionTypeState
	}

	summaries, err := m.mongo.LatestRegionalSummaries(regionType)
	if nil != err {
		return 0, err
	}

	total := 0
	for _, summary := range summaries {
		count, err := m.sweepRegion(regionType, summary)
		if nil != err {
			log.WithField("prefix", "background").
				WithField("region", summary.RegionID).
				Errorf("sweep region with error: %s", err)
			continue
		}
		total += count
	}

	log.WithField("prefix", "background").
		Infof("alert sweep finished: %d regions, %d alerts", len(summaries), total)
	return total, nil
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/pulmoguard/surveillance-api/forecast"
	"github.com/pulmoguard/surveillance-api/schema"
)

const (
	defaultForecastDays = 7
	defaultHistoryDays  = 30
)

// regionCapacity pools the registered bed capacity and the reported resource
// levels of every hospital in a region.
func (s *Server) regionCapacity(regionType, regionID string) (schema.CapacitySnapshot, schema.ResourceStatus, error) {
	var city, state, country string
	switch regionType {
	case schema.RegionTypeCity:
		city = regionID
	case schema.RegionTypeCountry:
		country = regionID
	default:
		state = regionID
	}

	capacity, err := s.store.TotalCapacity(city, state, country)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}

	hospitals, err := s.store.ListHospitals(city, state, country)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}

	ids := make([]string, 0, len(hospitals))
	for _, h := range hospitals {
		ids = append(ids, h.ID.String())
	}

	status, ventilators, err := s.mongoStore.RegionResourceStatus(ids)
	if nil != err {
		return schema.CapacitySnapshot{}, schema.ResourceStatus{}, err
	}
	capacity.VentilatorsAvailable = ventilators

	return capacity, status, nil
}

// regionSeries loads the trailing case series of a region. The region name
// falls back to the id when the summaries carry none.
func (s *Server) regionSeries(regionID string, days int) ([]schema.TimeSeriesPoint, string, error) {
	series, err := s.mongoStore.RegionalTimeseries(regionID, days)
	if nil != err {
		return nil, "", err
	}

	name := regionID
	for _, p := range series {
		if p.RegionName != "" {
			name = p.RegionName
		}
	}
	return series, name, nil
}

// regionPrediction returns the full forecast report of one region
func (s *Server) regionPrediction(c *gin.Context) {
	regionID := c.Param("regionID")
	regionType := c.DefaultQuery("region_type", schema.RegionTypeState)
	if !validRegionType(regionType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	days := queryDays(c, "days", defaultForecastDays)
	history := queryDays(c, "history", defaultHistoryDays)

	series, regionName, err := s.regionSeries(regionID, history)
	if shouldInterupt(err, c) {
		return
	}
	if 0 == len(series) {
		abortWithEncoding(c, http.StatusNotFound, errorRegionNotFound)
		return
	}

	capacity, _, err := s.regionCapacity(regionType, regionID)
	if shouldInterupt(err, c) {
		return
	}

	report := forecast.GenerateForecastReport(regionName, series, capacity, days)
	c.JSON(http.StatusOK, report)
}

// hospitalPrediction returns the full forecast report of one hospital
func (s *Server) hospitalPrediction(c *gin.Context) {
	hospitalID, err := uuid.Parse(c.Param("hospitalID"))
	if nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	hospital, err := s.store.GetHospital(hospitalID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorHospitalNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	days := queryDays(c, "days", defaultForecastDays)
	history := queryDays(c, "history", defaultHistoryDays)

	series, err := s.mongoStore.HospitalTimeseries(hospitalID.String(), history)
	if shouldInterupt(err, c) {
		return
	}

	capacity := schema.CapacitySnapshot{
		TotalBeds: hospital.TotalBeds,
		ICUBeds:   hospital.ICUBeds,
	}
	snapshot, err := s.mongoStore.LatestResourceSnapshot(hospitalID.String())
	if shouldInterupt(err, c) {
		return
	}
	if snapshot != nil {
		capacity.VentilatorsAvailable = snapshot.VentilatorsAvailable
	}

	report := forecast.GenerateForecastReport(hospital.Name, series, capacity, days)
	c.JSON(http.StatusOK, report)
}

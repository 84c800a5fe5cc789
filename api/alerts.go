package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulmoguard/surveillance-api/forecast"
	"github.com/pulmoguard/surveillance-api/schema"
)

// alertWindow resolves the active-alert lookback from the request, default
// one day.
func alertWindow(c *gin.Context) time.Time {
	hours := queryDays(c, "hours", 24)
	return time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
}

// activeAlerts returns recently triggered alerts, newest first
func (s *Server) activeAlerts(c *gin.Context) {
	alerts, err := s.mongoStore.ActiveAlerts(c.Query("region_id"), alertWindow(c))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// alertSummary returns severity and type counts of recently triggered alerts
func (s *Server) alertSummary(c *gin.Context) {
	alerts, err := s.mongoStore.ActiveAlerts(c.Query("region_id"), alertWindow(c))
	if shouldInterupt(err, c) {
		return
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	c.JSON(http.StatusOK, s.alertEngine.GetAlertSummary(alerts))
}

// growthAlerts evaluates the growth checks of one region on demand
func (s *Server) growthAlerts(c *gin.Context) {
	regionID := c.Query("region_id")
	if regionID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	series, regionName, err := s.regionSeries(regionID, defaultHistoryDays)
	if shouldInterupt(err, c) {
		return
	}

	alerts := s.alertEngine.GenerateGrowthAlerts(regionName, regionID, series)
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// capacityAlerts evaluates the capacity checks of one region on demand
func (s *Server) capacityAlerts(c *gin.Context) {
	regionID := c.Query("region_id")
	if regionID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	regionType := c.DefaultQuery("region_type", schema.RegionTypeState)
	if !validRegionType(regionType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	series, regionName, err := s.regionSeries(regionID, defaultHistoryDays)
	if shouldInterupt(err, c) {
		return
	}

	capacity, status, err := s.regionCapacity(regionType, regionID)
	if shouldInterupt(err, c) {
		return
	}

	model := forecast.NewCaseForecastModel()
	resourceForecast := schema.ResourceForecast{Success: false}
	if model.Fit(series) {
		result := model.Forecast(defaultForecastDays)
		if result.Success {
			predictor := forecast.NewResourceDemandPredictor(nil)
			resourceForecast = predictor.PredictResourceNeeds(result.Predictions, capacity)
		}
	}

	alerts := s.alertEngine.GenerateCapacityAlerts(regionName, regionID, resourceForecast, capacity)
	alerts = append(alerts, s.alertEngine.GenerateResourceDepletionAlerts(regionName, regionID, status)...)

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// growthMetrics returns the raw growth analysis of one region
func (s *Server) growthMetrics(c *gin.Context) {
	regionID := c.Query("region_id")
	if regionID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	series, _, err := s.regionSeries(regionID, defaultHistoryDays)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"growth_metrics":  forecast.CalculateGrowthMetrics(series),
		"surge_detection": forecast.DetectSurge(series, forecast.DefaultSurgeThreshold),
	})
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/api/mocks"
	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

func testSeries(start string, counts []int, regionName string) []schema.TimeSeriesPoint {
	base, _ := utils.ParseDay(start)
	series := make([]schema.TimeSeriesPoint, 0, len(counts))
	for i, c := range counts {
		series = append(series, schema.TimeSeriesPoint{
			Date:       utils.FormatDay(base.AddDate(0, 0, i)),
			CaseCount:  c,
			RegionName: regionName,
		})
	}
	return series
}

func TestRegionPrediction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      core,
		mongoStore: m,
	}

	counts := []int{100, 110, 120, 130, 140, 150, 160, 170, 180, 190}
	m.EXPECT().RegionalTimeseries("north", 30).
		Return(testSeries("2026-01-01", counts, "North Province"), nil).Times(1)

	hospitalID := uuid.New()
	core.EXPECT().TotalCapacity("", "north", "").
		Return(schema.CapacitySnapshot{TotalBeds: 500, ICUBeds: 100}, nil).Times(1)
	core.EXPECT().ListHospitals("", "north", "").
		Return([]schema.Hospital{{ID: hospitalID, Name: "North General"}}, nil).Times(1)
	m.EXPECT().RegionResourceStatus([]string{hospitalID.String()}).
		Return(schema.ResourceStatus{}, 20, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/predictions/region/:regionID", s.regionPrediction)

	req := httptest.NewRequest("GET", "/predictions/region/north", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var report schema.ForecastReport
	err := json.Unmarshal(w.Body.Bytes(), &report)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, report.Success, "wrong report status")
	assert.Equal(t, "North Province", report.RegionName)
	assert.Len(t, report.CaseForecast, 7)
	assert.Equal(t, "2026-01-11", report.CaseForecast[0].Date)
}

func TestRegionPredictionUnknownRegion(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      core,
		mongoStore: m,
	}

	m.EXPECT().RegionalTimeseries("atlantis", 30).
		Return([]schema.TimeSeriesPoint{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/predictions/region/:regionID", s.regionPrediction)

	req := httptest.NewRequest("GET", "/predictions/region/atlantis", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), resp.Code)
}

func TestHospitalPrediction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      core,
		mongoStore: m,
	}

	hospitalID := uuid.New()
	core.EXPECT().GetHospital(hospitalID).Return(&schema.Hospital{
		ID:        hospitalID,
		Name:      "North General",
		TotalBeds: 300,
		ICUBeds:   40,
	}, nil).Times(1)

	counts := []int{50, 55, 60, 65, 70, 75, 80}
	m.EXPECT().HospitalTimeseries(hospitalID.String(), 30).
		Return(testSeries("2026-01-01", counts, ""), nil).Times(1)
	m.EXPECT().LatestResourceSnapshot(hospitalID.String()).
		Return(&schema.ResourceSnapshot{VentilatorsAvailable: 15}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/predictions/hospital/:hospitalID", s.hospitalPrediction)

	req := httptest.NewRequest("GET", "/predictions/hospital/"+hospitalID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var report schema.ForecastReport
	err := json.Unmarshal(w.Body.Bytes(), &report)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, report.Success, "wrong report status")
	assert.Equal(t, "North General", report.RegionName)
	assert.Len(t, report.CaseForecast, 7)
}

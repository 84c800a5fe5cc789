package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/api/mocks"
	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/store"
)

const registerBody = `{
	"name": "North General",
	"city": "Northtown",
	"state": "north",
	"country": "Testland",
	"registration_number": "REG-001",
	"total_beds": 300,
	"icu_beds": 40
}`

func TestHospitalRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)

	s := Server{
		store:      core,
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	core.EXPECT().CreateHospital(gomock.Any()).Return(&schema.Hospital{
		ID:                 uuid.New(),
		Name:               "North General",
		RegistrationNumber: "REG-001",
		TotalBeds:          300,
		ICUBeds:            40,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/hospitals", s.hospitalRegister)

	req := httptest.NewRequest("POST", "/hospitals", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Hospital schema.Hospital `json:"hospital"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "North General", resp.Hospital.Name)
	assert.NotEqual(t, uuid.Nil, resp.Hospital.ID)
}

func TestHospitalRegisterDuplicate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockSurveillanceCore(ctl)

	s := Server{
		store:      core,
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	core.EXPECT().CreateHospital(gomock.Any()).
		Return(nil, store.ErrHospitalRegistered).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/hospitals", s.hospitalRegister)

	req := httptest.NewRequest("POST", "/hospitals", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1100), resp.Code)
}

func TestHospitalRegisterMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		store:      mocks.NewMockSurveillanceCore(ctl),
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/hospitals", s.hospitalRegister)

	req := httptest.NewRequest("POST", "/hospitals", strings.NewReader(`{"name": "No Region"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

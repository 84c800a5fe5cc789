package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/store"
)

// hospitalRegister registers a reporting facility
func (s *Server) hospitalRegister(c *gin.Context) {
	var req struct {
		Name               string  `json:"name" binding:"required"`
		City               string  `json:"city" binding:"required"`
		State              string  `json:"state" binding:"required"`
		Country            string  `json:"country" binding:"required"`
		Latitude           float64 `json:"latitude"`
		Longitude          float64 `json:"longitude"`
		RegistrationNumber string  `json:"registration_number" binding:"required"`
		TotalBeds          int     `json:"total_beds"`
		ICUBeds            int     `json:"icu_beds"`
	}

	if err := c.BindJSON(&req); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	hospital, err := s.store.CreateHospital(schema.Hospital{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		RegistrationNumber: req.RegistrationNumber,
		TotalBeds:          req.TotalBeds,
		ICUBeds:            req.ICUBeds,
	})
	if err == store.ErrHospitalRegistered {
		abortWithEncoding(c, http.StatusConflict, errorHospitalTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"hospital": hospital})
}

// hospitalList returns registered hospitals, optionally narrowed by region
func (s *Server) hospitalList(c *gin.Context) {
	hospitals, err := s.store.ListHospitals(
		c.Query("city"),
		c.Query("state"),
		c.Query("country"),
	)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"hospitals": hospitals})
}

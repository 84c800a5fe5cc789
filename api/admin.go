package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

func validRegionType(regionType string) bool {
	switch regionType {
	case schema.RegionTypeCountry, schema.RegionTypeState, schema.RegionTypeCity:
		return true
	}
	return false
}

// upsertRegionalSummary backfills one day of regional counts. Used by
// operators importing external surveillance feeds.
func (s *Server) upsertRegionalSummary(c *gin.Context) {
	var summary schema.RegionalSummary
	if err := c.BindJSON(&summary); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if summary.RegionID == "" || !validRegionType(summary.RegionType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if _, err := utils.ParseDay(summary.Date); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.UpsertRegionalSummary(summary); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// queryDays parses a trailing-window size from a query parameter, falling
// back to the given default on absent or unusable values.
func queryDays(c *gin.Context, name string, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || days <= 0 || days > 365 {
		return fallback
	}
	return days
}

// globalStats returns system-wide counters over a trailing window
func (s *Server) globalStats(c *gin.Context) {
	days := queryDays(c, "days", 30)

	stats, err := s.mongoStore.GlobalStats(days)
	if shouldInterupt(err, c) {
		return
	}

	capacity, err := s.store.TotalCapacity("", "", "")
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":     days,
		"stats":    stats,
		"capacity": capacity,
	})
}

// regionalData returns the newest summary of every region of a type
func (s *Server) regionalData(c *gin.Context) {
	regionType := c.DefaultQuery("region_type", "state")
	if !validRegionType(regionType) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	summaries, err := s.mongoStore.LatestRegionalSummaries(regionType)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"regions": summaries})
}

// hospitalStats returns one hospital's aggregate counters and latest
// resource snapshot
func (s *Server) hospitalStats(c *gin.Context) {
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

	days := queryDays(c, "days", 30)
	stats, err := s.mongoStore.HospitalStats(hospitalID.String(), days)
	if shouldInterupt(err, c) {
		return
	}

	snapshot, err := s.mongoStore.LatestResourceSnapshot(hospitalID.String())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hospital":  hospital,
		"days":      days,
		"stats":     stats,
		"resources": snapshot,
	})
}

package api

import (
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/pulmoguard/surveillance-api/external/inference"
	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

// uploadImages ingests a batch of chest X-ray images, classifies each one
// and folds the outcomes into the daily case summaries.
func (s *Server) uploadImages(c *gin.Context) {
	hospital := currentHospital(c)
	if hospital == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorHospitalNotFound)
		return
	}

	form, err := c.MultipartForm()
	if nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	files := form.File["images"]
	if 0 == len(files) {
		abortWithEncoding(c, http.StatusBadRequest, errorNoImageAttached)
		return
	}

	upload, err := s.store.CreateUpload(hospital.ID, c.PostForm("user_id"), len(files))
	if shouldInterupt(err, c) {
		return
	}

	metadata := schema.PatientMetadata{
		AgeRange:          c.PostForm("age_range"),
		Gender:            c.PostForm("gender"),
		VaccinationStatus: c.PostForm("vaccination_status"),
		Symptoms:          schema.SymptomList(form.Value["symptoms"]),
		Outcome:           c.PostForm("outcome"),
	}
	hasMetadata := metadata.AgeRange != "" || metadata.Gender != "" ||
		metadata.VaccinationStatus != "" || len(metadata.Symptoms) > 0 || metadata.Outcome != ""

	day := utils.FormatDay(time.Now().UTC())
	analyses := make([]schema.Analysis, 0, len(files))

	for _, file := range files {
		f, err := file.Open()
		if shouldInterupt(err, c) {
			return
		}
		image, err := ioutil.ReadAll(f)
		f.Close()
		if shouldInterupt(err, c) {
			return
		}

		prediction, err := s.inferenceClient.Predict(file.Filename, image)
		if nil != err {
			log.Errorf("image classification with error: %s", err)
			abortWithEncoding(c, http.StatusBadGateway, errorInferenceUnavailable, err)
			return
		}

		analysis := schema.Analysis{
			UploadID:         upload.ID,
			ImagePath:        file.Filename,
			AIPrediction:     prediction.Prediction,
			Confidence:       prediction.Confidence,
			Severity:         inference.SeverityForConfidence(prediction.Prediction, prediction.Confidence),
			ProcessingTimeMS: prediction.ProcessingTimeMS,
			ModelVersion:     prediction.ModelVersion,
			HeatmapPath:      prediction.HeatmapPath,
		}
		if err := s.store.CreateAnalysis(&analysis); shouldInterupt(err, c) {
			return
		}

		if hasMetadata {
			m := metadata
			m.AnalysisID = analysis.ID
			if err := s.store.CreatePatientMetadata(&m); shouldInterupt(err, c) {
				return
			}
		}

		if err := s.mongoStore.RecordCase(hospital.ID.String(), day, analysis); shouldInterupt(err, c) {
			return
		}
		if err := s.mongoStore.RecordRegionalCase(schema.RegionTypeCity, hospital.City, hospital.City, day, analysis); shouldInterupt(err, c) {
			return
		}
		if err := s.mongoStore.RecordRegionalCase(schema.RegionTypeState, hospital.State, hospital.State, day, analysis); shouldInterupt(err, c) {
			return
		}

		analyses = append(analyses, analysis)
	}

	if err := s.store.CompleteUpload(upload.ID); shouldInterupt(err, c) {
		return
	}
	upload.Status = schema.UploadStatusCompleted

	c.JSON(http.StatusOK, gin.H{
		"upload":   upload,
		"analyses": analyses,
	})
}

// listAnalyses returns the analyses of one of the hospital's uploads
func (s *Server) listAnalyses(c *gin.Context) {
	hospital := currentHospital(c)
	if hospital == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorHospitalNotFound)
		return
	}

	uploadID, err := uuid.Parse(c.Param("uploadID"))
	if nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	upload, err := s.store.GetUpload(uploadID)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusNotFound, errorUploadNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if upload.HospitalID != hospital.ID {
		abortWithEncoding(c, http.StatusNotFound, errorUploadNotFound)
		return
	}

	analyses, err := s.store.ListAnalyses(uploadID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload":   upload,
		"analyses": analyses,
	})
}

// reportResources records today's resource availability of the hospital
func (s *Server) reportResources(c *gin.Context) {
	hospital := currentHospital(c)
	if hospital == nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorHospitalNotFound)
		return
	}

	var req struct {
		ICUBedsAvailable     int     `json:"icu_beds_available"`
		VentilatorsAvailable int     `json:"ventilators_available"`
		OxygenSupplyDays     float64 `json:"oxygen_supply_days"`
		StaffAvailable       int     `json:"staff_available"`
	}
	if err := c.BindJSON(&req); nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.mongoStore.SaveResourceSnapshot(schema.ResourceSnapshot{
		HospitalID:           hospital.ID.String(),
		Date:                 utils.FormatDay(time.Now().UTC()),
		ICUBedsAvailable:     req.ICUBedsAvailable,
		VentilatorsAvailable: req.VentilatorsAvailable,
		OxygenSupplyDays:     req.OxygenSupplyDays,
		StaffAvailable:       req.StaffAvailable,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "ok"})
}

package inference_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulmoguard/surveillance-api/external/inference"
	"github.com/pulmoguard/surveillance-api/schema"
)

func TestPredict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)

		err := r.ParseMultipartForm(1 << 20)
		assert.Nil(t, err, "wrong multipart request")
		_, header, err := r.FormFile("image")
		assert.Nil(t, err, "missing image part")
		assert.Equal(t, "scan.png", header.Filename)

		b, _ := json.Marshal(inference.Prediction{
			Prediction:       schema.PredictionPneumonia,
			Confidence:       0.91,
			ModelVersion:     "resnet50-2.3",
			ProcessingTimeMS: 340,
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c := inference.New(ts.URL)
	p, err := c.Predict("scan.png", []byte("not-really-a-png"))
	assert.Nil(t, err, "wrong Predict")
	assert.Equal(t, schema.PredictionPneumonia, p.Prediction)
	assert.Equal(t, 0.91, p.Confidence)
	assert.Equal(t, "resnet50-2.3", p.ModelVersion)
}

func TestPredictServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := inference.New(ts.URL)
	_, err := c.Predict("scan.png", []byte("x"))
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := inference.New(ts.URL)
	assert.Nil(t, c.Health(), "wrong Health")
}

func TestSeverityForConfidence(t *testing.T) {
	assert.Equal(t, schema.CaseSeverityMild, inference.SeverityForConfidence(schema.PredictionPneumonia, 0.2))
	assert.Equal(t, schema.CaseSeverityModerate, inference.SeverityForConfidence(schema.PredictionPneumonia, 0.5))
	assert.Equal(t, schema.CaseSeveritySevere, inference.SeverityForConfidence(schema.PredictionPneumonia, 0.9))
	assert.Equal(t, "", inference.SeverityForConfidence(schema.PredictionNormal, 0.9))
}

func TestMockIsDeterministic(t *testing.T) {
	m := inference.NewMock()
	a, err := m.Predict("scan.png", []byte("same-bytes"))
	assert.Nil(t, err)
	b, err := m.Predict("scan.png", []byte("same-bytes"))
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}

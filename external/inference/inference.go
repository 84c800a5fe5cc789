package inference

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pulmoguard/surveillance-api/schema"
)

const (
	defaultURL     = "http://localhost:5500"
	requestTimeout = 30 * time.Second
)

var errUnexpectedStatus = fmt.Errorf("unexpected response status")

// Prediction is the classifier verdict for one chest X-ray image.
type Prediction struct {
	Prediction       string  `json:"prediction"`
	Confidence       float64 `json:"confidence"`
	ModelVersion     string  `json:"model_version"`
	ProcessingTimeMS int     `json:"processing_time_ms"`
	HeatmapPath      string  `json:"heatmap_path"`
}

// Inference is a client of the remote image classification service.
type Inference interface {
	Predict(filename string, image []byte) (*Prediction, error)
	Health() error
}

type inference struct {
	url    string
	client *http.Client
}

// New returns a client of the classification service. An empty url falls
// back to the local default.
func New(url string) Inference {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &inference{
		url:    u,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Predict submits one image and returns the classifier verdict.
func (i *inference) Predict(filename string, image []byte) (*Prediction, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if nil != err {
		return nil, err
	}
	if _, err := part.Write(image); nil != err {
		return nil, err
	}
	if err := writer.Close(); nil != err {
		return nil, err
	}

	resp, err := i.client.Post(fmt.Sprintf("%s/predict", i.url), writer.FormDataContentType(), body)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errUnexpectedStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var p Prediction
	if err := json.Unmarshal(d, &p); nil != err {
		return nil, err
	}
	return &p, nil
}

// Health checks whether the classification service is reachable.
func (i *inference) Health() error {
	resp, err := i.client.Get(fmt.Sprintf("%s/health", i.url))
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errUnexpectedStatus
	}
	return nil
}

// SeverityForConfidence maps classifier confidence onto a case severity. A
// normal verdict carries no severity.
func SeverityForConfidence(prediction string, confidence float64) string {
	if prediction != schema.PredictionPneumonia {
		return ""
	}
	switch {
	case confidence < 0.3:
		return schema.CaseSeverityMild
	case confidence < 0.7:
		return schema.CaseSeverityModerate
	default:
		return schema.CaseSeveritySevere
	}
}

type mockInference struct{}

// NewMock returns a deterministic stand-in classifier for environments
// without the model service. The verdict depends only on the image bytes.
func NewMock() Inference {
	return &mockInference{}
}

func (m *mockInference) Predict(filename string, image []byte) (*Prediction, error) {
	digest := sha256.Sum256(image)

	p := Prediction{
		Prediction:       schema.PredictionNormal,
		Confidence:       0.55 + float64(digest[1]%40)/100,
		ModelVersion:     "mock-1.0",
		ProcessingTimeMS: 12,
	}
	if digest[0]%2 == 0 {
		p.Prediction = schema.PredictionPneumonia
	}
	return &p, nil
}

func (m *mockInference) Health() error {
	return nil
}

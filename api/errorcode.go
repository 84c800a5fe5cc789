package api

import "github.com/pulmoguard/surveillance-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "invalid portal key",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrHospitalRegistered.Error(),
		1101: "hospital not found",
		1102: "upload not found",
		1103: "no image attached",

		1200: "not enough data to generate a forecast",
		1201: "no reported data for this region",

		1300: "image classification service unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidPortalKey           = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorHospitalTaken    = errorJSON(1100)
	errorHospitalNotFound = errorJSON(1101)
	errorUploadNotFound   = errorJSON(1102)
	errorNoImageAttached  = errorJSON(1103)

	errorForecastUnavailable = errorJSON(1200)
	errorRegionNotFound      = errorJSON(1201)

	errorInferenceUnavailable = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

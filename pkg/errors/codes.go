package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeValidation         ErrorCode = "COMMON_005"
	ErrCodeSerialization      ErrorCode = "COMMON_006"
	ErrCodeDatabaseError      ErrorCode = "COMMON_007"
	ErrCodeCacheError         ErrorCode = "COMMON_008"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_009"
	ErrCodeTimeout            ErrorCode = "COMMON_010"
	ErrCodeNotImplemented     ErrorCode = "COMMON_011"
)

// Clause engine error codes.
const (
	ErrCodeEmptyDocument    ErrorCode = "CLS_001"
	ErrCodeClauseTooLong    ErrorCode = "CLS_002"
	ErrCodeUnknownRiskLevel ErrorCode = "CLS_003"
)

// Analysis module error codes.
const (
	ErrCodeAnalysisNotFound   ErrorCode = "ANA_001"
	ErrCodeAnalysisPersist    ErrorCode = "ANA_002"
	ErrCodeAnalysisSerialized ErrorCode = "ANA_003"
)

// Aliases kept short for call-site readability.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// HTTPStatus maps an ErrorCode to the HTTP status code interface layers
// should respond with. Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrCodeBadRequest, ErrCodeValidation, ErrCodeEmptyDocument, ErrCodeClauseTooLong, ErrCodeUnknownRiskLevel:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeAnalysisNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

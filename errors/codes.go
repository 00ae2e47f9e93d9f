package errors

// ErrorCode identifies application error categories in responses and logs
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Meeting processing
	ErrorCode_MEETING_NOT_FOUND       ErrorCode = 2000
	ErrorCode_ACTION_ITEM_NOT_FOUND   ErrorCode = 2001
	ErrorCode_TRANSCRIPT_TOO_SHORT    ErrorCode = 2002
	ErrorCode_INVALID_MEETING_TYPE    ErrorCode = 2003
	ErrorCode_ANALYSIS_FAILED         ErrorCode = 2004
	ErrorCode_SUMMARY_FAILED          ErrorCode = 2005
	ErrorCode_INFERENCE_UNAVAILABLE   ErrorCode = 2006
	ErrorCode_MEETING_PROCESS_FAILED  ErrorCode = 2007

	// Database
	ErrorCode_DB_CONNECTION_FAILED   ErrorCode = 3000
	ErrorCode_DB_QUERY_FAILED        ErrorCode = 3001
	ErrorCode_DB_TRANSACTION_FAILED  ErrorCode = 3002
	ErrorCode_DB_CONSTRAINT_VIOLATED ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 4001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK: "HTTP_OK",

	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:  "INVALID_PAYLOAD",

	ErrorCode_MEETING_NOT_FOUND:      "MEETING_NOT_FOUND",
	ErrorCode_ACTION_ITEM_NOT_FOUND:  "ACTION_ITEM_NOT_FOUND",
	ErrorCode_TRANSCRIPT_TOO_SHORT:   "TRANSCRIPT_TOO_SHORT",
	ErrorCode_INVALID_MEETING_TYPE:   "INVALID_MEETING_TYPE",
	ErrorCode_ANALYSIS_FAILED:        "ANALYSIS_FAILED",
	ErrorCode_SUMMARY_FAILED:         "SUMMARY_FAILED",
	ErrorCode_INFERENCE_UNAVAILABLE:  "INFERENCE_UNAVAILABLE",
	ErrorCode_MEETING_PROCESS_FAILED: "MEETING_PROCESS_FAILED",

	ErrorCode_DB_CONNECTION_FAILED:   "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:  "DB_TRANSACTION_FAILED",
	ErrorCode_DB_CONSTRAINT_VIOLATED: "DB_CONSTRAINT_VIOLATED",

	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the stable name for an error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

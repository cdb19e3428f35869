package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthForbidden          ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidKind   ErrorCode = "CATEGORY_003"
	CategoryInvalidID     ErrorCode = "CATEGORY_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidDirection ErrorCode = "TRANSACTION_003"
	TransactionDuplicateCode    ErrorCode = "TRANSACTION_004"
	TransactionInvalidID        ErrorCode = "TRANSACTION_005"
)

// Supplier error codes (SUPPLIER_*)
const (
	SupplierNotFound      ErrorCode = "SUPPLIER_001"
	SupplierAlreadyExists ErrorCode = "SUPPLIER_002"
	SupplierInvalidID     ErrorCode = "SUPPLIER_003"
)

// Report error codes (REPORT_*)
const (
	ReportNotFound       ErrorCode = "REPORT_001"
	ReportInvalidWindow  ErrorCode = "REPORT_002"
	ReportInvalidFormat  ErrorCode = "REPORT_003"
	ReportFileMissing    ErrorCode = "REPORT_004"
	ReportGenerationFail ErrorCode = "REPORT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthForbidden:          "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidKind:   "Category kind must be business or personal",
	CategoryInvalidID:     "Invalid category ID format",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidDirection: "Transaction direction must be sent or received",
	TransactionDuplicateCode:    "A transaction with this M-Pesa code already exists",
	TransactionInvalidID:        "Invalid transaction ID format",

	// Supplier errors
	SupplierNotFound:      "Supplier not found",
	SupplierAlreadyExists: "A supplier with this name already exists",
	SupplierInvalidID:     "Invalid supplier ID format",

	// Report errors
	ReportNotFound:       "Report not found",
	ReportInvalidWindow:  "Report window must be weekly or monthly",
	ReportInvalidFormat:  "Report format must be pdf, csv or xlsx",
	ReportFileMissing:    "Report file is no longer available",
	ReportGenerationFail: "Report generation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Requested resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

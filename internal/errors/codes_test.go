package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Category Not Found",
			code:     CategoryNotFound,
			expected: "Category not found",
		},
		{
			name:     "Transaction Duplicate Code",
			code:     TransactionDuplicateCode,
			expected: "A transaction with this M-Pesa code already exists",
		},
		{
			name:     "Report Invalid Window",
			code:     ReportInvalidWindow,
			expected: "Report window must be weekly or monthly",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		AuthMissingToken,
		AuthExpiredToken,
		ValidationGeneral,
		CategoryNotFound,
		CategoryAlreadyExists,
		TransactionNotFound,
		TransactionDuplicateCode,
		SupplierNotFound,
		ReportNotFound,
		ReportInvalidWindow,
		SystemInternalError,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "expected %s to be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCodes tests validation of invalid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCodes() {
	invalidCodes := []ErrorCode{
		"BOGUS_001",
		"",
		"transaction_001",
	}

	for _, code := range invalidCodes {
		s.False(IsValidErrorCode(code), "expected %s to be invalid", code)
	}
}

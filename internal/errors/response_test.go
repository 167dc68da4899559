package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(RecurringNotFound, s.traceID)

	s.Equal("RECURRING_001", response.Error.Code)
	s.Equal("Recurring expense not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithDetails("amount: must be positive"),
		WithMessage("Bad recurring expense"),
	)

	s.Equal("Bad recurring expense", response.Error.Message)
	s.Equal([]string{"amount: must be positive"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"frequency": "unknown"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"frequency: unknown"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
	s.True(response.IsClientError())
}

func (s *ResponseTestSuite) TestWrapDatabaseError_HidesCause() {
	cause := errors.New("pq: connection refused")
	response, err := WrapDatabaseError(cause, s.traceID)

	s.Equal(cause, err)
	s.Equal(string(SystemDatabaseError), response.Error.Code)
	s.NotContains(response.Error.Message, "pq")
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	response, err := WrapSystemError(errors.New("boom"), s.traceID)

	s.Error(err)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ExpenseNotFound, s.traceID)

	body, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal("EXPENSE_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidFrequency, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{SummaryNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_001", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(UpcomingNotFound, s.traceID)
	s.Equal("[UPCOMING_001] Upcoming payment not found (trace: "+s.traceID+")", response.String())
}

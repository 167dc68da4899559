package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
)

const testUserID = "user-7f3a"

var fixedNow = time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newRequestContext builds a context for method/path with an optional JSON
// body. An empty userID leaves the request unauthenticated.
func newRequestContext(e *echo.Echo, method, path string, body interface{}, userID string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func decodeErrorCode(rec *httptest.ResponseRecorder) (string, []string) {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp.Error.Code, resp.Error.Details
}

func fixedClock() time.Time { return fixedNow }

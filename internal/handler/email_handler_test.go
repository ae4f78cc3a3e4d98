package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-billing-svc/internal/mailer"
	"society-billing-svc/pkg/logger"
)

func emailRouter(m mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewEmailHandler(m, logger.NewLogger("error", "text"))
	router.GET("/email/config", h.CheckConfig)
	router.POST("/email/test", h.SendTestEmail)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendTestEmail_RejectsInvalidAddressBeforeSending(t *testing.T) {
	rec := mailer.NewRecorder()
	router := emailRouter(rec)

	w := postJSON(router, "/email/test", gin.H{"email": "not-an-address"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.Sent, "relay must not be contacted for an invalid address")
}

func TestSendTestEmail_RequiresAddress(t *testing.T) {
	rec := mailer.NewRecorder()
	router := emailRouter(rec)

	w := postJSON(router, "/email/test", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.Sent)
}

func TestSendTestEmail_RefusesOnConfigIssues(t *testing.T) {
	rec := mailer.NewRecorder()
	rec.Check = &mailer.ConfigCheck{
		HasIssues: true,
		Issues:    []string{"EMAIL_HOST is missing"},
	}
	router := emailRouter(rec)

	w := postJSON(router, "/email/test", gin.H{"email": "admin@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.Sent, "known-bad configuration must not reach the relay")
}

func TestSendTestEmail_SendsFixtureBill(t *testing.T) {
	rec := mailer.NewRecorder()
	router := emailRouter(rec)

	w := postJSON(router, "/email/test", gin.H{"email": "admin@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, rec.Sent, 1)
	assert.Equal(t, "admin@example.com", rec.Sent[0].Resident.Email)
	assert.Equal(t, "june", rec.Sent[0].Bill.Month)
}

func TestSendTestEmail_RelayFailureIsBadGateway(t *testing.T) {
	rec := mailer.NewRecorder()
	rec.Result = &mailer.SendResult{Success: false, Reason: mailer.ReasonAuth, Message: "authentication failed"}
	router := emailRouter(rec)

	w := postJSON(router, "/email/test", gin.H{"email": "admin@example.com"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCheckConfigEndpoint(t *testing.T) {
	rec := mailer.NewRecorder()
	rec.Check = &mailer.ConfigCheck{
		HasIssues: true,
		Issues:    []string{"EMAIL_FROM is missing"},
	}
	router := emailRouter(rec)

	req := httptest.NewRequest(http.MethodGet, "/email/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			HasIssues bool     `json:"hasIssues"`
			Issues    []string `json:"issues"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.HasIssues)
	assert.Contains(t, resp.Data.Issues, "EMAIL_FROM is missing")
}

/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-consent-state-service/internal/system/config"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
)

const (
	testJWTSecret = "handler-test-secret"
	testAudience  = "consent-state-service"
)

func TestMain(m *testing.M) {

	_ = log.Init("ERROR")

	dir, err := os.MkdirTemp("", "consent-handler-test-*")
	if err != nil {
		panic(err)
	}
	bundledPath := filepath.Join(dir, "consents.json")
	bundled := `[
		{"consentId":"rsch.send.usage.stat","version":"1.0.0","name":"Send anonymous usage statistics"},
		{"consentId":"rsch.send.crash.report","version":"1.0.0","name":"Send crash reports"}
	]`
	if err := os.WriteFile(bundledPath, []byte(bundled), 0644); err != nil {
		panic(err)
	}

	config.OverrideCSSRuntime(config.Config{
		Auth: config.AuthConfig{
			JWTSecret: testJWTSecret,
			Audience:  testAudience,
		},
		Consent: config.ConsentConfig{
			DataDir:     dir,
			BundledFile: bundledPath,
		},
	})

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestMux() *http.ServeMux {

	h := NewConsentHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /consents", h.GetConsents)
	mux.HandleFunc("PUT /consents", h.RecordUserChoices)
	mux.HandleFunc("GET /consents/{id}/permission", h.GetPermission)
	mux.HandleFunc("POST /consents/server-updates", h.ApplyServerUpdate)
	return mux
}

func mintToken(t *testing.T, scope string) string {

	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "test-user",
		"aud":   testAudience,
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, token, body string) *httptest.ResponseRecorder {

	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

// ---------------------------------------------------------------------------
// Authentication and authorization
// ---------------------------------------------------------------------------

func TestGetConsents_MissingToken(t *testing.T) {
	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", "", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetConsents_GarbageToken(t *testing.T) {
	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetConsents_ExpiredToken(t *testing.T) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"aud":   testAudience,
		"scope": "consent:view",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", signed, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetConsents_WrongSecret(t *testing.T) {

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"aud":   testAudience,
		"scope": "consent:view",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", signed, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetConsents_WrongScope(t *testing.T) {
	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", mintToken(t, "consent:update"), "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestApplyServerUpdate_RequiresAdminScope(t *testing.T) {
	recorder := doRequest(t, newTestMux(), http.MethodPost, "/consents/server-updates",
		mintToken(t, "consent:view consent:update"), "[]")
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

// ---------------------------------------------------------------------------
// GET /consents
// ---------------------------------------------------------------------------

func TestGetConsents_ReturnsDefinitions(t *testing.T) {

	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents", mintToken(t, "consent:view"), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Consents []struct {
			ConsentID string `json:"consentId"`
			Version   string `json:"version"`
			Name      string `json:"name"`
			Accepted  bool   `json:"accepted"`
		} `json:"consents"`
		NeedsReconfirmation bool `json:"needsReconfirmation"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Consents, 2)
	assert.Equal(t, "rsch.send.usage.stat", response.Consents[0].ConsentID)
}

// ---------------------------------------------------------------------------
// PUT /consents and GET /consents/{id}/permission
// ---------------------------------------------------------------------------

func TestRecordUserChoices_ThenQueryPermission(t *testing.T) {

	mux := newTestMux()
	body := `[{"consentId":"rsch.send.usage.stat","version":"1.0.0","accepted":true}]`
	recorder := doRequest(t, mux, http.MethodPut, "/consents", mintToken(t, "consent:update"), body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"recorded"}`, recorder.Body.String())

	recorder = doRequest(t, mux, http.MethodGet, "/consents/rsch.send.usage.stat/permission",
		mintToken(t, "consent:view"), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		ConsentID  string `json:"consentId"`
		Permission string `json:"permission"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "rsch.send.usage.stat", response.ConsentID)
	assert.Equal(t, "YES", response.Permission)
}

func TestGetPermission_UnansweredConsent(t *testing.T) {

	recorder := doRequest(t, newTestMux(), http.MethodGet, "/consents/rsch.send.crash.report/permission",
		mintToken(t, "consent:view"), "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "UNDEFINED")
}

func TestRecordUserChoices_MalformedBody(t *testing.T) {

	recorder := doRequest(t, newTestMux(), http.MethodPut, "/consents",
		mintToken(t, "consent:update"), "{not json")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRecordUserChoices_MissingConsentID(t *testing.T) {

	recorder := doRequest(t, newTestMux(), http.MethodPut, "/consents",
		mintToken(t, "consent:update"), `[{"version":"1.0.0","accepted":true}]`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// ---------------------------------------------------------------------------
// POST /consents/server-updates
// ---------------------------------------------------------------------------

func TestApplyServerUpdate_AcceptsPayload(t *testing.T) {

	mux := newTestMux()
	payload := `[{"consentId":"rsch.send.crash.report","version":"1.2.0","name":"Send crash reports"}]`
	recorder := doRequest(t, mux, http.MethodPost, "/consents/server-updates",
		mintToken(t, "consent:admin"), payload)
	require.Equal(t, http.StatusAccepted, recorder.Code)
	assert.JSONEq(t, `{"status":"accepted"}`, recorder.Body.String())

	recorder = doRequest(t, mux, http.MethodGet, "/consents", mintToken(t, "consent:view"), "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"1.2.0"`)
}

func TestApplyServerUpdate_GarbagePayloadStillAccepted(t *testing.T) {

	recorder := doRequest(t, newTestMux(), http.MethodPost, "/consents/server-updates",
		mintToken(t, "consent:admin"), "garbage")
	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

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

package client

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wso2/identity-consent-state-service/internal/system/config"
	errors2 "github.com/wso2/identity-consent-state-service/internal/system/errors"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
)

const (
	fetchTimeout     = 30 * time.Second
	maxResponseBytes = 1 << 20
)

// ConsentUpdateClient fetches the consents JSON from the update server.
// The payload is handed to the consent service as an opaque string; parsing
// and reconciliation happen in the store.
type ConsentUpdateClient struct {
	URL        string
	HTTPClient *http.Client
}

// NewConsentUpdateClient creates a client for the configured update endpoint.
func NewConsentUpdateClient(cfg config.Config) *ConsentUpdateClient {

	log.GetLogger().Info("Creating consent update client for: " + cfg.UpdateCheck.URL)
	return &ConsentUpdateClient{
		URL:        cfg.UpdateCheck.URL,
		HTTPClient: &http.Client{Timeout: fetchTimeout},
	}
}

// FetchConsentUpdates downloads the current server consents payload.
func (c *ConsentUpdateClient) FetchConsentUpdates() (string, error) {

	resp, err := c.HTTPClient.Get(c.URL)
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SERVER_UPDATE.Code,
			Message:     errors2.FETCH_SERVER_UPDATE.Message,
			Description: "Request to consent update endpoint failed.",
		}, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SERVER_UPDATE.Code,
			Message:     errors2.FETCH_SERVER_UPDATE.Message,
			Description: fmt.Sprintf("Consent update endpoint returned status %d.", resp.StatusCode),
		}, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SERVER_UPDATE.Code,
			Message:     errors2.FETCH_SERVER_UPDATE.Message,
			Description: "Failed to read consent update response.",
		}, err)
	}
	return string(body), nil
}

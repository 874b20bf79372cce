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
	"io"
	"net/http"

	consentModel "github.com/wso2/identity-consent-state-service/internal/consent/model"
	"github.com/wso2/identity-consent-state-service/internal/consent/provider"
	"github.com/wso2/identity-consent-state-service/internal/system/constants"
	"github.com/wso2/identity-consent-state-service/internal/system/errors"
	"github.com/wso2/identity-consent-state-service/internal/system/utils"
)

// maxServerUpdateBytes bounds the server-update payload size.
const maxServerUpdateBytes = 1 << 20

type ConsentHandler struct{}

func NewConsentHandler() *ConsentHandler {
	return &ConsentHandler{}
}

// GetConsents handles GET /consents
func (h *ConsentHandler) GetConsents(w http.ResponseWriter, r *http.Request) {

	err := utils.AuthnAndAuthz(r, constants.ScopeConsentView)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	service := provider.NewConsentProvider().GetConsentService()
	consents, err := service.GetConsents()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, consents)
}

// RecordUserChoices handles PUT /consents
func (h *ConsentHandler) RecordUserChoices(w http.ResponseWriter, r *http.Request) {

	err := utils.AuthnAndAuthz(r, constants.ScopeConsentUpdate)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var choices []consentModel.UserChoice
	if err := json.NewDecoder(r.Body).Decode(&choices); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.RECORD_CHOICES_BAD_REQUEST.Code,
			Message:     errors.RECORD_CHOICES_BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "user choices"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewConsentProvider().GetConsentService()
	if err := service.RecordUserChoices(choices); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// GetPermission handles GET /consents/{id}/permission
func (h *ConsentHandler) GetPermission(w http.ResponseWriter, r *http.Request) {

	err := utils.AuthnAndAuthz(r, constants.ScopeConsentView)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	consentId := r.PathValue("id")
	service := provider.NewConsentProvider().GetConsentService()
	permission, err := service.QueryPermission(consentId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, permission)
}

// ApplyServerUpdate handles POST /consents/server-updates
//
// The payload is the raw JSON array fetched from the consents server.
// Reconciliation is best-effort: the response is 202 regardless of whether
// anything changed, and parse failures never surface to the caller.
func (h *ConsentHandler) ApplyServerUpdate(w http.ResponseWriter, r *http.Request) {

	err := utils.AuthnAndAuthz(r, constants.ScopeConsentAdmin)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxServerUpdateBytes))
	if err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Failed to read server update payload.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewConsentProvider().GetConsentService()
	service.ApplyServerUpdate(string(payload))

	utils.WriteJSONResponse(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

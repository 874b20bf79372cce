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

package service

import (
	"net/http"

	model "github.com/wso2/identity-consent-state-service/internal/consent/model"
	"github.com/wso2/identity-consent-state-service/internal/consent/store"
	errors2 "github.com/wso2/identity-consent-state-service/internal/system/errors"
)

// ConsentServiceInterface defines the service interface.
type ConsentServiceInterface interface {
	GetConsents() (*model.ConsentListResponse, error)
	QueryPermission(id string) (*model.PermissionResponse, error)
	RecordUserChoices(choices []model.UserChoice) error
	ApplyServerUpdate(payload string)
}

// ConsentService is the default implementation.
type ConsentService struct {
	store *store.ConsentStateStore
}

// GetConsentService returns the service over the process-wide store.
func GetConsentService() ConsentServiceInterface {
	return &ConsentService{store: store.GetConsentStateStore()}
}

// NewConsentService returns a service over an explicit store instance.
func NewConsentService(st *store.ConsentStateStore) ConsentServiceInterface {
	return &ConsentService{store: st}
}

// GetConsents lists all active consents with the user's answers applied.
func (cs *ConsentService) GetConsents() (*model.ConsentListResponse, error) {

	definitions, needsReconfirmation := cs.store.ListConsents()
	consents := make([]model.ConsentAPI, 0, len(definitions))
	for _, definition := range definitions {
		consents = append(consents, model.ConsentAPI{
			ConsentID: definition.ID,
			Version:   definition.Version,
			Name:      definition.Name,
			Accepted:  definition.Accepted,
		})
	}
	return &model.ConsentListResponse{
		Consents:            consents,
		NeedsReconfirmation: needsReconfirmation,
	}, nil
}

// QueryPermission answers whether the given consent is granted.
func (cs *ConsentService) QueryPermission(id string) (*model.PermissionResponse, error) {

	if id == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_ID_REQUIRED.Code,
			Message:     errors2.CONSENT_ID_REQUIRED.Message,
			Description: "Consent id is required to query the permission.",
		}, http.StatusBadRequest)
	}
	return &model.PermissionResponse{
		ConsentID:  id,
		Permission: cs.store.QueryPermission(id),
	}, nil
}

// RecordUserChoices stores the user's explicit answers.
func (cs *ConsentService) RecordUserChoices(choices []model.UserChoice) error {

	for _, choice := range choices {
		if choice.ConsentID == "" {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.RECORD_CHOICES_BAD_REQUEST.Code,
				Message:     errors2.RECORD_CHOICES_BAD_REQUEST.Message,
				Description: "Every choice requires a consentId.",
			}, http.StatusBadRequest)
		}
	}
	cs.store.RecordUserChoices(choices)
	return nil
}

// ApplyServerUpdate reconciles a server-pushed payload. Best-effort by
// contract; failures are logged inside the store and never surfaced.
func (cs *ConsentService) ApplyServerUpdate(payload string) {
	cs.store.ApplyServerUpdate(payload)
}

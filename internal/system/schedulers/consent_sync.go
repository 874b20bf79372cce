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

package schedulers

import (
	"time"

	"github.com/wso2/identity-consent-state-service/internal/consent/provider"
	"github.com/wso2/identity-consent-state-service/internal/system/client"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
)

// StartConsentSyncScheduler starts the periodic consent update-check job.
// Failures are logged and never propagated; the next tick retries.
func StartConsentSyncScheduler(updateClient *client.ConsentUpdateClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup
	syncConsents(updateClient)

	for range ticker.C {
		syncConsents(updateClient)
	}
}

// syncConsents fetches the server consents payload and reconciles it into
// the local consent state.
func syncConsents(updateClient *client.ConsentUpdateClient) {
	logger := log.GetLogger()

	payload, err := updateClient.FetchConsentUpdates()
	if err != nil {
		logger.Error("Failed to fetch consent updates from server", log.Error(err))
		return
	}

	consentService := provider.NewConsentProvider().GetConsentService()
	consentService.ApplyServerUpdate(payload)
	logger.Debug("Consent server update applied")
}

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

package store

import (
	model "github.com/wso2/identity-consent-state-service/internal/consent/model"
)

// mergeDefaults applies server update records onto the definition set. A
// record replaces the current definition only when it is strictly newer in
// version, toggles the deleted flag, or the id is not defined yet. When a
// payload carries the same id more than once, the last record wins.
// Returns whether the set changed.
func mergeDefaults(base map[string]model.ConsentDefinition, updates []model.ConsentAttributes) bool {

	changed := false
	for _, update := range updates {
		incoming := model.DefinitionFromAttributes(update)
		current, ok := base[incoming.ID]
		if !ok || model.VersionIsNewer(incoming.Version, current.Version) || incoming.Deleted != current.Deleted {
			base[incoming.ID] = incoming
			changed = true
		}
	}
	return changed
}

// mergeConfirmations applies server update records onto the confirmation
// set. Only existing confirmations are eligible: a record overwrites one
// when its version is not older than the current version and its acceptance
// time is strictly later. Both comparisons are strict enough to make
// replaying the same payload a no-op. Returns whether the set changed.
func mergeConfirmations(base map[string]model.ConfirmedConsent, updates []model.ConsentAttributes) bool {

	changed := false
	for _, update := range updates {
		current, ok := base[update.ConsentID]
		if !ok {
			continue
		}
		if !model.VersionIsOlder(update.Version, current.Version) && current.AcceptanceTime < update.AcceptanceTime {
			base[update.ConsentID] = model.ConfirmedConsent{
				ID:             update.ConsentID,
				Version:        update.Version,
				Accepted:       update.Accepted,
				AcceptanceTime: update.AcceptanceTime,
			}
			changed = true
		}
	}
	return changed
}

/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	model "github.com/wso2/identity-consent-state-service/internal/consent/model"
)

func definitionSet(defs ...model.ConsentDefinition) map[string]model.ConsentDefinition {
	result := make(map[string]model.ConsentDefinition, len(defs))
	for _, d := range defs {
		result[d.ID] = d
	}
	return result
}

// ---------------------------------------------------------------------------
// mergeDefaults
// ---------------------------------------------------------------------------

func TestMergeDefaults_AddsUnknownDefinition(t *testing.T) {
	base := definitionSet()
	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Name: "Stats"},
	})
	assert.True(t, changed)
	require.Contains(t, base, "stat")
	assert.Equal(t, "Stats", base["stat"].Name)
}

func TestMergeDefaults_StrictlyNewerVersionWins(t *testing.T) {
	base := definitionSet(model.ConsentDefinition{ID: "stat", Version: "1.0.0", Name: "Stats"})

	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.1.0", Name: "Stats v1.1"},
	})
	assert.True(t, changed)
	assert.Equal(t, "1.1.0", base["stat"].Version)
}

func TestMergeDefaults_OlderVersionIgnored(t *testing.T) {
	base := definitionSet(model.ConsentDefinition{ID: "stat", Version: "2.0.0", Name: "Stats"})

	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Name: "Old stats"},
	})
	assert.False(t, changed)
	assert.Equal(t, "2.0.0", base["stat"].Version)
	assert.Equal(t, "Stats", base["stat"].Name)
}

func TestMergeDefaults_EqualVersionIgnored(t *testing.T) {
	base := definitionSet(model.ConsentDefinition{ID: "stat", Version: "1.0.0", Name: "Stats"})

	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Name: "Renamed"},
	})
	assert.False(t, changed)
	assert.Equal(t, "Stats", base["stat"].Name)
}

func TestMergeDefaults_DeletedToggleOverridesVersion(t *testing.T) {
	base := definitionSet(model.ConsentDefinition{ID: "stat", Version: "2.0.0"})

	// Same (even older) version, but deleted flag flips: record wins.
	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Deleted: true},
	})
	assert.True(t, changed)
	assert.True(t, base["stat"].Deleted)
}

func TestMergeDefaults_Idempotent(t *testing.T) {
	base := definitionSet(model.ConsentDefinition{ID: "stat", Version: "1.0.0"})
	updates := []model.ConsentAttributes{
		{ConsentID: "stat", Version: "2.0.0", Name: "Stats v2"},
		{ConsentID: "crash", Version: "1.0.0", Name: "Crash"},
	}

	assert.True(t, mergeDefaults(base, updates))
	assert.False(t, mergeDefaults(base, updates), "replaying the payload must not change anything")
}

func TestMergeDefaults_LastRecordInPayloadWins(t *testing.T) {
	base := definitionSet()
	changed := mergeDefaults(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "3.0.0", Name: "First"},
		{ConsentID: "stat", Version: "4.0.0", Name: "Second"},
	})
	assert.True(t, changed)
	assert.Equal(t, "Second", base["stat"].Name)
	assert.Equal(t, "4.0.0", base["stat"].Version)
}

// ---------------------------------------------------------------------------
// mergeConfirmations
// ---------------------------------------------------------------------------

func confirmationSet(confs ...model.ConfirmedConsent) map[string]model.ConfirmedConsent {
	result := make(map[string]model.ConfirmedConsent, len(confs))
	for _, c := range confs {
		result[c.ID] = c
	}
	return result
}

func TestMergeConfirmations_NeverCreatesNewRecords(t *testing.T) {
	base := confirmationSet()
	changed := mergeConfirmations(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 100},
	})
	assert.False(t, changed)
	assert.Empty(t, base)
}

func TestMergeConfirmations_LaterTimestampSameVersionWins(t *testing.T) {
	base := confirmationSet(model.ConfirmedConsent{ID: "stat", Version: "1.0.0", Accepted: false, AcceptanceTime: 100})

	changed := mergeConfirmations(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 200},
	})
	assert.True(t, changed)
	assert.True(t, base["stat"].Accepted)
	assert.Equal(t, int64(200), base["stat"].AcceptanceTime)
}

func TestMergeConfirmations_EqualTimestampIgnored(t *testing.T) {
	base := confirmationSet(model.ConfirmedConsent{ID: "stat", Version: "1.0.0", Accepted: false, AcceptanceTime: 100})

	changed := mergeConfirmations(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 100},
	})
	assert.False(t, changed)
	assert.False(t, base["stat"].Accepted)
}

func TestMergeConfirmations_OlderVersionIgnoredEvenIfLater(t *testing.T) {
	base := confirmationSet(model.ConfirmedConsent{ID: "stat", Version: "2.0.0", Accepted: false, AcceptanceTime: 100})

	changed := mergeConfirmations(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 500},
	})
	assert.False(t, changed)
	assert.Equal(t, "2.0.0", base["stat"].Version)
}

func TestMergeConfirmations_NewerVersionAndLaterTimestampWins(t *testing.T) {
	base := confirmationSet(model.ConfirmedConsent{ID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 100})

	changed := mergeConfirmations(base, []model.ConsentAttributes{
		{ConsentID: "stat", Version: "2.0.0", Accepted: false, AcceptanceTime: 300},
	})
	assert.True(t, changed)
	assert.Equal(t, "2.0.0", base["stat"].Version)
	assert.False(t, base["stat"].Accepted)
	assert.Equal(t, int64(300), base["stat"].AcceptanceTime)
}

func TestMergeConfirmations_Idempotent(t *testing.T) {
	base := confirmationSet(model.ConfirmedConsent{ID: "stat", Version: "1.0.0", Accepted: false, AcceptanceTime: 100})
	updates := []model.ConsentAttributes{
		{ConsentID: "stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 200},
	}

	assert.True(t, mergeConfirmations(base, updates))
	assert.False(t, mergeConfirmations(base, updates), "replaying the payload must not change anything")
}

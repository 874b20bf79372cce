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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ExternalString / ConfirmedConsentFromString
// ---------------------------------------------------------------------------

func TestExternalString_Accepted(t *testing.T) {
	c := ConfirmedConsent{ID: "rsch.send.usage.stat", Version: "1.0.0", Accepted: true, AcceptanceTime: 1700000000000}
	assert.Equal(t, "rsch.send.usage.stat=1.0.0:1:1700000000000", c.ExternalString())
}

func TestExternalString_Declined(t *testing.T) {
	c := ConfirmedConsent{ID: "stat", Version: "2.1.0", Accepted: false, AcceptanceTime: 42}
	assert.Equal(t, "stat=2.1.0:0:42", c.ExternalString())
}

func TestConfirmedConsentFromString_RoundTrip(t *testing.T) {
	original := ConfirmedConsent{ID: "stat", Version: "1.2.3", Accepted: true, AcceptanceTime: 1234567890}
	parsed, ok := ConfirmedConsentFromString(original.ExternalString())
	require.True(t, ok)
	assert.Equal(t, original, parsed)
}

func TestConfirmedConsentFromString_TrimsWhitespace(t *testing.T) {
	parsed, ok := ConfirmedConsentFromString("  stat=1.0.0:0:7  ")
	require.True(t, ok)
	assert.Equal(t, "stat", parsed.ID)
	assert.False(t, parsed.Accepted)
}

func TestConfirmedConsentFromString_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"stat",
		"stat=1.0.0:1",
		"stat=1.0.0:1:notanumber",
		"stat=1.0.0:maybe:7",
		"=1.0.0:1:7",
	}
	for _, record := range malformed {
		_, ok := ConfirmedConsentFromString(record)
		assert.False(t, ok, "record %q should not parse", record)
	}
}

// ---------------------------------------------------------------------------
// Derive
// ---------------------------------------------------------------------------

func TestDerive_DoesNotMutateOriginal(t *testing.T) {
	base := ConsentDefinition{ID: "stat", Version: "1.0.0", Name: "Stats", Accepted: false}
	derived := base.Derive(true)
	assert.True(t, derived.Accepted)
	assert.False(t, base.Accepted)
	assert.Equal(t, base.ID, derived.ID)
	assert.Equal(t, base.Version, derived.Version)
}

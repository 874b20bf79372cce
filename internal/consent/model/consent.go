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

package model

// Permission is the externally observable answer to "is consent X granted".
// UNDEFINED means no confirmed decision exists, or the definition is
// deleted or was never defined.
type Permission string

const (
	PermissionYes       Permission = "YES"
	PermissionNo        Permission = "NO"
	PermissionUndefined Permission = "UNDEFINED"
)

// ConsentAttributes is the wire record shared by the bundled resource, the
// cached-defaults file and server update payloads. Acceptance fields are
// only meaningful on server update records.
type ConsentAttributes struct {
	ConsentID      string `json:"consentId"`
	Version        string `json:"version"`
	Name           string `json:"name"`
	Accepted       bool   `json:"accepted"`
	Deleted        bool   `json:"deleted"`
	AcceptanceTime int64  `json:"acceptanceTime,omitempty"`
}

// ConsentDefinition is the canonical description of a question the
// application may ask the user. Definitions are soft-deleted, never removed,
// so historical confirmation records stay meaningful.
type ConsentDefinition struct {
	ID       string
	Version  string
	Name     string
	Accepted bool
	Deleted  bool
}

// DefinitionFromAttributes builds a definition from its wire form.
func DefinitionFromAttributes(attrs ConsentAttributes) ConsentDefinition {
	return ConsentDefinition{
		ID:       attrs.ConsentID,
		Version:  attrs.Version,
		Name:     attrs.Name,
		Accepted: attrs.Accepted,
		Deleted:  attrs.Deleted,
	}
}

// ToAttributes converts the definition back to its wire form.
func (d ConsentDefinition) ToAttributes() ConsentAttributes {
	return ConsentAttributes{
		ConsentID: d.ID,
		Version:   d.Version,
		Name:      d.Name,
		Accepted:  d.Accepted,
		Deleted:   d.Deleted,
	}
}

// Derive produces a copy of the definition with a different acceptance flag.
// The definition itself stays immutable once loaded.
func (d ConsentDefinition) Derive(accepted bool) ConsentDefinition {
	derived := d
	derived.Accepted = accepted
	return derived
}

// UserChoice is a single entry of a record-user-choices request: the consent
// id, the definition version the user was shown, and the answer given.
type UserChoice struct {
	ConsentID string `json:"consentId"`
	Version   string `json:"version"`
	Accepted  bool   `json:"accepted"`
}

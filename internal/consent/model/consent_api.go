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

// ConsentAPI is the API representation of a consent definition combined
// with the user's confirmation, if any.
type ConsentAPI struct {
	ConsentID string `json:"consentId"`
	Version   string `json:"version"`
	Name      string `json:"name"`
	Accepted  bool   `json:"accepted"`
}

// ConsentListResponse is the response of the list-consents API. The
// NeedsReconfirmation flag tells the settings UI whether to prompt the user.
type ConsentListResponse struct {
	Consents            []ConsentAPI `json:"consents"`
	NeedsReconfirmation bool         `json:"needsReconfirmation"`
}

// PermissionResponse is the response of the query-permission API.
type PermissionResponse struct {
	ConsentID  string     `json:"consentId"`
	Permission Permission `json:"permission"`
}

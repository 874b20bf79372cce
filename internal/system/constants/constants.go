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

package constants

// ContextKey is the type used for request-scoped context values.
type ContextKey string

const (
	TraceIDContextKey ContextKey = "traceId"
)

const (
	// ApiBasePath is the base path for all consent APIs.
	ApiBasePath = "/api/v1"

	// StatisticsConsentID is the well-known consent id queried by the
	// telemetry subsystem to decide whether usage data may be sent.
	StatisticsConsentID = "rsch.send.usage.stat"
)

const (
	// DefaultConsentsRelPath is the cached-defaults file, relative to the data directory.
	DefaultConsentsRelPath = "consentOptions/cached"

	// ConfirmedConsentsRelPath is the confirmations file, relative to the data directory.
	ConfirmedConsentsRelPath = "consentOptions/accepted"

	// BundledConsentsFile is the read-only definition set shipped with the service.
	BundledConsentsFile = "resources/consents.json"
)

// Scopes required per consent operation.
const (
	ScopeConsentView   = "consent:view"
	ScopeConsentUpdate = "consent:update"
	ScopeConsentAdmin  = "consent:admin"
)

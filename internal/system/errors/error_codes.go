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

package errors

const errorPrefix = "CSS-"

var (
	// Server error codes

	LOAD_DEFAULT_CONSENTS = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while loading default consents.",
	}

	LOAD_CONFIRMED_CONSENTS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while loading confirmed consents.",
	}

	SAVE_DEFAULT_CONSENTS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while persisting default consents.",
	}

	SAVE_CONFIRMED_CONSENTS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while persisting confirmed consents.",
	}

	APPLY_SERVER_UPDATE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while applying server consent update.",
	}

	FETCH_SERVER_UPDATE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching server consent update.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while parsing the token.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid request.",
	}

	CONSENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "11002",
		Message: "Consent not found.",
	}

	CONSENT_ID_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Consent id is required.",
	}

	RECORD_CHOICES_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Invalid user choices payload.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Unauthorized request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Forbidden request.",
	}
)

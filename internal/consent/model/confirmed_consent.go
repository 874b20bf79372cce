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

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfirmedConsent is a recorded user answer to a consent definition, tied
// to the definition version shown at the time of asking.
type ConfirmedConsent struct {
	ID             string
	Version        string
	Accepted       bool
	AcceptanceTime int64
}

// ExternalString serializes the confirmation as id=version:accepted:timestamp,
// with accepted encoded as 1 or 0. Records are joined with ";" on disk.
func (c ConfirmedConsent) ExternalString() string {
	accepted := "0"
	if c.Accepted {
		accepted = "1"
	}
	return fmt.Sprintf("%s=%s:%s:%d", c.ID, c.Version, accepted, c.AcceptanceTime)
}

// ConfirmedConsentFromString parses a single external record. Records that
// do not match the expected shape are reported as not ok and skipped by the
// caller, matching the tolerant load behavior of the confirmations file.
func ConfirmedConsentFromString(record string) (ConfirmedConsent, bool) {
	record = strings.TrimSpace(record)
	idAndRest := strings.SplitN(record, "=", 2)
	if len(idAndRest) != 2 || idAndRest[0] == "" {
		return ConfirmedConsent{}, false
	}
	parts := strings.Split(idAndRest[1], ":")
	if len(parts) != 3 {
		return ConfirmedConsent{}, false
	}
	if parts[1] != "0" && parts[1] != "1" {
		return ConfirmedConsent{}, false
	}
	stamp, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return ConfirmedConsent{}, false
	}
	return ConfirmedConsent{
		ID:             idAndRest[0],
		Version:        parts[0],
		Accepted:       parts[1] == "1",
		AcceptanceTime: stamp,
	}, true
}

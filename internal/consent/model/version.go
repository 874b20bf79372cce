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
	"strings"

	"github.com/Masterminds/semver/v3"
)

var zeroVersion = semver.New(0, 0, 0, "", "")

// parseVersion parses a major.minor.patch version string. Strings that do
// not parse compare as 0.0.0, so malformed data can never look newer than
// an existing version. The serialized form is kept elsewhere untouched.
func parseVersion(raw string) *semver.Version {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil {
		return zeroVersion
	}
	return v
}

// VersionIsOlder reports whether version a is older than version b.
func VersionIsOlder(a, b string) bool {
	return parseVersion(a).LessThan(parseVersion(b))
}

// VersionIsNewer reports whether version a is newer than version b.
func VersionIsNewer(a, b string) bool {
	return parseVersion(a).GreaterThan(parseVersion(b))
}

// VersionMajor returns the major component of the version.
func VersionMajor(v string) uint64 {
	return parseVersion(v).Major()
}

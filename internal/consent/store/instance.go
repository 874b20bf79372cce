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
	"path/filepath"
	"sync"

	"github.com/wso2/identity-consent-state-service/internal/system/config"
	"github.com/wso2/identity-consent-state-service/internal/system/constants"
)

var (
	instance *ConsentStateStore
	initOnce sync.Once
)

// GetConsentStateStore returns the process-wide store, built once from the
// runtime configuration. All writers share its lock, so concurrent user
// choices and server updates never interleave partial file updates.
func GetConsentStateStore() *ConsentStateStore {

	initOnce.Do(func() {
		runtime := config.GetCSSRuntime()
		cfg := runtime.Config

		bundled := cfg.Consent.BundledFile
		if bundled == "" {
			bundled = constants.BundledConsentsFile
		}
		if !filepath.IsAbs(bundled) {
			bundled = filepath.Join(runtime.CSSHome, bundled)
		}

		dataDir := cfg.Consent.DataDir
		if dataDir == "" {
			dataDir = filepath.Join(runtime.CSSHome, "data")
		}

		instance = NewConsentStateStore(Options{
			BundledPath:   bundled,
			DefaultsPath:  filepath.Join(dataDir, constants.DefaultConsentsRelPath),
			ConfirmedPath: filepath.Join(dataDir, constants.ConfirmedConsentsRelPath),
		})
	})
	return instance
}

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

package config

import "sync"

// CSSRuntime holds the runtime configuration for the consent state service.
type CSSRuntime struct {
	CSSHome string `yaml:"css_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *CSSRuntime
	once          sync.Once
)

// InitializeCSSRuntime initializes the CSSRuntime configuration.
func InitializeCSSRuntime(cssHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &CSSRuntime{
			CSSHome: cssHome,
			Config:  *config,
		}
	})

	return nil
}

// OverrideCSSRuntime replaces the runtime configuration. Intended for tests.
func OverrideCSSRuntime(conf Config) {
	runtimeConfig = &CSSRuntime{
		Config: conf,
	}
}

// GetCSSRuntime returns the CSSRuntime configuration.
func GetCSSRuntime() *CSSRuntime {

	if runtimeConfig == nil {
		panic("CSSRuntime is not initialized")
	}
	return runtimeConfig
}

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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	Audience           string   `yaml:"audience"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type ConsentConfig struct {
	// DataDir is the product data directory holding the cached-defaults
	// and confirmed-consents files at their fixed relative paths.
	DataDir string `yaml:"data_dir"`

	// BundledFile points at the read-only consent definition set shipped
	// with the service.
	BundledFile string `yaml:"bundled_file"`
}

type UpdateCheckConfig struct {
	// Endpoint serving the consents JSON array. Empty disables the scheduler.
	URL string `yaml:"url"`

	IntervalMinutes int `yaml:"interval_minutes"`
}

type Config struct {
	Addr        AddrConfig        `yaml:"addr"`
	Log         LogConfig         `yaml:"log"`
	Auth        AuthConfig        `yaml:"auth"`
	Consent     ConsentConfig     `yaml:"consent"`
	UpdateCheck UpdateCheckConfig `yaml:"update_check"`
}

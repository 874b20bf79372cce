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

package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wso2/identity-consent-state-service/internal/system/config"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

// CheckReadiness verifies the service can actually persist consent state:
// the logger is up and the consent data directory is writable.
func (h HealthCheckService) CheckReadiness() error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	runtime := config.GetCSSRuntime()
	dataDir := runtime.Config.Consent.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(runtime.CSSHome, "data")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("consent data directory is not available: %v", err)
	}

	probe, err := os.CreateTemp(dataDir, ".readiness-*")
	if err != nil {
		return fmt.Errorf("consent data directory is not writable: %v", err)
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return nil
}

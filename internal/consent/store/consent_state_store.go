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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	model "github.com/wso2/identity-consent-state-service/internal/consent/model"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
)

// Options configures a ConsentStateStore. Now is the clock used to stamp
// user choices; it defaults to time.Now.
type Options struct {
	BundledPath   string
	DefaultsPath  string
	ConfirmedPath string
	Now           func() time.Time
}

// ConsentStateStore is the single source of truth for which consent
// questions exist and what the user has answered, reconciled against
// late-arriving server updates. State lives in two flat files: a cached
// copy of the default definitions and the confirmed-consents record file.
// Both data sets are re-read on every operation; a single mutex serializes
// access so a reader never observes interleaved partial updates.
type ConsentStateStore struct {
	bundledPath   string
	defaultsPath  string
	confirmedPath string
	now           func() time.Time

	mu sync.Mutex
}

// NewConsentStateStore creates a store over the given file locations.
func NewConsentStateStore(opts Options) *ConsentStateStore {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ConsentStateStore{
		bundledPath:   opts.BundledPath,
		defaultsPath:  opts.DefaultsPath,
		confirmedPath: opts.ConfirmedPath,
		now:           now,
	}
}

// QueryPermission answers whether consent id is granted. It returns
// UNDEFINED when the definition is absent or deleted, or when no
// confirmation exists. Read-only.
func (s *ConsentStateStore) QueryPermission(id string) model.Permission {

	s.mu.Lock()
	defer s.mu.Unlock()

	definition, ok := s.loadDefaultConsents()[id]
	if !ok || definition.Deleted {
		return model.PermissionUndefined
	}
	confirmed, ok := s.loadConfirmedConsents()[id]
	if !ok {
		return model.PermissionUndefined
	}
	if confirmed.Accepted {
		return model.PermissionYes
	}
	return model.PermissionNo
}

// ListConsents returns all non-deleted definitions sorted by name, each
// combined with its confirmation when present, and whether at least one of
// them needs reconfirmation. When no definitions load at all the store
// fails safe: empty list, no prompt.
func (s *ConsentStateStore) ListConsents() ([]model.ConsentDefinition, bool) {

	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := s.loadDefaultConsents()
	if len(defaults) == 0 {
		return []model.ConsentDefinition{}, false
	}
	confirmed := s.loadConfirmedConsents()

	result := make([]model.ConsentDefinition, 0, len(defaults))
	for _, definition := range defaults {
		if definition.Deleted {
			continue
		}
		if confirmation, ok := confirmed[definition.ID]; ok {
			result = append(result, definition.Derive(confirmation.Accepted))
		} else {
			result = append(result, definition)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, needsReconfirmation(defaults, confirmed)
}

// RecordUserChoices creates or overwrites confirmation records for every
// supplied choice, stamped with the current wall-clock time. The user's
// explicit action always wins; there is no version or timestamp gating
// here, unlike server updates. Persistence failures are logged and
// swallowed so consent handling never breaks the caller.
func (s *ConsentStateStore) RecordUserChoices(choices []model.UserChoice) {

	if len(choices) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	confirmed := s.loadConfirmedConsents()
	stamp := s.now().UnixMilli()
	for _, choice := range choices {
		confirmed[choice.ConsentID] = model.ConfirmedConsent{
			ID:             choice.ConsentID,
			Version:        choice.Version,
			Accepted:       choice.Accepted,
			AcceptanceTime: stamp,
		}
	}
	if err := s.saveConfirmedConsents(confirmed); err != nil {
		log.GetLogger().Error("Failed to persist confirmed consents", log.Error(err))
	}
}

// ApplyServerUpdate reconciles a server-pushed update payload into the two
// local files. An empty or unparseable payload is a no-op. Definitions and
// confirmations are merged in two independent passes, and only files that
// actually changed are written. All failures are logged and swallowed;
// server reconciliation is best-effort.
func (s *ConsentStateStore) ApplyServerUpdate(payload string) {

	logger := log.GetLogger()
	if strings.TrimSpace(payload) == "" {
		return
	}
	updates, err := parseConsentAttributes(payload)
	if err != nil {
		logger.Warn("Ignoring unparseable server consent update", log.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := s.loadDefaultConsents()
	if mergeDefaults(defaults, updates) {
		if err := s.saveDefaultConsents(defaults); err != nil {
			logger.Error("Failed to persist default consents", log.Error(err))
		}
	}

	confirmed := s.loadConfirmedConsents()
	if mergeConfirmations(confirmed, updates) {
		if err := s.saveConfirmedConsents(confirmed); err != nil {
			logger.Error("Failed to persist confirmed consents", log.Error(err))
		}
	}
}

// needsReconfirmation reports whether any non-deleted definition lacks a
// confirmation, or is confirmed at an older version whose major component
// differs. Minor and patch bumps do not force reconfirmation.
func needsReconfirmation(defaults map[string]model.ConsentDefinition, confirmed map[string]model.ConfirmedConsent) bool {

	for _, definition := range defaults {
		if definition.Deleted {
			continue
		}
		confirmation, ok := confirmed[definition.ID]
		if !ok {
			return true
		}
		if model.VersionIsOlder(confirmation.Version, definition.Version) &&
			model.VersionMajor(confirmation.Version) != model.VersionMajor(definition.Version) {
			return true
		}
	}
	return false
}

// loadDefaultConsents reads the bundled definition set and overlays the
// locally cached defaults file using server-update merge semantics. Missing
// or corrupt files degrade to an empty data set.
func (s *ConsentStateStore) loadDefaultConsents() map[string]model.ConsentDefinition {

	result := make(map[string]model.ConsentDefinition)
	for _, attrs := range s.readAttributesFile(s.bundledPath) {
		result[attrs.ConsentID] = model.DefinitionFromAttributes(attrs)
	}
	mergeDefaults(result, s.readAttributesFile(s.defaultsPath))
	return result
}

// loadConfirmedConsents reads the semicolon-separated confirmations file.
// A missing file is an empty data set; unparseable records are skipped.
func (s *ConsentStateStore) loadConfirmedConsents() map[string]model.ConfirmedConsent {

	result := make(map[string]model.ConfirmedConsent)
	data, err := os.ReadFile(s.confirmedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.GetLogger().Warn("Failed to read confirmed consents file", log.Error(err))
		}
		return result
	}
	for _, record := range strings.Split(string(data), ";") {
		if strings.TrimSpace(record) == "" {
			continue
		}
		if confirmation, ok := model.ConfirmedConsentFromString(record); ok {
			result[confirmation.ID] = confirmation
		}
	}
	return result
}

func (s *ConsentStateStore) readAttributesFile(path string) []model.ConsentAttributes {

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.GetLogger().Warn("Failed to read consents file: "+path, log.Error(err))
		}
		return nil
	}
	attrs, err := parseConsentAttributes(string(data))
	if err != nil {
		log.GetLogger().Warn("Ignoring corrupt consents file: "+path, log.Error(err))
		return nil
	}
	return attrs
}

func parseConsentAttributes(payload string) ([]model.ConsentAttributes, error) {

	if strings.TrimSpace(payload) == "" {
		return nil, nil
	}
	var attrs []model.ConsentAttributes
	if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (s *ConsentStateStore) saveDefaultConsents(defaults map[string]model.ConsentDefinition) error {

	attrs := make([]model.ConsentAttributes, 0, len(defaults))
	for _, definition := range defaults {
		attrs = append(attrs, definition.ToAttributes())
	}
	// Deterministic file contents keep repeated merges byte-identical.
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].ConsentID < attrs[j].ConsentID
	})
	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.defaultsPath, data)
}

func (s *ConsentStateStore) saveConfirmedConsents(confirmed map[string]model.ConfirmedConsent) error {

	records := make([]string, 0, len(confirmed))
	for _, confirmation := range confirmed {
		records = append(records, confirmation.ExternalString())
	}
	sort.Strings(records)
	return writeFileAtomic(s.confirmedPath, []byte(strings.Join(records, ";")))
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it into place, so a crash mid-write never leaves a corrupt file visible.
func writeFileAtomic(path string, data []byte) error {

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Package state persists content fingerprints of processed source files so
// unchanged files are skipped on the next run.
package state

import (
	"encoding/json"
	"os"

	"accredparser/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// NeedsProcessing reports whether filePath changed since it was last seen.
// On a change the new fingerprint is saved immediately, before any
// processing happens: a crash mid-ingestion will NOT retrigger processing on
// the next run. At-most-one-attempt per file version is the accepted
// trade-off here; the alternative (save after success) would reprocess a
// multi-hundred-megabyte document on every crash loop.
func (s *Store) NeedsProcessing(filePath string) (bool, error) {
	hash, err := utils.FileHash(filePath)
	if err != nil {
		return false, err
	}

	fingerprints := s.load()
	if fingerprints[filePath] == hash {
		log.Infof("File %s unchanged since last run", filePath)
		return false, nil
	}

	fingerprints[filePath] = hash
	s.save(fingerprints)
	log.Infof("File %s is new or changed", filePath)
	return true, nil
}

// load reads the fingerprint map, treating a missing or corrupt file as
// empty rather than failing the run.
func (s *Store) load() map[string]string {
	fingerprints := map[string]string{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Failed to read state file %s: %v", s.path, err)
		}
		return fingerprints
	}
	if err := json.Unmarshal(data, &fingerprints); err != nil {
		log.Warnf("Corrupt state file %s, starting fresh: %v", s.path, err)
		return map[string]string{}
	}
	return fingerprints
}

func (s *Store) save(fingerprints map[string]string) {
	data, err := json.Marshal(fingerprints)
	if err != nil {
		log.Errorf("Failed to encode state: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Errorf("Failed to save state file %s: %v", s.path, err)
	}
}

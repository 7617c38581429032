//go:build gcloud

package config

import "errors"

// ValidateSettingsPath rejects relative settings paths on Cloud Run, where
// the working directory is read-only.
func ValidateSettingsPath(path string) error {
	if path == "" || path[0] != '/' {
		return errors.New("SETTINGS_PATH must be an absolute path on a writable mount")
	}
	return nil
}

//go:build !gcloud

package config

func ValidateSettingsPath(path string) error {
	if path == "" {
		return ErrSettingsPathEmpty
	}
	return nil
}

package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
)

const MaskedSecret = "********"

type ServiceType struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Settings is the operator's local configuration file.
type Settings struct {
	DigicoIP    string       `json:"digico_ip,omitempty" yaml:"digico_ip,omitempty"`
	DigicoPort  Port         `json:"digico_port,omitempty" yaml:"digico_port,omitempty"`
	PCOAppID    string       `json:"pco_app_id,omitempty" yaml:"pco_app_id,omitempty"`
	PCOSecret   string       `json:"pco_secret,omitempty" yaml:"pco_secret,omitempty"`
	ServiceType *ServiceType `json:"service_type,omitempty" yaml:"service_type,omitempty"`
}

func (s Settings) Destination() domain.Destination {
	return domain.NewDestination(s.DigicoIP, int(s.DigicoPort))
}

func (s Settings) HasCredentials() bool {
	return s.PCOAppID != "" && s.PCOSecret != ""
}

// Masked returns a copy safe to show to a client.
func (s Settings) Masked() Settings {
	out := s
	if out.PCOSecret != "" {
		out.PCOSecret = MaskedSecret
	}
	if s.ServiceType != nil {
		st := *s.ServiceType
		out.ServiceType = &st
	}
	return out
}

// Port accepts either a number or a numeric string.
type Port int

func (p *Port) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Port(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidPort
	}
	parsed, err := parsePort(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *Port) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return ErrInvalidPort
	}

	parsed, err := parsePort(value.Value)
	if err != nil {
		// Older files may hold a non-numeric port; treat it as unset.
		*p = 0
		return nil
	}
	*p = parsed
	return nil
}

func parsePort(s string) (Port, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	return Port(n), nil
}

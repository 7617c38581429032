package domain

import (
	"net"
	"strconv"
	"strings"
)

// Destination is the console's OSC receive endpoint.
type Destination struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func NewDestination(host string, port int) Destination {
	return Destination{
		Host: strings.TrimSpace(host),
		Port: port,
	}
}

func (d Destination) Validate() error {
	if strings.TrimSpace(d.Host) == "" {
		return ErrInvalidDestination
	}
	if d.Port <= 0 || d.Port > 65535 {
		return ErrInvalidDestination
	}
	return nil
}

// Key identifies the destination for the in-progress guard.
func (d Destination) Key() string {
	return net.JoinHostPort(strings.ToLower(strings.TrimSpace(d.Host)), strconv.Itoa(d.Port))
}

func (d Destination) String() string {
	return d.Key()
}

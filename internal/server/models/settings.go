package models

import "github.com/dmitrijs2005/safewalk/internal/common"

// Flag names one of the closed set of boolean settings.
type Flag string

const (
	FlagNotifications   Flag = "notifications"
	FlagLocationSharing Flag = "locationSharing"
	FlagNightMode       Flag = "nightMode"
	FlagEmergencyMode   Flag = "emergencyMode"
)

// Flags lists every known flag in display order.
var Flags = []Flag{FlagNotifications, FlagLocationSharing, FlagNightMode, FlagEmergencyMode}

// ParseFlag rejects names outside Flags with a ConfigurationError.
func ParseFlag(name string) (Flag, error) {
	for _, f := range Flags {
		if string(f) == name {
			return f, nil
		}
	}
	return "", &common.ConfigurationError{Flag: name}
}

// Settings holds the feature toggles of one session.
type Settings struct {
	Notifications   bool
	LocationSharing bool
	NightMode       bool
	EmergencyMode   bool
}

// DefaultSettings returns notifications, location sharing and night mode on,
// emergency mode off.
func DefaultSettings() Settings {
	return Settings{
		Notifications:   true,
		LocationSharing: true,
		NightMode:       true,
		EmergencyMode:   false,
	}
}

func (s *Settings) field(f Flag) (*bool, error) {
	switch f {
	case FlagNotifications:
		return &s.Notifications, nil
	case FlagLocationSharing:
		return &s.LocationSharing, nil
	case FlagNightMode:
		return &s.NightMode, nil
	case FlagEmergencyMode:
		return &s.EmergencyMode, nil
	}
	return nil, &common.ConfigurationError{Flag: string(f)}
}

// Get returns the value of f.
func (s Settings) Get(f Flag) (bool, error) {
	p, err := s.field(f)
	if err != nil {
		return false, err
	}
	return *p, nil
}

// Set updates f in place.
func (s *Settings) Set(f Flag, v bool) error {
	p, err := s.field(f)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Map renders the settings keyed by flag name.
func (s Settings) Map() map[string]bool {
	m := make(map[string]bool, len(Flags))
	for _, f := range Flags {
		v, _ := s.Get(f)
		m[string(f)] = v
	}
	return m
}

package values

import (
	"fmt"
	"strings"
)

// NotificationType is the severity of a validation message.
// Ordered so that Error outranks Warning outranks Info outranks Debug.
type NotificationType struct {
	value NotificationLevel
}

// NotificationLevel is the internal representation
type NotificationLevel int

const (
	NotificationNone    NotificationLevel = 0
	NotificationDebug   NotificationLevel = 1
	NotificationInfo    NotificationLevel = 2
	NotificationWarning NotificationLevel = 3
	NotificationError   NotificationLevel = 4
)

// Predefined notification types
var (
	NotifyNone    = NotificationType{NotificationNone}
	NotifyDebug   = NotificationType{NotificationDebug}
	NotifyInfo    = NotificationType{NotificationInfo}
	NotifyWarning = NotificationType{NotificationWarning}
	NotifyError   = NotificationType{NotificationError}
)

// NewNotificationType creates a NotificationType from string
func NewNotificationType(s string) (NotificationType, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "debug":
		return NotifyDebug, nil
	case "info":
		return NotifyInfo, nil
	case "warning", "warn":
		return NotifyWarning, nil
	case "error":
		return NotifyError, nil
	case "":
		return NotifyNone, nil
	default:
		return NotificationType{}, fmt.Errorf("invalid notification type: %s", s)
	}
}

// String returns the string representation
func (n NotificationType) String() string {
	switch n.value {
	case NotificationDebug:
		return "debug"
	case NotificationInfo:
		return "info"
	case NotificationWarning:
		return "warning"
	case NotificationError:
		return "error"
	default:
		return ""
	}
}

// Level returns the numeric level (for ordering)
func (n NotificationType) Level() int {
	return int(n.value)
}

// IsHigherOrEqual returns true if this type is at least as severe as the other
func (n NotificationType) IsHigherOrEqual(other NotificationType) bool {
	return n.value >= other.value
}

// Equals checks if two notification types are equal
func (n NotificationType) Equals(other NotificationType) bool {
	return n.value == other.value
}

// MarshalJSON implements json.Marshaler
func (n NotificationType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NotificationType) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 {
		return fmt.Errorf("invalid notification type JSON")
	}
	str = str[1 : len(str)-1]

	nt, err := NewNotificationType(str)
	if err != nil {
		return err
	}
	*n = nt
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler
func (n NotificationType) MarshalYAML() (interface{}, error) {
	return n.String(), nil
}

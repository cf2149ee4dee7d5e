// Package alert implements transient, auto-dismissing notifications.
//
// A List keeps notifications in creation order. Every notification owns a single
// timer that dismisses it after its auto-close duration; dismissing it by hand
// cancels that timer, and closing the List cancels every timer still pending.
package alert

import (
	"errors"
	"fmt"
	"time"
)

// DefaultAutoClose is used when Options.AutoClose is zero.
const DefaultAutoClose = 5000 * time.Millisecond

var (
	// ErrClosed is returned when appending to a list that has been torn down.
	ErrClosed = errors.New("alert: list closed")
	// ErrInvalidDuration is returned for a negative auto-close duration.
	ErrInvalidDuration = errors.New("alert: auto-close duration must be positive")
	// ErrInvalidSeverity is returned for a severity outside the known set.
	ErrInvalidSeverity = errors.New("alert: unknown severity")
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Severities lists every severity in display priority order.
var Severities = []Severity{SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess:
		return true
	}
	return false
}

// ParseSeverity converts s into a Severity. The empty string maps to SeverityInfo.
func ParseSeverity(s string) (Severity, error) {
	if s == "" {
		return SeverityInfo, nil
	}
	sev := Severity(s)
	if !sev.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
	}
	return sev, nil
}

// Reason records what dismissed a notification.
type Reason int

const (
	ReasonExpired Reason = iota
	ReasonManual
)

func (r Reason) String() string {
	switch r {
	case ReasonExpired:
		return "expired"
	case ReasonManual:
		return "manual"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Options describes a notification to append.
type Options struct {
	Message   string
	Severity  Severity      // defaults to SeverityInfo
	AutoClose time.Duration // defaults to DefaultAutoClose
}

func (o Options) normalize() (Options, error) {
	sev, err := ParseSeverity(string(o.Severity))
	if err != nil {
		return o, err
	}
	o.Severity = sev

	switch {
	case o.AutoClose == 0:
		o.AutoClose = DefaultAutoClose
	case o.AutoClose < 0:
		return o, fmt.Errorf("%w: %s", ErrInvalidDuration, o.AutoClose)
	}
	return o, nil
}

// Notification is a snapshot of one entry in a List.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	AutoClose time.Duration
	CreatedAt time.Time
	Dismissed bool
}

// ExpiresAt is the moment the auto-close timer fires.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.AutoClose)
}

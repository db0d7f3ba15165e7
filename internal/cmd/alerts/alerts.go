// Package alerts provides one-line status notices printed after tabular
// command output.
package alerts

import (
	"fmt"
	"strings"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure.
	LevelError Level = iota
	// LevelWarning indicates a finding that does not stop the run.
	LevelWarning
	// LevelInfo indicates general information.
	LevelInfo
	// LevelSuccess indicates a clean result.
	LevelSuccess
)

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the status symbol for the level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return "✗"
	case LevelWarning:
		return "!"
	case LevelInfo:
		return "i"
	case LevelSuccess:
		return "✓"
	default:
		return "?"
	}
}

// Color returns the ANSI color code for the level.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return "\033[31m"
	case LevelWarning:
		return "\033[33m"
	case LevelInfo:
		return "\033[36m"
	case LevelSuccess:
		return "\033[32m"
	default:
		return resetColor
	}
}

const resetColor = "\033[0m"

// Alert is a status notice with optional detail lines.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds detail lines to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns the alert as an icon-prefixed line followed by its
// indented details.
func (a *Alert) String() string {
	var b strings.Builder
	b.WriteString(a.Level.Icon())
	b.WriteByte(' ')
	b.WriteString(a.Message)
	if a.Err != nil {
		fmt.Fprintf(&b, ": %v", a.Err)
	}
	for _, d := range a.Details {
		b.WriteString("\n  ")
		b.WriteString(d)
	}
	return b.String()
}

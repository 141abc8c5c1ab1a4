package task

import (
	"fmt"
	"strings"
)

// Theme selects the UI palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeBlack Theme = "black"
)

// ParseTheme accepts light, dark or black.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark, ThemeBlack:
		return t, nil
	}
	return "", fmt.Errorf("task: unknown theme %q", s)
}

// UserSettings holds per-user preferences.
type UserSettings struct {
	Name        string `json:"name"`
	IsOnboarded bool   `json:"isOnboarded"`
	Theme       Theme  `json:"theme"`
	EnableSound bool   `json:"enableSound"`
}

// DefaultUser is the settings value used before onboarding.
func DefaultUser() UserSettings {
	return UserSettings{Theme: ThemeLight, EnableSound: true}
}

// Action is the kind of event recorded in the activity log.
type Action string

const (
	ActionCreate     Action = "create"
	ActionComplete   Action = "complete"
	ActionUncomplete Action = "uncomplete"
	ActionDelete     Action = "delete"
)

// Verb is the past-tense label shown in the logbook.
func (a Action) Verb() string {
	switch a {
	case ActionCreate:
		return "Created"
	case ActionComplete:
		return "Completed"
	case ActionUncomplete:
		return "Uncompleted"
	case ActionDelete:
		return "Deleted"
	}
	return string(a)
}

// LogEntry records one task event. TaskTitle is a snapshot taken when the
// event happened.
type LogEntry struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	TaskTitle string    `json:"taskTitle"`
	Timestamp Timestamp `json:"timestamp"`
}

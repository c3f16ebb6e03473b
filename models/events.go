package models

import "time"

// EventKind identifies a notification emitted by a session
type EventKind string

const (
	EventSelectionChanged    EventKind = "selection-changed"
	EventWidthChanged        EventKind = "width-changed"
	EventDisplayItemsChanged EventKind = "change-display-items"
	EventBackgroundChanged   EventKind = "background-changed"
	EventNotify              EventKind = "notify"
)

// NotificationType is the severity of a user-facing notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// DefaultNotificationDurationMS is how long a notification stays on screen, in milliseconds
const DefaultNotificationDurationMS int64 = 4200

// SelectionChanged is emitted after every selection store operation
type SelectionChanged struct {
	SelectedItems  []string `json:"selectedItems"`
	Random         bool     `json:"random,omitempty"`
	ScrollIntoView bool     `json:"scrollIntoView,omitempty"`
}

// WidthChanged is emitted when the composition width changes
type WidthChanged struct {
	Width int `json:"width"`
}

// DisplayItemsChanged is emitted when the filter engine recomputes the display set
type DisplayItemsChanged struct {
	DisplayItems []string `json:"displayItems"`
}

// BackgroundChanged is emitted when the composition background changes
type BackgroundChanged struct {
	Background string `json:"background"`
}

// Notification is a transient message shown to the user
type Notification struct {
	Message    string           `json:"message"`
	DurationMS int64            `json:"duration,omitempty"`
	Type       NotificationType `json:"type,omitempty"`
}

// WithDefaults fills the optional fields the way the UI does
func (n Notification) WithDefaults() Notification {
	if n.DurationMS <= 0 {
		n.DurationMS = DefaultNotificationDurationMS
	}
	if n.Type == "" {
		n.Type = NotificationInfo
	}
	return n
}

// Event wraps one of the payloads above
type Event struct {
	Kind         EventKind            `json:"kind"`
	At           time.Time            `json:"at"`
	Selection    *SelectionChanged    `json:"selection,omitempty"`
	Width        *WidthChanged        `json:"width,omitempty"`
	Display      *DisplayItemsChanged `json:"display,omitempty"`
	Background   *BackgroundChanged   `json:"background,omitempty"`
	Notification *Notification        `json:"notification,omitempty"`
}

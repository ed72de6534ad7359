package events

// Event type constants
const (
	// EventTypeBeforeLongRest fires before any recovery. Cancelling it stops the rest.
	EventTypeBeforeLongRest EventType = "before_long_rest"

	// EventTypeLongRestCompleted fires once a rest is finalized and persisted
	EventTypeLongRestCompleted EventType = "long_rest_completed"

	// EventTypeLongRestAborted fires when the player backs out of the dialog
	EventTypeLongRestAborted EventType = "long_rest_aborted"

	// EventTypeSettingChanged fires after a recovery setting is stored
	EventTypeSettingChanged EventType = "long_rest_setting_changed"
)

// Priority levels for listener order
const (
	PriorityValidation   = 0   // Veto before anything happens
	PriorityBookkeeping  = 100 // Counters, audit
	PriorityNotification = 500 // Chat output
)

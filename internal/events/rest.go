package events

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
)

// BeforeLongRestEvent is emitted before a long rest starts
type BeforeLongRestEvent struct {
	BaseEvent
	Input *rest.LongRestInput
	// Reason is set by the listener that cancelled the event
	Reason string
}

// CancelWithReason cancels the rest and records why
func (e *BeforeLongRestEvent) CancelWithReason(reason string) {
	e.Reason = reason
	e.Cancel()
}

// LongRestCompletedEvent carries the result of a finalized rest
type LongRestCompletedEvent struct {
	BaseEvent
	Result *rest.RestResult
	// Chat is false when the rest was requested without a chat summary
	Chat   bool
	Origin string
}

// LongRestAbortedEvent reports a rest the player cancelled
type LongRestAbortedEvent struct {
	BaseEvent
	Output *rest.LongRestOutput
	Chat   bool
	Origin string
}

// SettingChangedEvent reports a stored recovery setting
type SettingChangedEvent struct {
	BaseEvent
	Key   string
	Value string
}

// NewLongRestCompletedEvent builds the completion event for c
func NewLongRestCompletedEvent(c *character.Character, result *rest.RestResult, chat bool) *LongRestCompletedEvent {
	return &LongRestCompletedEvent{
		BaseEvent: BaseEvent{Type: EventTypeLongRestCompleted, Character: c},
		Result:    result,
		Chat:      chat,
	}
}

// NewBeforeLongRestEvent builds the cancellable pre-rest event for c
func NewBeforeLongRestEvent(c *character.Character, input *rest.LongRestInput) *BeforeLongRestEvent {
	return &BeforeLongRestEvent{
		BaseEvent: BaseEvent{Type: EventTypeBeforeLongRest, Character: c},
		Input:     input,
	}
}

// NewLongRestAbortedEvent builds the abort event for c
func NewLongRestAbortedEvent(c *character.Character, output *rest.LongRestOutput) *LongRestAbortedEvent {
	return &LongRestAbortedEvent{
		BaseEvent: BaseEvent{Type: EventTypeLongRestAborted, Character: c},
		Output:    output,
	}
}

// NewSettingChangedEvent builds the event for a stored setting. It has no character.
func NewSettingChangedEvent(key, value string) *SettingChangedEvent {
	return &SettingChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeSettingChanged},
		Key:       key,
		Value:     value,
	}
}

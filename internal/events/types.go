package events

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
)

// EventType represents the type of rest event
type EventType string

// Event is the base interface for all rest events
type Event interface {
	GetType() EventType
	GetCharacter() *character.Character
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Character *character.Character
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType                 { return e.Type }
func (e *BaseEvent) GetCharacter() *character.Character { return e.Character }
func (e *BaseEvent) IsCancelled() bool                  { return e.Cancelled }
func (e *BaseEvent) Cancel()                            { e.Cancelled = true }

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	ListenerID       string
	ListenerPriority int
	Handle           func(Event) error
}

func (l *ListenerFunc) ID() string                { return l.ListenerID }
func (l *ListenerFunc) Priority() int             { return l.ListenerPriority }
func (l *ListenerFunc) HandleEvent(e Event) error { return l.Handle(e) }

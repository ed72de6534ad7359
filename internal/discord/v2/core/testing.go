package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds an InteractionContext for tests
type TestInteractionContext struct {
	*InteractionContext
	Mock *MockResponder
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	mock := NewMockResponder()
	return &TestInteractionContext{
		InteractionContext: &InteractionContext{
			Context:   context.Background(),
			Responder: mock,
			UserID:    "test-user-123",
			GuildID:   "test-guild-123",
			ChannelID: "test-channel-123",
			params:    make(map[string]any),
		},
		Mock: mock,
	}
}

// WithParam adds a parameter for testing
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// WithPermissions makes the user a member holding perms
func (t *TestInteractionContext) WithPermissions(perms int64) *TestInteractionContext {
	t.Member = &discordgo.Member{
		User:        &discordgo.User{ID: t.UserID},
		Permissions: perms,
	}
	return t
}

// AsCommand simulates a command interaction
func (t *TestInteractionContext) AsCommand(name string, subcommand ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	if len(subcommand) > 0 {
		t.params["subcommand"] = subcommand[0]
	}

	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	return t
}

// MockResponder is a test implementation of InteractionResponder. It is safe
// for use from the goroutine blocked in a confirmation.
type MockResponder struct {
	mu           sync.Mutex
	DeferCalls   []bool
	Responses    []*Response
	Edits        []*Response
	DeferError   error
	RespondError error
	EditError    error
	Responded    bool

	// OnEdit, when set, is called after every edit
	OnEdit func(*Response)
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	m.Responded = true
	return m.DeferError
}

func (m *MockResponder) Respond(response *Response) error {
	m.mu.Lock()
	m.Responses = append(m.Responses, response)
	m.Responded = true
	err := m.RespondError
	m.mu.Unlock()
	return err
}

func (m *MockResponder) Edit(response *Response) error {
	m.mu.Lock()
	m.Edits = append(m.Edits, response)
	onEdit := m.OnEdit
	err := m.EditError
	m.mu.Unlock()

	if onEdit != nil {
		onEdit(response)
	}
	return err
}

func (m *MockResponder) HasResponded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Responded
}

// LastResponse returns the last response or edit sent
func (m *MockResponder) LastResponse() *Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}

package builders

import (
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	"github.com/bwmarrin/discordgo"
)

const maxPerRow = 5

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	domain     string
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
}

// NewComponentBuilder creates a builder whose buttons route to domain
func NewComponentBuilder(domain string) *ComponentBuilder {
	return &ComponentBuilder{
		domain:     domain,
		rows:       make([]discordgo.MessageComponent, 0),
		currentRow: make([]discordgo.MessageComponent, 0, maxPerRow),
	}
}

// Button adds a button to the current row. The first arg is the target.
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action string, args ...string) *ComponentBuilder {
	id := core.NewCustomID(b.domain, action)
	if len(args) > 0 {
		id.WithTarget(args[0]).WithArgs(args[1:]...)
	}

	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: id.MustEncode(),
	})
	return b
}

// DisabledButton adds a disabled button
func (b *ComponentBuilder) DisabledButton(label string, style discordgo.ButtonStyle) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: "disabled",
		Disabled: true,
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, maxPerRow)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= maxPerRow {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// Common button styles helpers
func (b *ComponentBuilder) PrimaryButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.PrimaryButton, action, args...)
}

func (b *ComponentBuilder) SecondaryButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SecondaryButton, action, args...)
}

func (b *ComponentBuilder) SuccessButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.SuccessButton, action, args...)
}

func (b *ComponentBuilder) DangerButton(label, action string, args ...string) *ComponentBuilder {
	return b.Button(label, discordgo.DangerButton, action, args...)
}

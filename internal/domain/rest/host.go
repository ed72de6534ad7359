package rest

import (
	"context"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

//go:generate mockgen -destination=mock/mock_host.go -package=mockrest -source=host.go

// Host is the character engine a long rest delegates to. Every method that
// changes the character persists it before returning.
type Host interface {
	// UpdateCharacter applies and persists an actor scoped batch
	UpdateCharacter(ctx context.Context, c *character.Character, updates character.Updates) error

	// UpdateItems applies and persists item scoped updates
	UpdateItems(ctx context.Context, c *character.Character, updates []character.ItemUpdate) error

	// RollHitDie spends one hit die of the given size (0 picks the largest available)
	RollHitDie(ctx context.Context, c *character.Character, denomination int) (*HitDieRoll, error)

	// AutoSpendHitDice rolls hit dice until missing hit points are at or
	// below threshold or no dice remain
	AutoSpendHitDice(ctx context.Context, c *character.Character, threshold int) (*AutoSpendResult, error)

	// FinalizeRest runs the rest bookkeeping: recovery batches, persistence, chat
	FinalizeRest(ctx context.Context, c *character.Character, input *FinalizeInput) (*RestResult, error)
}

// HitDieRoll is the outcome of spending one hit die
type HitDieRoll struct {
	Denomination int
	Roll         int
	Bonus        int
	Healed       int
}

// AutoSpendResult sums up an automatic hit dice spend
type AutoSpendResult struct {
	DiceSpent       int
	HitPointsHealed int
	Rolls           []*HitDieRoll
}

// FinalizeInput carries what the finalizer needs from the rest so far
type FinalizeInput struct {
	// Origin is the caller's tag for the request, copied onto the completion event
	Origin   string
	Chat     bool
	NewDay   bool
	LongRest bool
	// DeltaHitDice and DeltaHitPoints are the changes made before finalizing
	DeltaHitDice   int
	DeltaHitPoints int
}

// RestResult is what a finished rest changed
type RestResult struct {
	ID             string
	CharacterID    string
	LongRest       bool
	NewDay         bool
	DeltaHitDice   int
	DeltaHitPoints int
	Updates        character.Updates
	ItemUpdates    []character.ItemUpdate
}

// Variant is the table's rest length rule
type Variant string

const (
	VariantNormal Variant = "normal"
	VariantGritty Variant = "gritty"
	VariantEpic   Variant = "epic"
)

// PromptNewDay reports whether the player is asked if a new day began.
// A gritty long rest lasts a week, so it always is one.
func (v Variant) PromptNewDay() bool {
	return v != VariantGritty
}

// DefaultNewDay is the preselected answer for the new day question
func (v Variant) DefaultNewDay() bool {
	return v == VariantNormal || v == ""
}

// ConfirmationRequest is what the player is shown before the rest completes
type ConfirmationRequest struct {
	Character    *character.Character
	PromptNewDay bool
	NewDay       bool
	// CanRoll is false when hit dice are rolled automatically
	CanRoll bool
	// RollHitDie spends a hit die on behalf of the player; nil when CanRoll is false
	RollHitDie func(ctx context.Context, denomination int) (*HitDieRoll, error)
}

// Confirmation is the player's answer
type Confirmation struct {
	NewDay bool
}

// Confirmer asks the player to confirm a long rest. It blocks until the player
// answers. Returning ErrRestCancelled (or any CodeCancelled error) aborts the rest.
type Confirmer interface {
	ConfirmLongRest(ctx context.Context, req *ConfirmationRequest) (*Confirmation, error)
}

// ErrRestCancelled is returned by a Confirmer when the player backs out
var ErrRestCancelled = dnderr.New(dnderr.CodeCancelled, "long rest cancelled")

// LongRestInput mirrors the options of a long rest request
type LongRestInput struct {
	// Origin tags the rest for listeners, such as the chat summary route
	Origin string
	Chat   bool
	Dialog bool
	NewDay bool
}

// DefaultLongRestInput posts to chat, asks for confirmation and assumes a new day
func DefaultLongRestInput() *LongRestInput {
	return &LongRestInput{
		Chat:   true,
		Dialog: true,
		NewDay: true,
	}
}

// LongRester is the long rest entry point. The host provides the plain rules
// version and Orchestrator the fractional one.
type LongRester interface {
	LongRest(ctx context.Context, c *character.Character, input *LongRestInput) (*LongRestOutput, error)
}

package rest

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
)

// State is a step of the long rest sequence
type State string

const (
	StateStart                State = "start"
	StateHitPointsRecovered   State = "hit_points_recovered"
	StateHitDicePreRecovered  State = "hit_dice_pre_recovered"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateHitDiceAutoSpent     State = "hit_dice_auto_spent"
	StateFinalized            State = "finalized"
	StateAborted              State = "aborted"
)

// LongRestOutput reports how far a long rest got and what it did
type LongRestOutput struct {
	State State
	// Trail lists every state entered, in order
	Trail []State

	HitPointsRecovered  int
	HitDicePreRecovered int
	AutoSpend           *AutoSpendResult
	NewDay              bool

	// Result is nil unless the rest was finalized
	Result *RestResult
}

// Aborted reports whether the player cancelled the rest
func (o *LongRestOutput) Aborted() bool {
	return o.State == StateAborted
}

func (o *LongRestOutput) enter(s State) {
	o.State = s
	o.Trail = append(o.Trail, s)
}

// Orchestrator runs the fractional long rest:
// recover hit points, pre-recover hit dice, confirm, auto-spend, finalize.
type Orchestrator struct {
	host      Host
	hitDice   HitDiceRecoverer
	confirmer Confirmer
	settings  Settings
	mult      *Multipliers
	variant   Variant
}

// OrchestratorConfig holds the collaborators of an Orchestrator
type OrchestratorConfig struct {
	Host      Host       // Required
	Overrides *Overrides // Required
	Confirmer Confirmer  // Required when a rest asks for a dialog
	Variant   Variant
}

// NewOrchestrator creates a long rest orchestrator
func NewOrchestrator(cfg *OrchestratorConfig) (*Orchestrator, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("orchestrator config is required")
	}
	if cfg.Host == nil {
		return nil, dnderr.InvalidArgument("host is required")
	}
	if cfg.Overrides == nil {
		return nil, dnderr.InvalidArgument("overrides are required")
	}

	variant := cfg.Variant
	if variant == "" {
		variant = VariantNormal
	}

	return &Orchestrator{
		host:      cfg.Host,
		hitDice:   cfg.Overrides,
		confirmer: cfg.Confirmer,
		settings:  cfg.Overrides.settings,
		mult:      cfg.Overrides.mult,
		variant:   variant,
	}, nil
}

// LongRest runs the sequence on c. A cancelled confirmation returns an aborted
// output and a nil error; whatever was committed before the confirmation stays.
func (o *Orchestrator) LongRest(ctx context.Context, c *character.Character, input *LongRestInput) (*LongRestOutput, error) {
	if c == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}
	if input == nil {
		input = DefaultLongRestInput()
	}
	if input.Dialog && o.confirmer == nil {
		return nil, dnderr.InvalidArgument("a confirmer is required for a long rest dialog").
			WithMeta("character_id", c.ID)
	}

	out := &LongRestOutput{}
	out.enter(StateStart)

	hd0 := c.HitDice()
	hp0 := c.HP.Value

	if o.mult.HitPoints > 0 {
		updates, recovered := RecoverHitPoints(c.HP.Value, c.HP.Max, o.mult.HitPoints)
		if err := o.host.UpdateCharacter(ctx, c, updates); err != nil {
			return nil, hostError(err, c, "recover_hit_points")
		}
		out.HitPointsRecovered = recovered
		log.Printf("LongRest: %s recovered %d hit points before rolling", c.ID, recovered)
	}
	out.enter(StateHitPointsRecovered)

	if o.settings.PreRecoverHitDice() {
		result := o.hitDice.RecoverHitDice(c, HitDiceOptions{Mode: HitDiceModePreRecovery})
		if len(result.Updates) > 0 {
			if err := o.host.UpdateItems(ctx, c, result.Updates); err != nil {
				return nil, hostError(err, c, "pre_recover_hit_dice")
			}
		}
		out.HitDicePreRecovered = result.HitDiceRecovered
		out.enter(StateHitDicePreRecovered)
		log.Printf("LongRest: %s pre-recovered %d hit dice", c.ID, result.HitDiceRecovered)
	}

	newDay := input.NewDay
	out.enter(StateAwaitingConfirmation)
	if input.Dialog {
		confirmation, err := o.confirm(ctx, c)
		if err != nil {
			if dnderr.IsCancelled(err) {
				log.Printf("LongRest: %s cancelled the rest, earlier recovery stays applied", c.ID)
				out.enter(StateAborted)
				return out, nil
			}
			return nil, dnderr.Wrap(err, "long rest confirmation failed").
				WithMeta("character_id", c.ID)
		}
		newDay = confirmation.NewDay
		if !o.variant.PromptNewDay() {
			newDay = true
		}
	}
	out.NewDay = newDay

	if o.settings.AutoSpendHitDice() {
		spent, err := o.host.AutoSpendHitDice(ctx, c, 0)
		if err != nil {
			return nil, hostError(err, c, "auto_spend_hit_dice")
		}
		out.AutoSpend = spent
		out.enter(StateHitDiceAutoSpent)
	}

	result, err := o.host.FinalizeRest(ctx, c, &FinalizeInput{
		Origin:         input.Origin,
		Chat:           input.Chat,
		NewDay:         newDay,
		LongRest:       true,
		DeltaHitDice:   c.HitDice() - hd0,
		DeltaHitPoints: c.HP.Value - hp0,
	})
	if err != nil {
		return nil, hostError(err, c, "finalize_rest")
	}
	out.Result = result
	out.enter(StateFinalized)

	return out, nil
}

func (o *Orchestrator) confirm(ctx context.Context, c *character.Character) (*Confirmation, error) {
	req := &ConfirmationRequest{
		Character:    c,
		PromptNewDay: o.variant.PromptNewDay(),
		NewDay:       o.variant.DefaultNewDay(),
		CanRoll:      !o.settings.AutoSpendHitDice() && c.HitDice() > 0,
	}
	if req.CanRoll {
		req.RollHitDie = func(ctx context.Context, denomination int) (*HitDieRoll, error) {
			return o.host.RollHitDie(ctx, c, denomination)
		}
	}

	return o.confirmer.ConfirmLongRest(ctx, req)
}

func hostError(err error, c *character.Character, step string) error {
	return dnderr.Wrapf(err, "long rest step %s failed", step).
		WithMeta("character_id", c.ID).
		WithMeta("step", step)
}

package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/builders"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
	restrules "github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/uuid"
)

// Domain is the slash command name and custom ID prefix of the long rest
const Domain = "longrest"

// Component actions of the confirmation prompt
const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
	ActionNewDay  = "newday"
	ActionRoll    = "roll"
)

// DefaultConfirmTimeout is how long a prompt waits when no timeout is configured
const DefaultConfirmTimeout = 5 * time.Minute

// ButtonConfirmer asks for long rest confirmation with message buttons. The
// command handler binds it to its interaction with For; button clicks arrive
// through HandleComponent.
type ButtonConfirmer struct {
	timeout       time.Duration
	uuidGenerator uuid.Generator

	mu      sync.Mutex
	pending map[string]*pendingRest
}

// ButtonConfirmerConfig holds configuration for the confirmer
type ButtonConfirmerConfig struct {
	Timeout       time.Duration
	UUIDGenerator uuid.Generator
}

type answer struct {
	confirmed bool
	newDay    bool
}

type pendingRest struct {
	id      string
	userID  string
	req     *restrules.ConfirmationRequest
	answers chan answer

	mu     sync.Mutex
	newDay bool
	rolls  []*restrules.HitDieRoll
	closed bool
}

// NewButtonConfirmer creates a button confirmer
func NewButtonConfirmer(cfg *ButtonConfirmerConfig) *ButtonConfirmer {
	if cfg == nil {
		cfg = &ButtonConfirmerConfig{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &ButtonConfirmer{
		timeout:       timeout,
		uuidGenerator: gen,
		pending:       make(map[string]*pendingRest),
	}
}

// For returns a confirmer that prompts by editing the reply of responder and
// only accepts answers from userID
func (b *ButtonConfirmer) For(responder core.InteractionResponder, userID string) restrules.Confirmer {
	return &boundConfirmer{parent: b, responder: responder, userID: userID}
}

// Pending reports how many prompts are waiting for an answer
func (b *ButtonConfirmer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

type boundConfirmer struct {
	parent    *ButtonConfirmer
	responder core.InteractionResponder
	userID    string
}

// ConfirmLongRest shows the prompt and blocks until the player answers, the
// prompt times out or ctx is done. A timeout counts as a cancel.
func (c *boundConfirmer) ConfirmLongRest(ctx context.Context, req *restrules.ConfirmationRequest) (*restrules.Confirmation, error) {
	if req == nil || req.Character == nil {
		return nil, dnderr.InvalidArgument("confirmation request needs a character")
	}

	p := &pendingRest{
		id:      c.parent.uuidGenerator.New(),
		userID:  c.userID,
		req:     req,
		answers: make(chan answer, 1),
		newDay:  req.NewDay,
	}

	c.parent.add(p)
	defer p.close(c.parent)

	if err := c.responder.Edit(p.render()); err != nil {
		return nil, dnderr.Wrap(err, "failed to show long rest prompt").
			WithMeta("character_id", req.Character.ID)
	}

	timer := time.NewTimer(c.parent.timeout)
	defer timer.Stop()

	select {
	case a := <-p.answers:
		if !a.confirmed {
			return nil, restrules.ErrRestCancelled
		}
		return &restrules.Confirmation{NewDay: a.newDay}, nil
	case <-timer.C:
		log.Printf("Confirmer: prompt %s for %s timed out", p.id, req.Character.ID)
		if err := c.responder.Edit(core.NewResponse(fmt.Sprintf("⌛ %s fell asleep waiting. The long rest prompt timed out.", req.Character.Name))); err != nil {
			log.Printf("Confirmer: failed to close timed out prompt %s: %v", p.id, err)
		}
		return nil, restrules.ErrRestCancelled
	case <-ctx.Done():
		return nil, dnderr.Wrap(ctx.Err(), "long rest prompt abandoned").
			WithMeta("character_id", req.Character.ID)
	}
}

func (b *ButtonConfirmer) add(p *pendingRest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[p.id] = p
}

func (b *ButtonConfirmer) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, id)
}

func (b *ButtonConfirmer) take(id string) *pendingRest {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := b.pending[id]
	delete(b.pending, id)
	return p
}

func (b *ButtonConfirmer) get(id string) *pendingRest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending[id]
}

// HandleComponent answers a click on one of the prompt buttons
func (b *ButtonConfirmer) HandleComponent(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, dnderr.Wrap(err, "invalid long rest button")
	}

	p := b.get(customID.Target)
	if p == nil {
		return &core.HandlerResult{
			Response: core.NewEphemeralResponse("This long rest prompt has expired."),
		}, nil
	}
	if p.userID != ctx.UserID {
		return &core.HandlerResult{
			Response: core.NewEphemeralResponse("Only the resting player can answer this prompt."),
		}, nil
	}

	switch customID.Action {
	case ActionConfirm, ActionCancel:
		// take makes a double click land on the expired branch
		if b.take(p.id) == nil {
			return &core.HandlerResult{
				Response: core.NewEphemeralResponse("This long rest prompt has expired."),
			}, nil
		}

		p.mu.Lock()
		a := answer{confirmed: customID.Action == ActionConfirm, newDay: p.newDay}
		p.closed = true
		p.mu.Unlock()
		p.answers <- a

		content := "💤 Finishing the long rest..."
		if !a.confirmed {
			content = "🚫 Long rest cancelled."
		}
		return &core.HandlerResult{Response: core.NewResponse(content).AsUpdate()}, nil

	case ActionNewDay:
		if err := p.toggleNewDay(); err != nil {
			return nil, err
		}
		return &core.HandlerResult{Response: p.render().AsUpdate()}, nil

	case ActionRoll:
		if len(customID.Args) == 0 {
			return nil, dnderr.InvalidArgument("roll button is missing the hit die")
		}
		denomination, err := strconv.Atoi(customID.Args[0])
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid hit die '%s'", customID.Args[0])
		}
		if err := p.roll(ctx.Context, denomination); err != nil {
			return nil, err
		}
		return &core.HandlerResult{Response: p.render().AsUpdate()}, nil
	}

	return nil, dnderr.InvalidArgumentf("unknown long rest action '%s'", customID.Action)
}

// close waits out an in-flight roll so the rest never resumes while the
// character is being changed
func (p *pendingRest) close(b *ButtonConfirmer) {
	b.remove(p.id)
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *pendingRest) toggleNewDay() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return dnderr.InvalidArgument("this long rest prompt has expired")
	}
	p.newDay = !p.newDay
	return nil
}

func (p *pendingRest) roll(ctx context.Context, denomination int) error {
	if !p.req.CanRoll || p.req.RollHitDie == nil {
		return dnderr.InvalidArgument("hit dice are rolled automatically for this rest")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return dnderr.InvalidArgument("this long rest prompt has expired")
	}

	result, err := p.req.RollHitDie(ctx, denomination)
	if err != nil {
		return err
	}
	p.rolls = append(p.rolls, result)
	log.Printf("Confirmer: %s rolled d%d for %d", p.req.Character.ID, result.Denomination, result.Healed)
	return nil
}

// render builds the prompt from the current character state
func (p *pendingRest) render() *core.Response {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.req.Character
	embed := builders.NewRestEmbed(fmt.Sprintf("🛏️ %s is taking a long rest", c.Name))
	embed.AddHitPoints(c.HP.Value, c.HP.Max, c.HP.Temp).
		AddHitDice(c.HitDice(), c.MaxHitDice())

	if p.req.PromptNewDay {
		embed.AddField("🌅 New day", yesNo(p.newDay), true)
	}

	if len(p.rolls) > 0 {
		lines := make([]string, 0, len(p.rolls))
		for _, r := range p.rolls {
			lines = append(lines, fmt.Sprintf("d%d: %d %+d → healed %d", r.Denomination, r.Roll, r.Bonus, r.Healed))
		}
		embed.AddField("Hit dice rolled", strings.Join(lines, "\n"), false)
	}

	description := "Confirm to finish the rest."
	if p.req.CanRoll {
		description = "Spend hit dice before you finish the rest."
	}
	embed.Description(description)

	components := builders.NewComponentBuilder(Domain).
		SuccessButton("Rest", ActionConfirm, p.id).
		DangerButton("Cancel", ActionCancel, p.id)
	if p.req.PromptNewDay {
		components.SecondaryButton("New day: "+yesNo(p.newDay), ActionNewDay, p.id)
	}

	if p.req.CanRoll {
		components.NewRow()
		for _, class := range c.Classes() {
			remaining := class.HitDice.Remaining()
			label := fmt.Sprintf("Roll d%d (%d left)", class.HitDice.Denomination, remaining)
			if remaining == 0 {
				components.DisabledButton(label, discordgo.SecondaryButton)
				continue
			}
			components.PrimaryButton(label, ActionRoll, p.id, strconv.Itoa(class.HitDice.Denomination))
		}
	}

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

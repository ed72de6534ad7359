package handlers

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/builders"
	"github.com/KirkDiggler/dnd-long-rest/internal/events"
	"github.com/KirkDiggler/dnd-long-rest/internal/uuid"
)

// ChannelSender posts messages to a channel. *discordgo.Session satisfies it.
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SummaryListener posts the chat card of a finished or abandoned long rest to
// the channel the rest was started from
type SummaryListener struct {
	sender        ChannelSender
	uuidGenerator uuid.Generator

	mu sync.Mutex
	// routes maps the origin of a rest to its channel
	routes map[string]string
}

// NewSummaryListener creates a summary listener
func NewSummaryListener(sender ChannelSender) *SummaryListener {
	if sender == nil {
		panic("channel sender is required")
	}
	return &SummaryListener{
		sender:        sender,
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		routes:        make(map[string]string),
	}
}

// Track opens a route to channelID and returns the origin to pass with the rest
func (l *SummaryListener) Track(channelID string) string {
	origin := l.uuidGenerator.New()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.routes[origin] = channelID
	return origin
}

// Untrack closes the route of origin
func (l *SummaryListener) Untrack(origin string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.routes, origin)
}

func (l *SummaryListener) channel(origin string) string {
	if origin == "" {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.routes[origin]
}

func (l *SummaryListener) ID() string    { return "discord_rest_summary" }
func (l *SummaryListener) Priority() int { return events.PriorityNotification }

// HandleEvent posts the summary. Send failures are logged, the rest is
// already persisted.
func (l *SummaryListener) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.LongRestCompletedEvent:
		if e.Chat && e.Result != nil {
			l.postCompleted(e)
		}
	case *events.LongRestAbortedEvent:
		if e.Chat {
			l.postAborted(e)
		}
	}
	return nil
}

func (l *SummaryListener) postCompleted(completed *events.LongRestCompletedEvent) {
	c := completed.GetCharacter()
	if c == nil {
		return
	}
	channelID := l.channel(completed.Origin)
	if channelID == "" {
		return
	}

	result := completed.Result
	title := fmt.Sprintf("🌙 %s finished a long rest", c.Name)
	if !result.NewDay {
		title = fmt.Sprintf("🌙 %s finished a long rest (same day)", c.Name)
	}

	embed := builders.NewRestEmbed(title).
		AddHitPoints(c.HP.Value, c.HP.Max, c.HP.Temp).
		AddHitDice(c.HitDice(), c.MaxHitDice()).
		AddDelta("HP regained", result.DeltaHitPoints).
		AddDelta("Hit dice", result.DeltaHitDice)

	if n := len(result.ItemUpdates); n > 0 {
		embed.AddField("Items refreshed", fmt.Sprintf("%d", n), true)
	}
	embed.Footer(fmt.Sprintf("Rest %s", result.ID))

	l.send(c.ID, channelID, embed.Build())
}

func (l *SummaryListener) postAborted(aborted *events.LongRestAbortedEvent) {
	c := aborted.GetCharacter()
	if c == nil {
		return
	}
	channelID := l.channel(aborted.Origin)
	if channelID == "" {
		return
	}

	embed := builders.NewRestEmbed(fmt.Sprintf("🚫 %s cut the long rest short", c.Name)).
		AddHitPoints(c.HP.Value, c.HP.Max, c.HP.Temp).
		AddHitDice(c.HitDice(), c.MaxHitDice())
	if out := aborted.Output; out != nil {
		embed.AddDelta("HP regained", out.HitPointsRecovered).
			AddDelta("Hit dice", out.HitDicePreRecovered)
	}
	embed.Footer("Recovery before the prompt was kept")

	l.send(c.ID, channelID, embed.Build())
}

func (l *SummaryListener) send(characterID, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := l.sender.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Summary: failed to post rest summary for %s to %s: %v", characterID, channelID, err)
	}
}

var _ events.EventListener = (*SummaryListener)(nil)

package builders_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/builders"
	"github.com/KirkDiggler/dnd-long-rest/internal/discord/v2/core"
)

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := builders.NewComponentBuilder("longrest")
	for i := 0; i < 6; i++ {
		b.SecondaryButton("d", "roll", "pending-1", "10")
	}
	rows := b.Build()
	require.Len(t, rows, 2)

	first := rows[0].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 5)
	second := rows[1].(discordgo.ActionsRow)
	assert.Len(t, second.Components, 1)

	button := first.Components[0].(discordgo.Button)
	parsed, err := core.ParseCustomID(button.CustomID)
	require.NoError(t, err)
	assert.Equal(t, "longrest", parsed.Domain)
	assert.Equal(t, "roll", parsed.Action)
	assert.Equal(t, "pending-1", parsed.Target)
	assert.Equal(t, []string{"10"}, parsed.Args)
}

func TestComponentBuilder_EmptyBuildsNothing(t *testing.T) {
	assert.Empty(t, builders.NewComponentBuilder("longrest").NewRow().Build())
}

func TestRestEmbed(t *testing.T) {
	embed := builders.NewRestEmbed("Long Rest").
		AddHitPoints(44, 44, 0).
		AddHitDice(3, 5).
		AddDelta("HP", 35).
		AddDelta("Hit Dice", 0).
		Build()

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "44/44", embed.Fields[0].Value)
	assert.Equal(t, "3/5", embed.Fields[1].Value)
	assert.Equal(t, "+35", embed.Fields[2].Value)
}

//go:build integration
// +build integration

package dnd5e_test

import (
	"net/http"
	"testing"

	"github.com/KirkDiggler/dnd-long-rest/internal/clients/dnd5e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetClass_Integration(t *testing.T) {
	// This test requires network access to the D&D 5e API
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
	})
	require.NoError(t, err)

	tests := map[string]int{
		"barbarian": 12,
		"fighter":   10,
		"cleric":    8,
		"wizard":    6,
	}
	for key, hitDie := range tests {
		class, err := client.GetClass(key)
		require.NoError(t, err, key)
		assert.Equal(t, hitDie, class.HitDie, key)
	}
}

func TestClient_ListClasses_Integration(t *testing.T) {
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
	})
	require.NoError(t, err)

	classes, err := client.ListClasses()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(classes), 12, "the SRD has twelve classes")
	for _, class := range classes {
		assert.NotEmpty(t, class.Key)
	}
}

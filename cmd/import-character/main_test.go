package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/services/importer"
)

func TestParseClasses(t *testing.T) {
	levels, err := parseClasses("Fighter:3, wizard:2")
	require.NoError(t, err)
	assert.Equal(t, []importer.ClassLevels{{Key: "fighter", Levels: 3}, {Key: "wizard", Levels: 2}}, levels)

	for _, bad := range []string{"fighter", "fighter:x"} {
		_, err := parseClasses(bad)
		assert.True(t, dnderr.IsInvalidArgument(err), bad)
	}
}

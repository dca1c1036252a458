package accordion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIDs(t *testing.T) {
	ids := DeriveIDs("acc-7", 3)

	assert.Equal(t, "acc-7-3", ids.Item)
	assert.Equal(t, "panel-acc-7-3", ids.Panel)
	assert.Equal(t, "button-acc-7-3", ids.Button)
}

func TestDeriveIDs_Deterministic(t *testing.T) {
	first := DeriveIDs("root", 2)
	second := DeriveIDs("root", 2)
	assert.Equal(t, first, second)
}

func TestDeriveIDs_UniquePerIndex(t *testing.T) {
	seen := make(map[string]bool)
	for index := 0; index < 10; index++ {
		ids := DeriveIDs("root", index)
		assert.False(t, seen[ids.Item], "duplicate item id %q", ids.Item)
		assert.False(t, seen[ids.Panel], "duplicate panel id %q", ids.Panel)
		assert.False(t, seen[ids.Button], "duplicate button id %q", ids.Button)
		seen[ids.Item] = true
		seen[ids.Panel] = true
		seen[ids.Button] = true
	}
}

func TestNewRootID(t *testing.T) {
	first := NewRootID()
	second := NewRootID()

	assert.True(t, strings.HasPrefix(first, "acc-"))
	assert.NotEqual(t, first, second, "root ids must be unique")
}

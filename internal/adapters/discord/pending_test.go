package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptsClaim(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ps := newPrompts()
	ps.now = func() time.Time { return now }

	token := ps.add(&prompt{kind: promptSetupConfirm, userID: "u1", guildID: "g1"}, time.Minute)

	_, res := ps.claim(token, "u2")
	assert.Equal(t, claimForeign, res)
	assert.Equal(t, 1, ps.len(), "a foreign click leaves the prompt in place")

	p, res := ps.claim(token, "u1")
	require.Equal(t, claimOK, res)
	assert.Equal(t, "g1", p.guildID)

	_, res = ps.claim(token, "u1")
	assert.Equal(t, claimMissing, res, "a prompt is answered once")
	_, res = ps.claim("unknown", "u1")
	assert.Equal(t, claimMissing, res)
}

func TestPromptsExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	ps := newPrompts()
	ps.now = func() time.Time { return now }

	short := ps.add(&prompt{kind: promptSetupConfirm, userID: "u1"}, 60*time.Second)
	ps.add(&prompt{kind: promptUniverseSelect, userID: "u1"}, 120*time.Second)
	assert.NotEqual(t, "", short)

	now = now.Add(60 * time.Second)
	_, res := ps.claim(short, "u1")
	assert.Equal(t, claimMissing, res, "the deadline itself is too late")

	expired := ps.expired()
	require.Len(t, expired, 1)
	assert.Equal(t, promptSetupConfirm, expired[0].kind)
	assert.Equal(t, 1, ps.len())

	now = now.Add(time.Hour)
	expired = ps.expired()
	require.Len(t, expired, 1)
	assert.Equal(t, promptUniverseSelect, expired[0].kind)
	assert.Equal(t, 0, ps.len())
	assert.Empty(t, ps.expired())
}

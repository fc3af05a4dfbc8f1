package discord

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/xid"
)

type promptKind int

const (
	promptSetupConfirm promptKind = iota
	promptUniverseSelect
)

// prompt is a message waiting for the command author to click a button or
// pick a universe.
type prompt struct {
	kind        promptKind
	userID      string
	guildID     string
	locale      string
	full        bool
	runSetup    bool
	interaction *discordgo.Interaction
	expiresAt   time.Time
}

type claimResult int

const (
	claimOK claimResult = iota
	claimMissing
	claimForeign
)

// prompts holds the pending prompts by token.
type prompts struct {
	mu    sync.Mutex
	items map[string]*prompt
	now   func() time.Time
}

func newPrompts() *prompts {
	return &prompts{items: make(map[string]*prompt), now: time.Now}
}

// add stores p, expiring after ttl, and returns its token.
func (ps *prompts) add(p *prompt, ttl time.Duration) string {
	token := xid.New().String()
	ps.mu.Lock()
	defer ps.mu.Unlock()
	p.expiresAt = ps.now().Add(ttl)
	ps.items[token] = p
	return token
}

// claim removes and returns the prompt when userID is its author. A prompt
// of another user is left in place.
func (ps *prompts) claim(token, userID string) (*prompt, claimResult) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	p, ok := ps.items[token]
	if !ok || !ps.now().Before(p.expiresAt) {
		return nil, claimMissing
	}
	if p.userID != userID {
		return nil, claimForeign
	}
	delete(ps.items, token)
	return p, claimOK
}

// expired removes and returns every prompt past its deadline.
func (ps *prompts) expired() []*prompt {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	now := ps.now()
	var out []*prompt
	for token, p := range ps.items {
		if !now.Before(p.expiresAt) {
			out = append(out, p)
			delete(ps.items, token)
		}
	}
	return out
}

func (ps *prompts) len() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return len(ps.items)
}

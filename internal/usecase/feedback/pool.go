package feedback

import (
	"fmt"
	"sync"
	"time"
)

// After this many consecutive retryable failures a credential cools down for
// cooldownEscalation times the normal window.
const (
	consecutiveFailureLimit = 3
	cooldownEscalation      = 4
)

type credentialState struct {
	key                 string
	coolingUntil        time.Time
	consecutiveFailures int
}

// CredentialStats is a masked snapshot of one credential's rotation state,
// exposed for health reporting and logs. The key itself never leaves the pool.
type CredentialStats struct {
	Index               int        `json:"index"`
	Key                 string     `json:"key"`
	Available           bool       `json:"available"`
	CoolingUntil        *time.Time `json:"cooling_until,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}

// CredentialPool is the ordered set of provider API keys with per-credential
// cooldown state. It lives for the whole process, is guarded by a single
// mutex, and is never persisted. Selection is round-robin with continuation:
// each acquisition starts where the previous one left off.
type CredentialPool struct {
	mu            sync.Mutex
	creds         []*credentialState
	cursor        int
	cooldown      time.Duration
	quotaCooldown time.Duration
	now           func() time.Time
}

// NewCredentialPool creates a pool from ordered keys. The order defines the
// rotation order. At least one key is required.
func NewCredentialPool(keys []string, cooldown, quotaCooldown time.Duration) (*CredentialPool, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("credential pool requires at least one key")
	}
	creds := make([]*credentialState, 0, len(keys))
	for _, k := range keys {
		creds = append(creds, &credentialState{key: k})
	}
	return &CredentialPool{
		creds:         creds,
		cooldown:      cooldown,
		quotaCooldown: quotaCooldown,
		now:           time.Now,
	}, nil
}

// Size returns the number of credentials in the pool.
func (p *CredentialPool) Size() int {
	return len(p.creds)
}

// Acquire returns the index and key of the first credential whose cooldown
// has elapsed, scanning from the rotation cursor. The cursor advances past
// the chosen credential so the next acquisition continues the rotation.
// Returns false when every credential is cooling down.
func (p *CredentialPool) Acquire() (int, string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for i := 0; i < len(p.creds); i++ {
		idx := (p.cursor + i) % len(p.creds)
		if p.creds[idx].coolingUntil.After(now) {
			continue
		}
		p.cursor = (idx + 1) % len(p.creds)
		return idx, p.creds[idx].key, true
	}
	return 0, "", false
}

// MarkSuccess clears the failure streak of a credential.
func (p *CredentialPool) MarkSuccess(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.creds) {
		return
	}
	p.creds[index].consecutiveFailures = 0
	p.creds[index].coolingUntil = time.Time{}
}

// MarkRetryable puts a credential on cooldown after a retryable provider
// failure. Quota exhaustion uses the longer quota window; a failure streak
// at the limit escalates the window further.
func (p *CredentialPool) MarkRetryable(index int, quota bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.creds) {
		return
	}
	cred := p.creds[index]
	cred.consecutiveFailures++

	window := p.cooldown
	if quota {
		window = p.quotaCooldown
	}
	if cred.consecutiveFailures >= consecutiveFailureLimit {
		window *= cooldownEscalation
	}
	cred.coolingUntil = p.now().Add(window)
}

// Stats returns a masked snapshot of every credential for health reporting.
func (p *CredentialPool) Stats() []CredentialStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	stats := make([]CredentialStats, 0, len(p.creds))
	for i, c := range p.creds {
		s := CredentialStats{
			Index:               i,
			Key:                 maskKey(c.key),
			Available:           !c.coolingUntil.After(now),
			ConsecutiveFailures: c.consecutiveFailures,
		}
		if c.coolingUntil.After(now) {
			until := c.coolingUntil
			s.CoolingUntil = &until
		}
		stats = append(stats, s)
	}
	return stats
}

// maskKey keeps just enough of a key to identify it in logs.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

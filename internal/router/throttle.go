package router

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"golang.org/x/crypto/argon2"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// LoginThrottle counts failed admin logins per client address. Addresses are
// never stored raw: each one is reduced to a salted argon2 hash before it
// becomes a cache key. Entries expire on their own after the window passes.
type LoginThrottle struct {
	attempts *ristretto.Cache[string, int]
	salt     []byte
	mu       sync.Mutex
}

func NewLoginThrottle(salt []byte) (*LoginThrottle, error) {
	attempts, err := ristretto.NewCache(&ristretto.Config[string, int]{
		NumCounters:            10000,
		MaxCost:                1 << 20, // 1 MB
		BufferItems:            64,
		TtlTickerDurationInSec: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to initialize cache for login attempts: %w", err)
	}

	return &LoginThrottle{attempts: attempts, salt: salt}, nil
}

func (t *LoginThrottle) key(addr string) string {
	return base64.RawStdEncoding.EncodeToString(argon2.IDKey([]byte(addr), t.salt, 1, 64*1024, 4, 32))
}

func (t *LoginThrottle) Blocked(addr string) bool {
	count, _ := t.attempts.Get(t.key(addr))
	return count >= loginAttemptLimit
}

// Fail records one failed attempt and restarts the expiry window.
func (t *LoginThrottle) Fail(addr string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := t.key(addr)
	count, _ := t.attempts.Get(key)
	t.attempts.SetWithTTL(key, count+1, 1, loginAttemptWindow)
	t.attempts.Wait()
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(addr string) {
	t.attempts.Del(t.key(addr))
}

func (t *LoginThrottle) Close() {
	t.attempts.Close()
}

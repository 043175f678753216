package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt implements Hash with bcrypt plus an optional pepper. The pepper is
// appended to every plaintext before hashing, so digests are only verifiable
// by a process holding the same configured secret.
type Bcrypt struct {
	cost   int
	pepper string
}

// NewBcrypt returns a bcrypt-based hasher. A cost outside bcrypt's valid
// range falls back to bcrypt.DefaultCost.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost, pepper: pepper}
}

func (h *Bcrypt) withPepper(plaintext string) []byte {
	return []byte(plaintext + h.pepper)
}

// Hash returns the bcrypt digest of the peppered plaintext.
func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(h.withPepper(plaintext), h.cost)
}

// Verify reports whether the peppered plaintext matches the stored digest.
func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), h.withPepper(plaintext)) == nil
}

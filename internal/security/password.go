package security

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher wraps bcrypt with a bounded concurrency budget so CPU-bound hashing
// cannot starve the request goroutines under load.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

func NewHasher(cost, maxConcurrent int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Hasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Hash produces a salted bcrypt hash of plain. Two calls on the same input
// return different hashes. Blocks while the concurrency budget is exhausted,
// honouring ctx cancellation.
func (h *Hasher) Hash(ctx context.Context, plain string) (string, error) {
	err := h.sem.Acquire(ctx, 1)

	if err != nil {
		return "", err
	}

	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// helper that compares a bcrypt hash with a plaintext password.

func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

package security

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// tests use MinCost: hashing at cost 10 is deliberately slow

func TestHashProducesDifferentOutputsForSameInput(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	first, err := h.Hash(ctx, "secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	second, err := h.Hash(ctx, "secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}

	if first == "secret1" || second == "secret1" {
		t.Fatal("hash equals plaintext")
	}
}

func TestHashVerifiesWithCheckPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)

	hash, err := h.Hash(context.Background(), "secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if err := CheckPassword(hash, "secret1"); err != nil {
		t.Fatalf("check: %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestHasherBoundedConcurrencyDoesNotDeadlock(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := h.Hash(context.Background(), "secret1"); err != nil {
				t.Errorf("hash: %v", err)
			}
		}()
	}

	wg.Wait()
}

func TestHashHonoursCancelledContext(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Hash(ctx, "secret1"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestNewHasherClampsBadCost(t *testing.T) {
	h := NewHasher(99, 0)

	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost not clamped: %d", h.cost)
	}
}

package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

const (
	idPrefix       = "BZ-"
	idDigits       = 6
	idWideDigits   = 10
	attemptsPerLen = 16
)

// IDGenerator issues order ids of the form BZ-NNNNNN from crypto/rand.
// Ids never start with a zero digit.
// It remembers every id it has issued or been told about and retries on
// collision; when the six digit space keeps colliding it widens to ten.
type IDGenerator struct {
	mu     sync.Mutex
	issued map[string]struct{}
	digits int
	read   func(max *big.Int) (*big.Int, error)
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		issued: make(map[string]struct{}),
		digits: idDigits,
		read: func(max *big.Int) (*big.Int, error) {
			return rand.Int(rand.Reader, max)
		},
	}
}

// Reserve marks ids as taken, e.g. seeded demo orders.
func (g *IDGenerator) Reserve(ids ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range ids {
		g.issued[id] = struct{}{}
	}
}

func (g *IDGenerator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for g.digits <= idWideDigits {
		// Draw from [10^(d-1), 10^d).
		lo := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(g.digits-1)), nil)
		span := new(big.Int).Mul(lo, big.NewInt(9))
		for i := 0; i < attemptsPerLen; i++ {
			n, err := g.read(span)
			if err != nil {
				return "", fmt.Errorf("read random order id: %w", err)
			}
			id := idPrefix + n.Add(n, lo).String()
			if _, taken := g.issued[id]; taken {
				continue
			}
			g.issued[id] = struct{}{}
			return id, nil
		}
		if g.digits == idWideDigits {
			break
		}
		g.digits = idWideDigits
	}
	return "", ErrIDSpaceExhausted
}

package resolver

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tokenguess-backend/internal/entity"
)

// Random picks the winning token uniformly from the board.
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom - seed 0 seeds from the current time.
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (that *Random) Resolve() (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(entity.BoardTokens) + 1, nil
}

// Fixed always resolves to the same token. Range is checked by entity.StartNew.
type Fixed int

func (that Fixed) Resolve() (int, error) {
	return int(that), nil
}

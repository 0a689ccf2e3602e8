package matcher

import (
	"math/rand"
	"sync"
)

// Random picks an index in [0,n). Implementations must be safe for
// concurrent use.
type Random interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int { return rand.Intn(n) }

type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandom returns a deterministic Random for the given seed.
func NewSeededRandom(seed int64) Random {
	return &lockedRandom{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func pick(r Random, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.Intn(len(options))]
}

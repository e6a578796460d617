package intern

import "sync"

// Pool maps text to its canonical instance. Safe for concurrent use.
type Pool struct {
	mu   sync.Mutex
	pool map[string]string
}

// New creates an empty pool sized for roughly capacity distinct strings.
func New(capacity int) *Pool {
	return &Pool{
		pool: make(map[string]string, capacity),
	}
}

// Intern returns the canonical version of s.
// The first call with a given text stores s itself; later calls return that
// stored instance.
func (p *Pool) Intern(s string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if interned, ok := p.pool[s]; ok {
		return interned
	}

	p.pool[s] = s

	return s
}

// Size returns the number of distinct strings held by the pool.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.pool)
}

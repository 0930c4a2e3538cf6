// Package pool provides object pooling for go-pararg
// Used by internal/fuzzy to reuse the edit-distance rows between suggestions
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T)     // Optional reset function called before reuse
	maxSize int          // Maximum objects to keep (0 = unlimited)
	count   int64        // Current pool size (approximate)
	mutex   sync.RWMutex // Protects count
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.maxSize > 0 {
		p.mutex.Lock()
		if p.count > 0 {
			p.count--
		}
		p.mutex.Unlock()
	}
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	if p.maxSize > 0 {
		p.mutex.RLock()
		current := p.count
		p.mutex.RUnlock()

		if current >= int64(p.maxSize) {
			return
		}
	}

	p.pool.Put(obj)

	if p.maxSize > 0 {
		p.mutex.Lock()
		p.count++
		p.mutex.Unlock()
	}
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// RowPool hands out int rows for dynamic-programming tables, bucketed by
// capacity. Flag names are short, so the buckets stop at 256 cells.
type RowPool struct {
	pools   map[int]*Pool[[]int]
	buckets []int
}

// NewRowPool creates a row pool with capacity-based buckets
func NewRowPool() *RowPool {
	rp := &RowPool{
		pools:   make(map[int]*Pool[[]int]),
		buckets: []int{16, 32, 64, 128, 256},
	}

	for _, bucket := range rp.buckets {
		capacity := bucket // Capture for closure
		rp.pools[capacity] = NewPool(func() *[]int {
			row := make([]int, 0, capacity)
			return &row
		})
	}

	return rp
}

// Get returns a zeroed row of exactly n cells
func (rp *RowPool) Get(n int) *[]int {
	capacity, ok := rp.findBucket(n)
	if !ok {
		row := make([]int, n)
		return &row
	}

	row := rp.pools[capacity].Get()
	*row = (*row)[:n]
	clear(*row)
	return row
}

// Put returns a row to its bucket. Rows that did not come from a bucket
// are dropped.
func (rp *RowPool) Put(row *[]int) {
	if row == nil {
		return
	}
	if p, ok := rp.pools[cap(*row)]; ok {
		*row = (*row)[:0]
		p.Put(row)
	}
}

// findBucket finds the smallest bucket able to hold n cells
func (rp *RowPool) findBucket(n int) (int, bool) {
	for _, bucket := range rp.buckets {
		if bucket >= n {
			return bucket, true
		}
	}
	return 0, false
}

// GlobalRowPool is shared by every matcher. sync.Pool makes it safe for
// concurrent sessions even though a single session is not.
var GlobalRowPool = NewRowPool()

// GetRow retrieves a zeroed row of n cells from the global pool
func GetRow(n int) *[]int {
	return GlobalRowPool.Get(n)
}

// PutRow returns a row to the global pool
func PutRow(row *[]int) {
	GlobalRowPool.Put(row)
}

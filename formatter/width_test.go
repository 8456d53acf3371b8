package formatter

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestModuleWidth_GetAndGrow(t *testing.T) {
	t.Parallel()

	var w ModuleWidth
	assert.Equal(t, 0, w.GetAndGrow(5))
	assert.Equal(t, 5, w.Load())
	assert.Equal(t, 5, w.GetAndGrow(3), "smaller candidates return the current width")
	assert.Equal(t, 5, w.Load())
	assert.Equal(t, 5, w.GetAndGrow(9))
	assert.Equal(t, 9, w.Load())
}

func TestModuleWidth_NonIncreasingCandidatesAreNoOps(t *testing.T) {
	t.Parallel()

	var w ModuleWidth
	w.GetAndGrow(20)
	for n := 20; n >= 0; n-- {
		assert.Equal(t, 20, w.GetAndGrow(n))
	}
	assert.Equal(t, 20, w.Load())
}

func TestModuleWidth_IncreasingCandidatesEndAtLast(t *testing.T) {
	t.Parallel()

	var w ModuleWidth
	prev := 0
	for n := 1; n <= 50; n++ {
		assert.Equal(t, prev, w.GetAndGrow(n))
		prev = n
	}
	assert.Equal(t, 50, w.Load())
}

func TestModuleWidth_ConcurrentMax(t *testing.T) {
	t.Parallel()

	const goroutines = 32
	var (
		w  ModuleWidth
		wg sync.WaitGroup
		mu sync.Mutex
	)
	maxSeen := 0
	start := make(chan struct{})

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			<-start
			localMax := 0
			last := 0
			for i := 0; i < 500; i++ {
				n := r.Intn(1000)
				if n > localMax {
					localMax = n
				}
				prev := w.GetAndGrow(n)
				// Each caller observes a non-decreasing width.
				assert.GreaterOrEqual(t, prev, last)
				last = prev
			}
			mu.Lock()
			if localMax > maxSeen {
				maxSeen = localMax
			}
			mu.Unlock()
		}(int64(g))
	}
	close(start)
	wg.Wait()

	assert.Equal(t, maxSeen, w.Load())
}

func TestModuleWidth_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("concurrent callers leave the maximum", prop.ForAll(
		func(lengths []int) bool {
			var (
				w  ModuleWidth
				wg sync.WaitGroup
			)
			want := 0
			for _, n := range lengths {
				if n > want {
					want = n
				}
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					w.GetAndGrow(n)
				}(n)
			}
			wg.Wait()
			return w.Load() == want
		},
		gen.SliceOf(gen.IntRange(0, 256)),
	))

	properties.Property("width never decreases", prop.ForAll(
		func(lengths []int) bool {
			var w ModuleWidth
			last := 0
			for _, n := range lengths {
				w.GetAndGrow(n)
				cur := w.Load()
				if cur < last {
					return false
				}
				last = cur
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 256)),
	))

	properties.TestingRun(t)
}

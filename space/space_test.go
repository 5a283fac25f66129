package space

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConstRezeroes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewConst[float64](3)
	assert.Equal(t, 3, s.Len())
	buf := s.Workspace()
	assert.Len(t, buf, 3)
	buf[0], buf[1], buf[2] = 1, 2, 3
	s.Recycle(buf)
	for i := 0; i < 10; i++ {
		b := s.Workspace()
		assert.Equal(t, []float64{0, 0, 0}, b)
		b[1] = 42
		s.Recycle(b)
	}
}

func TestConstZeroValue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var s Const[int]
	assert.Equal(t, 0, s.Len())
	assert.Len(t, s.Workspace(), 0)
	s.Recycle(nil)
}

func TestConstNotShared(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewConst[int](4)
	var wg sync.WaitGroup
	errs := make(chan int, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				b := s.Workspace()
				for i := range b {
					if b[i] != 0 {
						errs <- id
						return
					}
					b[i] = id + 1
				}
				for i := range b {
					if b[i] != id+1 {
						errs <- id
						return
					}
				}
				s.Recycle(b)
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	assert.Len(t, errs, 0)
}

func TestDynamic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewDynamic[float64](5)
	assert.Equal(t, 5, d.Len())
	a, b := d.Workspace(), d.Workspace()
	a[0] = 1
	assert.Equal(t, 0.0, b[0])
	d.Recycle(a)
	assert.Equal(t, 0, NewDynamic[int](-2).Len())
}

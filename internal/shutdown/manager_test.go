package shutdown

import (
	"sync"
	"testing"
	"time"

	"pokedex/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

type component struct {
	name  string
	rec   *recorder
	block chan struct{}
}

func (c *component) Shutdown() {
	if c.block != nil {
		<-c.block
	}
	c.rec.add(c.name)
}

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	rec := &recorder{}
	m := NewManager(logger.Nop(), time.Second)
	m.Register("first", &component{name: "first", rec: rec})
	m.Register("second", &component{name: "second", rec: rec})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, rec.order)
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimesOutStuckComponent(t *testing.T) {
	rec := &recorder{}
	block := make(chan struct{})
	defer close(block)

	m := NewManager(logger.Nop(), 20*time.Millisecond)
	m.Register("stuck", &component{name: "stuck", rec: rec, block: block})
	m.Register("fine", &component{name: "fine", rec: rec})

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), time.Second)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"fine"}, rec.order)
}

func TestUnregisteredComponentIsNotStopped(t *testing.T) {
	rec := &recorder{}
	closed := &component{name: "closed", rec: rec}
	m := NewManager(logger.Nop(), time.Second)
	m.Register("kept", &component{name: "kept", rec: rec})
	m.Register("closed", closed)

	assert.True(t, m.Unregister(closed))
	assert.False(t, m.Unregister(closed))
	assert.Equal(t, 1, m.Registered())

	m.Shutdown()
	assert.Equal(t, []string{"kept"}, rec.order)
}

package pusher

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	mu     sync.Mutex
	pushed []string
}

func (s *sink) push(messages ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushed = append(s.pushed, messages...)
	return nil
}

func (s *sink) get() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.pushed...)
}

func TestPushAll(t *testing.T) {
	var s sink
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages("a", "b")
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b"}, s.get())

	// the buffer is empty after a successful push
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b"}, s.get())
}

func TestPushAllKeepsMessagesOnError(t *testing.T) {
	var s sink
	down := true
	p := NewPusher(WithPushLogic(func(m ...string) error {
		if down {
			return errors.New("down")
		}
		return s.push(m...)
	}))
	p.AddMessages("a")
	assert.Error(t, p.PushAll())

	down = false
	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a"}, s.get())
}

func TestStopFlushes(t *testing.T) {
	var s sink
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[string](time.Hour))
	p.Start()
	p.AddMessages("a")
	p.Stop()
	assert.Equal(t, []string{"a"}, s.get())

	// a second Stop is harmless
	p.Stop()
}

func TestTickerPushes(t *testing.T) {
	var s sink
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[string](10*time.Millisecond))
	p.Start()
	defer p.Stop()
	p.AddMessages("a")

	assert.Eventually(t, func() bool { return len(s.get()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestErrorHandler(t *testing.T) {
	errs := make(chan error, 1)
	p := NewPusher(
		WithPushLogic(func(...string) error { return errors.New("down") }),
		WithErrorHandler[string](func(err error) { errs <- err }),
		WithPushInterval[string](time.Hour),
	)
	p.Start()
	p.AddMessages("a")
	p.Stop()
	assert.EqualError(t, <-errs, "down")
}

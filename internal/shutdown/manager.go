package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pokedex/internal/logger"
)

// Shutdownable is anything with work to stop before the process exits.
type Shutdownable interface {
	Shutdown()
}

type namedComponent struct {
	name      string
	component Shutdownable
}

// Manager stops registered components in reverse registration order, once.
type Manager struct {
	components []namedComponent
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

// NewManager creates a manager that gives each component timeout to stop.
func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	return &Manager{
		logger:  log,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// Register adds a component to be stopped on shutdown.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Unregister drops a component that has already been stopped elsewhere. It
// reports whether the component was registered.
func (m *Manager) Unregister(component Shutdownable) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.components {
		if entry.component == component {
			m.components = append(m.components[:i], m.components[i+1:]...)
			return true
		}
	}
	return false
}

// Registered returns the number of components still waiting for shutdown.
func (m *Manager) Registered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.components)
}

// Listen runs onSignal after shutting down when SIGINT or SIGTERM arrives.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
		signal.Stop(sigChan)
	}()
}

// Shutdown stops every registered component, newest first. Later calls
// return immediately.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		entry := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			entry.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": entry.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": entry.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Done is closed once Shutdown has started.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Package secret holds the process-wide JWT signing key.
package secret

import (
	"sync"

	"github.com/luconnect/luconnect/internal/common"
)

// KeySize is the number of random bytes in a generated secret.
const KeySize = 32

// Manager returns the signing secret. A configured value is used as is;
// otherwise a random key is generated on first access and kept for the
// lifetime of the process. Restarting the process without a configured
// secret invalidates every token issued before.
type Manager struct {
	configured string

	once      sync.Once
	secret    []byte
	generated bool
	err       error

	generate func(size int) (string, error)
}

// NewManager returns a Manager for the configured secret. An empty value
// makes Get generate one.
func NewManager(configured string) *Manager {
	return &Manager{configured: configured, generate: common.MakeRandHexString}
}

// Get returns the active secret. It is safe for concurrent use and always
// returns the same bytes once it has succeeded. Callers must not modify the
// returned slice.
func (m *Manager) Get() ([]byte, error) {
	m.once.Do(func() {
		if m.configured != "" {
			m.secret = []byte(m.configured)
			return
		}

		key, err := m.generate(KeySize)
		if err != nil {
			m.err = err
			return
		}
		m.secret = []byte(key)
		m.generated = true
	})

	return m.secret, m.err
}

// Generated reports whether Get produced a random secret rather than
// returning a configured one.
func (m *Manager) Generated() bool {
	_, _ = m.Get()
	return m.generated
}

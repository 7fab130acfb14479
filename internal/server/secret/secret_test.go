package secret

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Configured(t *testing.T) {
	m := NewManager("from-env")

	s, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, []byte("from-env"), s)
	assert.False(t, m.Generated())
}

func TestManager_GeneratesOnce(t *testing.T) {
	m := NewManager("")

	var calls atomic.Int32
	inner := m.generate
	m.generate = func(size int) (string, error) {
		calls.Add(1)
		return inner(size)
	}

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := m.Get()
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, results[0], 2*KeySize, "hex encoding of a 256-bit key")
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
	assert.True(t, m.Generated())
}

func TestManager_DistinctAcrossInstances(t *testing.T) {
	a, err := NewManager("").Get()
	require.NoError(t, err)
	b, err := NewManager("").Get()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestManager_GenerateError(t *testing.T) {
	m := NewManager("")
	boom := errors.New("entropy exhausted")
	m.generate = func(int) (string, error) { return "", boom }

	_, err := m.Get()
	assert.ErrorIs(t, err, boom)
	_, err = m.Get()
	assert.ErrorIs(t, err, boom)
	assert.False(t, m.Generated())
}

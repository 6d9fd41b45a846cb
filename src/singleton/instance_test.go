package singleton_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designpatterns/src/singleton"
)

func TestInstanceIsShared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*singleton.Reference, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = singleton.Instance()
		}(i)
	}
	wg.Wait()
	for _, ref := range got {
		assert.Same(t, got[0], ref)
	}
}

func TestNewIsDistinct(t *testing.T) {
	assert.NotSame(t, singleton.New(), singleton.New())
	assert.NotSame(t, singleton.Instance(), singleton.New())
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, singleton.Demo(&out))
	assert.Equal(t, "true\nfalse\n", out.String())
}

package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyStore(t *testing.T) {
	t.Run("empty until set", func(t *testing.T) {
		assert.Equal(t, "", NewPolicyStore().Current())
	})

	t.Run("stores text as-is under the cap", func(t *testing.T) {
		store := NewPolicyStore()
		store.SetActive("no deploys on friday")
		assert.Equal(t, "no deploys on friday", store.Current())
	})

	t.Run("truncates to first 10000 characters", func(t *testing.T) {
		store := NewPolicyStore()
		long := strings.Repeat("x", 12000)
		store.SetActive(long)
		assert.Equal(t, long[:10000], store.Current())
	})

	t.Run("last writer wins", func(t *testing.T) {
		store := NewPolicyStore()
		store.SetActive("old law")
		store.SetActive("new law")
		assert.Equal(t, "new law", store.Current())
	})

	t.Run("concurrent readers never observe a torn snapshot", func(t *testing.T) {
		store := NewPolicyStore()
		old := strings.Repeat("a", 5000)
		updated := strings.Repeat("b", 5000)
		store.SetActive(old)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.SetActive(updated)
		}()

		for i := 0; i < 100; i++ {
			got := store.Current()
			if got != old && got != updated {
				t.Fatalf("observed value that is neither old nor new snapshot")
			}
		}
		wg.Wait()
		assert.Equal(t, updated, store.Current())
	})
}

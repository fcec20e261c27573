package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRepository_Next(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewCounterRepository(tdb.Database)
	ctx := context.Background()

	t.Run("starts at one and increments", func(t *testing.T) {
		tdb.ClearCollection(t, "counters")

		first, err := repo.Next(ctx, "team_codes")
		require.NoError(t, err)
		assert.Equal(t, int64(1), first)

		second, err := repo.Next(ctx, "team_codes")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second)
	})

	t.Run("counters are independent per name", func(t *testing.T) {
		tdb.ClearCollection(t, "counters")

		_, err := repo.Next(ctx, "team_codes")
		require.NoError(t, err)

		other, err := repo.Next(ctx, "other")
		require.NoError(t, err)
		assert.Equal(t, int64(1), other)
	})

	t.Run("concurrent callers receive distinct values", func(t *testing.T) {
		tdb.ClearCollection(t, "counters")

		const workers = 20

		var wg sync.WaitGroup
		results := make(chan int64, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seq, err := repo.Next(ctx, "team_codes")
				assert.NoError(t, err)
				results <- seq
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[int64]bool)
		for seq := range results {
			assert.False(t, seen[seq], "sequence %d issued twice", seq)
			assert.GreaterOrEqual(t, seq, int64(1))
			assert.LessOrEqual(t, seq, int64(workers))
			seen[seq] = true
		}
		assert.Len(t, seen, workers)
	})
}

package rates

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitSkipsFetch(t *testing.T) {
	c := NewCache()
	var calls int32

	fetch := func() (decimal.Decimal, error) {
		atomic.AddInt32(&calls, 1)
		return decimal.NewFromFloat(19.50), nil
	}

	first, err := c.GetOrFetch("15.01.2024", fetch)
	require.NoError(t, err)
	second, err := c.GetOrFetch("15.01.2024", fetch)
	require.NoError(t, err)

	assert.Equal(t, "19.5", first.String())
	assert.True(t, first.Equal(second))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, c.Len())
}

func TestCache_DistinctKeysFetchSeparately(t *testing.T) {
	c := NewCache()
	var calls int32

	fetch := func() (decimal.Decimal, error) {
		atomic.AddInt32(&calls, 1)
		return decimal.NewFromInt(1), nil
	}

	_, err := c.GetOrFetch("15.01.2024", fetch)
	require.NoError(t, err)
	_, err = c.GetOrFetch("16.01.2024", fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 2, c.Len())
}

func TestCache_FailedFetchIsNotCached(t *testing.T) {
	c := NewCache()
	var calls int32

	_, err := c.GetOrFetch("15.01.2024", func() (decimal.Decimal, error) {
		atomic.AddInt32(&calls, 1)
		return decimal.Decimal{}, errors.New("network down")
	})
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	// A later call for the same key retries and may succeed.
	value, err := c.GetOrFetch("15.01.2024", func() (decimal.Decimal, error) {
		atomic.AddInt32(&calls, 1)
		return decimal.NewFromFloat(17.25), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "17.25", value.String())
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, c.Len())
}

func TestCache_ConcurrentMissesShareOneFetch(t *testing.T) {
	c := NewCache()
	var calls int32

	fetch := func() (decimal.Decimal, error) {
		atomic.AddInt32(&calls, 1)
		// Hold the fetch open long enough for every goroutine to pile up.
		time.Sleep(50 * time.Millisecond)
		return decimal.NewFromFloat(19.50), nil
	}

	const goroutines = 20
	var wg sync.WaitGroup
	results := make([]decimal.Decimal, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := c.GetOrFetch("15.01.2024", fetch)
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent misses for one key must share a single fetch")
	for _, value := range results {
		assert.Equal(t, "19.5", value.String())
	}
}

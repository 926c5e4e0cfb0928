package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dsctravel/trip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingFetcher lets a test decide when each GetTrip call completes.
type blockingFetcher struct {
	mu      sync.Mutex
	pending map[string]chan fetchResult
}

type fetchResult struct {
	trip *trip.Trip
	err  error
}

func newBlockingFetcher() *blockingFetcher {
	return &blockingFetcher{pending: make(map[string]chan fetchResult)}
}

func (f *blockingFetcher) GetTrip(ctx context.Context, tripID string) (*trip.Trip, error) {
	f.mu.Lock()
	ch, ok := f.pending[tripID]
	if !ok {
		ch = make(chan fetchResult, 1)
		f.pending[tripID] = ch
	}
	f.mu.Unlock()

	res := <-ch
	return res.trip, res.err
}

func (f *blockingFetcher) resolve(tripID string, t *trip.Trip, err error) {
	f.mu.Lock()
	ch, ok := f.pending[tripID]
	if !ok {
		ch = make(chan fetchResult, 1)
		f.pending[tripID] = ch
	}
	f.mu.Unlock()
	ch <- fetchResult{t, err}
}

func TestSession_LoadSuccess(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	s.Load(context.Background(), "A")
	st := s.State()
	assert.True(t, st.Loading)
	assert.Empty(t, st.Err)

	fetcher.resolve("A", &trip.Trip{TripID: "A"}, nil)

	require.Eventually(t, func() bool {
		return !s.State().Loading
	}, time.Second, 5*time.Millisecond)

	st = s.State()
	assert.Empty(t, st.Err)
	require.NotNil(t, st.Trip)
	assert.Equal(t, "A", st.Trip.TripID)
}

func TestSession_LoadError(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	s.Load(context.Background(), "A")
	fetcher.resolve("A", nil, errors.New("Erro ao buscar viagem. Status 500"))

	require.Eventually(t, func() bool {
		return s.State().Err != ""
	}, time.Second, 5*time.Millisecond)

	st := s.State()
	assert.False(t, st.Loading)
	assert.Equal(t, "Erro ao buscar viagem. Status 500", st.Err)
	assert.Nil(t, st.Trip)
}

// A load superseded by a newer one must be discarded when it finally
// resolves, even if it resolves successfully.
func TestSession_StaleResultDiscarded(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	s.Load(context.Background(), "A")
	s.Load(context.Background(), "B")

	fetcher.resolve("B", &trip.Trip{TripID: "B"}, nil)
	require.Eventually(t, func() bool {
		st := s.State()
		return st.Trip != nil && st.Trip.TripID == "B"
	}, time.Second, 5*time.Millisecond)

	// "A" arrives late; nothing may change.
	fetcher.resolve("A", &trip.Trip{TripID: "A"}, nil)
	time.Sleep(50 * time.Millisecond)

	st := s.State()
	assert.Equal(t, "B", st.TripID)
	assert.Equal(t, "B", st.Trip.TripID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
}

// A stale failure must not surface an error over newer state either.
func TestSession_StaleErrorDiscarded(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	s.Load(context.Background(), "A")
	s.Load(context.Background(), "B")

	fetcher.resolve("B", &trip.Trip{TripID: "B"}, nil)
	require.Eventually(t, func() bool {
		return s.State().Trip != nil
	}, time.Second, 5*time.Millisecond)

	fetcher.resolve("A", nil, errors.New("boom"))
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, s.State().Err)
}

func TestSession_LoadClearsPreviousError(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	s.Load(context.Background(), "A")
	fetcher.resolve("A", nil, errors.New("boom"))
	require.Eventually(t, func() bool {
		return s.State().Err != ""
	}, time.Second, 5*time.Millisecond)

	s.Load(context.Background(), "B")
	st := s.State()
	assert.True(t, st.Loading)
	assert.Empty(t, st.Err, "starting a load resets the error before the request")
}

func TestSession_Refetch(t *testing.T) {
	fetcher := newBlockingFetcher()
	s := NewSession(fetcher)

	// Refetch before any load is a no-op.
	s.Refetch(context.Background())
	assert.False(t, s.State().Loading)

	s.Load(context.Background(), "A")
	fetcher.resolve("A", nil, errors.New("Erro ao buscar viagem. Status 502"))
	require.Eventually(t, func() bool {
		return s.State().Err != ""
	}, time.Second, 5*time.Millisecond)

	s.Refetch(context.Background())
	assert.True(t, s.State().Loading)
	assert.Equal(t, "A", s.State().TripID)

	fetcher.resolve("A", &trip.Trip{TripID: "A"}, nil)
	require.Eventually(t, func() bool {
		return s.State().Trip != nil
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, s.State().Err)
}

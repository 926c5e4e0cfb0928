package client

import (
	"context"
	"sync"

	"dsctravel/trip"
)

// TripFetcher is what a Session needs from the API client.
type TripFetcher interface {
	GetTrip(ctx context.Context, tripID string) (*trip.Trip, error)
}

// Session owns the load/error/success lifecycle for one trip id. Each Load
// is tagged with a generation number; a response is applied only if its
// generation is still the current one, so a fetch superseded by a newer
// Load can never overwrite newer state when it finally arrives.
type Session struct {
	fetcher TripFetcher

	mu      sync.Mutex
	gen     uint64
	tripID  string
	loading bool
	errMsg  string
	trip    *trip.Trip
}

// SessionState is a consistent snapshot of the session.
type SessionState struct {
	TripID  string
	Loading bool
	Err     string
	Trip    *trip.Trip
}

func NewSession(fetcher TripFetcher) *Session {
	return &Session{fetcher: fetcher}
}

// Load starts fetching tripID. The error is cleared and loading set before
// the request begins; any fetch still in flight is superseded. Cancellation
// is cooperative: the superseded request is not aborted, its result is
// discarded on arrival.
func (s *Session) Load(ctx context.Context, tripID string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.tripID = tripID
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	go func() {
		t, err := s.fetcher.GetTrip(ctx, tripID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer Load took over while this one was in flight.
			return
		}
		s.loading = false
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		s.trip = t
	}()
}

// Refetch repeats the last Load. Retrying is only ever user-triggered;
// nothing in the session retries on its own.
func (s *Session) Refetch(ctx context.Context) {
	s.mu.Lock()
	tripID := s.tripID
	s.mu.Unlock()

	if tripID == "" {
		return
	}
	s.Load(ctx, tripID)
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		TripID:  s.tripID,
		Loading: s.loading,
		Err:     s.errMsg,
		Trip:    s.trip,
	}
}

package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// EmergencyState is a state of the emergency matching process
type EmergencyState string

const (
	EmergencyIdle                EmergencyState = "idle"
	EmergencyAcquiringLocation   EmergencyState = "acquiring-location"
	EmergencyLocationFailed      EmergencyState = "location-failed"
	EmergencyAwaitingCoordinates EmergencyState = "awaiting-coordinates"
	EmergencySearching           EmergencyState = "searching"
	EmergencyResults             EmergencyState = "results"
	EmergencyNoResults           EmergencyState = "no-results"
)

// HomeRedirectDelay is how long the client shows the hire confirmation before returning to the catalog
const HomeRedirectDelay = 1500 * time.Millisecond

// MatchedNurse is an available nurse with derived emergency figures
type MatchedNurse struct {
	entities.NurseRecord
	ArrivalMinutes int   `json:"arrival_minutes"`
	EmergencyRate  int64 `json:"emergency_rate"`
}

// EmergencyView is a snapshot of the matcher for rendering
type EmergencyView struct {
	State       EmergencyState         `json:"state"`
	Coordinates *providers.Coordinates `json:"coordinates,omitempty"`
	Nurses      []MatchedNurse         `json:"nurses"`
	Error       string                 `json:"error,omitempty"`
}

// HireResult tells the client what to show after hiring
type HireResult struct {
	Nurse          MatchedNurse `json:"nurse"`
	ArrivalMinutes int          `json:"arrival_minutes"`
	RedirectTo     string       `json:"redirect_to"`
	RedirectAfter  int64        `json:"redirect_after_ms"`
}

// EmergencyConfig configures an EmergencyMatcher
type EmergencyConfig struct {
	SearchDelay time.Duration
	Surcharge   int64
}

// EmergencyMatcher simulates finding the nearest available nurse for an
// urgent request: acquire a location, then search the pool after a delay.
type EmergencyMatcher struct {
	mu          sync.Mutex
	state       EmergencyState
	coordinates *providers.Coordinates
	nurses      []MatchedNurse
	lastError   string
	sub         *Subscription
	watching    bool
	acquireGen  uint64
	searchGen   uint64

	location  *LocationService
	catalog   *CatalogService
	notifier  *Notifier
	scheduler clock.Scheduler
	metrics   *observability.Metrics
	cfg       EmergencyConfig
}

// NewEmergencyMatcher creates an idle matcher
func NewEmergencyMatcher(location *LocationService, catalog *CatalogService, notifier *Notifier, scheduler clock.Scheduler, metrics *observability.Metrics, cfg EmergencyConfig) *EmergencyMatcher {
	if cfg.Surcharge == 0 {
		cfg.Surcharge = DefaultEmergencySurcharge
	}
	return &EmergencyMatcher{
		state:     EmergencyIdle,
		location:  location,
		catalog:   catalog,
		notifier:  notifier,
		scheduler: scheduler,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// View returns the current state
func (m *EmergencyMatcher) View() EmergencyView {
	m.mu.Lock()
	defer m.mu.Unlock()

	view := EmergencyView{
		State:  m.state,
		Nurses: append([]MatchedNurse{}, m.nurses...),
		Error:  m.lastError,
	}
	if m.coordinates != nil {
		c := *m.coordinates
		view.Coordinates = &c
	}
	return view
}

// State returns the current state
func (m *EmergencyMatcher) State() EmergencyState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start begins an emergency request by acquiring the device location
func (m *EmergencyMatcher) Start(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case EmergencyAcquiringLocation, EmergencySearching:
		m.mu.Unlock()
		return apperrors.NewConflictError("emergency request already in progress")
	}
	m.state = EmergencyAcquiringLocation
	m.nurses = nil
	m.lastError = ""
	gen := m.nextAcquireLocked()
	needsSub := m.sub == nil
	needsWatch := !m.watching
	m.watching = true
	m.mu.Unlock()

	if needsSub {
		sub := m.location.Subscribe(m.onCoordinates)
		m.mu.Lock()
		m.sub = sub
		m.mu.Unlock()
	}
	if needsWatch {
		if err := m.location.Watch(context.Background()); err != nil {
			observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Location watch unavailable")
		}
	}

	m.acquire(ctx, gen)
	return nil
}

// RetryLocation re-requests location access after a failure
func (m *EmergencyMatcher) RetryLocation(ctx context.Context) error {
	m.mu.Lock()
	if m.state != EmergencyLocationFailed {
		m.mu.Unlock()
		return apperrors.NewConflictError("location has not failed")
	}
	m.state = EmergencyAcquiringLocation
	m.lastError = ""
	gen := m.nextAcquireLocked()
	m.mu.Unlock()

	m.acquire(ctx, gen)
	return nil
}

// Retry searches again after an empty result, reusing the known location
func (m *EmergencyMatcher) Retry(ctx context.Context) error {
	m.mu.Lock()
	if m.state != EmergencyNoResults {
		m.mu.Unlock()
		return apperrors.NewConflictError("retry is only available when no nurses were found")
	}
	gen := m.beginSearchLocked()
	m.mu.Unlock()

	m.scheduleSearch(gen)
	return nil
}

// Hire confirms the choice of nurseID. It changes no nurse or booking state.
func (m *EmergencyMatcher) Hire(ctx context.Context, nurseID string) (*HireResult, error) {
	m.mu.Lock()
	if m.state != EmergencyResults {
		m.mu.Unlock()
		return nil, apperrors.NewConflictError("no search results to hire from")
	}
	var chosen *MatchedNurse
	for i := range m.nurses {
		if m.nurses[i].ID == nurseID {
			n := m.nurses[i]
			chosen = &n
			break
		}
	}
	m.mu.Unlock()

	if chosen == nil {
		return nil, apperrors.NewNotFoundError("nurse not found in results")
	}

	m.notifier.Info(ctx, keyNurseHiredTitle, keyNurseHiredDesc, chosen.Name, chosen.ArrivalMinutes)
	observability.LoggerFromContext(ctx).Info().
		Str("nurse_id", chosen.ID).
		Int("arrival_minutes", chosen.ArrivalMinutes).
		Msg("Emergency nurse hired")

	return &HireResult{
		Nurse:          *chosen,
		ArrivalMinutes: chosen.ArrivalMinutes,
		RedirectTo:     "/",
		RedirectAfter:  HomeRedirectDelay.Milliseconds(),
	}, nil
}

// Stop releases the location subscription and watch
func (m *EmergencyMatcher) Stop() {
	m.mu.Lock()
	sub := m.sub
	m.sub = nil
	watching := m.watching
	m.watching = false
	m.state = EmergencyIdle
	m.acquireGen++
	m.searchGen++
	m.mu.Unlock()

	m.location.Unsubscribe(sub)
	if watching {
		m.location.StopWatching()
	}
}

func (m *EmergencyMatcher) nextAcquireLocked() uint64 {
	m.acquireGen++
	return m.acquireGen
}

// acquire requests location access on the scheduler so the caller never
// waits on the provider. Only the acquisition numbered gen may settle the
// state; a restart or Stop supersedes it.
func (m *EmergencyMatcher) acquire(ctx context.Context, gen uint64) {
	logger := observability.LoggerFromContext(ctx)
	m.scheduler.AfterFunc(0, func() {
		bg := context.Background()
		granted, err := m.location.RequestPermission(bg)

		m.mu.Lock()
		if m.acquireGen != gen || m.state != EmergencyAcquiringLocation {
			m.mu.Unlock()
			return
		}
		if err != nil || !granted {
			m.state = EmergencyLocationFailed
			m.lastError = locationFailureReason(err)
			m.nurses = nil
			m.searchGen++
			m.mu.Unlock()
			if err != nil {
				logger.Warn().Err(err).Msg("Location acquisition failed")
			}
			m.notifier.Alert(bg, keyLocationDeniedTitle, keyLocationDeniedDesc)
			return
		}
		var gen uint64
		if m.coordinates != nil {
			gen = m.beginSearchLocked()
		} else {
			m.state = EmergencyAwaitingCoordinates
		}
		m.mu.Unlock()
		m.notifier.Info(bg, keyLocationGrantedTitle, keyLocationGrantedDesc)
		if gen != 0 {
			m.scheduleSearch(gen)
		}
	})
}

func locationFailureReason(err error) string {
	switch {
	case err == nil:
		return "permission denied"
	case errors.Is(err, providers.ErrLocationTimeout):
		return "timeout"
	case errors.Is(err, providers.ErrLocationUnsupported):
		return "unsupported"
	default:
		return apperrors.MessageOf(err)
	}
}

// onCoordinates records every position but searches only once access is
// settled. While acquiring, the granted branch of acquire starts the search.
func (m *EmergencyMatcher) onCoordinates(coords providers.Coordinates) {
	m.mu.Lock()
	m.coordinates = &coords
	var gen uint64
	switch m.state {
	case EmergencyAwaitingCoordinates, EmergencyResults, EmergencyNoResults:
		gen = m.beginSearchLocked()
	}
	m.mu.Unlock()

	if gen != 0 {
		m.scheduleSearch(gen)
	}
}

// beginSearchLocked enters the searching state and returns the number of the
// new search. The caller schedules it with scheduleSearch after unlocking.
func (m *EmergencyMatcher) beginSearchLocked() uint64 {
	m.state = EmergencySearching
	m.nurses = nil
	m.lastError = ""
	m.searchGen++
	return m.searchGen
}

func (m *EmergencyMatcher) scheduleSearch(gen uint64) {
	m.scheduler.AfterFunc(m.cfg.SearchDelay, func() { m.completeSearch(gen) })
}

func (m *EmergencyMatcher) searchCurrent(gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searchGen == gen && m.state == EmergencySearching
}

func (m *EmergencyMatcher) completeSearch(gen uint64) {
	if !m.searchCurrent(gen) {
		return
	}

	ctx := context.Background()
	ctx, span := observability.StartSpan(ctx, "EmergencyMatcher.completeSearch")
	defer span.End()

	ranked, err := m.catalog.AvailableNursesByDistance(ctx)
	if err != nil {
		observability.RecordError(span, err)
	}

	matched := make([]MatchedNurse, 0, len(ranked))
	for _, n := range ranked {
		matched = append(matched, MatchedNurse{
			NurseRecord:    *n,
			ArrivalMinutes: EstimatedArrivalMinutes(n.DistanceKm),
			EmergencyRate:  n.HourlyRate + m.cfg.Surcharge,
		})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.searchGen != gen || m.state != EmergencySearching {
		return
	}
	m.nurses = matched
	if len(matched) > 0 {
		m.state = EmergencyResults
	} else {
		m.state = EmergencyNoResults
	}
	if err != nil {
		m.lastError = apperrors.MessageOf(err)
	}
	observability.RecordEmergencySearch(ctx, m.metrics, len(matched))
}

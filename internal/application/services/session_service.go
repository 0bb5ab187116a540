package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/nursecare/backend/internal/adapters/notifications"
	"github.com/zatekoja/nursecare/backend/internal/domain/entities"
	"github.com/zatekoja/nursecare/backend/internal/domain/providers"
	"github.com/zatekoja/nursecare/backend/internal/infrastructure/observability"
	"github.com/zatekoja/nursecare/backend/pkg/clock"
	apperrors "github.com/zatekoja/nursecare/backend/pkg/errors"
)

// Theme is the display theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are the per-session display settings
type Preferences struct {
	Language entities.Language `json:"language"`
	Theme    Theme             `json:"theme"`
}

// PreferencesUpdate changes the non-empty fields of Preferences
type PreferencesUpdate struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// Session holds the UI state of one browser tab
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	mu          sync.RWMutex
	preferences Preferences
	lastSeen    time.Time

	Notifier  *Notifier
	Toasts    *notifications.ToastQueue
	Selection *Selection
	Booking   *BookingFlow
	Location  *LocationService
	Emergency *EmergencyMatcher
}

// Preferences returns the current preferences
func (s *Session) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences
}

// Language returns the session's display language
func (s *Session) Language() entities.Language {
	return s.Preferences().Language
}

// LocationFeed returns the provider as a feed when it accepts pushed positions
func (s *Session) LocationFeed() (providers.LocationFeed, bool) {
	feed, ok := s.Location.Provider().(providers.LocationFeed)
	return feed, ok
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// SessionConfig configures the per-session components
type SessionConfig struct {
	DefaultLanguage   entities.Language
	LocationTimeout   time.Duration
	ConfirmationDelay time.Duration
	Emergency         EmergencyConfig
}

// SessionService creates and tracks sessions
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog          *CatalogService
	bookings         *BookingService
	translator       *Translator
	scheduler        clock.Scheduler
	metrics          *observability.Metrics
	locationProvider func() providers.LocationProvider
	extraSink        providers.NotificationSink
	cfg              SessionConfig
}

// NewSessionService creates a session service. extraSink, when set, receives
// every toast in addition to the session's own queue.
func NewSessionService(
	catalog *CatalogService,
	bookings *BookingService,
	translator *Translator,
	scheduler clock.Scheduler,
	metrics *observability.Metrics,
	locationProvider func() providers.LocationProvider,
	extraSink providers.NotificationSink,
	cfg SessionConfig,
) *SessionService {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = entities.LanguageEnglish
	}
	return &SessionService{
		sessions:         make(map[string]*Session),
		catalog:          catalog,
		bookings:         bookings,
		translator:       translator,
		scheduler:        scheduler,
		metrics:          metrics,
		locationProvider: locationProvider,
		extraSink:        extraSink,
		cfg:              cfg,
	}
}

// Create starts a new session. An empty language uses the configured default.
func (s *SessionService) Create(ctx context.Context, language string) *Session {
	now := s.scheduler.Now()
	lang := s.cfg.DefaultLanguage
	if language != "" {
		lang = entities.ParseLanguage(language)
	}

	session := &Session{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		preferences: Preferences{Language: lang, Theme: ThemeLight},
		lastSeen:    now,
		Toasts:      notifications.NewToastQueue(notifications.DefaultQueueCapacity),
	}

	var sink providers.NotificationSink = session.Toasts
	if s.extraSink != nil {
		sink = notifications.MultiSink{session.Toasts, s.extraSink}
	}

	session.Notifier = NewNotifier(sink, s.translator, session.Language)
	session.Selection = NewSelection(session.Notifier)
	session.Booking = NewBookingFlow(s.bookings, session.Notifier, s.scheduler, s.cfg.ConfirmationDelay)
	session.Location = NewLocationService(s.locationProvider(), s.cfg.LocationTimeout)
	session.Emergency = NewEmergencyMatcher(session.Location, s.catalog, session.Notifier, s.scheduler, s.metrics, s.cfg.Emergency)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	observability.LoggerFromContext(ctx).Info().Str("session_id", session.ID).Str("language", string(lang)).Msg("Session created")
	return session
}

// Get returns the session with id and marks it active
func (s *SessionService) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	session.touch(s.scheduler.Now())
	return session, nil
}

// UpdatePreferences changes the language and/or theme of a session
func (s *SessionService) UpdatePreferences(ctx context.Context, id string, update PreferencesUpdate) (Preferences, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return Preferences{}, err
	}

	var lang entities.Language
	switch update.Language {
	case "":
	case string(entities.LanguageEnglish), string(entities.LanguageBangla):
		lang = entities.Language(update.Language)
	default:
		return Preferences{}, apperrors.NewValidationError("language must be en or bn")
	}

	var theme Theme
	switch Theme(update.Theme) {
	case "":
	case ThemeLight, ThemeDark:
		theme = Theme(update.Theme)
	default:
		return Preferences{}, apperrors.NewValidationError("theme must be light or dark")
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if lang != "" {
		session.preferences.Language = lang
	}
	if theme != "" {
		session.preferences.Theme = theme
	}
	return session.preferences, nil
}

// OpenCategory scopes the session's selection to a category
func (s *SessionService) OpenCategory(ctx context.Context, session *Session, categoryID string) (*entities.ServiceCategory, error) {
	category, err := s.catalog.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	session.Selection.Open(category.ID)
	return category, nil
}

// ToggleItem opens the item's category if needed and toggles the item
func (s *SessionService) ToggleItem(ctx context.Context, session *Session, categoryID, itemID string) (bool, error) {
	item, err := s.catalog.FindLineItem(ctx, categoryID, itemID)
	if err != nil {
		return false, err
	}
	session.Selection.Open(categoryID)
	return session.Selection.Toggle(item), nil
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were removed
func (s *SessionService) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.scheduler.Now().Add(-maxIdle)

	var expired []*Session
	s.mu.Lock()
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Emergency.Stop()
	}
	if len(expired) > 0 {
		observability.LoggerFromContext(ctx).Info().Int("count", len(expired)).Msg("Expired idle sessions")
	}
	return len(expired)
}

// Count returns the number of live sessions
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

package service

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"logo-banner/models"
)

// maxSessionEvents bounds the event log kept for polling clients
const maxSessionEvents = 50

// SessionOptions configures a new Session
type SessionOptions struct {
	Debounce time.Duration
	Notifier NotifierInterface
	Rand     *rand.Rand
}

// Session is the state of one banner being composed: filter inputs, display
// set, selection and composition style
type Session struct {
	id        string
	catalog   *CatalogStore
	store     *SelectionStore
	debouncer *Debouncer
	notifier  NotifierInterface

	mu         sync.RWMutex
	search     string
	categories []string
	display    []models.LogoItem
	width      int
	background string
	rng        *rand.Rand

	eventsMu sync.Mutex
	events   []models.Event

	unsubscribe func()
}

// NewSession starts a session showing the whole catalog with the preset selected
func NewSession(id string, catalog *CatalogStore, presets *PresetProvider, opts SessionOptions) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NewLogNotifier()
	}

	s := &Session{
		id:         id,
		catalog:    catalog,
		store:      NewSelectionStore(catalog, presets, rng),
		debouncer:  NewDebouncer(opts.Debounce),
		notifier:   notifier,
		categories: []string{},
		display:    catalog.All(),
		width:      models.DefaultWidth,
		background: DefaultBackground,
		// The store owns rng under its own lock
		rng: rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())),
	}
	s.store.SelectPreset(s.display)
	s.unsubscribe = s.store.Subscribe(s.record)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Subscribe registers fn for selection events of this session
func (s *Session) Subscribe(fn Listener) func() {
	return s.store.Subscribe(fn)
}

// SetSearch schedules a debounced search; a newer call supersedes a pending one
func (s *Session) SetSearch(text string) {
	s.debouncer.Call(func() {
		s.SearchNow(text)
	})
}

// SearchNow applies the search text immediately, cancelling a pending debounced search
func (s *Session) SearchNow(text string) {
	s.debouncer.Cancel()

	s.mu.Lock()
	s.search = text
	ids := s.refilterLocked()
	s.mu.Unlock()

	s.emitDisplay(ids)
}

// SetCategories restricts the display set to the given category ids.
// An empty list removes the restriction.
func (s *Session) SetCategories(ids []string) error {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = models.CategoryID(id)
		if !s.catalog.HasCategory(id) {
			return fmt.Errorf("%w: %q", models.ErrInvalidCategory, id)
		}
		if !slices.Contains(normalized, id) {
			normalized = append(normalized, id)
		}
	}

	s.mu.Lock()
	s.categories = normalized
	display := s.refilterLocked()
	s.mu.Unlock()

	s.emitDisplay(display)
	return nil
}

// refilterLocked recomputes the display set; mu must be held for writing
func (s *Session) refilterLocked() []string {
	s.display = Filter(s.catalog.All(), s.search, s.categories)
	return models.ItemIDs(s.display)
}

func (s *Session) emitDisplay(ids []string) {
	s.record(models.Event{
		Kind:    models.EventDisplayItemsChanged,
		At:      time.Now(),
		Display: &models.DisplayItemsChanged{DisplayItems: ids},
	})
}

// DisplayItems returns the current display set
func (s *Session) DisplayItems() []models.LogoItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.display)
}

// Toggle flips the membership of a catalog item in the composition
func (s *Session) Toggle(id string) error {
	item, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}
	return s.store.Toggle(item)
}

func (s *Session) SelectAll() {
	s.store.SelectAll(s.DisplayItems())
}

func (s *Session) SelectNone() {
	s.store.SelectNone()
}

func (s *Session) SelectPreset() {
	s.store.SelectPreset(s.DisplayItems())
}

func (s *Session) SelectRandomHalf() {
	s.store.SelectRandomHalf(s.DisplayItems())
}

func (s *Session) Randomize() {
	s.store.Randomize()
}

func (s *Session) Sort(direction models.SortDirection) error {
	return s.store.Sort(direction)
}

// SelectedItems returns the composition in order
func (s *Session) SelectedItems() []models.LogoItem {
	return s.store.Selected()
}

// SetWidth sets the composition width in percent
func (s *Session) SetWidth(width int) error {
	if width < models.MinWidth || width > models.MaxWidth {
		return models.ErrInvalidWidth
	}

	s.mu.Lock()
	s.width = width
	s.mu.Unlock()

	s.record(models.Event{
		Kind:  models.EventWidthChanged,
		At:    time.Now(),
		Width: &models.WidthChanged{Width: width},
	})
	return nil
}

// SetBackground validates and applies a CSS background
func (s *Session) SetBackground(css string) (string, error) {
	background, err := ValidateBackground(css)
	if err != nil {
		return "", err
	}
	s.applyBackground(background)
	return background, nil
}

// PickGradient applies a predefined gradient
func (s *Session) PickGradient(index int) (string, error) {
	background, err := GradientAt(index)
	if err != nil {
		return "", err
	}
	s.applyBackground(background)
	return background, nil
}

// RandomGradient applies a random two-colour gradient
func (s *Session) RandomGradient() string {
	s.mu.Lock()
	background := RandomGradient(s.rng)
	s.mu.Unlock()

	s.applyBackground(background)
	return background
}

func (s *Session) applyBackground(background string) {
	s.mu.Lock()
	s.background = background
	s.mu.Unlock()

	s.record(models.Event{
		Kind:       models.EventBackgroundChanged,
		At:         time.Now(),
		Background: &models.BackgroundChanged{Background: background},
	})
}

// Notify records a notification for the client and forwards it to the log
func (s *Session) Notify(n models.Notification) {
	n = n.WithDefaults()
	s.record(models.Event{
		Kind:         models.EventNotify,
		At:           time.Now(),
		Notification: &n,
	})
	s.notifier.Notify(n)
}

// Snapshot returns the observable state of the session
func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.RLock()
	snapshot := models.SessionSnapshot{
		ID:               s.id,
		Search:           s.search,
		ActiveCategories: slices.Clone(s.categories),
		DisplayItems:     models.ItemIDs(s.display),
		Width:            s.width,
		Background:       s.background,
	}
	s.mu.RUnlock()

	snapshot.SelectedItems = s.store.SelectedIDs()
	return snapshot
}

// BannerView returns what the banner renderer needs to draw the composition
func (s *Session) BannerView() BannerView {
	s.mu.RLock()
	width, background := s.width, s.background
	s.mu.RUnlock()

	return BannerView{
		Items:      s.store.Selected(),
		Width:      width,
		Background: background,
	}
}

// Events returns the recent events, oldest first
func (s *Session) Events() []models.Event {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	return slices.Clone(s.events)
}

func (s *Session) record(e models.Event) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	s.events = append(s.events, e)
	if over := len(s.events) - maxSessionEvents; over > 0 {
		s.events = slices.Delete(s.events, 0, over)
	}
}

// Close stops pending work of the session
func (s *Session) Close() {
	s.debouncer.Cancel()
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

var _ NotifierInterface = (*Session)(nil)

package service

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"logo-banner/models"
)

// CatalogReader is the read side of the catalog the selection store depends on
type CatalogReader interface {
	Get(id string) (models.LogoItem, bool)
}

// Listener receives events after the state they describe has been committed
type Listener func(models.Event)

// SelectionStore holds the ordered composition.
// Every operation replaces the whole selection and then notifies subscribers
// outside the state lock, so a listener may read the store again.
// Events are delivered one commit at a time, in commit order; a listener
// must not mutate the store it is subscribed to.
type SelectionStore struct {
	mu        sync.Mutex
	deliverMu sync.Mutex
	catalog   CatalogReader
	presets   *PresetProvider
	rng       *rand.Rand
	cmp       *stringComparer
	selected  []models.LogoItem
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewSelectionStore creates an empty store.
// rng may be nil, a randomly seeded generator is used then.
func NewSelectionStore(catalog CatalogReader, presets *PresetProvider, rng *rand.Rand) *SelectionStore {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SelectionStore{
		catalog:   catalog,
		presets:   presets,
		rng:       rng,
		cmp:       newStringComparer(),
	}
}

// Subscribe registers fn for selection-changed events and returns its removal func
func (s *SelectionStore) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Selected returns the composition in order
func (s *SelectionStore) Selected() []models.LogoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.selected)
}

// SelectedIDs returns the ids of the composition in order
func (s *SelectionStore) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.ItemIDs(s.selected)
}

// Toggle removes the item when selected, otherwise appends it last
func (s *SelectionStore) Toggle(item models.LogoItem) error {
	canonical, ok := s.catalog.Get(item.ID)
	if !ok {
		return models.ErrItemNotFound
	}

	s.commit(func(current []models.LogoItem) ([]models.LogoItem, bool) {
		idx := slices.IndexFunc(current, func(it models.LogoItem) bool { return it.ID == canonical.ID })
		if idx >= 0 {
			return slices.Delete(slices.Clone(current), idx, idx+1), false
		}
		return append(slices.Clone(current), canonical), false
	})
	return nil
}

// SelectAll replaces the selection with the candidates, in candidate order
func (s *SelectionStore) SelectAll(candidates []models.LogoItem) {
	next := s.clamp(candidates)
	s.commit(func([]models.LogoItem) ([]models.LogoItem, bool) { return next, false })
}

// SelectNone empties the selection
func (s *SelectionStore) SelectNone() {
	s.commit(func([]models.LogoItem) ([]models.LogoItem, bool) { return []models.LogoItem{}, false })
}

// SelectPreset replaces the selection with the preset members of candidates
func (s *SelectionStore) SelectPreset(candidates []models.LogoItem) {
	next := s.clamp(s.presets.Filter(candidates))
	s.commit(func([]models.LogoItem) ([]models.LogoItem, bool) { return next, false })
}

// SelectRandomHalf replaces the selection with floor(n/2) random candidates
func (s *SelectionStore) SelectRandomHalf(candidates []models.LogoItem) {
	pool := s.clamp(candidates)
	s.commit(func([]models.LogoItem) ([]models.LogoItem, bool) {
		s.shuffle(pool)
		return pool[:len(pool)/2], true
	})
}

// Randomize applies a uniform permutation to the selection
func (s *SelectionStore) Randomize() {
	s.commit(func(current []models.LogoItem) ([]models.LogoItem, bool) {
		next := slices.Clone(current)
		s.shuffle(next)
		return next, true
	})
}

// Sort orders the selection by id with locale-aware collation
func (s *SelectionStore) Sort(direction models.SortDirection) error {
	if direction != models.SortAsc && direction != models.SortDesc {
		return models.ErrInvalidDirection
	}

	s.commit(func(current []models.LogoItem) ([]models.LogoItem, bool) {
		next := slices.Clone(current)
		slices.SortStableFunc(next, func(a, b models.LogoItem) int {
			if direction == models.SortDesc {
				return s.cmp.Compare(b.ID, a.ID)
			}
			return s.cmp.Compare(a.ID, b.ID)
		})
		return next, false
	})
	return nil
}

// shuffle must be called with mu held
func (s *SelectionStore) shuffle(items []models.LogoItem) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// clamp keeps the catalog version of each candidate, dropping unknown ids and repeats
func (s *SelectionStore) clamp(candidates []models.LogoItem) []models.LogoItem {
	out := make([]models.LogoItem, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if seen[c.ID] {
			continue
		}
		item, ok := s.catalog.Get(c.ID)
		if !ok {
			continue
		}
		seen[c.ID] = true
		out = append(out, item)
	}
	return out
}

// commit swaps the selection under mu and notifies outside of it.
// deliverMu is taken before mu is released so deliveries keep commit order.
func (s *SelectionStore) commit(update func(current []models.LogoItem) ([]models.LogoItem, bool)) {
	s.mu.Lock()
	next, random := update(s.selected)
	s.selected = next
	event := models.Event{
		Kind: models.EventSelectionChanged,
		At:   time.Now(),
		Selection: &models.SelectionChanged{
			SelectedItems:  models.ItemIDs(next),
			Random:         random,
			ScrollIntoView: random,
		},
	}
	listeners := slices.Clone(s.listeners)
	s.deliverMu.Lock()
	s.mu.Unlock()
	defer s.deliverMu.Unlock()

	for _, sub := range listeners {
		sub.fn(event)
	}
}

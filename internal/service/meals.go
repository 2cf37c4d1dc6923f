package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

// MealsKey is the storage key holding the meal-history document.
const MealsKey = "my-meals-data"

// MealStore is the authoritative in-memory meal history. Meals are kept
// newest-first: AddMeal prepends. It follows the same load/persist lifecycle
// as MemberStore and shares no state with it; the two are cross-referenced
// only at read time, through rating member ids.
type MealStore struct {
	mu        sync.RWMutex
	meals     []model.Meal
	loading   bool
	listeners map[int]func()
	nextSub   int

	store   storage.Store
	persist *persister
	newID   func() string
	now     func() time.Time
}

func NewMealStore(store storage.Store, opts ...Option) *MealStore {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MealStore{
		meals:     []model.Meal{},
		loading:   true,
		listeners: map[int]func(){},
		store:     store,
		persist:   newPersister(store, MealsKey),
		newID:     cfg.newID,
		now:       cfg.now,
	}
}

type mealDocument struct {
	Meals []json.RawMessage `json:"meals"`
}

// Load reads the meal document once at startup, with the same recovery rules
// as MemberStore.Load. A meal survives only with a string id, name, and date;
// its ratings are filtered down to well-formed {memberId, liked} pairs.
func (s *MealStore) Load(ctx context.Context) {
	meals := []model.Meal{}

	raw, err := s.store.GetItem(ctx, MealsKey)
	if err != nil {
		log.Printf("mealbook: load meals: %v", err)
	} else if len(raw) > 0 {
		var doc mealDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Printf("mealbook: parse meals document: %v", err)
		} else {
			for _, entry := range doc.Meals {
				if m, ok := decodeMeal(entry); ok {
					meals = append(meals, m)
				}
			}
		}
	}

	s.mu.Lock()
	s.meals = meals
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func decodeMeal(entry json.RawMessage) (model.Meal, bool) {
	var wire struct {
		ID          *string           `json:"id"`
		Name        *string           `json:"name"`
		Date        *string           `json:"date"`
		Ingredients json.RawMessage   `json:"ingredients"`
		Ratings     []json.RawMessage `json:"ratings"`
		CreatedAt   json.RawMessage   `json:"createdAt"`
		UpdatedAt   json.RawMessage   `json:"updatedAt"`
	}
	if err := json.Unmarshal(entry, &wire); err != nil || wire.ID == nil || wire.Name == nil || wire.Date == nil {
		return model.Meal{}, false
	}

	meal := model.Meal{
		ID:      *wire.ID,
		Name:    *wire.Name,
		Date:    *wire.Date,
		Ratings: []model.MealRating{},
	}
	// Timestamps and ingredients are best-effort: a wrong-typed field
	// degrades to its zero value instead of dropping the whole meal.
	if len(wire.Ingredients) > 0 {
		var ingredients []string
		if err := json.Unmarshal(wire.Ingredients, &ingredients); err == nil && len(ingredients) > 0 {
			meal.Ingredients = ingredients
		}
	}
	if len(wire.CreatedAt) > 0 {
		_ = json.Unmarshal(wire.CreatedAt, &meal.CreatedAt)
	}
	if len(wire.UpdatedAt) > 0 {
		_ = json.Unmarshal(wire.UpdatedAt, &meal.UpdatedAt)
	}
	for _, r := range wire.Ratings {
		var probe struct {
			MemberID *string `json:"memberId"`
			Liked    *bool   `json:"liked"`
		}
		if err := json.Unmarshal(r, &probe); err != nil || probe.MemberID == nil || probe.Liked == nil {
			continue
		}
		meal.Ratings = append(meal.Ratings, model.MealRating{MemberID: *probe.MemberID, Liked: *probe.Liked})
	}
	return meal, true
}

func (s *MealStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Meals returns a snapshot of the history, newest-first.
func (s *MealStore) Meals() []model.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMeals(s.meals)
}

// AddMeal prepends a new meal and returns it, or nil when the name trims to
// empty. An empty date defaults to today's calendar date. Ingredients are
// stored as given when non-empty and absent otherwise.
func (s *MealStore) AddMeal(name, date string, ingredients []string) *model.Meal {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	now := s.now()
	nowISO := now.Format(time.RFC3339)
	if strings.TrimSpace(date) == "" {
		date = now.Format("2006-01-02")
	}
	meal := model.Meal{
		ID:        s.newID(),
		Name:      trimmed,
		Date:      date,
		Ratings:   []model.MealRating{},
		CreatedAt: nowISO,
		UpdatedAt: nowISO,
	}
	if len(ingredients) > 0 {
		meal.Ingredients = append([]string(nil), ingredients...)
	}
	s.mu.Lock()
	s.meals = append([]model.Meal{meal}, s.meals...)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return &meal
}

// DeleteMeal removes the matching meal; unknown ids are a no-op.
func (s *MealStore) DeleteMeal(id string) {
	s.mu.Lock()
	kept := s.meals[:0]
	for _, m := range s.meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.meals) {
		s.mu.Unlock()
		return
	}
	s.meals = kept
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// MealsByDate returns the meals cooked on the given date, in store order.
func (s *MealStore) MealsByDate(date string) []model.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Meal{}
	for _, m := range s.meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return copyMeals(out)
}

// TodaysMeals returns the meals dated today.
func (s *MealStore) TodaysMeals() []model.Meal {
	return s.MealsByDate(s.now().Format("2006-01-02"))
}

// MealsGroupedByDate partitions the history by date, newest date first.
// Store order is preserved inside each group and no group is empty.
func (s *MealStore) MealsGroupedByDate() []model.MealGroup {
	s.mu.RLock()
	grouped := map[string][]model.Meal{}
	for _, m := range s.meals {
		grouped[m.Date] = append(grouped[m.Date], m)
	}
	s.mu.RUnlock()

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	// Lexicographic descending order is chronological for YYYY-MM-DD.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	groups := make([]model.MealGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, model.MealGroup{Date: date, Meals: copyMeals(grouped[date])})
	}
	return groups
}

// SetRating records whether a member liked a meal. An existing rating for
// that member is replaced in place, keeping its position; otherwise a new
// one is appended. UpdatedAt is refreshed. Unknown meal ids are a no-op.
// The member id is not checked against the member collection: ratings may
// reference members that no longer exist.
func (s *MealStore) SetRating(mealID, memberID string, liked bool) {
	s.mutateRatings(mealID, func(ratings []model.MealRating) []model.MealRating {
		for i := range ratings {
			if ratings[i].MemberID == memberID {
				ratings[i].Liked = liked
				return ratings
			}
		}
		return append(ratings, model.MealRating{MemberID: memberID, Liked: liked})
	})
}

// ClearRating removes the member's rating from the meal. Removing a rating
// that does not exist is a no-op state-wise but still refreshes UpdatedAt.
func (s *MealStore) ClearRating(mealID, memberID string) {
	s.mutateRatings(mealID, func(ratings []model.MealRating) []model.MealRating {
		kept := ratings[:0]
		for _, r := range ratings {
			if r.MemberID != memberID {
				kept = append(kept, r)
			}
		}
		return kept
	})
}

func (s *MealStore) mutateRatings(mealID string, fn func([]model.MealRating) []model.MealRating) {
	s.mu.Lock()
	matched := false
	for i := range s.meals {
		if s.meals[i].ID != mealID {
			continue
		}
		matched = true
		s.meals[i].Ratings = fn(s.meals[i].Ratings)
		s.meals[i].UpdatedAt = s.now().Format(time.RFC3339)
		break
	}
	if !matched {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// MealByID is a pure lookup.
func (s *MealStore) MealByID(id string) (model.Meal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meals {
		if m.ID == id {
			return copyMeal(m), true
		}
	}
	return model.Meal{}, false
}

func (s *MealStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Close drains pending writes.
func (s *MealStore) Close() {
	s.persist.Close()
}

func (s *MealStore) replaceMeals(meals []model.Meal) {
	s.mu.Lock()
	s.meals = meals
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

func (s *MealStore) persistLocked() {
	if s.loading {
		return
	}
	doc, err := json.Marshal(struct {
		Meals []model.Meal `json:"meals"`
	}{Meals: s.meals})
	if err != nil {
		log.Printf("mealbook: encode meals document: %v", err)
		return
	}
	s.persist.enqueue(doc)
}

func (s *MealStore) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

func copyMeals(meals []model.Meal) []model.Meal {
	out := make([]model.Meal, len(meals))
	for i, m := range meals {
		out[i] = copyMeal(m)
	}
	return out
}

func copyMeal(m model.Meal) model.Meal {
	out := m
	if m.Ingredients != nil {
		out.Ingredients = append([]string(nil), m.Ingredients...)
	}
	out.Ratings = append([]model.MealRating(nil), m.Ratings...)
	return out
}

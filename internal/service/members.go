package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jakubciszak/mealbook-cli/internal/model"
	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

// MembersKey is the storage key holding the family-member document.
const MembersKey = "my-meals-family"

// MemberStore is the authoritative in-memory collection of family members.
// One instance serves every consumer; Subscribe lets views react to changes.
// Mutators apply synchronously and enqueue a background write of the whole
// document. Invalid input is reported through nil returns, never errors.
type MemberStore struct {
	mu        sync.RWMutex
	members   []model.FamilyMember
	loading   bool
	listeners map[int]func()
	nextSub   int

	store   storage.Store
	persist *persister
	newID   func() string
	now     func() time.Time
}

func NewMemberStore(store storage.Store, opts ...Option) *MemberStore {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MemberStore{
		members:   []model.FamilyMember{},
		loading:   true,
		listeners: map[int]func(){},
		store:     store,
		persist:   newPersister(store, MembersKey),
		newID:     cfg.newID,
		now:       cfg.now,
	}
}

type memberDocument struct {
	Members []json.RawMessage `json:"members"`
}

// Load reads the member document once at startup. A missing key, malformed
// JSON, or a missing members field all yield an empty collection; entries
// without a string id and string name are dropped. The loading flag clears
// unconditionally, and only then do mutations start persisting.
func (s *MemberStore) Load(ctx context.Context) {
	members := []model.FamilyMember{}

	raw, err := s.store.GetItem(ctx, MembersKey)
	if err != nil {
		log.Printf("mealbook: load members: %v", err)
	} else if len(raw) > 0 {
		var doc memberDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Printf("mealbook: parse members document: %v", err)
		} else {
			for _, entry := range doc.Members {
				if m, ok := decodeMember(entry); ok {
					members = append(members, m)
				}
			}
		}
	}

	s.mu.Lock()
	s.members = members
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func decodeMember(entry json.RawMessage) (model.FamilyMember, bool) {
	var wire struct {
		ID        *string         `json:"id"`
		Name      *string         `json:"name"`
		Avatar    json.RawMessage `json:"avatar"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(entry, &wire); err != nil || wire.ID == nil || wire.Name == nil {
		return model.FamilyMember{}, false
	}
	m := model.FamilyMember{ID: *wire.ID, Name: *wire.Name}
	// Optional fields are best-effort: a wrong-typed avatar or createdAt
	// degrades to its zero value instead of dropping the member.
	if len(wire.Avatar) > 0 {
		_ = json.Unmarshal(wire.Avatar, &m.Avatar)
	}
	if len(wire.CreatedAt) > 0 {
		_ = json.Unmarshal(wire.CreatedAt, &m.CreatedAt)
	}
	return m, true
}

// Loading reports whether the initial load has not yet completed.
func (s *MemberStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Members returns a snapshot of the collection in insertion order.
func (s *MemberStore) Members() []model.FamilyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FamilyMember, len(s.members))
	copy(out, s.members)
	return out
}

// AddMember appends a new member and returns it, or nil when the name trims
// to empty (no state change).
func (s *MemberStore) AddMember(name, avatar string) *model.FamilyMember {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	member := model.FamilyMember{
		ID:        s.newID(),
		Name:      trimmed,
		Avatar:    avatar,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	s.mu.Lock()
	s.members = append(s.members, member)
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return &member
}

// MemberUpdate carries optional field changes; nil pointers leave the field
// alone.
type MemberUpdate struct {
	Name   *string
	Avatar *string
}

// UpdateMember applies the update to the matching member. The avatar is
// applied whenever provided; a name that trims to empty is ignored and the
// prior name kept. ID and CreatedAt never change. Unknown ids are a no-op.
func (s *MemberStore) UpdateMember(id string, upd MemberUpdate) {
	s.mu.Lock()
	matched := false
	for i := range s.members {
		if s.members[i].ID != id {
			continue
		}
		matched = true
		if upd.Avatar != nil {
			s.members[i].Avatar = *upd.Avatar
		}
		if upd.Name != nil {
			if trimmed := strings.TrimSpace(*upd.Name); trimmed != "" {
				s.members[i].Name = trimmed
			}
		}
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

// DeleteMember removes the matching member. Unknown ids are a no-op, not an
// error. Meals keep any ratings referencing the removed member.
func (s *MemberStore) DeleteMember(id string) {
	s.mu.Lock()
	kept := s.members[:0]
	for _, m := range s.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(s.members) {
		s.mu.Unlock()
		return
	}
	s.members = kept
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// MemberByID is a pure lookup.
func (s *MemberStore) MemberByID(id string) (model.FamilyMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return model.FamilyMember{}, false
}

// Subscribe registers a callback invoked after every state change. The
// returned function cancels the subscription.
func (s *MemberStore) Subscribe(fn func()) (cancel func()) {
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

// Close drains pending writes. Call once the process is done mutating.
func (s *MemberStore) Close() {
	s.persist.Close()
}

func (s *MemberStore) replaceMembers(members []model.FamilyMember) {
	s.mu.Lock()
	s.members = members
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// persistLocked enqueues a full-document write unless the initial load has
// not finished (an early write would clobber not-yet-loaded durable state).
func (s *MemberStore) persistLocked() {
	if s.loading {
		return
	}
	doc, err := json.Marshal(struct {
		Members []model.FamilyMember `json:"members"`
	}{Members: s.members})
	if err != nil {
		log.Printf("mealbook: encode members document: %v", err)
		return
	}
	s.persist.enqueue(doc)
}

func (s *MemberStore) notify() {
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

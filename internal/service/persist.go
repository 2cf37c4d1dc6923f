package service

import (
	"context"
	"log"
	"sync"

	"github.com/jakubciszak/mealbook-cli/internal/storage"
)

// persister writes document snapshots in the background so mutators never
// block on storage I/O. Only the newest snapshot matters: an enqueued
// document that has not been written yet is replaced by the next one.
// Write failures are logged and otherwise ignored; in-memory state stays
// the source of truth.
type persister struct {
	store storage.Store
	key   string
	done  chan struct{}

	mu     sync.Mutex
	ch     chan []byte
	closed bool
}

func newPersister(store storage.Store, key string) *persister {
	p := &persister{
		store: store,
		key:   key,
		ch:    make(chan []byte, 1),
		done:  make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) run() {
	defer close(p.done)
	for doc := range p.ch {
		if err := p.store.SetItem(context.Background(), p.key, doc); err != nil {
			log.Printf("mealbook: save %s: %v", p.key, err)
		}
	}
}

// enqueue hands a snapshot to the writer. After Close the snapshot is
// dropped silently.
func (p *persister) enqueue(doc []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	for {
		select {
		case p.ch <- doc:
			return
		default:
		}
		// Channel full: discard the stale snapshot and try again.
		select {
		case <-p.ch:
		default:
		}
	}
}

// Close drains any pending write and stops the background goroutine.
// Mutations that race with Close may be lost, matching the accepted
// process-exit data-loss window.
func (p *persister) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	p.mu.Unlock()
	<-p.done
}

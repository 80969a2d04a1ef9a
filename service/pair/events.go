package pair

import (
	"fraxlend/core"
)

// Subscriber receives the events of each committed transaction in sequence order
type Subscriber func(events []*core.Event)

// Subscribe register a subscriber, called outside the pair locks
func (p *Pair) Subscribe(sub Subscriber) {
	p.view.Lock()
	defer p.view.Unlock()

	p.subscribers = append(p.subscribers, sub)
}

// Events buffered events with a sequence after from, up to limit when positive
func (p *Pair) Events(from uint64, limit int) []*core.Event {
	p.view.RLock()
	defer p.view.RUnlock()

	var events []*core.Event
	for _, e := range p.events {
		if e.Sequence <= from {
			continue
		}

		events = append(events, e)
		if limit > 0 && len(events) >= limit {
			break
		}
	}

	return events
}

// Prune drop buffered events up to sequence, once they are persisted
func (p *Pair) Prune(sequence uint64) {
	p.view.Lock()
	defer p.view.Unlock()

	idx := 0
	for idx < len(p.events) && p.events[idx].Sequence <= sequence {
		idx++
	}

	p.events = append([]*core.Event(nil), p.events[idx:]...)
}

package core

// Feed broadcasts snapshots to subscribers. Delivery is synchronous, in
// subscription order, on the goroutine that publishes. Engines publish from
// inside their own event handlers, so subscribers must not call back into
// the engine that notified them.
type Feed[T any] struct {
	subs   []feedSub[T]
	nextID int
}

type feedSub[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn for every subsequent publish and returns a cancel
// function. Cancelling more than once is harmless.
func (f *Feed[T]) Subscribe(fn func(T)) func() {
	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, feedSub[T]{id: id, fn: fn})
	return func() {
		for i, s := range f.subs {
			if s.id == id {
				// Copy instead of splicing so a publish that is
				// mid-iteration keeps its view of the list.
				next := make([]feedSub[T], 0, len(f.subs)-1)
				next = append(next, f.subs[:i]...)
				next = append(next, f.subs[i+1:]...)
				f.subs = next
				return
			}
		}
	}
}

// Publish delivers v to every subscriber. Subscriptions added or cancelled
// during delivery take effect from the next publish.
func (f *Feed[T]) Publish(v T) {
	subs := f.subs
	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of active subscriptions.
func (f *Feed[T]) Len() int {
	return len(f.subs)
}

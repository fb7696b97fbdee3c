package models

// IDAllocator hands out monotonically increasing habit IDs. The persistence
// layer owns one allocator per store and re-seeds it from the highest ID in
// the loaded document, so IDs assigned after a reload never collide with
// restored ones, even for habits that have since been deleted.
type IDAllocator struct {
	next int
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the current ID and advances the counter.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Seed raises the high-water mark so the next assigned ID is at least
// maxSeen+1. Seeding with a value below the current mark is a no-op.
func (a *IDAllocator) Seed(maxSeen int) {
	if maxSeen >= a.next {
		a.next = maxSeen + 1
	}
}

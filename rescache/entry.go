package rescache

// A cached value and its holder count. The cache keeps pointers to
// entries, but holders are only counted for outstanding [Ref] values,
// so the map is never the reason a value stays alive. When the last
// holder releases, the value is dropped from the entry and the entry
// is marked as expired.
type entry[V any] struct {
	owner *Cache[V]
	key string
	value V
	holders int32
	alive bool
}

// Must be called with the owner's lock held. Returns the value that
// must be destroyed, if any, once the lock is released.
func (self *entry[V]) dropHolder() (V, bool) {
	var zero V
	self.holders -= 1
	if self.holders > 0 || !self.alive { return zero, false }

	value := self.value
	self.value = zero
	self.alive = false
	return value, true
}

package rescache

// A strong holder of a cached value. While at least one Ref for a
// value hasn't been released, the value stays alive and lookups for
// its key will return it.
//
// A Ref must not be used after [Ref.Release]. Releasing a Ref more
// than once is allowed and has no effect.
type Ref[V any] struct {
	entry *entry[V]
}

// Returns the referenced value. After [Ref.Release], returns the zero value.
func (self *Ref[V]) Value() V {
	if self == nil || self.entry == nil {
		var zero V
		return zero
	}
	return self.entry.value
}

// Returns the key the value was stored under.
func (self *Ref[V]) Key() string {
	if self == nil || self.entry == nil { return "" }
	return self.entry.key
}

// Returns whether the Ref still holds its value (false after release).
func (self *Ref[V]) Held() bool {
	return self != nil && self.entry != nil
}

// Creates an additional holder for the same value. The new Ref has
// to be released independently. Cloning a released Ref returns nil.
func (self *Ref[V]) Clone() *Ref[V] {
	if !self.Held() { return nil }
	if !self.entry.owner.retain(self.entry) { return nil }
	return &Ref[V]{ entry: self.entry }
}

// Returns a non-owning handle for the same value.
func (self *Ref[V]) Weak() Weak[V] {
	if !self.Held() { return Weak[V]{} }
	return Weak[V]{ entry: self.entry }
}

// Releases the holder. If it was the last one, the value is destroyed
// right away and its cache entry becomes expired.
func (self *Ref[V]) Release() {
	if !self.Held() { return }
	target := self.entry
	self.entry = nil
	target.owner.release(target)
}

// A non-owning handle to a cached value. Weak handles can tell whether
// the value is still alive and obtain a new [Ref] for it if it is, but
// they never keep it alive by themselves.
//
// The zero value is a valid, permanently expired handle.
type Weak[V any] struct {
	entry *entry[V]
}

// Reports whether the value still has at least one holder.
func (self Weak[V]) Alive() bool {
	if self.entry == nil { return false }
	return self.entry.owner.isAlive(self.entry)
}

// Returns a new holder for the value if it's still alive.
func (self Weak[V]) Upgrade() (*Ref[V], bool) {
	if self.entry == nil { return nil, false }
	if !self.entry.owner.retain(self.entry) { return nil, false }
	return &Ref[V]{ entry: self.entry }, true
}

package rescache

import "sync"

// Usage counters for a [Cache]. Hits and misses count lookups,
// constructions count values built by GetOrCreate, destructions count
// values whose last holder was released and purged counts expired
// entries removed by [Cache.PurgeExpired].
type Stats struct {
	Hits uint64
	Misses uint64
	Constructions uint64
	Destructions uint64
	Purged uint64
}

// A keyed cache of shared resources with weak ownership semantics.
// See the package documentation for the details.
//
// The zero value is not usable, caches must be created with [New].
type Cache[V any] struct {
	entries map[string]*entry[V]
	destroy func(V)
	lock sync.Locker
	stats Stats
}

// Creates a new cache. The destroy function is called once for each
// constructed value, when its last holder releases it. It can be nil
// if values don't need any explicit cleanup.
func New[V any](destroy func(V), opts ...Option) *Cache[V] {
	config := options{ locker: noLocker{} }
	for _, opt := range opts { opt(&config) }
	if config.locker == nil { config.locker = noLocker{} }
	return &Cache[V] {
		entries: make(map[string]*entry[V], 64),
		destroy: destroy,
		lock: config.locker,
	}
}

// Returns a new holder for the live value stored under the given key.
// If the key is absent or its value has already been destroyed, the
// constructor is called to build a new value, which is stored under
// the key (replacing any previous entry) and returned.
//
// Values produced by the constructor are stored as they are, even if
// they represent a failed construction. Callers must check validity
// themselves and release the reference when they don't want it.
//
// The returned reference must be released once no longer needed.
func (self *Cache[V]) GetOrCreate(key string, constructor func() V) *Ref[V] {
	self.lock.Lock()
	current, found := self.entries[key]
	if found && current.alive {
		current.holders += 1
		self.stats.Hits += 1
		self.lock.Unlock()
		return &Ref[V]{ entry: current }
	}
	self.stats.Misses += 1
	self.lock.Unlock()

	// construct outside the lock; the constructor may be slow or
	// even use the cache itself
	value := constructor()
	fresh := &entry[V] {
		owner: self,
		key: key,
		value: value,
		holders: 1,
		alive: true,
	}

	self.lock.Lock()
	self.entries[key] = fresh
	self.stats.Constructions += 1
	self.lock.Unlock()
	return &Ref[V]{ entry: fresh }
}

// Returns a weak handle for the entry stored under the given key,
// without constructing anything. The bool is false if the key is not
// in the map at all. The handle may already be expired.
func (self *Cache[V]) Lookup(key string) (Weak[V], bool) {
	self.lock.Lock()
	defer self.lock.Unlock()
	current, found := self.entries[key]
	if !found { return Weak[V]{}, false }
	return Weak[V]{ entry: current }, true
}

// Removes all the expired entries from the map and returns how many
// were removed. Never called automatically.
func (self *Cache[V]) PurgeExpired() int {
	self.lock.Lock()
	defer self.lock.Unlock()
	purged := 0
	for key, current := range self.entries {
		if current.alive { continue }
		delete(self.entries, key)
		purged += 1
	}
	self.stats.Purged += uint64(purged)
	return purged
}

// Returns the number of entries in the map, including expired ones.
func (self *Cache[V]) Len() int {
	self.lock.Lock()
	defer self.lock.Unlock()
	return len(self.entries)
}

// Returns the number of entries whose value is still alive.
func (self *Cache[V]) LiveLen() int {
	self.lock.Lock()
	defer self.lock.Unlock()
	live := 0
	for _, current := range self.entries {
		if current.alive { live += 1 }
	}
	return live
}

// Returns a snapshot of the cache usage counters.
func (self *Cache[V]) Stats() Stats {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.stats
}

func (self *Cache[V]) retain(target *entry[V]) bool {
	self.lock.Lock()
	defer self.lock.Unlock()
	if !target.alive { return false }
	target.holders += 1
	return true
}

func (self *Cache[V]) release(target *entry[V]) {
	self.lock.Lock()
	value, dead := target.dropHolder()
	if dead { self.stats.Destructions += 1 }
	self.lock.Unlock()

	if dead && self.destroy != nil {
		self.destroy(value)
	}
}

func (self *Cache[V]) isAlive(target *entry[V]) bool {
	self.lock.Lock()
	defer self.lock.Unlock()
	return target.alive
}

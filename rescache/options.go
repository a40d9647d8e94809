package rescache

import "sync"

// Option configures a [Cache] during creation.
type Option func(*options)

type options struct {
	locker sync.Locker
}

// Makes the cache protect its map and holder counts with the given
// locker. Construction still runs outside the lock, so concurrent misses
// for the same key may construct more than once (see the package docs).
func WithLocker(locker sync.Locker) Option {
	return func(opts *options) {
		opts.locker = locker
	}
}

// The default locker. Caches are confined to a single goroutine
// unless configured otherwise.
type noLocker struct{}
func (noLocker) Lock() {}
func (noLocker) Unlock() {}

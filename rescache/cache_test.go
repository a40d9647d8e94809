package rescache

import "sync"
import "testing"
import "strconv"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

type resource struct {
	id int
	destroyed bool
}

type resourceFactory struct {
	built []*resource
	destroyed int
}

func (self *resourceFactory) ctor() *resource {
	res := &resource{ id: len(self.built) }
	self.built = append(self.built, res)
	return res
}

func (self *resourceFactory) destroy(res *resource) {
	res.destroyed = true
	self.destroyed += 1
}

func TestCacheIdentity(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	for _, key := range []string{"a", "A-14", "font.ttf", ""} {
		first := cache.GetOrCreate(key, factory.ctor)
		second := cache.GetOrCreate(key, factory.ctor)
		assert.Same(t, first.Value(), second.Value(), "key %q", key)
		assert.Equal(t, key, second.Key())
		first.Release()
		second.Release()
	}
	assert.Len(t, factory.built, 4, "constructor must run once per key")

	stats := cache.Stats()
	assert.Equal(t, uint64(4), stats.Hits)
	assert.Equal(t, uint64(4), stats.Misses)
	assert.Equal(t, uint64(4), stats.Constructions)
}

func TestCacheEviction(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	ref := cache.GetOrCreate("glyph", factory.ctor)
	original := ref.Value()
	ref.Release()
	assert.True(t, original.destroyed, "last release must destroy the value")
	assert.Equal(t, 1, factory.destroyed)

	// entry stays in the map until purged or replaced
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 0, cache.LiveLen())
	weak, found := cache.Lookup("glyph")
	require.True(t, found)
	assert.False(t, weak.Alive())

	ref = cache.GetOrCreate("glyph", factory.ctor)
	defer ref.Release()
	assert.Len(t, factory.built, 2, "expired entry must be reconstructed")
	assert.NotSame(t, original, ref.Value())
	assert.Equal(t, 1, cache.Len())
}

func TestCacheSharedHolders(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	a := cache.GetOrCreate("k", factory.ctor)
	b := cache.GetOrCreate("k", factory.ctor)
	c := b.Clone()
	require.NotNil(t, c)

	a.Release()
	b.Release()
	assert.Equal(t, 0, factory.destroyed, "value still held by clone")
	assert.Equal(t, 1, cache.LiveLen())

	c.Release()
	assert.Equal(t, 1, factory.destroyed)

	// releasing again is harmless
	a.Release()
	c.Release()
	assert.Equal(t, 1, factory.destroyed)
	assert.Nil(t, a.Value())
	assert.False(t, a.Held())
	assert.Nil(t, a.Clone())
}

func TestWeakUpgrade(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	ref := cache.GetOrCreate("k", factory.ctor)
	weak := ref.Weak()
	assert.True(t, weak.Alive())

	upgraded, ok := weak.Upgrade()
	require.True(t, ok)
	assert.Same(t, ref.Value(), upgraded.Value())

	ref.Release()
	assert.True(t, weak.Alive())
	upgraded.Release()
	assert.False(t, weak.Alive())

	_, ok = weak.Upgrade()
	assert.False(t, ok)

	var zero Weak[*resource]
	assert.False(t, zero.Alive())
	_, ok = zero.Upgrade()
	assert.False(t, ok)
}

func TestPurgeExpired(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	var kept []*Ref[*resource]
	for i := 0; i < 10; i++ {
		ref := cache.GetOrCreate(strconv.Itoa(i), factory.ctor)
		if i % 2 == 0 {
			kept = append(kept, ref)
		} else {
			ref.Release()
		}
	}
	assert.Equal(t, 10, cache.Len())
	assert.Equal(t, 5, cache.LiveLen())

	assert.Equal(t, 5, cache.PurgeExpired())
	assert.Equal(t, 5, cache.Len())
	assert.Equal(t, 0, cache.PurgeExpired())
	assert.Equal(t, uint64(5), cache.Stats().Purged)

	for _, ref := range kept { ref.Release() }
	assert.Equal(t, 10, factory.destroyed)
	assert.Equal(t, 5, cache.PurgeExpired())
	assert.Equal(t, 0, cache.Len())
}

func TestFailedConstructionIsStored(t *testing.T) {
	destroyCalls := 0
	cache := New(func(*resource) { destroyCalls += 1 })

	ref := cache.GetOrCreate("broken", func() *resource { return nil })
	assert.Nil(t, ref.Value())
	again := cache.GetOrCreate("broken", func() *resource {
		t.Fatal("unexpected construction while the nil value is held")
		return nil
	})
	assert.Nil(t, again.Value())
	ref.Release()
	again.Release()
	assert.Equal(t, 1, destroyCalls)
}

func TestReplacedEntryStaysAlive(t *testing.T) {
	factory := &resourceFactory{}
	cache := New(factory.destroy)

	// a constructor that re-enters the cache for the same key reproduces
	// the install race deterministically: the outer install wins
	var inner *Ref[*resource]
	outer := cache.GetOrCreate("k", func() *resource {
		inner = cache.GetOrCreate("k", factory.ctor)
		return factory.ctor()
	})
	require.NotNil(t, inner)
	assert.NotSame(t, inner.Value(), outer.Value())

	hit := cache.GetOrCreate("k", factory.ctor)
	assert.Same(t, outer.Value(), hit.Value())
	hit.Release()

	orphan := inner.Value()
	inner.Release()
	assert.True(t, orphan.destroyed)
	assert.False(t, outer.Value().destroyed)
	outer.Release()
	assert.Equal(t, 2, factory.destroyed)
}

func TestCacheWithLocker(t *testing.T) {
	var destroyed sync.Map
	cache := New(func(res *resource) { destroyed.Store(res, true) }, WithLocker(&sync.Mutex{}))

	const Workers = 8
	var group sync.WaitGroup
	for w := 0; w < Workers; w++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for i := 0; i < 200; i++ {
				ref := cache.GetOrCreate(strconv.Itoa(i % 16), func() *resource {
					return &resource{ id: i }
				})
				clone := ref.Clone()
				ref.Release()
				clone.Release()
			}
		}()
	}
	group.Wait()
	assert.Equal(t, 0, cache.LiveLen())
	stats := cache.Stats()
	assert.Equal(t, stats.Constructions, stats.Destructions)
	assert.Equal(t, uint64(Workers*200), stats.Hits + stats.Misses)
}

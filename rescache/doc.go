// The rescache subpackage provides a keyed cache for expensive shared
// resources (glyph images, textures) that never extends the lifetime
// of the values it stores.
//
// A [Cache] maps string keys to entries. Looking up a key either returns
// a new strong holder ([Ref]) for the live value stored under it, or
// constructs a new value and stores it. The cache itself never counts as
// a holder: once every [Ref] for a value has been released, the value is
// destroyed (the destroy function passed to [New] is invoked) and the
// entry becomes expired. Expired entries stay in the map until they are
// overwritten by the next construction for the same key or until
// [Cache.PurgeExpired] sweeps them.
//
// Caches are not safe for concurrent use unless created with [WithLocker].
// Even then, construction is not deduplicated: two goroutines missing the
// same key at the same time will both construct a value, and the last one
// to finish replaces the other in the map. The replaced value remains alive
// for as long as its own holders keep it.
package rescache

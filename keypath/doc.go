// Package keypath reads, writes and removes values deep inside nested
// containers addressed by key paths.
//
// A key path is either a string split on a separator ("database.host",
// with `\` escaping a literal separator) or an explicit key sequence
// (keypath.Path{"users", 0, "id"}).
//
//	doc := container.Of("database", container.Of("host", "localhost"))
//	host, _ := keypath.Get(doc, "database.host")
//	_ = keypath.Set(doc, "database.port", 5432)
//
// Behaviour is tuned with functional options applied over DefaultOptions:
// a missing element yields the Default option unless ThrowOnMissing is set,
// and a write through a scalar replaces it unless ThrowOnCollision is set.
//
// PathMap drives bulk copies: each input key path is read once and written to
// every one of its output key paths.
package keypath

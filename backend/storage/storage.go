package storage

// KV is a durable string-keyed store. Read returns nil, nil for a missing key.
//
// A nil KV means storage is unavailable; callers skip reads and writes.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

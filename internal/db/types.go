package db

// Store is the persisted key-value boundary. Entries are grouped by a
// namespace so several profiles can share one database file. A missing
// entry reads back as the empty string.
type Store interface {
	Close() error
	SetEntry(namespace, key, value string) error
	GetEntry(namespace, key string) (string, error)
	DeleteEntry(namespace, key string) error
}

package storage

// Backend is a per-key text store. Each key is read and written
// independently; there is no transaction spanning multiple keys, so a crash
// between two writes can leave collections mutually inconsistent. Last
// write wins.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Read(key string) (value string, found bool, err error)
	Write(key, value string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

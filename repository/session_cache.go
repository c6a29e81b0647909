package repository

// SessionCache holds the latest assessment per session key. Entries are
// overwritten on each recomputation and may expire.
type SessionCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

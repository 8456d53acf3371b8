package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access
type Reader interface {
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// LookupEnv returns the value of the environment variable named by the key
// and whether it was set
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed map, for programmatic setups
type MapReader map[string]string

// LookupEnv returns the mapped value for key
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Layered looks a key up in each Reader in turn; the first Reader that
// has the key wins.
type Layered []Reader

// LookupEnv returns the value from the first Reader that has key
func (l Layered) LookupEnv(key string) (string, bool) {
	for _, r := range l {
		if v, ok := r.LookupEnv(key); ok {
			return v, true
		}
	}
	return "", false
}

package lexicon

import (
	"io"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/wordforge/lexigrid/alphabet"
)

// Manager caches loaded lexicons by name and guards concurrent loads of
// the same name with golang.org/x/sync/singleflight: the process only
// ever builds one lexicon per name (spec §3's "one active lexicon per
// process" non-goal for localization, generalized here to concurrent
// startup requests for the same name racing each other), no matter how
// many callers ask for it at once — a real concern once the AI move-query
// endpoint (C13) and game creation can both trigger a load of the same
// lexicon before it's cached.
type Manager struct {
	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]*Lexicon
}

func NewManager() *Manager {
	return &Manager{loaded: make(map[string]*Lexicon)}
}

// Get returns the named lexicon, loading it via open on a cache miss.
// Concurrent Get calls for the same name block on one another rather than
// loading the word list and building the GADDAG twice.
func (m *Manager) Get(name string, alph *alphabet.Alphabet, open func() (io.ReadCloser, error)) (*Lexicon, error) {
	m.mu.RLock()
	if l, ok := m.loaded[name]; ok {
		m.mu.RUnlock()
		return l, nil
	}
	m.mu.RUnlock()

	v, err, _ := m.group.Do(name, func() (interface{}, error) {
		l, err := Load(name, alph, open)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.loaded[name] = l
		m.mu.Unlock()
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Lexicon), nil
}

package chat

import (
	"sync"
	"time"

	"restobot/app/services/assistant/internal/agent/cart"
	"restobot/app/services/assistant/internal/agent/menu"

	"restobot/app/common/snowflake"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is one conversation log record. The log is append-only and its order
// is the display order.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the explicit per-conversation context: the cart and the
// conversation log, created when the conversation opens and discarded when
// it closes. The mutex serializes turns, so at most one utterance is in
// flight per session.
type Session struct {
	ID        int64
	Cart      *cart.Cart
	CreatedAt time.Time

	mu  sync.Mutex
	log []Entry
}

// appendTurn records one processed turn: the user's utterance first, then
// the fully computed reply. Callers hold the session lock.
func (s *Session) appendTurn(utterance, reply string) {
	s.log = append(s.log,
		Entry{Role: RoleUser, Content: utterance},
		Entry{Role: RoleAssistant, Content: reply},
	)
}

// History returns a copy of the conversation log in chronological order.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.log))
	copy(out, s.log)
	return out
}

// Store owns the live sessions of the process, keyed by snowflake ID.
type Store struct {
	mu       sync.RWMutex
	resolver *menu.Resolver
	sessions map[int64]*Session
}

func NewStore(resolver *menu.Resolver) *Store {
	if resolver == nil {
		resolver = menu.NewResolver(0)
	}
	return &Store{
		resolver: resolver,
		sessions: make(map[int64]*Session),
	}
}

// Open creates a fresh session with an empty cart and an empty log.
func (st *Store) Open() *Session {
	s := &Session{
		ID:        snowflake.Next(),
		Cart:      cart.New(st.resolver),
		CreatedAt: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(id int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	return s, ok
}

// Close discards the session; its cart and log are gone with it.
func (st *Store) Close(id int64) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

package session

import (
	"sync"
	"time"

	"KasfoMonitor/internal/loan"
	"KasfoMonitor/internal/notification"

	"github.com/google/uuid"
)

// Slot names one of the two uploads a session holds.
type Slot string

const (
	SlotLoan      Slot = "loan"
	SlotRepayment Slot = "repayment"
)

// ParseSlot maps a path segment to a Slot.
func ParseSlot(s string) (Slot, bool) {
	switch Slot(s) {
	case SlotLoan, SlotRepayment:
		return Slot(s), true
	}
	return "", false
}

// Upload is a loaded file kept in a slot. Table is never mutated once stored.
type Upload struct {
	FileName    string      `json:"file_name"`
	Fingerprint string      `json:"fingerprint"`
	LoadedAt    time.Time   `json:"loaded_at"`
	Table       *loan.Table `json:"-"`
}

type Session struct {
	ID        string
	CreatedAt time.Time
	Notices   *notification.NotificationService

	mu        sync.Mutex
	ttl       time.Duration
	expiresAt time.Time
	uploads   map[Slot]*Upload
}

// Replace stores u in slot, dropping whatever was there.
func (s *Session) Replace(slot Slot, u *Upload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[slot] = u
}

func (s *Session) Get(slot Slot) (*Upload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploads[slot]
	return u, ok
}

func (s *Session) Clear(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.uploads, slot)
}

// Reconcile runs the engine over the current slots. It returns nil until a
// loan file has been loaded.
func (s *Session) Reconcile() *loan.Reconciliation {
	s.mu.Lock()
	l, r := s.uploads[SlotLoan], s.uploads[SlotRepayment]
	s.mu.Unlock()

	if l == nil {
		return nil
	}
	var repay *loan.Table
	if r != nil {
		repay = r.Table
	}
	return loan.Reconcile(l.Table, repay)
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = now.Add(s.ttl)
}

type Manager struct {
	sessions map[string]*Session
	mu       sync.Mutex
	now      func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// CreateSession opens an empty session that expires after ttl of inactivity.
func (m *Manager) CreateSession(ttl time.Duration) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Notices:   notification.NewNotificationService(),
		ttl:       ttl,
		expiresAt: now.Add(ttl),
		uploads:   make(map[Slot]*Upload),
	}
	m.sessions[session.ID] = session
	return session
}

// GetSession returns a live session and extends its expiry. Expired sessions
// are removed and reported as missing.
func (m *Manager) GetSession(sessionID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[sessionID]
	if !exists {
		return nil, false
	}
	now := m.now()
	if session.expired(now) {
		delete(m.sessions, sessionID)
		return nil, false
	}
	session.touch(now)
	return session, true
}

func (m *Manager) DeleteSession(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, exists := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	return exists
}

// CleanupExpiredSessions drops every expired session and returns how many went.
func (m *Manager) CleanupExpiredSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, session := range m.sessions {
		if session.expired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

package notification

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a message shown to the user of one session.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// maxNotifications bounds the per-session backlog; older entries are dropped.
const maxNotifications = 50

type NotificationService struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewNotificationService() *NotificationService {
	return &NotificationService{
		notifications: make([]Notification, 0),
	}
}

func (ns *NotificationService) AddNotification(level Level, message string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.notifications = append(ns.notifications, Notification{Level: level, Message: message, At: time.Now()})
	if n := len(ns.notifications); n > maxNotifications {
		ns.notifications = append([]Notification(nil), ns.notifications[n-maxNotifications:]...)
	}
}

// GetNotifications returns a copy of the backlog, oldest first.
func (ns *NotificationService) GetNotifications() []Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	out := make([]Notification, len(ns.notifications))
	copy(out, ns.notifications)
	return out
}

func (ns *NotificationService) ClearNotifications() {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.notifications = []Notification{}
}

package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService(t *testing.T) {
	ns := NewNotificationService()
	ns.AddNotification(LevelSuccess, "로드 완료: 3건")
	ns.AddNotification(LevelError, "파일 읽기 실패")

	got := ns.GetNotifications()
	require.Len(t, got, 2)
	assert.Equal(t, LevelSuccess, got[0].Level)
	assert.Equal(t, "파일 읽기 실패", got[1].Message)

	got[0].Message = "mutated"
	assert.Equal(t, "로드 완료: 3건", ns.GetNotifications()[0].Message)

	ns.ClearNotifications()
	assert.Empty(t, ns.GetNotifications())
}

func TestNotificationServiceBounded(t *testing.T) {
	ns := NewNotificationService()
	for i := 0; i < maxNotifications+5; i++ {
		ns.AddNotification(LevelInfo, fmt.Sprintf("n%d", i))
	}
	got := ns.GetNotifications()
	require.Len(t, got, maxNotifications)
	assert.Equal(t, "n5", got[0].Message)
}

package logic

import (
	"testing"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture() (*fakeNotificationRepo, *NotificationLogic) {
	memberships := newFakeMembershipRepo()
	memberships.put("u1", "c1", model.RoleMember)
	memberships.put("u2", "c1", model.RoleMember)
	notifications := newFakeNotificationRepo()
	return notifications, NewNotificationLogic(nil, notifications, memberships)
}

func TestBroadcast(t *testing.T) {
	notifications, nl := newNotificationFixture()

	require.NoError(t, nl.Broadcast("c1", "hello"))
	assert.Len(t, notifications.rows, 2)

	// 空公司广播不报错
	require.NoError(t, nl.Broadcast("empty", "hello"))
	assert.Len(t, notifications.rows, 2)
}

func TestMarkAsRead(t *testing.T) {
	_, nl := newNotificationFixture()

	require.NoError(t, nl.Send("u1", "c1", "msg"))
	list, err := nl.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	notificationId := list[0].NotificationId

	// 非接收人不能置已读
	err = nl.MarkAsRead("u2", notificationId)
	assert.True(t, errs.IsUnauthorized(err))

	require.NoError(t, nl.MarkAsRead("u1", notificationId))

	// read 是终态，重复置已读报 Conflict
	err = nl.MarkAsRead("u1", notificationId)
	assert.True(t, errs.IsConflict(err))

	err = nl.MarkAsRead("u1", "missing")
	assert.True(t, errs.IsNotFound(err))
}

func TestMarkAllAsRead(t *testing.T) {
	_, nl := newNotificationFixture()

	require.NoError(t, nl.Send("u1", "c1", "one"))
	require.NoError(t, nl.Send("u1", "c1", "two"))
	require.NoError(t, nl.Send("u2", "c1", "other user"))

	affected, err := nl.MarkAllAsRead("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	// 没有待读通知不算错误
	affected, err = nl.MarkAllAsRead("u1")
	require.NoError(t, err)
	assert.Zero(t, affected)

	// 其他用户的通知不受影响
	list, err := nl.List("u2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.NotificationStatusPending, list[0].Status)
}

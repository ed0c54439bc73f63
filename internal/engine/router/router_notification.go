package router

import (
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_notification.go
 * @description: notification router
 */

func (rt *Router) notificationRouter(r fiber.Router, auth fiber.Handler) {
	notificationGroup := r.Group("/notification")
	{
		notificationGroup.Get("/my", auth, rt.myNotifications)
		notificationGroup.Post("/:notificationId/read", auth, rt.markNotificationRead)
		notificationGroup.Post("/readAll", auth, rt.markAllNotificationsRead)
	}
}

func (rt *Router) myNotifications(c *fiber.Ctx) error {
	notifications, err := rt.Notification.List(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, notifications)
	return nil
}

func (rt *Router) markNotificationRead(c *fiber.Ctx) error {
	if err := rt.Notification.MarkAsRead(currentUserId(c), c.Params("notificationId")); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) markAllNotificationsRead(c *fiber.Ctx) error {
	affected, err := rt.Notification.MarkAllAsRead(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"marked": affected})
	return nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"campusgig/internal/models"
)

// UserNotifications returns the user's notifications, most recent first.
func (c *Client) UserNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(userID), "notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount returns the backend's count of unread notifications.
func (c *Client) UnreadCount(ctx context.Context, userID string) (int, error) {
	var out models.UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(userID)+"/unread", "notifications", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// MarkNotificationRead marks a single notification read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(notificationID)+"/read", "notifications", nil, nil)
}

// MarkAllNotificationsRead marks every unread notification of the user read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(userID)+"/mark-all-read", "notifications", nil, nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(notificationID), "notifications", nil, nil)
}

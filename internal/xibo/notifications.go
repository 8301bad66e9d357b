package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves all notifications.
func (s *NotificationsService) List(ctx context.Context, opts *ListOptions) ([]*Notification, *Response, error) {
	u, err := addOptions("notification", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var notifications []*Notification
	resp, err := s.client.Do(ctx, req, &notifications)
	if err != nil {
		return nil, resp, err
	}

	return notifications, resp, nil
}

// Add creates a new notification addressed to the given display groups.
func (s *NotificationsService) Add(ctx context.Context, opts *NotificationAddOptions) (*Notification, *Response, error) {
	req, err := s.client.NewFormRequest(http.MethodPost, "notification", opts)
	if err != nil {
		return nil, nil, err
	}

	var notification *Notification
	resp, err := s.client.Do(ctx, req, &notification)
	if err != nil {
		return nil, resp, err
	}

	return notification, resp, nil
}

// Delete deletes a notification. The CMS answers 204 No Content.
func (s *NotificationsService) Delete(ctx context.Context, notificationID int) (*Response, error) {
	u := fmt.Sprintf("notification/%d", notificationID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves displays matching opts.
func (s *DisplaysService) List(ctx context.Context, opts *DisplayListOptions) ([]*Display, *Response, error) {
	u, err := addOptions("display", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var displays []*Display
	resp, err := s.client.Do(ctx, req, &displays)
	if err != nil {
		return nil, resp, err
	}

	return displays, resp, nil
}

// Authorize toggles the authorised flag of a display.
func (s *DisplaysService) Authorize(ctx context.Context, displayID int) (*Response, error) {
	u := fmt.Sprintf("display/authorise/%d", displayID)

	req, err := s.client.NewRequest(http.MethodPut, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

// WakeOnLan sends a wake-on-LAN packet to a display via the CMS.
func (s *DisplaysService) WakeOnLan(ctx context.Context, displayID int) (*Response, error) {
	u := fmt.Sprintf("display/wol/%d", displayID)

	req, err := s.client.NewRequest(http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

// displayGroupActionOptions carries the form fields of display group
// action endpoints.
type displayGroupActionOptions struct {
	Command string `url:"command,omitempty"`
}

// Command queues a predefined command on every display in a group.
func (s *DisplayGroupsService) Command(ctx context.Context, displayGroupID int, command string) (*Response, error) {
	u := fmt.Sprintf("displaygroup/%d/action/command", displayGroupID)

	req, err := s.client.NewFormRequest(http.MethodPost, u, &displayGroupActionOptions{Command: command})
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

// CollectNow asks every display in a group to collect content immediately.
func (s *DisplayGroupsService) CollectNow(ctx context.Context, displayGroupID int) (*Response, error) {
	u := fmt.Sprintf("displaygroup/%d/action/collectNow", displayGroupID)

	req, err := s.client.NewRequest(http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

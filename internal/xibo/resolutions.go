package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves all display resolutions.
func (s *ResolutionsService) List(ctx context.Context, opts *ResolutionListOptions) ([]*Resolution, *Response, error) {
	u, err := addOptions("resolution", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var resolutions []*Resolution
	resp, err := s.client.Do(ctx, req, &resolutions)
	if err != nil {
		return nil, resp, err
	}

	return resolutions, resp, nil
}

// Add creates a new resolution.
func (s *ResolutionsService) Add(ctx context.Context, opts *ResolutionAddOptions) (*Resolution, *Response, error) {
	req, err := s.client.NewFormRequest(http.MethodPost, "resolution", opts)
	if err != nil {
		return nil, nil, err
	}

	var resolution *Resolution
	resp, err := s.client.Do(ctx, req, &resolution)
	if err != nil {
		return nil, resp, err
	}

	return resolution, resp, nil
}

// Delete deletes a resolution. The CMS answers 204 No Content.
func (s *ResolutionsService) Delete(ctx context.Context, resolutionID int) (*Response, error) {
	u := fmt.Sprintf("resolution/%d", resolutionID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

package xibo

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// List retrieves library media items.
func (s *MediaService) List(ctx context.Context, opts *ListOptions) ([]*Media, *Response, error) {
	u, err := addOptions("library", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var media []*Media
	resp, err := s.client.Do(ctx, req, &media)
	if err != nil {
		return nil, resp, err
	}

	return media, resp, nil
}

// Upload uploads a file into the library. name becomes the media name in
// the CMS.
func (s *MediaService) Upload(ctx context.Context, name, filename string, r io.Reader) (*UploadResult, *Response, error) {
	fields := map[string]string{"name": name}

	req, err := s.client.NewUploadRequest(http.MethodPost, "library", filename, r, fields)
	if err != nil {
		return nil, nil, err
	}

	var result *UploadResult
	resp, err := s.client.Do(ctx, req, &result)
	if err != nil {
		return nil, resp, err
	}

	return result, resp, nil
}

// Delete deletes a library media item. The CMS answers 204 No Content.
func (s *MediaService) Delete(ctx context.Context, mediaID int) (*Response, error) {
	u := fmt.Sprintf("library/%d", mediaID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

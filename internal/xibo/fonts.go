package xibo

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// List retrieves all fonts stored in the CMS.
func (s *FontsService) List(ctx context.Context) ([]*Font, *Response, error) {
	req, err := s.client.NewRequest(http.MethodGet, "fonts", nil)
	if err != nil {
		return nil, nil, err
	}

	var fonts []*Font
	resp, err := s.client.Do(ctx, req, &fonts)
	if err != nil {
		return nil, resp, err
	}

	return fonts, resp, nil
}

// Upload uploads a font file.
func (s *FontsService) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, *Response, error) {
	req, err := s.client.NewUploadRequest(http.MethodPost, "fonts", filename, r, nil)
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

// Download writes the binary font file to w.
func (s *FontsService) Download(ctx context.Context, fontID int, w io.Writer) (*Response, error) {
	u := fmt.Sprintf("fonts/download/%d", fontID)

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, w)
}

// Delete deletes a font. The CMS answers 204 No Content.
func (s *FontsService) Delete(ctx context.Context, fontID int) (*Response, error) {
	u := fmt.Sprintf("fonts/%d", fontID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

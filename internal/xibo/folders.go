package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves all folders as the flat list the CMS reports.
func (s *FoldersService) List(ctx context.Context) ([]*Folder, *Response, error) {
	req, err := s.client.NewRequest(http.MethodGet, "folders", nil)
	if err != nil {
		return nil, nil, err
	}

	var folders []*Folder
	resp, err := s.client.Do(ctx, req, &folders)
	if err != nil {
		return nil, resp, err
	}

	return folders, resp, nil
}

// Add creates a new folder.
func (s *FoldersService) Add(ctx context.Context, opts *FolderAddOptions) (*Folder, *Response, error) {
	req, err := s.client.NewFormRequest(http.MethodPost, "folders", opts)
	if err != nil {
		return nil, nil, err
	}

	var folder *Folder
	resp, err := s.client.Do(ctx, req, &folder)
	if err != nil {
		return nil, resp, err
	}

	return folder, resp, nil
}

// Delete deletes a folder. The CMS answers 204 No Content.
func (s *FoldersService) Delete(ctx context.Context, folderID int) (*Response, error) {
	u := fmt.Sprintf("folders/%d", folderID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

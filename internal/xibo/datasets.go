package xibo

import (
	"context"
	"fmt"
	"net/http"
)

// List retrieves datasets matching opts.
func (s *DatasetsService) List(ctx context.Context, opts *DataSetListOptions) ([]*DataSet, *Response, error) {
	u, err := addOptions("dataset", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var datasets []*DataSet
	resp, err := s.client.Do(ctx, req, &datasets)
	if err != nil {
		return nil, resp, err
	}

	return datasets, resp, nil
}

// Get retrieves a single dataset by ID. The CMS exposes no per-dataset
// endpoint, so this filters the list endpoint.
func (s *DatasetsService) Get(ctx context.Context, dataSetID int) (*DataSet, *Response, error) {
	datasets, resp, err := s.List(ctx, &DataSetListOptions{DataSetID: dataSetID, Embed: "columns"})
	if err != nil {
		return nil, resp, err
	}
	if len(datasets) == 0 {
		return nil, resp, fmt.Errorf("dataset %d not found", dataSetID)
	}
	return datasets[0], resp, nil
}

// Add creates a new dataset.
func (s *DatasetsService) Add(ctx context.Context, opts *DataSetAddOptions) (*DataSet, *Response, error) {
	req, err := s.client.NewFormRequest(http.MethodPost, "dataset", opts)
	if err != nil {
		return nil, nil, err
	}

	var dataset *DataSet
	resp, err := s.client.Do(ctx, req, &dataset)
	if err != nil {
		return nil, resp, err
	}

	return dataset, resp, nil
}

// Edit updates an existing dataset.
func (s *DatasetsService) Edit(ctx context.Context, dataSetID int, opts *DataSetAddOptions) (*DataSet, *Response, error) {
	u := fmt.Sprintf("dataset/%d", dataSetID)

	req, err := s.client.NewFormRequest(http.MethodPut, u, opts)
	if err != nil {
		return nil, nil, err
	}

	var dataset *DataSet
	resp, err := s.client.Do(ctx, req, &dataset)
	if err != nil {
		return nil, resp, err
	}

	return dataset, resp, nil
}

// Delete deletes a dataset. The CMS answers 204 No Content.
func (s *DatasetsService) Delete(ctx context.Context, dataSetID int) (*Response, error) {
	u := fmt.Sprintf("dataset/%d", dataSetID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

// AddColumn adds a column to a dataset.
func (s *DatasetsService) AddColumn(ctx context.Context, dataSetID int, opts *DataSetColumnAddOptions) (*DataSetColumn, *Response, error) {
	u := fmt.Sprintf("dataset/%d/column", dataSetID)

	req, err := s.client.NewFormRequest(http.MethodPost, u, opts)
	if err != nil {
		return nil, nil, err
	}

	var column *DataSetColumn
	resp, err := s.client.Do(ctx, req, &column)
	if err != nil {
		return nil, resp, err
	}

	return column, resp, nil
}

// Data retrieves the row data of a dataset. Rows are keyed by column
// heading; their shape is dataset-specific.
func (s *DatasetsService) Data(ctx context.Context, dataSetID int, opts *ListOptions) ([]map[string]any, *Response, error) {
	u, err := addOptions(fmt.Sprintf("dataset/data/%d", dataSetID), opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, err
	}

	var rows []map[string]any
	resp, err := s.client.Do(ctx, req, &rows)
	if err != nil {
		return nil, resp, err
	}

	return rows, resp, nil
}

// AddRss publishes a new RSS feed from a dataset.
func (s *DatasetsService) AddRss(ctx context.Context, dataSetID int, opts *DataSetRssOptions) (*DataSetRss, *Response, error) {
	u := fmt.Sprintf("dataset/%d/rss", dataSetID)

	req, err := s.client.NewFormRequest(http.MethodPost, u, opts)
	if err != nil {
		return nil, nil, err
	}

	var rss *DataSetRss
	resp, err := s.client.Do(ctx, req, &rss)
	if err != nil {
		return nil, resp, err
	}

	return rss, resp, nil
}

// EditRss updates an existing dataset RSS feed.
func (s *DatasetsService) EditRss(ctx context.Context, dataSetID, rssID int, opts *DataSetRssOptions) (*DataSetRss, *Response, error) {
	u := fmt.Sprintf("dataset/%d/rss/%d", dataSetID, rssID)

	req, err := s.client.NewFormRequest(http.MethodPut, u, opts)
	if err != nil {
		return nil, nil, err
	}

	var rss *DataSetRss
	resp, err := s.client.Do(ctx, req, &rss)
	if err != nil {
		return nil, resp, err
	}

	return rss, resp, nil
}

// DeleteRss removes a dataset RSS feed. The CMS answers 204 No Content.
func (s *DatasetsService) DeleteRss(ctx context.Context, dataSetID, rssID int) (*Response, error) {
	u := fmt.Sprintf("dataset/%d/rss/%d", dataSetID, rssID)

	req, err := s.client.NewRequest(http.MethodDelete, u, nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(ctx, req, nil)
}

package xibo

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDatasetsService_Get(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("dataSetId"); got != "4" {
			t.Errorf("dataSetId filter = %q, want %q", got, "4")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"dataSetId":4,"dataSet":"fixtures","isRemote":0,"columns":[{"dataSetColumnId":1,"heading":"Name","dataTypeId":1,"dataSetColumnTypeId":1}]}]`)
	})

	dataset, _, err := client.Datasets.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}

	want := &DataSet{
		DataSetID: 4,
		DataSet:   "fixtures",
		Columns: []DataSetColumn{
			{DataSetColumnID: 1, Heading: "Name", DataTypeID: 1, DataSetColumnTypeID: 1},
		},
	}
	if diff := cmp.Diff(want, dataset); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetsService_Get_NotFound(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	_, _, err := client.Datasets.Get(context.Background(), 99)
	if err == nil {
		t.Fatal("Get() expected not-found error, got nil")
	}
}

func TestDatasetsService_Add(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/api/dataset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != mediaTypeForm {
			t.Errorf("Content-Type = %q, want %q", got, mediaTypeForm)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error: %v", err)
		}
		if got := r.PostForm.Get("dataSet"); got != "menu" {
			t.Errorf("dataSet field = %q, want %q", got, "menu")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"dataSetId":7,"dataSet":"menu"}`)
	})

	dataset, _, err := client.Datasets.Add(context.Background(), &DataSetAddOptions{DataSet: "menu"})
	if err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if dataset.DataSetID != 7 {
		t.Errorf("Add() dataSetId = %d, want 7", dataset.DataSetID)
	}
}

func TestDatasetsService_AddColumn(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/api/dataset/7/column", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error: %v", err)
		}
		if got := r.PostForm.Get("heading"); got != "Price" {
			t.Errorf("heading field = %q, want %q", got, "Price")
		}
		if got := r.PostForm.Get("dataTypeId"); got != "2" {
			t.Errorf("dataTypeId field = %q, want %q", got, "2")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"dataSetColumnId":3,"heading":"Price","dataTypeId":2,"dataSetColumnTypeId":1}`)
	})

	column, _, err := client.Datasets.AddColumn(context.Background(), 7, &DataSetColumnAddOptions{
		Heading:             "Price",
		DataTypeID:          2,
		DataSetColumnTypeID: 1,
	})
	if err != nil {
		t.Fatalf("AddColumn() unexpected error: %v", err)
	}
	if column.DataSetColumnID != 3 {
		t.Errorf("AddColumn() dataSetColumnId = %d, want 3", column.DataSetColumnID)
	}
}

func TestDatasetsService_Rss(t *testing.T) {
	client, mux := setup(t)

	mux.HandleFunc("/api/dataset/7/rss", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"rssId":2,"dataSetId":7,"title":"specials"}`)
	})
	mux.HandleFunc("/api/dataset/7/rss/2", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"rssId":2,"dataSetId":7,"title":"renamed"}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %q", r.Method)
		}
	})

	rss, _, err := client.Datasets.AddRss(context.Background(), 7, &DataSetRssOptions{Title: "specials"})
	if err != nil {
		t.Fatalf("AddRss() unexpected error: %v", err)
	}
	if rss.RssID != 2 {
		t.Errorf("AddRss() rssId = %d, want 2", rss.RssID)
	}

	edited, _, err := client.Datasets.EditRss(context.Background(), 7, 2, &DataSetRssOptions{Title: "renamed"})
	if err != nil {
		t.Fatalf("EditRss() unexpected error: %v", err)
	}
	if edited.Title != "renamed" {
		t.Errorf("EditRss() title = %q, want %q", edited.Title, "renamed")
	}

	resp, err := client.Datasets.DeleteRss(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("DeleteRss() unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("DeleteRss() status = %d, want 204", resp.StatusCode)
	}
}

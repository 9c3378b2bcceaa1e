package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/util"
)

const (
	apiV1ViewPath      = "/api/v1/view"
	apiV1RecordsPath   = "/api/v1/records"
	apiV1SelectionPath = "/api/v1/selection"
	apiV1ExportPath    = "/api/v1/export"
)

// APIError is returned for every non 2xx answer.
type APIError struct {
	Status int
	Body   v1.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Body.Error)
}

// RecordsSvc is an HTTP client for the record-manager API.
type RecordsSvc struct {
	baseURL string
	client  *http.Client
}

func NewRecordsService(baseURL string) *RecordsSvc {
	zap.S().Infow("Initializing RecordsService", "url", baseURL)
	return &RecordsSvc{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RecordsSvc) View() (*v1.View, error) {
	return s.doView(http.MethodGet, apiV1ViewPath, nil)
}

func (s *RecordsSvc) Search(query string) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1ViewPath+"/query", v1.QueryRequest{Query: query})
}

func (s *RecordsSvc) Sort(keys ...string) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1ViewPath+"/sort", v1.SortRequest{Sort: keys})
}

func (s *RecordsSvc) SetPerPage(n int) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1ViewPath+"/per-page", v1.PerPageRequest{PerPage: n})
}

func (s *RecordsSvc) GoToPage(page int) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1ViewPath+"/page", v1.PageRequest{Page: page})
}

func (s *RecordsSvc) Move(move string) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1ViewPath+"/page", v1.PageRequest{Move: util.Ptr(move)})
}

func (s *RecordsSvc) Create(name, email, role string) (*v1.View, error) {
	return s.doView(http.MethodPost, apiV1RecordsPath, v1.CreateRecordRequest{Name: name, Email: email, Role: role})
}

func (s *RecordsSvc) Update(id string, req v1.UpdateRecordRequest) (*v1.View, error) {
	return s.doView(http.MethodPatch, apiV1RecordsPath+"/"+id, req)
}

func (s *RecordsSvc) Delete(id string) (*v1.View, error) {
	return s.doView(http.MethodDelete, apiV1RecordsPath+"/"+id, nil)
}

func (s *RecordsSvc) Copy(id string) (*v1.View, error) {
	return s.doView(http.MethodPost, apiV1RecordsPath+"/"+id+"/copy", nil)
}

func (s *RecordsSvc) BulkDelete(confirm bool) (*v1.View, error) {
	return s.doView(http.MethodPost, fmt.Sprintf("%s/bulk-delete?confirm=%t", apiV1RecordsPath, confirm), nil)
}

func (s *RecordsSvc) Clear(confirm bool) (*v1.View, error) {
	return s.doView(http.MethodDelete, fmt.Sprintf("%s?confirm=%t", apiV1RecordsPath, confirm), nil)
}

func (s *RecordsSvc) Select(id string, checked bool) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1SelectionPath+"/"+id, v1.SelectRequest{Checked: checked})
}

func (s *RecordsSvc) SelectPage(checked bool) (*v1.View, error) {
	return s.doView(http.MethodPut, apiV1SelectionPath, v1.SelectRequest{Checked: checked})
}

// ExportCSV downloads the CSV export.
func (s *RecordsSvc) ExportCSV(filtered bool) (string, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s%s.csv?filtered=%t", s.baseURL, apiV1ExportPath, filtered))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode}
	}
	return string(data), nil
}

func (s *RecordsSvc) doView(method, path string, body any) (*v1.View, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(data, &apiErr.Body)
		return nil, apiErr
	}

	var view v1.View
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("failed to decode view: %w", err)
	}
	return &view, nil
}

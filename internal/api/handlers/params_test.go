package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantID  int64
		wantErr string
	}{
		{name: "valid id", url: "/api/quiz?id=42", wantID: 42},
		{name: "missing", url: "/api/quiz", wantErr: "id parameter is required"},
		{name: "non numeric", url: "/api/quiz?id=abc", wantErr: "id parameter must be a positive integer"},
		{name: "zero", url: "/api/quiz?id=0", wantErr: "id parameter must be a positive integer"},
		{name: "negative", url: "/api/quiz?id=-5", wantErr: "id parameter must be a positive integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			id, err := parseIDParam(req, "id")

			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Errorf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseIDParam returned error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", url: "/api/quizzes", wantLimit: 20, wantOffset: 0},
		{name: "explicit values", url: "/api/quizzes?limit=5&offset=10", wantLimit: 5, wantOffset: 10},
		{name: "limit above cap ignored", url: "/api/quizzes?limit=500", wantLimit: 20, wantOffset: 0},
		{name: "zero limit ignored", url: "/api/quizzes?limit=0", wantLimit: 20, wantOffset: 0},
		{name: "negative offset ignored", url: "/api/quizzes?offset=-1", wantLimit: 20, wantOffset: 0},
		{name: "non numeric ignored", url: "/api/quizzes?limit=ten&offset=two", wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			limit, offset := parsePagination(req)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("parsePagination = (%d, %d), want (%d, %d)", limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name:    "valid /file/ URL",
			url:     "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "valid /design/ URL",
			url:     "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with node-id parameter",
			url:     "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Tokens?node-id=11933-305884",
			want:    "4gkABR5gEZnIvlCaXmA4KI",
			wantErr: false,
		},
		{
			name:    "URL without www subdomain",
			url:     "https://figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with http protocol",
			url:     "http://www.figma.com/file/ABC123XYZ/Design-Name",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "URL with trailing slash",
			url:     "https://www.figma.com/file/ABC123XYZ/",
			want:    "ABC123XYZ",
			wantErr: false,
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			want:    "",
			wantErr: true,
		},
		{
			name:    "file key with mixed alphanumeric",
			url:     "https://www.figma.com/file/aB1cD2eF3gH4iJ5kL6/MyDesign",
			want:    "aB1cD2eF3gH4iJ5kL6",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Figma-Token"); got != "token-abc" {
			t.Errorf("missing access token header, got %q", got)
		}
		w.Write([]byte(`{
			"name": "Design System",
			"lastModified": "2024-05-01T10:00:00Z",
			"document": {
				"id": "0:0",
				"name": "Document",
				"type": "DOCUMENT",
				"children": [
					{"id": "1:1", "name": "Page 1", "type": "CANVAS", "styles": {"fill": "1:10"}}
				]
			},
			"variables": {
				"VariableID:1": {
					"name": "Colors/Accent",
					"resolvedType": "COLOR",
					"valuesByMode": {"1:0": {"r": 1, "g": 0, "b": 0, "a": 1}}
				}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("token-abc", WithBaseURL(srv.URL))
	resp, err := client.GetFile(context.Background(), "KEY123")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}

	if resp.Name != "Design System" {
		t.Errorf("Name = %q, want %q", resp.Name, "Design System")
	}
	if len(resp.Document.Children) != 1 {
		t.Fatalf("Document children = %d, want 1", len(resp.Document.Children))
	}
	if got := resp.Document.Children[0].Styles["fill"]; got != "1:10" {
		t.Errorf("style binding = %q, want %q", got, "1:10")
	}
	v, ok := resp.Variables["VariableID:1"]
	if !ok {
		t.Fatal("variable VariableID:1 not parsed")
	}
	if v.ResolvedType != "COLOR" || len(v.ValuesByMode) != 1 {
		t.Errorf("variable = %+v, want COLOR with one mode", v)
	}
}

func TestGetFileStyles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY123/styles" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"meta": {
				"styles": [
					{"key": "k1", "node_id": "1:10", "style_type": "FILL", "name": "Colors/Primary/500"},
					{"key": "k2", "node_id": "1:11", "style_type": "TEXT", "name": "Heading 1"}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("token-abc", WithBaseURL(srv.URL))
	resp, err := client.GetFileStyles(context.Background(), "KEY123")
	if err != nil {
		t.Fatalf("GetFileStyles() error = %v", err)
	}

	if len(resp.Meta.Styles) != 2 {
		t.Fatalf("styles = %d, want 2", len(resp.Meta.Styles))
	}
	if resp.Meta.Styles[0].StyleType != "FILL" || resp.Meta.Styles[0].NodeID != "1:10" {
		t.Errorf("unexpected first style: %+v", resp.Meta.Styles[0])
	}
}

func TestGetFileTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad-token", WithBaseURL(srv.URL))
	_, err := client.GetFile(context.Background(), "KEY123")
	if err == nil {
		t.Fatal("GetFile() expected error on 403, got nil")
	}
}

func TestGetFileRetriesServerErrors(t *testing.T) {
	orig := backoff
	backoff = func(int) time.Duration { return 0 }
	defer func() { backoff = orig }()

	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"name": "Recovered", "document": {"id": "0:0", "name": "Document", "type": "DOCUMENT"}}`))
	}))
	defer srv.Close()

	client := NewClient("token-abc", WithBaseURL(srv.URL))
	resp, err := client.GetFile(context.Background(), "KEY123")
	if err != nil {
		t.Fatalf("GetFile() error = %v after %d attempts", err, attempts)
	}
	if resp.Name != "Recovered" {
		t.Errorf("Name = %q, want %q", resp.Name, "Recovered")
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

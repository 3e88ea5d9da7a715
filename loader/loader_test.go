package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/oaserrors"
)

const swaggerJSON = `{
  "swagger": "2.0",
  "info": {"title": "Pets", "version": "1"},
  "paths": {"/pets": {"post": {"responses": {"200": {"description": "ok"}}}}},
  "definitions": {"Pet": {"type": "object", "properties": {"id": {"type": "integer"}}}}
}`

const openAPIYAML = `openapi: 3.0.3
info:
  title: Pets
  version: "1"
paths:
  /pets:
    post:
      responses:
        200:
          description: ok
components:
  schemas:
    Pet:
      type: object
      required: [id]
      properties:
        id:
          type: integer
          maximum: 10
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "petstore.json", swaggerJSON)

	doc, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "2.0", doc.Version)
	assert.True(t, doc.IsOAS2())
	assert.False(t, doc.IsOAS3())
	assert.Equal(t, FormatJSON, doc.Format)
	assert.Equal(t, path, doc.SourcePath)
	assert.Equal(t, int64(len(swaggerJSON)), doc.SizeBytes)

	pet := doc.Data["definitions"].(map[string]any)["Pet"].(map[string]any)
	assert.Equal(t, "object", pet["type"])
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "petstore.yaml", openAPIYAML)

	doc, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.Version)
	assert.True(t, doc.IsOAS3())
	assert.Equal(t, FormatYAML, doc.Format)

	// the unquoted 200 response key becomes a string key
	responses := doc.Data["paths"].(map[string]any)["/pets"].(map[string]any)["post"].(map[string]any)["responses"]
	require.IsType(t, map[string]any{}, responses)
	assert.Contains(t, responses, "200")

	// YAML integers decode like JSON numbers
	id := doc.Data["components"].(map[string]any)["schemas"].(map[string]any)["Pet"].(map[string]any)["properties"].(map[string]any)["id"].(map[string]any)
	assert.Equal(t, float64(10), id["maximum"])
	assert.Equal(t, []any{"id"}, doc.Data["components"].(map[string]any)["schemas"].(map[string]any)["Pet"].(map[string]any)["required"])
}

func TestLoad_ContentDetection(t *testing.T) {
	jsonPath := writeFile(t, "spec.txt", swaggerJSON)
	doc, err := Load(context.Background(), jsonPath)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, doc.Format)

	yamlPath := writeFile(t, "spec", openAPIYAML)
	doc, err = Load(context.Background(), yamlPath)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, doc.Format)
}

func TestLoad_UnquotedSwaggerVersion(t *testing.T) {
	path := writeFile(t, "old.yaml", "swagger: 2.0\npaths: {}\n")
	doc, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Version)
	assert.True(t, doc.IsOAS2())
}

func TestLoad_Stdin(t *testing.T) {
	doc, err := Load(context.Background(), StdinSource, WithStdin(strings.NewReader(openAPIYAML)))
	require.NoError(t, err)
	assert.Equal(t, "-", doc.SourcePath)
	assert.Equal(t, FormatYAML, doc.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		msg     string
	}{
		{"empty", "  \n", oaserrors.ErrParse, "empty document"},
		{"invalid json", `{"swagger": "2.0",`, oaserrors.ErrParse, "invalid JSON"},
		{"invalid yaml", "openapi: [unterminated\n", oaserrors.ErrParse, "invalid YAML"},
		{"root array", `[1, 2]`, oaserrors.ErrParse, "document root must be an object"},
		{"no version", `{"info": {}}`, oaserrors.ErrParse, "unable to detect OpenAPI version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "spec.data", tt.content)
			doc, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "loader: failed to read file")
}

func TestLoad_EmptySource(t *testing.T) {
	_, err := Load(context.Background(), "")
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestLoad_MaxBytes(t *testing.T) {
	path := writeFile(t, "big.json", swaggerJSON)

	_, err := Load(context.Background(), path, WithMaxBytes(16))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	var limitErr *oaserrors.ResourceLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, int64(16), limitErr.Limit)
}

func TestLoad_URL(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/spec":
			w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
			_, _ = w.Write([]byte(openAPIYAML))
		case "/spec.json":
			_, _ = w.Write([]byte(swaggerJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	doc, err := Load(context.Background(), server.URL+"/spec")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, doc.Format)
	assert.Equal(t, "3.0.3", doc.Version)
	assert.Equal(t, oasflat.UserAgent(), gotUA)

	doc, err = Load(context.Background(), server.URL+"/spec.json", WithUserAgent("custom/1.0"))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, doc.Format)
	assert.Equal(t, "custom/1.0", gotUA)

	_, err = Load(context.Background(), server.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestLoad_URLHonoursContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Load(ctx, server.URL+"/slow.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestLoad_URLMaxBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(swaggerJSON))
	}))
	defer server.Close()

	_, err := Load(context.Background(), server.URL+"/spec.json", WithMaxBytes(10))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))
}

func TestLoadBytes(t *testing.T) {
	l := New()

	doc, err := l.LoadBytes([]byte(openAPIYAML), "inline")
	require.NoError(t, err)
	assert.Equal(t, "inline", doc.SourcePath)
	assert.Equal(t, FormatYAML, doc.Format)

	_, err = New(WithMaxBytes(8)).LoadBytes([]byte(swaggerJSON), "inline.json")
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))
}

func TestNew_Defaults(t *testing.T) {
	l := New(WithTimeout(0), WithMaxBytes(-1))
	assert.Equal(t, DefaultTimeout, l.Timeout)
	assert.Equal(t, int64(DefaultMaxBytes), l.MaxBytes)

	l = New(WithTimeout(time.Second), WithInsecureSkipVerify(true))
	assert.Equal(t, time.Second, l.Timeout)
	assert.NotNil(t, l.httpClient().Transport)

	custom := &http.Client{}
	assert.Same(t, custom, New(WithHTTPClient(custom)).httpClient())
}

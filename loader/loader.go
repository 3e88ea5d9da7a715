package loader

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/flatten"
	"github.com/erraggy/oasflat/oaserrors"
)

// Document is a decoded specification.
type Document struct {
	// Data is the decoded root object.
	Data map[string]any
	// Version is the "swagger" or "openapi" field value (e.g. "2.0", "3.0.3").
	Version string
	// SourcePath is the file path or URL the document came from, "-" for
	// standard input, or the name given to LoadBytes.
	SourcePath string
	// Format is the serialization format that was decoded.
	Format SourceFormat
	// SizeBytes is the size of the raw input.
	SizeBytes int64
	// LoadTime is how long reading the source took.
	LoadTime time.Duration

	swagger bool
}

// IsOAS2 reports whether the document is a Swagger 2.0 document.
func (d *Document) IsOAS2() bool {
	return d.swagger
}

// IsOAS3 reports whether the document is an OpenAPI 3.x document.
func (d *Document) IsOAS3() bool {
	return !d.swagger && strings.HasPrefix(d.Version, "3.")
}

// Loader reads documents. The zero value is not ready for use; call New.
type Loader struct {
	// Timeout is the HTTP client timeout for URL sources.
	Timeout time.Duration
	// MaxBytes caps the size of any source.
	MaxBytes int64
	// UserAgent is sent with URL requests. Defaults to oasflat.UserAgent().
	UserAgent string
	// HTTPClient, if set, is used for URL sources as-is.
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS verification for URL sources.
	InsecureSkipVerify bool
	// Stdin is read for the "-" source. Defaults to os.Stdin.
	Stdin io.Reader
	// Logger receives load diagnostics. If nil, logging is disabled.
	Logger flatten.Logger
}

// New creates a Loader with defaults and the given options applied.
func New(opts ...Option) *Loader {
	l := &Loader{
		Timeout:  DefaultTimeout,
		MaxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes source with a Loader built from opts.
func Load(ctx context.Context, source string, opts ...Option) (*Document, error) {
	return New(opts...).Load(ctx, source)
}

func (l *Loader) log() flatten.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return flatten.NopLogger{}
}

// Load reads and decodes source: a file path, a URL, or "-" for stdin.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	if source == "" {
		return nil, &oaserrors.ConfigError{Option: "source", Message: "no specification source given"}
	}

	start := time.Now()
	var (
		data   []byte
		format SourceFormat
		err    error
	)
	switch {
	case source == StdinSource:
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = l.readLimited(stdin, source)
		if err != nil {
			return nil, err
		}
		format = FormatUnknown
	case isURL(source):
		var contentType string
		data, contentType, err = l.fetchURL(ctx, source)
		if err != nil {
			return nil, err
		}
		format = formatFromURL(source, contentType)
	default:
		data, err = l.readFile(source)
		if err != nil {
			return nil, err
		}
		format = formatFromPath(source)
	}
	loadTime := time.Since(start)

	doc, err := l.decode(data, source, format)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	l.log().Debug("loaded document",
		"source", source,
		"format", string(doc.Format),
		"version", doc.Version,
		"bytes", doc.SizeBytes,
		"elapsed", loadTime)
	return doc, nil
}

// LoadBytes decodes an in-memory document. name is recorded as SourcePath
// and its extension, if any, selects the format.
func (l *Loader) LoadBytes(data []byte, name string) (*Document, error) {
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return nil, l.tooLarge(name, int64(len(data)))
	}
	return l.decode(data, name, formatFromPath(name))
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return l.readLimited(f, path)
}

// readLimited reads at most MaxBytes from r, failing if there is more.
func (l *Loader) readLimited(r io.Reader, source string) ([]byte, error) {
	if l.MaxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("loader: failed to read %s: %w", source, err)
		}
		return data, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, l.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read %s: %w", source, err)
	}
	if int64(len(data)) > l.MaxBytes {
		return nil, l.tooLarge(source, int64(len(data)))
	}
	return data, nil
}

func (l *Loader) tooLarge(source string, actual int64) error {
	return &oaserrors.ResourceLimitError{
		ResourceType: "document size",
		Limit:        l.MaxBytes,
		Actual:       actual,
		Message:      source + " exceeds the maximum document size",
	}
}

func (l *Loader) httpClient() *http.Client {
	if l.HTTPClient != nil {
		if l.InsecureSkipVerify {
			l.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}
		return l.HTTPClient
	}
	client := &http.Client{Timeout: l.Timeout}
	if l.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
				MinVersion:         tls.VersionTLS12,
			},
		}
	}
	return client
}

// fetchURL fetches a URL and returns the body and Content-Type header.
func (l *Loader) fetchURL(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to create request: %w", err)
	}
	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = oasflat.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.httpClient().Do(req) //nolint:gosec // URL is user-provided input
	if err != nil {
		return nil, "", fmt.Errorf("loader: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("loader: HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	data, err := l.readLimited(resp.Body, rawURL)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// decode parses data as JSON or YAML and checks the version field.
func (l *Loader) decode(data []byte, source string, format SourceFormat) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "empty document"}
	}
	if format == FormatUnknown {
		format = formatFromContent(data)
	}

	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ParseError{Path: source, Message: "invalid JSON", Cause: err}
		}
	default:
		format = FormatYAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &oaserrors.ParseError{Path: source, Message: "invalid YAML", Cause: err}
		}
	}

	root, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("document root must be an object, got %T", raw),
		}
	}

	doc := &Document{
		Data:       root,
		SourcePath: source,
		Format:     format,
		SizeBytes:  int64(len(data)),
	}
	if v, ok := versionString(root["swagger"]); ok {
		doc.Version = v
		doc.swagger = true
		return doc, nil
	}
	if v, ok := versionString(root["openapi"]); ok {
		doc.Version = v
		return doc, nil
	}
	return nil, &oaserrors.ParseError{
		Path:    source,
		Message: `unable to detect OpenAPI version: document must contain either 'swagger: "2.0"' or 'openapi: "3.x.x"' at the root level`,
	}
}

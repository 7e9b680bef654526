package richtext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// ErrUnsupportedScheme is returned by OpenURL for anything but http and https.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// OpenURL issues a GET for rawURL and returns the response body once the
// status is 2xx and the declared media type is textual. A missing
// Content-Type is accepted; ValidateInput still guards the body. The caller
// closes the returned reader.
func OpenURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/plain, text/markdown;q=0.9, text/*;q=0.8")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: status %s", u.Redacted(), resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); !textualMediaType(ct) {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: content type %q: %w", u.Redacted(), ct, ErrBinaryInput)
	}
	return resp.Body, nil
}

func textualMediaType(ct string) bool {
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	if strings.HasPrefix(mt, "text/") {
		return true
	}
	switch mt {
	case "application/json", "application/yaml", "application/x-yaml", "application/toml", "application/xml":
		return true
	}
	return strings.HasSuffix(mt, "+json") || strings.HasSuffix(mt, "+xml")
}

// HTTPRenderRequest configures HTTPRender. A nil Client uses
// http.DefaultClient.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Width   int
	Theme   Theme
	Partial Partial
	Output  Output
	Options []RenderOption
}

// HTTPRender fetches req.URL with OpenURL and renders the body.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("http render: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("http render: Writer is nil")
	}
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("http render: %w", err)
	}
	defer body.Close()
	return Render(RenderRequest{
		Reader:  body,
		Writer:  req.Writer,
		Width:   req.Width,
		Theme:   req.Theme,
		Partial: req.Partial,
		Output:  req.Output,
		Options: req.Options,
	})
}

package bodyreplay

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is used when the request does not declare one.
const DefaultCharset = "utf-8"

// Request holds a request body read once and a mutable snapshot of the request parameters.
type Request struct {
	orig    *http.Request
	body    []byte
	charset string
	enc     encoding.Encoding
	params  url.Values
}

// RequestOption configures NewRequest.
type RequestOption func(*requestOptions)

type requestOptions struct {
	maxBodySize int64
}

// WithMaxBodySize rejects bodies larger than n bytes with ErrBodyTooLarge.
// Zero or negative disables the limit.
func WithMaxBodySize(n int64) RequestOption {
	return func(o *requestOptions) {
		o.maxBodySize = n
	}
}

// NewRequest drains r.Body and snapshots the request parameters.
// After this call r.Body is exhausted; read the body through the returned Request.
func NewRequest(r *http.Request, opts ...RequestOption) (*Request, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	charset, enc, err := resolveCharset(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	body, err := readBody(r.Body, o.maxBodySize)
	if err != nil {
		return nil, err
	}

	return &Request{
		orig:    r,
		body:    body,
		charset: charset,
		enc:     enc,
		params:  snapshotParams(r, body),
	}, nil
}

func readBody(body io.ReadCloser, limit int64) ([]byte, error) {
	if body == nil || body == http.NoBody {
		return []byte{}, nil
	}
	defer body.Close()

	var src io.Reader = body
	if limit > 0 {
		// one extra byte tells an exact fit from an overflow
		src = io.LimitReader(body, limit+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBodyRead, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return data, nil
}

func resolveCharset(contentType string) (string, encoding.Encoding, error) {
	name := ""
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil {
			name = strings.TrimSpace(params["charset"])
		}
	}
	if name == "" {
		return DefaultCharset, unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return canonical, enc, nil
}

// snapshotParams merges form-encoded body values with query values, body first,
// the same precedence http.Request.ParseForm uses.
func snapshotParams(r *http.Request, body []byte) url.Values {
	params := make(url.Values)

	if isFormEncoded(r.Header.Get("Content-Type")) && len(body) > 0 {
		// ParseQuery returns what it could parse alongside the first error
		values, _ := url.ParseQuery(string(body))
		for name, vs := range values {
			params[name] = append(params[name], vs...)
		}
	}

	if r.URL != nil {
		for name, vs := range r.URL.Query() {
			params[name] = append(params[name], vs...)
		}
	}

	return params
}

func isFormEncoded(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// Body returns a new reader over the cached body, starting at offset 0.
func (r *Request) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}

// Request returns a shallow clone of the wrapped request whose Body replays the
// cached bytes. GetBody hands out further replay readers, so the clone survives
// redirects and retries in http.Client.
func (r *Request) Request() *http.Request {
	clone := r.orig.Clone(r.orig.Context())
	clone.Body = r.Body()
	clone.ContentLength = int64(len(r.body))
	clone.GetBody = func() (io.ReadCloser, error) {
		return r.Body(), nil
	}
	return clone
}

// Reader returns a new reader that decodes the cached body from the request charset into UTF-8.
func (r *Request) Reader() io.Reader {
	if r.enc == unicode.UTF8 {
		return bytes.NewReader(r.body)
	}
	return transform.NewReader(bytes.NewReader(r.body), r.enc.NewDecoder())
}

// Bytes returns a copy of the cached body.
func (r *Request) Bytes() []byte {
	return bytes.Clone(r.body)
}

// Len returns the size of the cached body in bytes.
func (r *Request) Len() int {
	return len(r.body)
}

// Charset returns the resolved charset name.
func (r *Request) Charset() string {
	return r.charset
}

// Param returns the first value for name.
func (r *Request) Param(name string) (string, bool) {
	vs := r.params[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// ParamValues returns a copy of all values for name, or nil when absent.
func (r *Request) ParamValues(name string) []string {
	vs, ok := r.params[name]
	if !ok {
		return nil
	}
	return slices.Clone(vs)
}

// ParamNames returns the parameter names in sorted order.
func (r *Request) ParamNames() []string {
	names := make([]string, 0, len(r.params))
	for name := range r.params {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Params returns a deep copy of the parameter snapshot.
func (r *Request) Params() url.Values {
	out := make(url.Values, len(r.params))
	for name, vs := range r.params {
		out[name] = slices.Clone(vs)
	}
	return out
}

// SetParam replaces all values for name with a single value.
func (r *Request) SetParam(name, value string) {
	r.params[name] = []string{value}
}

// SetParamValues replaces all values for name.
func (r *Request) SetParamValues(name string, values ...string) {
	r.params[name] = slices.Clone(values)
}

// RemoveParam deletes name from the snapshot.
func (r *Request) RemoveParam(name string) {
	delete(r.params, name)
}

package binder_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/core/binder"
)

type wordRequest struct {
	Spelling string `json:"spelling"`
	Meaning  string `json:"meaning"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        wordRequest
		wantErr     error
	}{
		{
			name:        "valid",
			contentType: "application/json",
			body:        `{"spelling":"apple","meaning":"사과"}`,
			want:        wordRequest{Spelling: "apple", Meaning: "사과"},
		},
		{
			name:        "charset parameter",
			contentType: "application/json; charset=utf-8",
			body:        `{"spelling":"pear"}`,
			want:        wordRequest{Spelling: "pear"},
		},
		{name: "missing content type", body: `{}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong media type", contentType: "text/plain", body: `{}`, wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", contentType: "application/json", body: ``, wantErr: binder.ErrFailedToParseJSON},
		{name: "malformed", contentType: "application/json", body: `{"spelling":`, wantErr: binder.ErrFailedToParseJSON},
		{name: "unknown field", contentType: "application/json", body: `{"spelling":"a","extra":1}`, wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", contentType: "application/json", body: `{"spelling":"a"} {}`, wantErr: binder.ErrFailedToParseJSON},
		{name: "too large", contentType: "application/json", body: `"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"`, wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/words", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got wordRequest
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFrom(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ignored"))
	req.Header.Set("Content-Type", "application/json")

	var got wordRequest
	err := binder.JSONFrom(func(*http.Request) io.Reader {
		return strings.NewReader(`{"spelling":"replayed"}`)
	})(req, &got)
	require.NoError(t, err)
	assert.Equal(t, "replayed", got.Spelling)

	err = binder.JSONFrom(func(*http.Request) io.Reader { return nil })(req, &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
}

func TestJSONCanceledRequest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	assert.ErrorIs(t, binder.JSON()(req, &wordRequest{}), binder.ErrFailedToParseJSON)
}

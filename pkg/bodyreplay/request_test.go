package bodyreplay_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanseok/rememberme/pkg/bodyreplay"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestNewRequest(t *testing.T) {
	t.Parallel()

	t.Run("body can be read many times", func(t *testing.T) {
		body := `{"email":"alice@example.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		first, err := io.ReadAll(rr.Body())
		require.NoError(t, err)
		second, err := io.ReadAll(rr.Body())
		require.NoError(t, err)

		assert.Equal(t, body, string(first))
		assert.Equal(t, body, string(second))
		assert.Equal(t, len(body), rr.Len())
	})

	t.Run("readers are independent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcdef"))
		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		a, b := rr.Body(), rr.Body()
		buf := make([]byte, 3)

		_, err = io.ReadFull(a, buf)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(buf))

		rest, err := io.ReadAll(b)
		require.NoError(t, err)
		assert.Equal(t, "abcdef", string(rest))

		rest, err = io.ReadAll(a)
		require.NoError(t, err)
		assert.Equal(t, "def", string(rest))
	})

	t.Run("original body is drained", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload"))
		_, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		left, _ := io.ReadAll(req.Body)
		assert.Empty(t, left)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		data, err := io.ReadAll(rr.Body())
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("read failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Body = io.NopCloser(failingReader{})

		_, err := bodyreplay.NewRequest(req)
		assert.ErrorIs(t, err, bodyreplay.ErrBodyRead)
	})

	t.Run("body size limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345"))
		_, err := bodyreplay.NewRequest(req, bodyreplay.WithMaxBodySize(4))
		assert.ErrorIs(t, err, bodyreplay.ErrBodyTooLarge)

		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1234"))
		rr, err := bodyreplay.NewRequest(req, bodyreplay.WithMaxBodySize(4))
		require.NoError(t, err)
		assert.Equal(t, "1234", string(rr.Bytes()))
	})

	t.Run("bytes returns a copy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("immutable"))
		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		b := rr.Bytes()
		b[0] = 'X'
		assert.Equal(t, "immutable", string(rr.Bytes()))
	})
}

func TestRequestCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        []byte
		wantCharset string
		wantText    string
		wantErr     error
	}{
		{
			name:        "default utf-8",
			contentType: "application/json",
			body:        []byte(`{"word":"café"}`),
			wantCharset: "utf-8",
			wantText:    `{"word":"café"}`,
		},
		{
			name:        "no content type",
			body:        []byte("plain"),
			wantCharset: "utf-8",
			wantText:    "plain",
		},
		{
			name:        "empty charset parameter",
			contentType: "text/plain; charset=",
			body:        []byte("plain"),
			wantCharset: "utf-8",
			wantText:    "plain",
		},
		{
			name:        "latin1",
			contentType: "text/plain; charset=ISO-8859-1",
			body:        []byte{'c', 'a', 'f', 0xe9},
			wantCharset: "windows-1252",
			wantText:    "café",
		},
		{
			name:        "euc-kr",
			contentType: "text/plain; charset=euc-kr",
			body:        []byte{0xb4, 0xdc, 0xbe, 0xee},
			wantCharset: "euc-kr",
			wantText:    "단어",
		},
		{
			name:        "unknown charset",
			contentType: "text/plain; charset=klingon",
			body:        []byte("x"),
			wantErr:     bodyreplay.ErrUnsupportedCharset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(tt.body)))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rr, err := bodyreplay.NewRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCharset, rr.Charset())

			for range 2 {
				text, err := io.ReadAll(rr.Reader())
				require.NoError(t, err)
				assert.Equal(t, tt.wantText, string(text))
			}
			assert.Equal(t, tt.body, rr.Bytes())
		})
	}
}

func TestRequestParams(t *testing.T) {
	t.Parallel()

	newRequest := func(t *testing.T) (*http.Request, *bodyreplay.Request) {
		t.Helper()
		form := url.Values{"email": {"Alice@Example.com"}, "tag": {"a", "b"}}
		req := httptest.NewRequest(http.MethodPost, "/words?limit=10&tag=c", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)
		return req, rr
	}

	t.Run("merges body and query values", func(t *testing.T) {
		_, rr := newRequest(t)

		email, ok := rr.Param("email")
		assert.True(t, ok)
		assert.Equal(t, "Alice@Example.com", email)

		assert.Equal(t, []string{"a", "b", "c"}, rr.ParamValues("tag"))
		assert.Equal(t, []string{"email", "limit", "tag"}, rr.ParamNames())

		_, ok = rr.Param("missing")
		assert.False(t, ok)
		assert.Nil(t, rr.ParamValues("missing"))
	})

	t.Run("json body is not parsed as parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/?q=1", strings.NewReader("a=b"))
		req.Header.Set("Content-Type", "application/json")
		rr, err := bodyreplay.NewRequest(req)
		require.NoError(t, err)

		assert.Equal(t, []string{"q"}, rr.ParamNames())
	})

	t.Run("set and remove touch only the snapshot", func(t *testing.T) {
		req, rr := newRequest(t)

		rr.SetParam("x", "v")
		got, ok := rr.Param("x")
		assert.True(t, ok)
		assert.Equal(t, "v", got)

		rr.SetParamValues("limit", "20", "30")
		assert.Equal(t, []string{"20", "30"}, rr.ParamValues("limit"))

		rr.RemoveParam("x")
		_, ok = rr.Param("x")
		assert.False(t, ok)

		rr.RemoveParam("email")
		_, ok = rr.Param("email")
		assert.False(t, ok)

		assert.Equal(t, "10", req.URL.Query().Get("limit"))
		assert.Empty(t, req.URL.Query().Get("x"))

		body, err := io.ReadAll(rr.Body())
		require.NoError(t, err)
		assert.Contains(t, string(body), "email=Alice%40Example.com")
	})

	t.Run("accessors return copies", func(t *testing.T) {
		_, rr := newRequest(t)

		values := rr.ParamValues("tag")
		values[0] = "mutated"
		assert.Equal(t, "a", rr.ParamValues("tag")[0])

		all := rr.Params()
		all.Set("tag", "mutated")
		all.Del("email")
		assert.Equal(t, []string{"a", "b", "c"}, rr.ParamValues("tag"))
		_, ok := rr.Param("email")
		assert.True(t, ok)

		in := []string{"1", "2"}
		rr.SetParamValues("n", in...)
		in[0] = "mutated"
		assert.Equal(t, []string{"1", "2"}, rr.ParamValues("n"))
	})
}

func TestRequestClone(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/auth/login?lang=ko", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	rr, err := bodyreplay.NewRequest(req)
	require.NoError(t, err)

	clone := rr.Request()
	assert.NotSame(t, req, clone)
	assert.Equal(t, "/auth/login", clone.URL.Path)
	assert.Equal(t, "application/json", clone.Header.Get("Content-Type"))
	assert.Equal(t, int64(17), clone.ContentLength)

	body, err := io.ReadAll(clone.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@b.c"}`, string(body))

	again, err := clone.GetBody()
	require.NoError(t, err)
	body, err = io.ReadAll(again)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@b.c"}`, string(body))
}

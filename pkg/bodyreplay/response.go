package bodyreplay

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
)

// Response buffers the status code and body written by a handler.
// Headers go straight to the underlying writer's header map but are not sent until Commit.
type Response struct {
	w         http.ResponseWriter
	buf       bytes.Buffer
	status    int
	committed bool
}

// NewResponse wraps w.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Header returns the underlying writer's header map.
func (r *Response) Header() http.Header {
	return r.w.Header()
}

// WriteHeader records the first status code. Later calls are ignored.
func (r *Response) WriteHeader(status int) {
	if r.committed || r.status != 0 {
		return
	}
	r.status = status
}

// Write appends b to the buffer.
func (r *Response) Write(b []byte) (int, error) {
	if r.committed {
		return 0, ErrAlreadyCommitted
	}
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.buf.Write(b)
}

// Status returns the recorded status code, http.StatusOK when none was written.
func (r *Response) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Body returns a copy of the buffered body.
func (r *Response) Body() []byte {
	return bytes.Clone(r.buf.Bytes())
}

// Size returns the number of buffered bytes.
func (r *Response) Size() int {
	return r.buf.Len()
}

// Committed reports whether Commit has run.
func (r *Response) Committed() bool {
	return r.committed
}

// Unwrap returns the underlying writer for http.ResponseController.
func (r *Response) Unwrap() http.ResponseWriter {
	return r.w
}

// Commit sends the recorded status and the buffered bytes to the underlying writer.
// It can only succeed once. Statuses that forbid a body (1xx, 204, 304) are sent
// header-only and a non-empty buffer is reported as http.ErrBodyNotAllowed.
func (r *Response) Commit() error {
	if r.committed {
		return ErrAlreadyCommitted
	}
	r.committed = true

	status := r.Status()
	if !bodyAllowed(status) {
		r.w.WriteHeader(status)
		if r.buf.Len() > 0 {
			return fmt.Errorf("%w: status %d with %d buffered bytes", http.ErrBodyNotAllowed, status, r.buf.Len())
		}
		return nil
	}

	h := r.w.Header()
	if h.Get("Content-Length") == "" && h.Get("Transfer-Encoding") == "" {
		h.Set("Content-Length", strconv.Itoa(r.buf.Len()))
	}
	r.w.WriteHeader(status)

	if r.buf.Len() == 0 {
		return nil
	}
	_, err := r.w.Write(r.buf.Bytes())
	return err
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

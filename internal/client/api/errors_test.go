package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgapi "github.com/iudanet/rowfix/pkg/api"
)

func TestError_Error(t *testing.T) {
	withMessage := &Error{StatusCode: 409, Message: "etag does not match"}
	assert.Equal(t, "server error (409): etag does not match", withMessage.Error())

	withoutMessage := &Error{StatusCode: 500}
	assert.Equal(t, "server error (500)", withoutMessage.Error())
}

func TestIsAuthorizerMismatch(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "код authorizer_mismatch", err: &Error{StatusCode: 400, Code: pkgapi.ErrCodeAuthorizerMismatch}, want: true},
		{name: "статус 401", err: &Error{StatusCode: http.StatusUnauthorized}, want: true},
		{name: "статус 403", err: &Error{StatusCode: http.StatusForbidden}, want: true},
		{name: "обёрнутая ошибка", err: fmt.Errorf("manifest request failed: %w", &Error{StatusCode: http.StatusForbidden}), want: true},
		{name: "статус 404", err: &Error{StatusCode: http.StatusNotFound}, want: false},
		{name: "не api ошибка", err: fmt.Errorf("connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorizerMismatch(tt.err))
		})
	}
}

func TestIsCapabilityNotSupported(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "код not_supported", err: &Error{StatusCode: 400, Code: pkgapi.ErrCodeNotSupported}, want: true},
		{name: "код manifest_not_found", err: &Error{StatusCode: 400, Code: pkgapi.ErrCodeManifestNotFound}, want: true},
		{name: "статус 404", err: &Error{StatusCode: http.StatusNotFound}, want: true},
		{name: "статус 501", err: &Error{StatusCode: http.StatusNotImplemented}, want: true},
		{name: "обёрнутая ошибка", err: fmt.Errorf("versions request failed: %w", &Error{StatusCode: http.StatusNotImplemented}), want: true},
		{name: "статус 401", err: &Error{StatusCode: http.StatusUnauthorized}, want: false},
		{name: "статус 409", err: &Error{StatusCode: http.StatusConflict}, want: false},
		{name: "не api ошибка", err: fmt.Errorf("timeout"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCapabilityNotSupported(tt.err))
		})
	}
}

func TestIsStaleETag(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "код stale_etag", err: &Error{StatusCode: 400, Code: pkgapi.ErrCodeStaleETag}, want: true},
		{name: "статус 409", err: &Error{StatusCode: http.StatusConflict}, want: true},
		{name: "обёрнутая ошибка", err: fmt.Errorf("save edits batch failed: %w", &Error{StatusCode: http.StatusConflict}), want: true},
		{name: "статус 500", err: &Error{StatusCode: http.StatusInternalServerError}, want: false},
		{name: "не api ошибка", err: fmt.Errorf("eof"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStaleETag(tt.err))
		})
	}
}

package kratos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cajachica-service/app/domain"
)

func testAdapter() *Adapter {
	return NewAdapter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestClassifyBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode domain.AuthErrorCode
		wantOK   bool
	}{
		{
			name:     "invalid credentials",
			body:     `{"ui":{"messages":[{"text":"The provided credentials are invalid"}]}}`,
			wantCode: domain.AuthCodeWrongPassword,
			wantOK:   true,
		},
		{
			name:     "malformed email",
			body:     `"not-an-email" is not valid "email"`,
			wantCode: domain.AuthCodeInvalidEmail,
			wantOK:   true,
		},
		{
			name:     "duplicate identity",
			body:     `An account with the same identifier exists already`,
			wantCode: domain.AuthCodeEmailInUse,
			wantOK:   true,
		},
		{
			name:     "weak password",
			body:     `The password does not fulfill the password policy`,
			wantCode: domain.AuthCodeWeakPassword,
			wantOK:   true,
		},
		{
			name:     "breached password",
			body:     `this password has been breached`,
			wantCode: domain.AuthCodeWeakPassword,
			wantOK:   true,
		},
		{
			name:     "rate limited",
			body:     `too many requests, slow down`,
			wantCode: domain.AuthCodeTooManyRequests,
			wantOK:   true,
		},
		{
			name:   "unrecognized body",
			body:   `something unexpected`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := classifyBody(tt.body)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, code)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	assert.False(t, isNetworkError(nil))
	assert.False(t, isNetworkError(errors.New("plain failure")))
	assert.True(t, isNetworkError(timeoutError{}))
	assert.True(t, isNetworkError(context.DeadlineExceeded))
	assert.True(t, isNetworkError(context.Canceled))

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	assert.True(t, isNetworkError(ctx.Err()))
}

func TestClassifyError(t *testing.T) {
	adapter := testAdapter()

	tests := []struct {
		name     string
		err      error
		resp     *http.Response
		wantCode domain.AuthErrorCode
	}{
		{
			name:     "transport failure maps to network failure",
			err:      timeoutError{},
			wantCode: domain.AuthCodeNetworkFailure,
		},
		{
			name:     "401 maps to wrong password",
			err:      errors.New("unauthorized"),
			resp:     &http.Response{StatusCode: http.StatusUnauthorized},
			wantCode: domain.AuthCodeWrongPassword,
		},
		{
			name:     "404 maps to user not found",
			err:      errors.New("not found"),
			resp:     &http.Response{StatusCode: http.StatusNotFound},
			wantCode: domain.AuthCodeUserNotFound,
		},
		{
			name:     "409 maps to email in use",
			err:      errors.New("conflict"),
			resp:     &http.Response{StatusCode: http.StatusConflict},
			wantCode: domain.AuthCodeEmailInUse,
		},
		{
			name:     "429 maps to too many requests",
			err:      errors.New("rate limited"),
			resp:     &http.Response{StatusCode: http.StatusTooManyRequests},
			wantCode: domain.AuthCodeTooManyRequests,
		},
		{
			name:     "unclassified error maps to internal",
			err:      errors.New("boom"),
			resp:     &http.Response{StatusCode: http.StatusInternalServerError},
			wantCode: domain.AuthCodeInternal,
		},
		{
			name:     "no response at all maps to internal",
			err:      errors.New("boom"),
			wantCode: domain.AuthCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.classifyError(tt.err, tt.resp, "login")
			assert.Equal(t, tt.wantCode, domain.AuthCodeOf(got))
		})
	}
}

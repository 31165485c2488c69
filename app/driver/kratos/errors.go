package kratos

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"cajachica-service/app/domain"
)

// classifyError maps a Kratos API error into the domain auth taxonomy.
// Nothing Kratos-specific crosses the driver boundary.
func (a *Adapter) classifyError(err error, httpResp *http.Response, operation string) error {
	a.logger.Error("kratos call failed",
		"operation", operation,
		"error", err,
		"http_status", statusOf(httpResp))

	if isNetworkError(err) {
		return domain.NewAuthError(domain.AuthCodeNetworkFailure,
			"credential store unreachable", err)
	}

	var openAPIErr *kratosclient.GenericOpenAPIError
	if errors.As(err, &openAPIErr) {
		if code, ok := classifyBody(string(openAPIErr.Body())); ok {
			return domain.NewAuthError(code, operation+" rejected", err)
		}
	}

	if httpResp != nil {
		switch httpResp.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return domain.NewAuthError(domain.AuthCodeWrongPassword,
				"credentials rejected", err)
		case http.StatusNotFound, http.StatusGone:
			return domain.NewAuthError(domain.AuthCodeUserNotFound,
				"account not found", err)
		case http.StatusConflict:
			return domain.NewAuthError(domain.AuthCodeEmailInUse,
				"email already registered", err)
		case http.StatusTooManyRequests:
			return domain.NewAuthError(domain.AuthCodeTooManyRequests,
				"too many attempts", err)
		}
	}

	return domain.NewAuthError(domain.AuthCodeInternal, "kratos "+operation+" failed", err)
}

// classifyBody matches the stable Kratos UI message fragments. Kratos
// reports invalid identifier and invalid password with the same message, so
// both map to WRONG_PASSWORD.
func classifyBody(body string) (domain.AuthErrorCode, bool) {
	lower := strings.ToLower(body)
	switch {
	case strings.Contains(lower, "credentials are invalid"):
		return domain.AuthCodeWrongPassword, true
	case strings.Contains(lower, "is not valid \"email\"") || strings.Contains(lower, "invalid email"):
		return domain.AuthCodeInvalidEmail, true
	case strings.Contains(lower, "exists already") || strings.Contains(lower, "already in use"):
		return domain.AuthCodeEmailInUse, true
	case strings.Contains(lower, "password policy") || strings.Contains(lower, "too weak") || strings.Contains(lower, "breached"):
		return domain.AuthCodeWeakPassword, true
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "too many"):
		return domain.AuthCodeTooManyRequests, true
	}
	return "", false
}

// isNetworkError reports transport-level failures: DNS, refused
// connections, timeouts, cancelled contexts.
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

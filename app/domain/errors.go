package domain

import "errors"

// Sentinel errors shared across layers
var (
	// Directory errors. ErrProfileNotFound is an expected branch value used
	// for role determination, not an exceptional condition.
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDirectoryFailure = errors.New("profile directory unreachable")

	// Domain data errors
	ErrRegistryNotFound = errors.New("registry not found")
	ErrMovementNotFound = errors.New("movement not found")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// AuthErrorCode classifies authentication failures. Every credential store
// error is mapped to one of these before it crosses the resolver boundary.
type AuthErrorCode string

const (
	AuthCodeUserNotFound     AuthErrorCode = "USER_NOT_FOUND"
	AuthCodeWrongPassword    AuthErrorCode = "WRONG_PASSWORD"
	AuthCodeInvalidEmail     AuthErrorCode = "INVALID_EMAIL"
	AuthCodeTooManyRequests  AuthErrorCode = "TOO_MANY_REQUESTS"
	AuthCodeNetworkFailure   AuthErrorCode = "NETWORK_FAILURE"
	AuthCodeNotAuthorized    AuthErrorCode = "NOT_AUTHORIZED"
	AuthCodePositionMismatch AuthErrorCode = "POSITION_MISMATCH"
	AuthCodeEmailInUse       AuthErrorCode = "EMAIL_IN_USE"
	AuthCodeWeakPassword     AuthErrorCode = "WEAK_PASSWORD"
	AuthCodeInternal         AuthErrorCode = "INTERNAL"
)

// AuthError is a classified authentication failure with an optional cause.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a classified authentication error.
func NewAuthError(code AuthErrorCode, message string, cause error) *AuthError {
	return &AuthError{Code: code, Message: message, Cause: cause}
}

// AsAuthError extracts an AuthError from an error chain.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// AuthCodeOf returns the classification of err, or AuthCodeInternal when the
// error carries no classification.
func AuthCodeOf(err error) AuthErrorCode {
	if authErr, ok := AsAuthError(err); ok {
		return authErr.Code
	}
	return AuthCodeInternal
}

// userMessages holds the Spanish user-facing copy surfaced by the mobile
// clients for each failure class.
var userMessages = map[AuthErrorCode]string{
	AuthCodeUserNotFound:     "Usuario no encontrado",
	AuthCodeWrongPassword:    "Contraseña incorrecta",
	AuthCodeInvalidEmail:     "Correo electrónico inválido",
	AuthCodeTooManyRequests:  "Demasiados intentos. Intenta más tarde",
	AuthCodeNetworkFailure:   "Error de conexión. Verifica tu internet",
	AuthCodeNotAuthorized:    "No tienes permisos para acceder",
	AuthCodePositionMismatch: "El puesto ingresado no coincide con el registrado",
	AuthCodeEmailInUse:       "Este correo ya está registrado",
	AuthCodeWeakPassword:     "La contraseña es muy débil",
	AuthCodeInternal:         "Error al iniciar sesión",
}

// UserMessage returns the localized message for the error classification.
func (e *AuthError) UserMessage() string {
	if msg, ok := userMessages[e.Code]; ok {
		return msg
	}
	return userMessages[AuthCodeInternal]
}

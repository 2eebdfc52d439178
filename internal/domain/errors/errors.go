package errors

import (
	"net/http"

	"cumple/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Spanish, the
// application's primary audience.
var (
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"No se ha encontrado el evento",
		"",
	)

	ErrGiftNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_NOT_FOUND",
		"No se ha encontrado el regalo",
		"",
	)

	ErrGuestNotFound = NewBaseError(
		http.StatusNotFound,
		"GUEST_NOT_FOUND",
		"No se ha encontrado el invitado",
		"",
	)

	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"No se ha encontrado el proveedor",
		"",
	)

	ErrExpenseNotFound = NewBaseError(
		http.StatusNotFound,
		"EXPENSE_NOT_FOUND",
		"No se ha encontrado el gasto",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No se ha encontrado el perfil",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Correo o contraseña incorrectos",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"Introduce una cantidad válida",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos introducidos no son válidos",
		"",
	)

	ErrInviteLinkFailed = NewBaseError(
		http.StatusInternalServerError,
		"INVITE_LINK_FAILED",
		"No se ha podido generar el enlace de invitación",
		"",
	)

	ErrContributionFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTRIBUTION_FAILED",
		"No se ha podido guardar la aportación. Inténtalo de nuevo.",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_UPLOAD_FAILED",
		"No se ha podido guardar la imagen",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Error en la transacción de base de datos",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la consulta"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// EmailDeliveryError reports a failed invitation send. It keeps the
// generated action link so the operator can forward it manually.
type EmailDeliveryError struct {
	err  error
	Link string
}

// NewEmailDeliveryError creates an email delivery error carrying the link.
func NewEmailDeliveryError(err error, link string) *EmailDeliveryError {
	return &EmailDeliveryError{err: err, Link: link}
}

// Error implements the error interface
func (e *EmailDeliveryError) Error() string {
	return errors.Wrap(e.err, "email delivery failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *EmailDeliveryError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *EmailDeliveryError) ErrorCode() string {
	return "EMAIL_SEND_FAILED"
}

// Message returns the user-friendly error message
func (e *EmailDeliveryError) Message() string {
	return "No se ha podido enviar el correo de invitación"
}

// Details returns the generated link so it can be shared by hand.
func (e *EmailDeliveryError) Details() string {
	if e.Link == "" {
		return e.err.Error()
	}

	return "enlace generado: " + e.Link
}

package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas).
// Cada error estructurado envuelve exactamente uno de estos, usar errors.Is para clasificar.
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvariantViolation = errors.New("violación de invariante interna")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Códigos estables expuestos al transporte.
const (
	CodeInvalidDocType          = "INVALID_DOC_TYPE"
	CodeInvalidDocNumber        = "INVALID_DOC_NUMBER"
	CodeInvalidLine             = "INVALID_LINE"
	CodeDuplicateLineKey        = "DUPLICATE_LINE_KEY"
	CodeEmptyConfirmation       = "EMPTY_CONFIRMATION"
	CodeQuantityExceedsRequest  = "QUANTITY_EXCEEDS_REQUESTED"
	CodeNonPositiveConfirmation = "NON_POSITIVE_CONFIRMATION"
	CodeSameLocationTransfer    = "SAME_LOCATION_TRANSFER"
	CodeFractionalQuantity      = "FRACTIONAL_QUANTITY"
	CodeMoveNotFound            = "MOVE_NOT_FOUND"
	CodeLineNotFound            = "LINE_NOT_FOUND"
	CodeProductNotFound         = "PRODUCT_NOT_FOUND"
	CodeAlreadyApproved         = "ALREADY_APPROVED"
	CodeNoRegisteredLines       = "NO_REGISTERED_LINES"
	CodeExceedsPending          = "EXCEEDS_PENDING"
	CodeNothingApplied          = "AT_LEAST_ONE_CONFIRMATION_REQUIRED"
	CodeInsufficientStock       = "INSUFFICIENT_STOCK"
	CodeInvariantViolation      = "INVARIANT_VIOLATION"
	CodeInvalidItemCode         = "INVALID_ITEM_CODE"
	CodeInvalidItemName         = "INVALID_ITEM_NAME"
)

// Error es un error de dominio con tipo (Kind) y código estable.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrConflict) y similares.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError construye un error de dominio con mensaje formateado.
func NewError(kind error, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validation atajo para errores de validación.
func Validation(code, format string, args ...any) *Error {
	return NewError(ErrInvalidInput, code, format, args...)
}

// NotFound atajo para recursos ausentes.
func NotFound(code, format string, args ...any) *Error {
	return NewError(ErrNotFound, code, format, args...)
}

// Conflict atajo para conflictos con el estado actual.
func Conflict(code, format string, args ...any) *Error {
	return NewError(ErrConflict, code, format, args...)
}

// InsufficientStock nombra el ítem y la ubicación que quedarían en negativo.
func InsufficientStock(itemCode, location string, available, requested int64) *Error {
	return NewError(ErrInsufficientStock, CodeInsufficientStock,
		"stock insuficiente para %s en %s: disponible %d, solicitado %d", itemCode, location, available, requested)
}

// CodeOf devuelve el código del error de dominio, o "" si err no lo es.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsRetryable informa si el llamador puede reintentar tras releer el estado actual.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrInsufficientStock)
}

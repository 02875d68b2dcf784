package utils

import (
	"errors"
	"net/http"

	apperrors "inventory-system/pkg/errors"

	"github.com/labstack/echo/v4"
)

var debugMode bool

// SetDebug включает поле db_error с текстом драйвера в ответах об ошибках.
func SetDebug(v bool) {
	debugMode = v
}

// SuccessResponse отдаёт конверт {success:true, message?, ...payload}.
// Ключи payload (equipos, items, usuario, usuarios, pagination, ...)
// попадают на верхний уровень ответа.
func SuccessResponse(ctx echo.Context, payload echo.Map, message string, code int) error {
	response := echo.Map{"success": true}
	if message != "" {
		response["message"] = message
	}
	for key, value := range payload {
		response[key] = value
	}
	return ctx.JSON(code, response)
}

// ErrorResponse отдаёт конверт {success:false, message, db_error?}.
// Любая ошибка завершается корректным JSON-телом, без общей страницы 500.
func ErrorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Error interno del servidor."
	dbError := ""

	var validationErr *apperrors.ValidationError
	var duplicateErr *apperrors.DuplicateKeyError
	var writeErr *apperrors.WriteError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		message = validationErr.Message
	// Ошибки биндинга формы echo отдаёт как *echo.HTTPError.
	// Кривая форма - это ошибка входных данных, не 500.
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = "Datos del formulario no válidos."
		if httpErr.Internal != nil {
			dbError = httpErr.Internal.Error()
		}
	case errors.As(err, &duplicateErr):
		code = http.StatusConflict
		message = duplicateErr.Error()
	case errors.Is(err, apperrors.ErrUserInactive):
		code = http.StatusConflict
		message = "Error al desactivar el usuario o ya estaba inactivo."
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.As(err, &writeErr):
		message = writeErr.Message
		if writeErr.Err != nil {
			dbError = writeErr.Err.Error()
		}
	default:
		if err != nil {
			dbError = err.Error()
		}
	}

	response := echo.Map{
		"success": false,
		"message": message,
	}
	if debugMode && dbError != "" {
		response["db_error"] = dbError
	}
	return ctx.JSON(code, response)
}

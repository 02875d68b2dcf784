package errors

import "fmt"

var (
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud no válida")

	// UPDATE ... WHERE activo = TRUE не затронул ни одной строки.
	ErrUserInactive = fmt.Errorf("el usuario no existe o ya estaba inactivo")
)

// ValidationError - ошибка входных данных, обнаруженная до обращения к БД.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateKeyError - нарушение уникального ключа (Postgres 23505).
type DuplicateKeyError struct {
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("El Asset ID '%s' ya existe. Por favor, usa uno diferente.", e.Value)
}

// WriteError оборачивает прочие ошибки хранилища при insert/update/delete.
// Err хранит низкоуровневый текст драйвера для поля db_error.
type WriteError struct {
	Message string
	Err     error
}

func (e *WriteError) Error() string { return e.Message }

func (e *WriteError) Unwrap() error { return e.Err }

func NewWriteError(message string, err error) error {
	return &WriteError{Message: message, Err: err}
}

// NotFoundError - отсутствие строк с пользовательским сообщением.
// Распознаётся как ErrNotFound через errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

package entities

import "github.com/aarondl/null/v8"

// User - строка таблицы usuarios. activo=false означает мягкое удаление:
// такой пользователь никогда не отдаётся как текущий держатель.
type User struct {
	ID        int64
	Nombre    string
	Correo    null.String
	Area      null.String
	Ubicacion null.String
	Activo    bool
}

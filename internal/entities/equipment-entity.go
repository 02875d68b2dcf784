package entities

import "github.com/aarondl/null/v8"

// Equipment - строка таблицы equipos вместе с разрешённым текущим
// держателем (последняя запись asignaciones, только активные usuarios).
type Equipment struct {
	ID         int64
	AssetID    int64
	Tipo       string
	Fabricante string
	Modelo     string
	Serie      string

	// LEFT JOIN: NULL, если назначений нет или последний держатель неактивен.
	UsuarioID     null.Int64
	UsuarioNombre null.String
}

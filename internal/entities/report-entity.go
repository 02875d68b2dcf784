package entities

import "github.com/aarondl/null/v8"

// ReportRow - плоская строка выгрузки оборудования для отчёта.
type ReportRow struct {
	AssetID         int64
	Tipo            string
	Fabricante      string
	Modelo          string
	Serie           string
	UsuarioNombre   null.String
	FechaAsignacion null.Time
}

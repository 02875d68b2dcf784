package dto

type ReportRowDTO struct {
	AssetID         int64  `json:"asset_id"`
	Tipo            string `json:"tipo"`
	Fabricante      string `json:"fabricante"`
	Modelo          string `json:"modelo"`
	Serie           string `json:"serie"`
	UsuarioNombre   string `json:"usuario_nombre"`
	FechaAsignacion string `json:"fecha_asignacion"`
}

package dto

import "github.com/aarondl/null/v8"

type UpdateUserDTO struct {
	ID        int64  `form:"id" json:"id" validate:"required,gt=0"`
	Nombre    string `form:"nombre" json:"nombre" validate:"required,notblank"`
	Correo    string `form:"correo" json:"correo"`
	Area      string `form:"area" json:"area"`
	Ubicacion string `form:"ubicacion" json:"ubicacion"`
}

type DeactivateUserDTO struct {
	ID int64 `form:"id" json:"id" validate:"required,gt=0"`
}

type AssignUserDTO struct {
	AssetID   int64 `form:"asset_id" json:"asset_id" validate:"required,gt=0"`
	UsuarioID int64 `form:"usuario_id" json:"usuario_id" validate:"required,gt=0"`
}

type UserDTO struct {
	ID        int64       `json:"id"`
	Nombre    string      `json:"nombre"`
	Correo    null.String `json:"correo"`
	Area      null.String `json:"area"`
	Ubicacion null.String `json:"ubicacion"`
}

// ShortUserDTO - для выпадающего списка назначения.
type ShortUserDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

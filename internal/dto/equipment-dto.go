package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	AssetID    int64  `form:"asset_id" json:"asset_id" validate:"required,gt=0"`
	Tipo       string `form:"tipo" json:"tipo"`
	Fabricante string `form:"fabricante" json:"fabricante"`
	Modelo     string `form:"modelo" json:"modelo"`
	Serie      string `form:"serie" json:"serie"`

	// usuario_id=0 - создать оборудование без назначения.
	UsuarioID int64 `form:"usuario_id" json:"usuario_id" validate:"omitempty,gte=0"`
}

type UpdateEquipmentDTO struct {
	ID         int64  `form:"id" json:"id" validate:"required,gt=0"`
	Tipo       string `form:"tipo" json:"tipo"`
	Fabricante string `form:"fabricante" json:"fabricante"`
	Modelo     string `form:"modelo" json:"modelo"`
	Serie      string `form:"serie" json:"serie"`
	UsuarioID  int64  `form:"usuario_id" json:"usuario_id" validate:"omitempty,gte=0"`
}

type DeleteEquipmentDTO struct {
	ID      int64 `form:"id" json:"id" validate:"required,gt=0"`
	AssetID int64 `form:"asset_id" json:"asset_id" validate:"required,gt=0"`
}

type EquipmentDTO struct {
	ID            int64       `json:"id"`
	AssetID       int64       `json:"asset_id"`
	Tipo          string      `json:"tipo"`
	Fabricante    string      `json:"fabricante"`
	Modelo        string      `json:"modelo"`
	Serie         string      `json:"serie"`
	UsuarioNombre null.String `json:"usuario_nombre"`
}

// SearchEquipmentDTO - строка универсального поиска: оборудование плюс
// id текущего держателя (нужен фронту для модалки редактирования).
type SearchEquipmentDTO struct {
	ID            int64       `json:"id"`
	AssetID       int64       `json:"asset_id"`
	Tipo          string      `json:"tipo"`
	Fabricante    string      `json:"fabricante"`
	Modelo        string      `json:"modelo"`
	Serie         string      `json:"serie"`
	UsuarioID     null.Int64  `json:"usuario_id"`
	UsuarioNombre null.String `json:"usuario_nombre"`
}

package dto

type CreateInventoryItemDTO struct {
	Tipo        string `form:"tipo" json:"tipo" validate:"required,notblank"`
	Descripcion string `form:"descripcion" json:"descripcion" validate:"required,notblank"`
	Cantidad    int64  `form:"cantidad" json:"cantidad" validate:"gte=0"`
	Ubicacion   string `form:"ubicacion" json:"ubicacion"`
	Categoria   string `form:"categoria" json:"categoria" validate:"required,notblank"`
}

type UpdateInventoryItemDTO struct {
	ID          int64  `form:"id" json:"id" validate:"required,gt=0"`
	Tipo        string `form:"tipo" json:"tipo" validate:"required,notblank"`
	Descripcion string `form:"descripcion" json:"descripcion" validate:"required,notblank"`
	Cantidad    int64  `form:"cantidad" json:"cantidad" validate:"gte=0"`
	Ubicacion   string `form:"ubicacion" json:"ubicacion"`
	Categoria   string `form:"categoria" json:"categoria" validate:"required,notblank"`
}

type DeleteInventoryItemDTO struct {
	ID int64 `form:"id" json:"id" validate:"required,gt=0"`
}

type InventoryItemDTO struct {
	ID          int64  `json:"id"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Cantidad    int64  `json:"cantidad"`
	Ubicacion   string `json:"ubicacion"`
	Categoria   string `json:"categoria"`
	CreatedAt   string `json:"created_at"`
}

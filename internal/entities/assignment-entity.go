package entities

import "time"

// Assignment - факт «пользователь держал актив», с меткой времени.
// История сохраняется; текущим считается ряд с максимальной
// fecha_asignacion по asset_id.
type Assignment struct {
	ID              int64
	AssetID         int64
	UsuarioID       int64
	FechaAsignacion time.Time
}

package entities

// Asset - строка таблицы activos. ID задаёт вызывающая сторона,
// он же equipos.asset_id (строго 1:1, создаются в одной транзакции).
type Asset struct {
	ID          int64
	Descripcion string
}

package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// WithTx выполняет fn в одной транзакции: либо все шаги коммитятся,
// либо всё откатывается. Частично зафиксированное состояние наружу
// не видно.
func WithTx(ctx context.Context, db database, fn func(tx pgx.Tx) error) (err error) {
	var tx pgx.Tx
	tx, err = db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("ошибка при коммите транзакции: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}

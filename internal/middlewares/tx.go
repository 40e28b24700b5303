package middlewares

import (
	"context"
	"net/http"

	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/jmoiron/sqlx"
)

// TxMiddleware wraps a handler in a database transaction. Write
// repositories pick the transaction up from the request context, so a
// rejected or failed admin mutation leaves no partial side effects: the
// transaction is committed only when the handler responds with a
// non-error status.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(setTxToContext(r.Context(), tx))
			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				if !rw.wroteHeader {
					w.WriteHeader(http.StatusInternalServerError)
				}
			}
		})
	}
}

// txContextKey is an unexported type for the transaction context key.
type txContextKey struct{}

var txKey = txContextKey{}

// setTxToContext stores a transaction in the context.
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil
// if the request is not running inside TxMiddleware.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

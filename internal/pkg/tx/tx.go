package tx

import (
	"context"
	"fmt"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

// TxMiddlewareHTTP makes the repository available to TxExecute for the lifetime of a request.
func TxMiddlewareHTTP(repo DBRepo) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithRepo(r.Context(), repo)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithRepo(ctx context.Context, repo DBRepo) context.Context {
	return context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
}

// TxExecute runs cb inside one transaction of the repository found in ctx.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return fmt.Errorf("no transaction repository in context")
	}

	return t.DbRepo.WithTx(ctx, cb)
}

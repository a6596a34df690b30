//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, user *model.User) error
}

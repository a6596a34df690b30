//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import "github.com/abababa124444-cmd/arab-chat1/internal/model"

type TokenValidator interface {
	ValidateIdentityToken(tokenString string) (*model.IdentityClaims, error)
}

package usecases

import (
	"context"
	"crypto/rand"
	"math/big"

	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/domain/repositories"
)

// ShopCodeGenerator produces the short human-speakable code assigned to
// a shop at final approval. It draws uniformly from [A-Z0-9] and probes
// for collisions against previously assigned codes.
type ShopCodeGenerator struct {
	shopRepo repositories.ShopRepository
}

// NewShopCodeGenerator creates a new shop code generator
func NewShopCodeGenerator(shopRepo repositories.ShopRepository) *ShopCodeGenerator {
	return &ShopCodeGenerator{shopRepo: shopRepo}
}

// Generate returns a collision-free code or ErrExhausted after
// maxAttempts collisions.
func (g *ShopCodeGenerator) Generate(ctx context.Context, maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := randomShopCode(entities.ShopCodeLength)
		if err != nil {
			return "", err
		}

		exists, err := g.shopRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.Exhausted("shop code generation exhausted")
}

func randomShopCode(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(shopCodeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		code[i] = shopCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

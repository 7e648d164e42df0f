package memstore

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ChenReuven/next-api/internal/domain"
)

// AccountSeed is one fixed entry of the login directory before hashing.
// Plaintext passwords exist only here, at process start; the stores and
// everything above them see bcrypt hashes exclusively.
type AccountSeed struct {
	ID       int64
	Username string
	Password string
	Role     domain.Role
}

// DefaultAccountSeeds returns the fixed demo login directory.
func DefaultAccountSeeds() []AccountSeed {
	return []AccountSeed{
		{ID: 1, Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{ID: 2, Username: "user", Password: "user123", Role: domain.RoleUser},
	}
}

// BuildAccounts hashes the seed passwords with bcrypt at the given cost and
// returns directory-ready accounts. Every built account must pass domain
// validation; a bad seed is a startup error, not a latent one.
func BuildAccounts(seeds []AccountSeed, cost int) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %q: %w", seed.Username, err)
		}
		account := domain.Account{
			ID:             seed.ID,
			Username:       seed.Username,
			HashedPassword: string(hash),
			Role:           seed.Role,
		}
		if err := account.Validate(); err != nil {
			return nil, fmt.Errorf("invalid account seed %q: %w", seed.Username, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// DefaultUsers returns the fixed demo users resource.
func DefaultUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
}

// DefaultProducts returns the fixed demo products resource.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: "electronics", InStock: true},
		{ID: 2, Name: "Smartphone", Price: 699.99, Category: "electronics", InStock: true},
		{ID: 3, Name: "Headphones", Price: 149.99, Category: "accessories", InStock: true},
		{ID: 4, Name: "Monitor", Price: 299.99, Category: "electronics", InStock: false},
		{ID: 5, Name: "Keyboard", Price: 89.99, Category: "accessories", InStock: true},
		{ID: 6, Name: "Mouse", Price: 49.99, Category: "accessories", InStock: true},
		{ID: 7, Name: "Tablet", Price: 399.99, Category: "electronics", InStock: true},
		{ID: 8, Name: "Printer", Price: 199.99, Category: "electronics", InStock: false},
		{ID: 9, Name: "Camera", Price: 599.99, Category: "electronics", InStock: true},
		{ID: 10, Name: "Speaker", Price: 129.99, Category: "accessories", InStock: true},
	}
}

package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks a plaintext password against a stored hash.
type Verifier interface {
	Verify(plaintext, hash string) bool
}

type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier uses bcrypt.DefaultCost when cost is out of range.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	return string(b), err
}

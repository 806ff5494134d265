package registration

import "golang.org/x/crypto/bcrypt"

const DefaultBcryptCost = 10

// bcrypt só considera os primeiros 72 bytes e recusa senhas maiores.
const maxPasswordBytes = 72

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return DefaultBcryptCost
	}
	return cost
}

func hashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	return string(b), err
}

// CheckPassword compara a senha em texto com o hash salvo.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

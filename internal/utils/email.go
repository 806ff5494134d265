package utils

import "strings"

// remove espaços nas pontas e padroniza em minúsculas
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package registration

import "errors"

var (
	ErrDuplicateEntity = errors.New("duplicate entity")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStorage envolve qualquer falha do banco não classificada acima;
	// o erro original continua acessível via errors.Is/As.
	ErrStorage = errors.New("storage failure")
)

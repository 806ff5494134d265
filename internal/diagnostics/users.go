// Package diagnostics tem utilitários de inspeção somente-leitura.
package diagnostics

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

const missingDate = "n/a"

type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ListUsers busca todos os usuários e imprime uma linha por usuário.
func ListUsers(ctx context.Context, w io.Writer, repo UserLister) (int, error) {
	users, err := repo.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), PrintUsers(w, users)
}

func PrintUsers(w io.Writer, users []models.User) error {
	if _, err := fmt.Fprintf(w, "total: %d\n", len(users)); err != nil {
		return err
	}
	for i, u := range users {
		created := missingDate
		if u.CreatedAt != nil {
			created = u.CreatedAt.UTC().Format(time.RFC3339)
		}
		_, err := fmt.Fprintf(w, "%d. id=%d name=%q email=%s published=%t created_at=%s\n",
			i+1, u.ID, u.Name, u.Email, u.Published, created)
		if err != nil {
			return err
		}
	}
	return nil
}

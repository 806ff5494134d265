package admin

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"time"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/registration"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/utils"
)

//go:embed seeds/companies.json
var companiesJSON []byte

type seedItem struct {
	Name          string                      `json:"name"`
	Email         string                      `json:"email"`
	Password      string                      `json:"password"`
	Accessibility models.AccessibilityFlags   `json:"accessibility"`
	Details       models.AccessibilityDetails `json:"details"`
}

type Registrar interface {
	Register(ctx context.Context, in registration.RegisterInput) (*registration.Registration, error)
}

// SeedCompanies usa o arquivo embutido.
func SeedCompanies(ctx context.Context, svc Registrar, log *slog.Logger) error {
	return seedFrom(ctx, companiesJSON, svc, log)
}

// Idempotente: cria se não existir; se já existir, ignora.
func seedFrom(ctx context.Context, raw []byte, svc Registrar, log *slog.Logger) error {
	var items []seedItem
	if err := utils.DecodeStrict(bytes.NewReader(raw), &items); err != nil {
		return err
	}

	created := 0
	for _, s := range items {
		if s.Email == "" || s.Password == "" {
			log.Warn("seed_skip_invalid_item", "name", s.Name)
			continue
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err := svc.Register(ictx, registration.RegisterInput{
			Name:     s.Name,
			Email:    s.Email,
			Password: s.Password,
			Flags:    s.Accessibility,
			Details:  s.Details,
		})
		cancel()

		if err != nil {
			if errors.Is(err, registration.ErrDuplicateEntity) {
				log.Info("seed_company_exists", "email", s.Email)
				continue
			}
			return err
		}
		created++
		log.Info("seed_company_created", "email", s.Email)
	}

	log.Info("seed_companies_done", "count", len(items), "created", created)
	return nil
}

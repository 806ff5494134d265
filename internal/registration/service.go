// Package registration cadastra empresas junto com o perfil de
// acessibilidade e mantém esse perfil atualizado.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/repository"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/utils"
)

type Store interface {
	FindCompanyByEmail(ctx context.Context, email string) (*models.Company, error)
	GetCompanyByID(ctx context.Context, id int64) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CreateCompanyWithProfile(ctx context.Context, c *models.Company, p *models.AccessibilityProfile) error
	ReplaceAccessibility(ctx context.Context, p *models.AccessibilityProfile) error
}

// Notifier recebe eventos depois do commit. Opcional.
type Notifier interface {
	Publish(ctx context.Context, body string, headers amqp.Table) error
}

type Service struct {
	store      Store
	bcryptCost int
	log        *slog.Logger
	pub        Notifier
	timeout    time.Duration // 0 = só o prazo do ctx do chamador
	now        func() time.Time
}

type Option func(*Service)

func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = normalizeCost(cost) }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log.With("cmp", "registration")
		}
	}
}

func WithNotifier(pub Notifier) Option {
	return func(s *Service) { s.pub = pub }
}

// WithQueryTimeout limita cada operação que vai ao banco.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		bcryptCost: DefaultBcryptCost,
		log:        slog.Default().With("cmp", "registration"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Flags    models.AccessibilityFlags
	Details  models.AccessibilityDetails
}

type Registration struct {
	Company *models.Company
	Profile *models.AccessibilityProfile
}

// Register cria empresa + perfil de acessibilidade de forma atômica.
// A checagem prévia de email só antecipa o erro; quem garante unicidade é
// a constraint do banco, traduzida também para ErrDuplicateEntity.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	email := utils.NormalizeEmail(in.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidArgument)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidArgument, maxPasswordBytes)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.store.FindCompanyByEmail(ctx, email)
	if err != nil {
		return nil, storageErr(err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s already registered", ErrDuplicateEntity, email)
	}

	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := &models.Company{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Published:    false,
		CreatedAt:    s.now().UTC(),
	}
	p := models.NewAccessibilityProfile(0, in.Flags, in.Details)

	if err := s.store.CreateCompanyWithProfile(ctx, c, &p); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: email %s already registered", ErrDuplicateEntity, email)
		}
		return nil, storageErr(err)
	}
	c.Accessibility = &p

	s.log.Info("company_registered", "company_id", c.ID, "email", c.Email)
	s.publishEvent("Cadastro", c)
	return &Registration{Company: c, Profile: &p}, nil
}

// FindByEmail retorna (nil, nil) quando não existe empresa com o email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.store.FindCompanyByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, storageErr(err)
	}
	return c, nil
}

// GetByID aceita o id como veio do cliente (ex.: path param).
func (s *Service) GetByID(ctx context.Context, rawID string) (*models.Company, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.store.GetCompanyByID(ctx, id)
	if err != nil {
		return nil, storageErr(err)
	}
	return c, nil
}

// ListAll devolve todas as empresas, da mais recente para a mais antiga.
func (s *Service) ListAll(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	list, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return list, nil
}

// UpdateAccessibility sobrescreve o perfil inteiro: o que não vier volta ao
// default (false / null), não é um patch parcial.
func (s *Service) UpdateAccessibility(ctx context.Context, rawCompanyID string, flags models.AccessibilityFlags, details models.AccessibilityDetails) (*models.AccessibilityProfile, error) {
	id, err := parseID(rawCompanyID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p := models.NewAccessibilityProfile(id, flags, details)
	if err := s.store.ReplaceAccessibility(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: accessibility profile for company %d", ErrNotFound, id)
		}
		return nil, storageErr(err)
	}

	s.log.Info("accessibility_updated", "company_id", id)
	s.publishAccessibilityEvent(id)
	return &p, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid company id %q", ErrInvalidArgument, raw)
	}
	return id, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

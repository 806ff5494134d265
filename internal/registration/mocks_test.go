package registration

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

type storeMock struct {
	FindByEmailFn func(ctx context.Context, email string) (*models.Company, error)
	GetByIDFn     func(ctx context.Context, id int64) (*models.Company, error)
	ListFn        func(ctx context.Context) ([]models.Company, error)
	CreateFn      func(ctx context.Context, c *models.Company, p *models.AccessibilityProfile) error
	ReplaceFn     func(ctx context.Context, p *models.AccessibilityProfile) error
}

func (m *storeMock) FindCompanyByEmail(ctx context.Context, email string) (*models.Company, error) {
	if m.FindByEmailFn == nil {
		return nil, errors.New("FindByEmailFn not set")
	}
	return m.FindByEmailFn(ctx, email)
}
func (m *storeMock) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	if m.GetByIDFn == nil {
		return nil, errors.New("GetByIDFn not set")
	}
	return m.GetByIDFn(ctx, id)
}
func (m *storeMock) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if m.ListFn == nil {
		return nil, errors.New("ListFn not set")
	}
	return m.ListFn(ctx)
}
func (m *storeMock) CreateCompanyWithProfile(ctx context.Context, c *models.Company, p *models.AccessibilityProfile) error {
	if m.CreateFn == nil {
		return errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, c, p)
}
func (m *storeMock) ReplaceAccessibility(ctx context.Context, p *models.AccessibilityProfile) error {
	if m.ReplaceFn == nil {
		return errors.New("ReplaceFn not set")
	}
	return m.ReplaceFn(ctx, p)
}

type pubMock struct {
	PublishFn func(ctx context.Context, body string, headers amqp.Table) error
}

func (p *pubMock) Publish(ctx context.Context, body string, headers amqp.Table) error {
	if p.PublishFn == nil {
		return nil
	}
	return p.PublishFn(ctx, body, headers)
}

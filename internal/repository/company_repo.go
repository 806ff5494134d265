package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindCompanyByEmail retorna (nil, nil) quando não existe.
func (r *CompanyRepository) FindCompanyByEmail(ctx context.Context, email string) (*models.Company, error) {
	var c models.Company
	err := r.db.WithContext(ctx).
		Preload("Accessibility").
		Where("email = ?", email).
		Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find company by email: %w", err)
	}
	return &c, nil
}

// GetCompanyByID retorna (nil, nil) quando não existe.
func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	var c models.Company
	err := r.db.WithContext(ctx).
		Preload("Accessibility").
		Where("id = ?", id).
		Take(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company %d: %w", id, err)
	}
	return &c, nil
}

// ListCompanies devolve todas as empresas, mais recentes primeiro.
func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	list := []models.Company{}
	err := r.db.WithContext(ctx).
		Preload("Accessibility").
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return list, nil
}

// CreateCompanyWithProfile insere empresa e perfil na mesma transação.
// O perfil recebe o id gerado para a empresa; qualquer falha desfaz os dois.
func (r *CompanyRepository) CreateCompanyWithProfile(ctx context.Context, c *models.Company, p *models.AccessibilityProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Accessibility").Create(c).Error; err != nil {
			return err
		}
		p.CompanyID = c.ID
		return tx.Create(p).Error
	})
	if err != nil {
		c.ID = 0
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create company with profile: %w", err)
	}
	c.Accessibility = p
	return nil
}

// ReplaceAccessibility sobrescreve todas as colunas do perfil existente.
// Sem linha para a empresa -> ErrNotFound (nada é escrito).
func (r *CompanyRepository) ReplaceAccessibility(ctx context.Context, p *models.AccessibilityProfile) error {
	res := r.db.WithContext(ctx).
		Model(&models.AccessibilityProfile{CompanyID: p.CompanyID}).
		Select("*").
		Omit("company_id").
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("replace accessibility %d: %w", p.CompanyID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/db"
	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

/*
	go test -run 'TestCompanyRepository_' -v ./internal/repository -count=1
*/

var companyCols = []string{"id", "name", "email", "password_hash", "published", "created_at"}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), db.GormConfig(nil))
	require.NoError(t, err)
	return gdb, mock
}

func TestCompanyRepository_FindByEmail_Found(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(int64(3), "Cafe Sol", "sol@x.com", "$2a$10$hash", false, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "accessibility_profiles" WHERE "accessibility_profiles"."company_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"company_id", "ramp", "elevator"}).
			AddRow(int64(3), true, false))

	c, err := repo.FindCompanyByEmail(context.Background(), "sol@x.com")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, int64(3), c.ID)
	require.NotNil(t, c.Accessibility)
	require.True(t, c.Accessibility.Ramp)
	require.False(t, c.Accessibility.Elevator)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_FindByEmail_NotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(companyCols))

	c, err := repo.FindCompanyByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	require.Nil(t, c)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_GetByID_DBError(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE id = \$1`).WillReturnError(boom)

	c, err := repo.GetCompanyByID(context.Background(), 9)
	require.Nil(t, c)
	require.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ListCompanies_OrderedDesc(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "companies" ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows(companyCols).
			AddRow(int64(3), "C", "c@x.com", "h", false, now).
			AddRow(int64(2), "B", "b@x.com", "h", false, now).
			AddRow(int64(1), "A", "a@x.com", "h", true, now))
	mock.ExpectQuery(`SELECT \* FROM "accessibility_profiles" WHERE "accessibility_profiles"."company_id" IN`).
		WillReturnRows(sqlmock.NewRows([]string{"company_id", "ramp"}).
			AddRow(int64(1), true).
			AddRow(int64(2), false).
			AddRow(int64(3), false))

	list, err := repo.ListCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"C", "B", "A"}, []string{list[0].Name, list[1].Name, list[2].Name})
	require.NotNil(t, list[2].Accessibility)
	require.True(t, list[2].Accessibility.Ramp)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_CreateWithProfile_Commit(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectExec(`INSERT INTO "accessibility_profiles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := &models.Company{Name: "Cafe Sol", Email: "sol@x.com", PasswordHash: "h"}
	p := models.NewAccessibilityProfile(0, models.AccessibilityFlags{"rampa": true}, nil)

	require.NoError(t, repo.CreateCompanyWithProfile(context.Background(), c, &p))
	require.Equal(t, int64(42), c.ID)
	require.Equal(t, int64(42), p.CompanyID)
	require.Same(t, &p, c.Accessibility)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_CreateWithProfile_ProfileFailsRollsBack(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	boom := errors.New("insert profile failed")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(`INSERT INTO "accessibility_profiles"`).WillReturnError(boom)
	mock.ExpectRollback()

	c := &models.Company{Name: "X", Email: "x@x.com", PasswordHash: "h"}
	p := models.NewAccessibilityProfile(0, nil, nil)

	err := repo.CreateCompanyWithProfile(context.Background(), c, &p)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicateEmail)
	require.Zero(t, c.ID)
	require.Nil(t, c.Accessibility)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_CreateWithProfile_UniqueViolation(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "companies"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_companies_email"})
	mock.ExpectRollback()

	c := &models.Company{Name: "X", Email: "dup@x.com", PasswordHash: "h"}
	p := models.NewAccessibilityProfile(0, nil, nil)

	err := repo.CreateCompanyWithProfile(context.Background(), c, &p)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ReplaceAccessibility(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	// todas as colunas entram no SET, inclusive os detalhes ausentes como NULL
	mock.ExpectExec(`UPDATE "accessibility_profiles" SET "hallways_min_90cm"=\$1,"ramp"=\$2,"door_80cm"=\$3,` +
		`"non_slip_floors"=\$4,"accessible_bathroom"=\$5,"adapted_tables_chairs"=\$6,"elevator"=\$7,` +
		`"braille_signage"=\$8,"color_contrast"=\$9,"podotactile_guides"=\$10,"emergency_alarms"=\$11,` +
		`"hearing_aid_system"=\$12,"adapted_bathroom_quantity"=\$13,"adapted_bathroom_details"=\$14,` +
		`"priority_attention_type"=\$15,"priority_attention_schedule"=\$16,"other_services"=\$17 ` +
		`WHERE .*"company_id" = \$18`).
		WithArgs(
			false, true, false, false, false, false, false, false, false, false, false, false,
			nil, nil, nil, nil, nil,
			int64(5),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := models.NewAccessibilityProfile(5, models.AccessibilityFlags{"ramp": true}, nil)
	require.NoError(t, repo.ReplaceAccessibility(context.Background(), &p))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_ReplaceAccessibility_NoRow(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewCompanyRepository(gdb)

	mock.ExpectExec(`UPDATE "accessibility_profiles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	p := models.NewAccessibilityProfile(404, nil, nil)
	require.ErrorIs(t, repo.ReplaceAccessibility(context.Background(), &p), ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "published", "created_at"}).
			AddRow(int64(1), "Ana", "ana@x.com", true, time.Now()).
			AddRow(int64(2), "Beto", "beto@x.com", false, nil))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.NotNil(t, users[0].CreatedAt)
	require.Nil(t, users[1].CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

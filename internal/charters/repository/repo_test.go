package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

func setupSQLiteRepo(t *testing.T) (*CharterRepository, *gorm.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "charters.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := NewCharterRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo, db
}

func setupMockRepo(t *testing.T) (*CharterRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return NewCharterRepository(db), mock
}

func sampleCharter(name string) *domain.ProjectCharter {
	return &domain.ProjectCharter{
		NomeProjeto:            name,
		Objetivo:               "Modernizar o atendimento",
		Justificativa:          "Filas longas",
		StakeholdersPrincipais: "Diretoria, TI",
		GerenteProjeto:         "Ana Souza",
		Premissas:              "Equipe disponível",
		Restricoes:             "Orçamento fixo",
		PrincipaisEntregas:     "Portal, app",
		OrcamentoEstimado:      150000.5,
		CronogramaInicial:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCharterRepository_InsertAndFind(t *testing.T) {
	repo, _ := setupSQLiteRepo(t)
	ctx := context.Background()

	t.Run("insert assigns id and timestamps", func(t *testing.T) {
		c := sampleCharter("Portal do Cliente")
		require.NoError(t, repo.Insert(ctx, c))

		assert.NotZero(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())
		assert.False(t, c.UpdatedAt.IsZero())
		assert.False(t, c.UpdatedAt.Before(c.CreatedAt))
		assert.False(t, c.AutorizacaoFormal)

		got, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, c.NomeProjeto, got.NomeProjeto)
		assert.Equal(t, c.PrincipaisEntregas, got.PrincipaisEntregas)
		assert.Equal(t, c.OrcamentoEstimado, got.OrcamentoEstimado)
		assert.True(t, c.CronogramaInicial.Equal(got.CronogramaInicial))
		assert.False(t, got.AutorizacaoFormal)
	})

	t.Run("ids are not reused", func(t *testing.T) {
		a := sampleCharter("A")
		b := sampleCharter("B")
		require.NoError(t, repo.Insert(ctx, a))
		require.NoError(t, repo.Insert(ctx, b))
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("insert rejects preassigned id", func(t *testing.T) {
		c := sampleCharter("X")
		c.ID = 42
		assert.Error(t, repo.Insert(ctx, c))
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 999999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCharterRepository_FindAllOrderedByCreatedDesc(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table returns empty slice", func(t *testing.T) {
		repo, _ := setupSQLiteRepo(t)
		items, err := repo.FindAllOrderedByCreatedDesc(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("most recent first", func(t *testing.T) {
		repo, _ := setupSQLiteRepo(t)
		base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

		// inserted out of order on purpose
		for _, tc := range []struct {
			name string
			at   time.Time
		}{
			{"T2", base.Add(time.Hour)},
			{"T1", base},
			{"T3", base.Add(2 * time.Hour)},
		} {
			c := sampleCharter(tc.name)
			c.CreatedAt = tc.at
			c.UpdatedAt = tc.at
			require.NoError(t, repo.Insert(ctx, c))
		}

		items, err := repo.FindAllOrderedByCreatedDesc(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "T3", items[0].NomeProjeto)
		assert.Equal(t, "T2", items[1].NomeProjeto)
		assert.Equal(t, "T1", items[2].NomeProjeto)
	})

	t.Run("closed database surfaces error", func(t *testing.T) {
		repo, db := setupSQLiteRepo(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		_, err = repo.FindAllOrderedByCreatedDesc(ctx)
		assert.Error(t, err)
	})
}

func TestCharterRepository_FindByID_Postgres(t *testing.T) {
	ctx := context.Background()

	t.Run("no rows maps to ErrNotFound", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "termos_abertura_projeto"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nome_projeto"}))

		_, err := repo.FindByID(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver failure is not ErrNotFound", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "termos_abertura_projeto"`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindByID(ctx, 7)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "connection refused")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres errors carry sqlstate", func(t *testing.T) {
		repo, mock := setupMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "termos_abertura_projeto"`).
			WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

		_, err := repo.FindByID(ctx, 7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlstate 08006")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCharterRepository_List_Postgres(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "termos_abertura_projeto" ORDER BY created_at desc,id desc`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome_projeto", "created_at", "updated_at"}).
			AddRow(2, "Novo", now, now).
			AddRow(1, "Antigo", now.Add(-time.Hour), now.Add(-time.Hour)))

	items, err := repo.FindAllOrderedByCreatedDesc(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "Antigo", items[1].NomeProjeto)
	require.NoError(t, mock.ExpectationsWereMet())
}

package snapshotrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/adapters/out/postgres/snapshotrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// InventorySnapshotRepositoryIntegrationTestSuite runs the repository against
// a real PostgreSQL container.
type InventorySnapshotRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *snapshotrepo.GormInventorySnapshotRepository
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container, suite.db = container, db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE inventory_snapshots, inventory_levels").Error)
	suite.repository = snapshotrepo.NewGormInventorySnapshotRepository(suite.db)
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) snapshot(at time.Time, counts map[kernel.SKU]int) *report.InventorySnapshot {
	s, err := report.NewInventorySnapshot(kernel.NewUUID(), at, counts, kernel.DefaultLocationTable())
	suite.Require().NoError(err)
	return s
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) TestLatest_Empty() {
	_, err := suite.repository.Latest(context.Background())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) TestAdd_LatestReturnsNewest() {
	ctx := context.Background()
	older := suite.snapshot(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC), map[kernel.SKU]int{"3": 30})
	newer := suite.snapshot(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), map[kernel.SKU]int{"3": 4, "10": 30})

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))

	got, err := suite.repository.Latest(ctx)

	suite.Require().NoError(err)
	suite.True(got.ID().Equal(newer.ID()))
	suite.True(got.TakenAt().Equal(newer.TakenAt()))
	suite.Equal(newer.Levels(), got.Levels())
	n, ok := got.Count("3")
	suite.True(ok)
	suite.Equal(4, n)
}

func (suite *InventorySnapshotRepositoryIntegrationTestSuite) TestAdd_RejectsUnconstructed() {
	err := suite.repository.Add(context.Background(), &report.InventorySnapshot{})

	suite.Require().ErrorIs(err, report.ErrInventorySnapshotIsNotConstructed)
}

func TestInventorySnapshotRepositoryIntegrationTestSuite(t *testing.T) {
	pgtest.SkipWithoutDocker(t)
	suite.Run(t, new(InventorySnapshotRepositoryIntegrationTestSuite))
}

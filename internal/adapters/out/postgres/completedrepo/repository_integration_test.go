package completedrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/completedrepo"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CompletedRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *completedrepo.GormCompletedRequestRepository
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container, suite.db = container, db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE completed_requests, completed_orders").Error)
	suite.repository = completedrepo.NewGormCompletedRequestRepository(suite.db)
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) completed(requestID int, at time.Time) *report.CompletedRequest {
	c, err := report.RestoreCompletedRequest(
		kernel.NewUUID(),
		requestID,
		[]kernel.SKU{"37", "9", "21", "3", "38", "10", "22", "4"},
		[]report.OrderLine{
			{Color: "Red", Model: "SE", Front: "37", Back: "38"},
			{Color: "Blue", Model: "SE", Front: "9", Back: "10"},
			{Color: "Green", Model: "SE", Front: "21", Back: "22"},
			{Color: "White", Model: "SE", Front: "3", Back: "4"},
		},
		at,
	)
	suite.Require().NoError(err)
	return c
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) TestSave_Get_RoundTrip() {
	ctx := context.Background()
	at := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	want := suite.completed(1, at)

	suite.Require().NoError(suite.repository.Save(ctx, want))
	got, err := suite.repository.Get(ctx, 1)

	suite.Require().NoError(err)
	suite.True(got.ID().Equal(want.ID()))
	suite.Equal(want.CorrectOrder(), got.CorrectOrder())
	suite.Equal(want.Orders(), got.Orders())
	suite.True(got.CompletedAt().Equal(at))
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) TestSave_SameRequestTwiceKeepsFirst() {
	ctx := context.Background()
	first := suite.completed(1, time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC))
	second := suite.completed(1, time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.repository.Save(ctx, first))
	suite.Require().NoError(suite.repository.Save(ctx, second))

	all, err := suite.repository.List(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.True(all[0].ID().Equal(first.ID()))
	suite.Len(all[0].Orders(), 4)
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) TestList_OrderedByCompletion() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, suite.completed(2, time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC))))
	suite.Require().NoError(suite.repository.Save(ctx, suite.completed(1, time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC))))

	all, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(1, all[0].RequestID())
	suite.Equal(2, all[1].RequestID())
}

func (suite *CompletedRequestRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 42)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCompletedRequestRepositoryIntegrationTestSuite(t *testing.T) {
	pgtest.SkipWithoutDocker(t)
	suite.Run(t, new(CompletedRequestRepositoryIntegrationTestSuite))
}

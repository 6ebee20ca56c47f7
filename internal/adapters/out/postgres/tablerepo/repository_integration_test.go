package tablerepo_test

import (
	"context"
	"testing"
	"time"

	"siparisqr/internal/adapters/out/postgres"
	"siparisqr/internal/adapters/out/postgres/pgtest"
	"siparisqr/internal/adapters/out/postgres/tablerepo"
	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type TableRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *tablerepo.GormTableRepository
	reader     *tablerepo.GormTableReader
	tenantID   kernel.UUID
}

func (suite *TableRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgres.Migrate(pg.DB))
}

func (suite *TableRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("dining_tables"))
	suite.repository = tablerepo.NewGormTableRepository(suite.pg.DB)
	suite.reader = tablerepo.NewGormTableReader(suite.pg.DB)
	suite.tenantID = kernel.NewUUID()
}

func (suite *TableRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *TableRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(suite.tenantID, "4")))

	err := suite.repository.Add(ctx, suite.newTable(suite.tenantID, "4"))
	suite.Require().ErrorIs(err, errs.ErrObjectConflict)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(kernel.NewUUID(), "4")),
		"numbers are unique per tenant only")
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_ToTakenNumber_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(suite.tenantID, "1")))
	second := suite.newTable(suite.tenantID, "2")
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.Require().NoError(second.Renumber("1"))
	err := suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrObjectConflict)
}

func (suite *TableRepositoryIntegrationTestSuite) TestGet_OtherTenant_NotFound() {
	ctx := context.Background()
	tbl := suite.newTable(suite.tenantID, "1")
	suite.Require().NoError(suite.repository.Add(ctx, tbl))

	_, err := suite.repository.Get(ctx, kernel.NewUUID(), tbl.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	got, err := suite.repository.Get(ctx, suite.tenantID, tbl.ID())
	suite.Require().NoError(err)
	suite.Equal("1", got.Number())
	suite.Equal(4, got.Capacity())
	suite.True(got.IsActive())
}

func (suite *TableRepositoryIntegrationTestSuite) TestDelete_HidesTableAndFreesNumber() {
	ctx := context.Background()
	tbl := suite.newTable(suite.tenantID, "5")
	suite.Require().NoError(suite.repository.Add(ctx, tbl))

	suite.Require().NoError(suite.repository.Delete(ctx, suite.tenantID, tbl.ID()))

	_, err := suite.repository.Get(ctx, suite.tenantID, tbl.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	n, err := suite.reader.CountTables(ctx, suite.tenantID)
	suite.Require().NoError(err)
	suite.Zero(n)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(suite.tenantID, "5")))
	suite.Require().ErrorIs(suite.repository.Delete(ctx, suite.tenantID, tbl.ID()), errs.ErrObjectNotFound)
}

func (suite *TableRepositoryIntegrationTestSuite) TestListTables_TenantScoped() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(suite.tenantID, "B")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(suite.tenantID, "A")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTable(kernel.NewUUID(), "C")))

	tables, err := suite.reader.ListTables(ctx, suite.tenantID)

	suite.Require().NoError(err)
	suite.Require().Len(tables, 2)
	suite.Equal("A", tables[0].Number())
	suite.Equal("B", tables[1].Number())
}

func (suite *TableRepositoryIntegrationTestSuite) newTable(tenantID kernel.UUID, number string) *table.Table {
	tbl, err := table.NewTable(kernel.NewUUID(), tenantID, number, 4, time.Now())
	suite.Require().NoError(err)
	return tbl
}

func TestTableRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TableRepositoryIntegrationTestSuite))
}

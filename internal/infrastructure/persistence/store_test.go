package persistence

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&ledger.Company{},
		&ledger.Project{},
		&ledger.Expense{},
		&ledger.Payment{},
		&ledger.Manpower{},
	))
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, name, regNo string) *ledger.Company {
	t.Helper()
	company, err := ledger.NewCompany(uuid.New(), name, regNo)
	require.NoError(t, err)
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedProject(t *testing.T, db *gorm.DB, company *ledger.Company, code, name string) *ledger.Project {
	t.Helper()
	project, err := ledger.NewProject(uuid.New(), company.ID, code, name, time.Now())
	require.NoError(t, err)
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedExpense(t *testing.T, db *gorm.DB, project *ledger.Project, code string, amount int64, category ledger.ExpenseCategory) *ledger.Expense {
	t.Helper()
	expense, err := ledger.NewExpense(uuid.New(), project, code, time.Now(), decimal.NewFromInt(amount), "seeded expense", category)
	require.NoError(t, err)
	require.NoError(t, db.Create(expense).Error)
	return expense
}

func querySpec() shared.QuerySpec {
	return shared.QuerySpec{Page: shared.DefaultPage, Limit: shared.DefaultLimit}
}

func TestStore_List_Filtering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	project := seedProject(t, db, company, "PRJ-001", "Warehouse")
	other := seedProject(t, db, seedCompany(t, db, "Beta Corp", "REG-002"), "PRJ-002", "Office")

	seedExpense(t, db, project, "EXP-001", 100, ledger.ExpenseCategoryOffice)
	seedExpense(t, db, project, "EXP-002", 500, ledger.ExpenseCategoryTravel)
	seedExpense(t, db, project, "EXP-003", 900, ledger.ExpenseCategoryTravel)
	seedExpense(t, db, other, "EXP-004", 700, ledger.ExpenseCategoryMisc)

	store := NewExpenseRepository(db)

	t.Run("equality filter on foreign key", func(t *testing.T) {
		spec := querySpec()
		spec.Filters = []shared.FilterClause{{Field: "projectId", Op: shared.OpEq, Values: []string{project.ID.String()}}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
		assert.Len(t, page.Items, 3)
	})

	t.Run("range filter", func(t *testing.T) {
		spec := querySpec()
		spec.Filters = []shared.FilterClause{{Field: "amount", Op: shared.OpGte, Values: []string{"500"}}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
	})

	t.Run("membership filter", func(t *testing.T) {
		spec := querySpec()
		spec.Filters = []shared.FilterClause{{Field: "category", Op: shared.OpIn, Values: []string{"travel", "misc"}}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Total)
	})

	t.Run("combined filters narrow conjunctively", func(t *testing.T) {
		spec := querySpec()
		spec.Filters = []shared.FilterClause{
			{Field: "projectId", Op: shared.OpEq, Values: []string{project.ID.String()}},
			{Field: "amount", Op: shared.OpGt, Values: []string{"100"}},
		}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})

	t.Run("unknown filter field is ignored", func(t *testing.T) {
		spec := querySpec()
		spec.Filters = []shared.FilterClause{{Field: "warehouse", Op: shared.OpEq, Values: []string{"x"}}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.Total)
	})
}

func TestStore_List_Pagination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	project := seedProject(t, db, company, "PRJ-001", "Warehouse")
	for i := 0; i < 7; i++ {
		seedExpense(t, db, project, fmt.Sprintf("EXP-%03d", i), int64(100+i), ledger.ExpenseCategoryMisc)
	}

	store := NewExpenseRepository(db)

	spec := querySpec()
	spec.Page = 2
	spec.Limit = 3
	page, err := store.List(ctx, spec)
	require.NoError(t, err)

	assert.Equal(t, int64(7), page.Total)
	assert.Len(t, page.Items, 3)
	require.NotNil(t, page.Next())
	assert.Equal(t, 3, page.Next().Page)
	require.NotNil(t, page.Prev())
	assert.Equal(t, 1, page.Prev().Page)

	spec.Page = 3
	last, err := store.List(ctx, spec)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.Nil(t, last.Next())

	spec.Page = 9
	empty, err := store.List(ctx, spec)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(7), empty.Total)
}

func TestStore_List_Sorting(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	project := seedProject(t, db, company, "PRJ-001", "Warehouse")
	seedExpense(t, db, project, "EXP-B", 300, ledger.ExpenseCategoryMisc)
	seedExpense(t, db, project, "EXP-C", 100, ledger.ExpenseCategoryMisc)
	seedExpense(t, db, project, "EXP-A", 200, ledger.ExpenseCategoryMisc)

	store := NewExpenseRepository(db)

	t.Run("explicit ascending sort", func(t *testing.T) {
		spec := querySpec()
		spec.Sort = []shared.SortKey{{Field: "code"}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "EXP-A", page.Items[0].Code)
		assert.Equal(t, "EXP-C", page.Items[2].Code)
	})

	t.Run("explicit descending sort", func(t *testing.T) {
		spec := querySpec()
		spec.Sort = []shared.SortKey{{Field: "amount", Desc: true}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "EXP-B", page.Items[0].Code)
	})

	t.Run("unknown sort field falls back to default order", func(t *testing.T) {
		spec := querySpec()
		spec.Sort = []shared.SortKey{{Field: "warehouse"}}
		page, err := store.List(ctx, spec)
		require.NoError(t, err)
		assert.Len(t, page.Items, 3)
	})
}

func TestStore_List_Projection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCompany(t, db, "Acme Builders", "REG-001")

	store := NewCompanyRepository(db)

	spec := querySpec()
	spec.Select = []string{"name"}
	page, err := store.List(ctx, spec)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	got := page.Items[0]
	assert.Equal(t, "Acme Builders", got.Name)
	assert.Empty(t, got.RegistrationNumber)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_List_Expansion(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	project := seedProject(t, db, company, "PRJ-001", "Warehouse")
	seedExpense(t, db, project, "EXP-001", 100, ledger.ExpenseCategoryOffice)

	store := NewExpenseRepository(db)

	page, err := store.List(ctx, querySpec())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	got := page.Items[0]
	require.NotNil(t, got.Project)
	assert.Equal(t, "Warehouse", got.Project.Name)
	assert.Equal(t, "PRJ-001", got.Project.Code)
	require.NotNil(t, got.Company)
	assert.Equal(t, "Acme Builders", got.Company.Name)
	// expansion carries a fixed projection, not the full record
	assert.Empty(t, got.Company.RegistrationNumber)
}

func TestStore_Get(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	seedProject(t, db, company, "PRJ-001", "Warehouse")
	seedProject(t, db, company, "PRJ-002", "Office")

	store := NewCompanyRepository(db)

	t.Run("applies default expansions", func(t *testing.T) {
		got, err := store.Get(ctx, company.ID)
		require.NoError(t, err)
		assert.Len(t, got.Projects, 2)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStore_Create_DuplicateCode(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := NewCompanyRepository(db)

	first, err := ledger.NewCompany(uuid.New(), "Acme Builders", "REG-001")
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, first))

	dup, err := ledger.NewCompany(uuid.New(), "Other Name", "REG-001")
	require.NoError(t, err)
	assert.ErrorIs(t, store.Create(ctx, dup), shared.ErrAlreadyExists)
}

func TestStore_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	company := seedCompany(t, db, "Acme Builders", "REG-001")
	store := NewCompanyRepository(db)

	require.NoError(t, store.Delete(ctx, company.ID))
	assert.ErrorIs(t, store.Delete(ctx, company.ID), shared.ErrNotFound)
}

func TestStore_ExistsByCode(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedCompany(t, db, "Acme Builders", "REG-001")

	store := NewCompanyRepository(db)

	exists, err := store.ExistsByCode(ctx, "REG-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsByCode(ctx, "REG-999")
	require.NoError(t, err)
	assert.False(t, exists)

	// manpower carries no unique code
	manpower := NewManpowerRepository(db)
	exists, err = manpower.ExistsByCode(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, exists)
}

package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProject(t *testing.T) *Project {
	t.Helper()
	project, err := NewProject(uuid.New(), uuid.New(), "PR1", "Warehouse build", time.Now())
	require.NoError(t, err)
	return project
}

func TestNewManpower(t *testing.T) {
	project := testProject(t)

	t.Run("computes total payable at creation", func(t *testing.T) {
		m, err := NewManpower(uuid.New(), project, "Jordan Smith", "electrician",
			decimal.NewFromFloat(37.5), decimal.NewFromFloat(42.80), time.Now())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(1605).Equal(m.TotalPayable), m.TotalPayable.String())
		assert.Equal(t, project.ID, m.ProjectID)
		assert.Equal(t, project.CompanyID, m.CompanyID)
	})

	t.Run("rejects missing name or role", func(t *testing.T) {
		_, err := NewManpower(uuid.New(), project, "", "welder", decimal.New(1, 0), decimal.New(1, 0), time.Now())
		require.Error(t, err)
		_, err = NewManpower(uuid.New(), project, "Sam", "", decimal.New(1, 0), decimal.New(1, 0), time.Now())
		require.Error(t, err)
	})

	t.Run("rejects negative inputs", func(t *testing.T) {
		_, err := NewManpower(uuid.New(), project, "Sam", "welder", decimal.NewFromInt(-1), decimal.New(1, 0), time.Now())
		require.Error(t, err)
		_, err = NewManpower(uuid.New(), project, "Sam", "welder", decimal.New(1, 0), decimal.NewFromInt(-1), time.Now())
		require.Error(t, err)
	})
}

func TestManpowerRecompute(t *testing.T) {
	project := testProject(t)
	m, err := NewManpower(uuid.New(), project, "Jordan Smith", "electrician",
		decimal.NewFromInt(40), decimal.NewFromInt(25), time.Now())
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1000).Equal(m.TotalPayable))

	t.Run("changing hours keeps stored rate", func(t *testing.T) {
		require.NoError(t, m.SetHours(decimal.NewFromInt(10)))
		assert.True(t, decimal.NewFromInt(250).Equal(m.TotalPayable), m.TotalPayable.String())
	})

	t.Run("changing rate keeps stored hours", func(t *testing.T) {
		require.NoError(t, m.SetWageRate(decimal.NewFromInt(30)))
		assert.True(t, decimal.NewFromInt(300).Equal(m.TotalPayable), m.TotalPayable.String())
	})

	t.Run("negative update is rejected and total untouched", func(t *testing.T) {
		before := m.TotalPayable
		require.Error(t, m.SetHours(decimal.NewFromInt(-5)))
		assert.True(t, before.Equal(m.TotalPayable))
	})
}

func TestManpowerSchedule(t *testing.T) {
	project := testProject(t)
	m, err := NewManpower(uuid.New(), project, "Jordan Smith", "electrician",
		decimal.NewFromInt(8), decimal.NewFromInt(20), time.Now())
	require.NoError(t, err)

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	require.NoError(t, m.SetSchedule(start, &end))
	assert.Equal(t, start, m.StartDate)

	bad := start.AddDate(0, 0, -1)
	require.Error(t, m.SetSchedule(start, &bad))
}

package postgresql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	clause, args, err := buildWhere([]Filter{
		Eq("employee_id", "123"),
		Eq("level", 3),
		Gte("submission_date", start),
		Lte("submission_date", end),
	})
	require.NoError(t, err)

	assert.Equal(t, " WHERE employee_id = $1 AND level = $2 AND submission_date >= $3 AND submission_date <= $4", clause)
	assert.Equal(t, []any{"123", 3, start, end}, args)
}

func TestBuildWhere_Empty(t *testing.T) {
	clause, args, err := buildWhere(nil)
	require.NoError(t, err)
	assert.Empty(t, clause)
	assert.Nil(t, args)
}

func TestBuildWhere_RejectsUnknownOperator(t *testing.T) {
	_, _, err := buildWhere([]Filter{{Column: "id", Op: "LIKE", Value: "x"}})
	assert.Error(t, err)
}

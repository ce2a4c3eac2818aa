package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams_Defaults(t *testing.T) {
	p := GetPaginationParams(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Limit)
}

func TestGetPaginationParams_ClampsOversizedLimit(t *testing.T) {
	p := GetPaginationParams(1, 5000)
	assert.Equal(t, MaxPageSize, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 20}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(45, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(45), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCalculateMeta_NoLimitReturnsSinglePage(t *testing.T) {
	meta := CalculateMeta(45, 1, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 45, meta.Limit)
	assert.Equal(t, 1, meta.TotalPages)
}

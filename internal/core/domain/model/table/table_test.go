package table_test

import (
	"testing"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/table"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	tenantID := kernel.NewUUID()

	tbl, err := table.NewTable(kernel.NewUUID(), tenantID, " 12 ", 4, time.Now())

	require.NoError(t, err)
	assert.NoError(t, tbl.Validate())
	assert.Equal(t, "12", tbl.Number())
	assert.Equal(t, 4, tbl.Capacity())
	assert.True(t, tbl.IsActive())
	assert.True(t, tbl.BelongsTo(tenantID))
	assert.False(t, tbl.BelongsTo(kernel.NewUUID()))
}

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		tenantID kernel.UUID
		number   string
		capacity int
		want     error
	}{
		{"missing tenant", kernel.UUID{}, "1", 2, errs.ErrValueIsRequired},
		{"blank number", kernel.NewUUID(), "  ", 2, errs.ErrValueIsRequired},
		{"long number", kernel.NewUUID(), "123456789012345678901", 2, errs.ErrValueIsOutOfRange},
		{"zero capacity", kernel.NewUUID(), "1", 0, errs.ErrValueIsOutOfRange},
		{"huge capacity", kernel.NewUUID(), "1", 101, errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.NewTable(kernel.NewUUID(), tt.tenantID, tt.number, tt.capacity, time.Now())
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestTable_Mutations(t *testing.T) {
	tbl, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), "1", 2, time.Now())
	require.NoError(t, err)

	require.NoError(t, tbl.Renumber("A1"))
	require.NoError(t, tbl.Resize(6))
	tbl.Deactivate()

	assert.Equal(t, "A1", tbl.Number())
	assert.Equal(t, 6, tbl.Capacity())
	assert.False(t, tbl.IsActive())

	assert.Error(t, tbl.Renumber(""))
	assert.Error(t, tbl.Resize(-1))
	assert.Equal(t, "A1", tbl.Number())
	assert.Equal(t, 6, tbl.Capacity())

	tbl.Activate()
	assert.True(t, tbl.IsActive())
}

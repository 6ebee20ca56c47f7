package kernel_test

import (
	"math"
	"testing"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), m.Minor())
	assert.Equal(t, "25.00", m.String())

	_, err = kernel.NewMoney(-1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMoneyFromMajor(t *testing.T) {
	m, err := kernel.MoneyFromMajor(25)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), m.Minor())

	_, err = kernel.MoneyFromMajor(math.MaxInt64)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromMajor(25)

	line, err := price.Mul(2)
	require.NoError(t, err)
	assert.Equal(t, "50.00", line.String())

	sum, err := line.Add(price)
	require.NoError(t, err)
	assert.Equal(t, "75.00", sum.String())

	_, err = price.Mul(0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	huge, _ := kernel.NewMoney(math.MaxInt64)
	_, err = huge.Add(price)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	_, err = huge.Mul(2)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMoney_String(t *testing.T) {
	for minor, want := range map[int64]string{0: "0.00", 5: "0.05", 199: "1.99", 100000: "1000.00"} {
		m, err := kernel.NewMoney(minor)
		require.NoError(t, err)
		assert.Equal(t, want, m.String())
	}
	assert.True(t, kernel.Zero().IsZero())
}

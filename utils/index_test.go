package utils

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{22.006, 22.01},
		{22.004, 22.0},
		{0.1 + 0.2, 0.3},
		{-1.005, -1.0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundMoney(tt.in), "RoundMoney(%v)", tt.in)
	}
}

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 50.0, CalculateGrowth(150, 100))
	assert.Equal(t, -50.0, CalculateGrowth(50, 100))
	assert.Equal(t, 100.0, CalculateGrowth(10, 0))
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
}

func TestIsValidValueOfConstant(t *testing.T) {
	assert.True(t, IsValidValueOfConstant(constants.PAYMENT_PIX, constants.PAYMENT_METHOD))
	assert.True(t, IsValidValueOfConstant(constants.PAYMENT_CASH, constants.PAYMENT_METHOD))
	assert.False(t, IsValidValueOfConstant("check", constants.PAYMENT_METHOD))
	assert.False(t, IsValidValueOfConstant("", constants.PAYMENT_METHOD))
}

package helper

import (
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumSubtotals(t *testing.T) {
	items := []model.OrderItem{
		{Subtotal: 15.00},
		{Subtotal: 7.00},
		{Subtotal: 0.10},
	}
	assert.Equal(t, 22.10, SumSubtotals(items))
	assert.Equal(t, 0.0, SumSubtotals(nil))
}

func TestRemainingBalance(t *testing.T) {
	order := &model.Order{Total: 22.00, AmountPaid: 10.00}
	assert.Equal(t, 12.00, RemainingBalance(order))

	order.AmountPaid = 22.00
	assert.Equal(t, 0.00, RemainingBalance(order))
}

func TestCheckPayment(t *testing.T) {
	tests := []struct {
		name    string
		order   model.Order
		amount  float64
		wantErr string
	}{
		{
			name:   "partial payment within balance",
			order:  model.Order{Status: constants.ORDER_OPEN, Total: 22.00, AmountPaid: 0},
			amount: 10.00,
		},
		{
			name:   "exact remaining balance",
			order:  model.Order{Status: constants.ORDER_OPEN, Total: 22.00, AmountPaid: 10.00},
			amount: 12.00,
		},
		{
			name:    "overpayment rejected",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 22.00, AmountPaid: 0},
			amount:  25.00,
			wantErr: "amount 25.00 exceeds the remaining balance 22.00",
		},
		{
			name:    "overpayment on partially paid order",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 22.00, AmountPaid: 10.00},
			amount:  12.01,
			wantErr: "amount 12.01 exceeds the remaining balance 12.00",
		},
		{
			name:    "zero amount rejected",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 22.00},
			amount:  0,
			wantErr: "payment amount must be greater than zero",
		},
		{
			name:    "negative amount rejected",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 22.00},
			amount:  -5,
			wantErr: "payment amount must be greater than zero",
		},
		{
			name:    "closed order rejected",
			order:   model.Order{Status: constants.ORDER_CLOSED, Total: 22.00, AmountPaid: 22.00},
			amount:  1.00,
			wantErr: constants.ORDER_ALREADY_CLOSED,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPayment(&tt.order, tt.amount)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestApplyPaymentClosesOnExactTotal(t *testing.T) {
	now := time.Now()
	order := &model.Order{Status: constants.ORDER_OPEN, Total: 22.00}

	closed := ApplyPayment(order, 15.00, constants.PAYMENT_CASH, 3, now)
	assert.False(t, closed)
	assert.Equal(t, constants.ORDER_OPEN, order.Status)
	assert.Equal(t, 15.00, order.AmountPaid)
	assert.Nil(t, order.ClosedAt)

	closed = ApplyPayment(order, 7.00, constants.PAYMENT_PIX, 3, now)
	assert.True(t, closed)
	assert.Equal(t, constants.ORDER_CLOSED, order.Status)
	assert.Equal(t, 22.00, order.AmountPaid)
	assert.Equal(t, constants.PAYMENT_PIX, order.PaymentMethod)
	require.NotNil(t, order.ClosedAt)
	assert.Equal(t, now, *order.ClosedAt)
	require.NotNil(t, order.ClosedById)
	assert.Equal(t, uint(3), *order.ClosedById)
}

func TestApplyPaymentStaysOpenBelowTotal(t *testing.T) {
	order := &model.Order{Status: constants.ORDER_OPEN, Total: 30.00}

	closed := ApplyPayment(order, 10.00, constants.PAYMENT_CASH, 1, time.Now())
	assert.False(t, closed)
	closed = ApplyPayment(order, 12.00, constants.PAYMENT_DEBIT, 1, time.Now())
	assert.False(t, closed)

	assert.Equal(t, constants.ORDER_OPEN, order.Status)
	assert.Equal(t, 22.00, order.AmountPaid)
	assert.Equal(t, 8.00, RemainingBalance(order))
	assert.Nil(t, order.ClosedAt)
}

func TestApplyPaymentRoundsRunningSum(t *testing.T) {
	order := &model.Order{Status: constants.ORDER_OPEN, Total: 0.30}

	ApplyPayment(order, 0.10, constants.PAYMENT_CASH, 1, time.Now())
	ApplyPayment(order, 0.10, constants.PAYMENT_CASH, 1, time.Now())
	closed := ApplyPayment(order, 0.10, constants.PAYMENT_CASH, 1, time.Now())

	assert.True(t, closed)
	assert.Equal(t, 0.30, order.AmountPaid)
}

func TestCheckItemRemoval(t *testing.T) {
	tests := []struct {
		name    string
		order   model.Order
		item    model.OrderItem
		wantErr bool
	}{
		{
			name:  "unpaid order allows removal",
			order: model.Order{Status: constants.ORDER_OPEN, Total: 30.00, AmountPaid: 0},
			item:  model.OrderItem{Subtotal: 12.00},
		},
		{
			name:  "removal keeping total at amount paid",
			order: model.Order{Status: constants.ORDER_OPEN, Total: 30.00, AmountPaid: 18.00},
			item:  model.OrderItem{Subtotal: 12.00},
		},
		{
			name:    "removal dropping total below amount paid",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 30.00, AmountPaid: 20.00},
			item:    model.OrderItem{Subtotal: 12.00},
			wantErr: true,
		},
		{
			name:    "removing the only item from a partially paid order",
			order:   model.Order{Status: constants.ORDER_OPEN, Total: 12.00, AmountPaid: 5.00},
			item:    model.OrderItem{Subtotal: 12.00},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckItemRemoval(&tt.order, &tt.item)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "already paid")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewReceiptCode(t *testing.T) {
	a := NewReceiptCode()
	b := NewReceiptCode()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

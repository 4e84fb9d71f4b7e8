package utils

import (
	"strings"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []model.Order {
	closedAt := time.Date(2026, 8, 30, 21, 15, 0, 0, time.Local)
	feijoada := &model.Dish{DTO: model.DTO{ID: 1}, Name: "Feijoada Completa"}
	moqueca := &model.Dish{DTO: model.DTO{ID: 2}, Name: "Moqueca de Peixe"}
	ana := &model.User{DTO: model.DTO{ID: 10}, Name: "Ana"}
	bruno := &model.User{DTO: model.DTO{ID: 11}, Name: "Bruno"}
	mesa1 := &model.Table{DTO: model.DTO{ID: 1}, Name: "Mesa 01", Status: constants.TABLE_FREE}
	mesa2 := &model.Table{DTO: model.DTO{ID: 2}, Name: "Mesa 02", Status: constants.TABLE_OCCUPIED}

	return []model.Order{
		{
			DTO: model.DTO{ID: 100}, TableId: 1, Table: mesa1,
			WaiterId: 10, Waiter: ana,
			Status: constants.ORDER_CLOSED, PaymentMethod: constants.PAYMENT_PIX,
			ClosedAt: &closedAt,
			Items: []model.OrderItem{
				{DishId: 1, Dish: feijoada, Quantity: 2, Subtotal: 90.00},
				{DishId: 2, Dish: moqueca, Quantity: 1, Subtotal: 55.00},
			},
		},
		{
			DTO: model.DTO{ID: 101}, TableId: 2, Table: mesa2,
			WaiterId: 11, Waiter: bruno,
			Status: constants.ORDER_OPEN,
			Items: []model.OrderItem{
				{DishId: 1, Dish: feijoada, Quantity: 2, Subtotal: 90.00},
			},
		},
		{
			DTO: model.DTO{ID: 102}, TableId: 1, Table: mesa1,
			WaiterId: 10, Waiter: ana,
			Status: constants.ORDER_CLOSED, PaymentMethod: constants.PAYMENT_CASH,
			ClosedAt: &closedAt,
			Items: []model.OrderItem{
				{DishId: 2, Dish: moqueca, Quantity: 2, Subtotal: 110.00},
			},
		},
	}
}

func TestOrderTotal(t *testing.T) {
	orders := sampleOrders()
	assert.Equal(t, 145.00, OrderTotal(orders[0]))
	assert.Equal(t, 90.00, OrderTotal(orders[1]))
	assert.Equal(t, 0.0, OrderTotal(model.Order{}))
}

func TestBuildReportSummary(t *testing.T) {
	summary := BuildReportSummary(sampleOrders())

	assert.Equal(t, int64(3), summary.TotalOrders)
	assert.Equal(t, int64(2), summary.ClosedOrders)
	assert.Equal(t, int64(1), summary.OpenOrders)
	assert.Equal(t, 345.00, summary.TotalSales)
	assert.Equal(t, 172.50, summary.AverageTicket)
}

func TestBuildReportSummaryEmpty(t *testing.T) {
	summary := BuildReportSummary(nil)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.AverageTicket)
}

func TestBuildDishSales(t *testing.T) {
	rows := BuildDishSales(sampleOrders())
	require.Len(t, rows, 2)

	// sorted by quantity sold, descending
	assert.Equal(t, "Feijoada Completa", rows[0].DishName)
	assert.Equal(t, 4, rows[0].QuantitySold)
	assert.Equal(t, 180.00, rows[0].Total)
	assert.Equal(t, 45.00, rows[0].AveragePrice)

	assert.Equal(t, "Moqueca de Peixe", rows[1].DishName)
	assert.Equal(t, 3, rows[1].QuantitySold)
	assert.Equal(t, 165.00, rows[1].Total)
}

func TestBuildWaiterSales(t *testing.T) {
	rows := BuildWaiterSales(sampleOrders())
	require.Len(t, rows, 2)

	assert.Equal(t, "Ana", rows[0].WaiterName)
	assert.Equal(t, 2, rows[0].OrderCount)
	assert.Equal(t, 255.00, rows[0].Total)
	assert.Equal(t, 127.50, rows[0].AverageTicket)

	assert.Equal(t, "Bruno", rows[1].WaiterName)
	assert.Equal(t, 90.00, rows[1].Total)
}

func TestBuildTableSales(t *testing.T) {
	rows := BuildTableSales(sampleOrders())
	require.Len(t, rows, 2)

	assert.Equal(t, "Mesa 01", rows[0].TableName)
	assert.Equal(t, 2, rows[0].OrderCount)
	assert.Equal(t, 255.00, rows[0].Total)
}

func TestSalesCSV(t *testing.T) {
	data, err := SalesCSV(sampleOrders())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Order ID,Table,Waiter,Status,Total (R$),Payment Method,Opened At,Closed At", lines[0])
	assert.Contains(t, lines[1], "100,Mesa 01,Ana,closed,145.00,pix")
	assert.Contains(t, lines[2], "101,Mesa 02,Bruno,open,90.00,N/A")
}

func TestDishesCSV(t *testing.T) {
	data, err := DishesCSV(sampleOrders())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Dish,Quantity Sold,Total (R$),Average Price (R$)", lines[0])
	assert.Contains(t, lines[1], "Feijoada Completa,4,180.00,45.00")
}

func TestBuildReportPDF(t *testing.T) {
	for _, reportType := range []string{"sales", "dishes", "waiters", "tables"} {
		data, err := BuildReportPDF(reportType, nil, nil, sampleOrders())
		require.NoError(t, err, reportType)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"), reportType)
	}
}

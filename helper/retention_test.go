package helper

import (
	"fmt"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Table{},
		&model.Category{},
		&model.Dish{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
	))
	return db
}

// seedOrder creates a table with an order carrying one item, and for closed
// orders a matching payment.
func seedOrder(t *testing.T, db *gorm.DB, tableName, status string) (model.Table, model.Order) {
	t.Helper()

	tableStatus := constants.TABLE_FREE
	if status == constants.ORDER_OPEN {
		tableStatus = constants.TABLE_OCCUPIED
	}
	table := model.Table{Name: tableName, Status: tableStatus}
	require.NoError(t, db.Create(&table).Error)

	order := model.Order{TableId: table.ID, WaiterId: 1, Status: status, Total: 30.00}
	if status == constants.ORDER_CLOSED {
		order.AmountPaid = 30.00
	}
	require.NoError(t, db.Create(&order).Error)

	item := model.OrderItem{OrderId: order.ID, DishId: 1, Quantity: 1, Subtotal: 30.00}
	require.NoError(t, db.Create(&item).Error)

	if status == constants.ORDER_CLOSED {
		payment := model.Payment{
			OrderId: order.ID, Amount: 30.00, Method: constants.PAYMENT_CASH,
			RecordedById: 1, ReceiptCode: NewReceiptCode(),
		}
		require.NoError(t, db.Create(&payment).Error)
	}
	return table, order
}

func TestPurgeClosedOrdersLeavesOpenOrdersAlone(t *testing.T) {
	db := openTestDB(t)

	_, closedOrder := seedOrder(t, db, "Mesa 01", constants.ORDER_CLOSED)
	occupiedTable, openOrder := seedOrder(t, db, "Mesa 02", constants.ORDER_OPEN)

	deleted, err := PurgeClosedOrders(db, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	db.Model(&model.Order{}).Where("id = ?", closedOrder.ID).Count(&count)
	assert.Equal(t, int64(0), count, "closed order should be gone")
	db.Model(&model.OrderItem{}).Where("order_id = ?", closedOrder.ID).Count(&count)
	assert.Equal(t, int64(0), count, "closed order items should be gone")
	db.Model(&model.Payment{}).Where("order_id = ?", closedOrder.ID).Count(&count)
	assert.Equal(t, int64(0), count, "closed order payments should be gone")

	db.Model(&model.Order{}).Where("id = ?", openOrder.ID).Count(&count)
	assert.Equal(t, int64(1), count, "open order must survive")
	db.Model(&model.OrderItem{}).Where("order_id = ?", openOrder.ID).Count(&count)
	assert.Equal(t, int64(1), count, "open order items must survive")

	var table model.Table
	require.NoError(t, db.First(&table, occupiedTable.ID).Error)
	assert.Equal(t, constants.TABLE_OCCUPIED, table.Status, "occupied table must stay occupied")
}

func TestPurgeClosedOrdersRespectsCutoff(t *testing.T) {
	db := openTestDB(t)

	_, oldOrder := seedOrder(t, db, "Mesa 01", constants.ORDER_CLOSED)
	_, recentOrder := seedOrder(t, db, "Mesa 02", constants.ORDER_CLOSED)

	require.NoError(t, db.Model(&model.Order{}).Where("id = ?", oldOrder.ID).
		Update("created_at", time.Now().AddDate(0, 0, -120)).Error)

	cutoff := time.Now().AddDate(0, 0, -90)
	deleted, err := PurgeClosedOrders(db, &cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	db.Model(&model.Order{}).Where("id = ?", oldOrder.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Model(&model.Order{}).Where("id = ?", recentOrder.ID).Count(&count)
	assert.Equal(t, int64(1), count, "closed order inside the window must survive")
}

func TestPurgeClosedOrdersNothingToDo(t *testing.T) {
	db := openTestDB(t)

	seedOrder(t, db, "Mesa 01", constants.ORDER_OPEN)

	deleted, err := PurgeClosedOrders(db, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestRecordPaymentFreesTableOnClose(t *testing.T) {
	db := openTestDB(t)

	table := model.Table{Name: "Mesa 01", Status: constants.TABLE_OCCUPIED}
	require.NoError(t, db.Create(&table).Error)
	order := model.Order{TableId: table.ID, WaiterId: 1, Status: constants.ORDER_OPEN, Total: 22.00}
	require.NoError(t, db.Create(&order).Error)

	_, closed, err := RecordPayment(db, &order, 10.00, constants.PAYMENT_CASH, 1)
	require.NoError(t, err)
	assert.False(t, closed)

	require.NoError(t, db.First(&table, table.ID).Error)
	assert.Equal(t, constants.TABLE_OCCUPIED, table.Status, "table stays occupied while the order is open")

	_, closed, err = RecordPayment(db, &order, 12.00, constants.PAYMENT_PIX, 1)
	require.NoError(t, err)
	assert.True(t, closed)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, constants.ORDER_CLOSED, order.Status)
	assert.Equal(t, 22.00, order.AmountPaid)

	require.NoError(t, db.First(&table, table.ID).Error)
	assert.Equal(t, constants.TABLE_FREE, table.Status, "table frees the moment the order closes")

	// the ledger sums to the amount paid
	var paid float64
	db.Model(&model.Payment{}).Where("order_id = ?", order.ID).
		Select("COALESCE(SUM(amount), 0)").Scan(&paid)
	assert.Equal(t, 22.00, paid)
}

package helper

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewReceiptCode returns the unique code printed on payment receipts.
func NewReceiptCode() string {
	return uuid.NewString()
}

// SumSubtotals is the one definition of an order's total.
func SumSubtotals(items []model.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return utils.RoundMoney(total)
}

func RemainingBalance(order *model.Order) float64 {
	return utils.RoundMoney(order.Total - order.AmountPaid)
}

// CheckPayment validates a requested payment against the order state without
// touching it. Mirrors the rejection order of the payment endpoint: closed
// order first, then amount sanity, then overpayment.
func CheckPayment(order *model.Order, amount float64) error {
	if order.Status == constants.ORDER_CLOSED {
		return errors.New(constants.ORDER_ALREADY_CLOSED)
	}
	if amount <= 0 {
		return errors.New("payment amount must be greater than zero")
	}
	remaining := RemainingBalance(order)
	if amount > remaining {
		return fmt.Errorf("amount %.2f exceeds the remaining balance %.2f", amount, remaining)
	}
	return nil
}

// ApplyPayment adds the already-validated amount to the order. When the
// running sum first reaches the total the order closes: status, closing time,
// closing user and payment method are stamped in the same step. Returns
// whether this payment closed the order.
func ApplyPayment(order *model.Order, amount float64, method string, byId uint, now time.Time) bool {
	order.AmountPaid = utils.RoundMoney(order.AmountPaid + amount)
	order.PaymentMethod = method

	if order.AmountPaid >= order.Total {
		order.Status = constants.ORDER_CLOSED
		order.ClosedAt = &now
		order.ClosedById = &byId
		return true
	}
	return false
}

// CheckItemRemoval rejects removals that would drop the order total below
// the amount already paid, which would leave the ledger unable to close the
// order.
func CheckItemRemoval(order *model.Order, item *model.OrderItem) error {
	newTotal := utils.RoundMoney(order.Total - item.Subtotal)
	if newTotal < order.AmountPaid {
		return fmt.Errorf("removing this item would drop the total to %.2f, below the %.2f already paid", newTotal, order.AmountPaid)
	}
	return nil
}

// RecordPayment appends an already-validated payment to the order inside one
// transaction. When the payment closes the order the table is freed in the
// same transaction.
func RecordPayment(db *gorm.DB, order *model.Order, amount float64, method string, byId uint) (model.Payment, bool, error) {
	var payment model.Payment
	var closed bool
	err := db.Transaction(func(tx *gorm.DB) error {
		payment = model.Payment{
			OrderId:      order.ID,
			Amount:       utils.RoundMoney(amount),
			Method:       method,
			RecordedById: byId,
			ReceiptCode:  NewReceiptCode(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		closed = ApplyPayment(order, amount, method, byId, time.Now())
		if err := tx.Save(order).Error; err != nil {
			return err
		}

		if closed {
			return tx.Model(&model.Table{}).Where("id = ?", order.TableId).
				Update("status", constants.TABLE_FREE).Error
		}
		return nil
	})
	return payment, closed, err
}

// RecalcOrderTotal re-derives the stored total from the current items.
// Called after every item add/remove.
func RecalcOrderTotal(tx *gorm.DB, orderId uint) error {
	var items []model.OrderItem
	if err := tx.Where("order_id = ?", orderId).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&model.Order{}).Where("id = ?", orderId).
		Update("total", SumSubtotals(items)).Error
}

// HasOpenOrder reports whether the table already carries an open order.
func HasOpenOrder(tx *gorm.DB, tableId uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Order{}).
		Where("table_id = ? AND status = ?", tableId, constants.ORDER_OPEN).
		Count(&count).Error
	return count > 0, err
}

package handler

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOrders(c *fiber.Ctx) error {
	filterInput := new(model.FilterOrder)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	condition := db.Model(&model.Order{})
	if filterInput.Status != nil {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.TableId != nil {
		condition = condition.Where("table_id = ?", filterInput.TableId)
	}
	if filterInput.WaiterId != nil {
		condition = condition.Where("waiter_id = ?", filterInput.WaiterId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var orders model.Orders
	condition.Preload("Table").Preload("Waiter").
		Preload("Items").Preload("Items.Dish").
		Order("created_at DESC").Find(&orders)
	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	db := database.DB
	var order model.Order
	if err := db.Preload("Table").Preload("Waiter").Preload("ClosedBy").
		Preload("Items").Preload("Items.Dish").
		Preload("Payments").Preload("Payments.RecordedBy").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CreateOrder opens a tab on a free table. The occupied flip and the order
// insert happen in one transaction so the table board never sees half the
// change.
func CreateOrder(c *fiber.Ctx) error {
	dataInfo, _, _ := helper.GetInfoUserFromToken(c)
	if dataInfo.UserId == 0 {
		return nil
	}

	input, ok := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	db := database.DB

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var table model.Table
		if err := tx.First(&table, input.TableId).Error; err != nil {
			return err
		}

		hasOpen, err := helper.HasOpenOrder(tx, table.ID)
		if err != nil {
			return err
		}
		if hasOpen {
			return errors.New(constants.TABLE_ALREADY_OCCUPIED)
		}

		if err := tx.Model(&table).Update("status", constants.TABLE_OCCUPIED).Error; err != nil {
			return err
		}

		order = model.Order{
			TableId:    table.ID,
			WaiterId:   dataInfo.UserId,
			Status:     constants.ORDER_OPEN,
			Total:      0,
			AmountPaid: 0,
		}
		return tx.Create(&order).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Table not found", err)
		}
		if err.Error() == constants.TABLE_ALREADY_OCCUPIED {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TABLE_ALREADY_OCCUPIED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Table").Preload("Waiter").First(&order, order.ID)

	PublishTableBoard()
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// AddOrderItem prices the line at insertion time and re-derives the stored
// total from the items.
func AddOrderItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAddOrderItem").(model.AddOrderItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}
	orderId, ok := c.Locals("inputOrderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	db := database.DB

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if order.Status == constants.ORDER_CLOSED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ALREADY_CLOSED, errors.New("order closed"))
	}

	var dish model.Dish
	if err := db.First(&dish, input.DishId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Dish not found", err)
	}
	if !dish.Active {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Dish is not available for ordering", errors.New("dish inactive"))
	}

	item := model.OrderItem{
		OrderId:  order.ID,
		DishId:   dish.ID,
		Quantity: input.Quantity,
		Note:     input.Note,
		Subtotal: utils.RoundMoney(dish.Price * float64(input.Quantity)),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return helper.RecalcOrderTotal(tx, order.ID)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Dish").First(&item, item.ID)

	PublishTableBoard()
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func RemoveOrderItem(c *fiber.Ctx) error {
	orderIdParam, err := c.ParamsInt("orderId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}
	itemIdParam, err := c.ParamsInt("itemId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	db := database.DB

	var order model.Order
	if err := db.First(&order, orderIdParam).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if order.Status == constants.ORDER_CLOSED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ALREADY_CLOSED, errors.New("order closed"))
	}

	var item model.OrderItem
	if err := db.Where("id = ? AND order_id = ?", itemIdParam, order.ID).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order item not found", err)
	}

	if err := helper.CheckItemRemoval(&order, &item); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return helper.RecalcOrderTotal(tx, order.ID)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishTableBoard()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": item.ID})
}

// CloseOrder is the legacy direct-close path: status straight to closed with
// a payment method, no incremental payments. A balancing payment is recorded
// for the outstanding amount so the ledger still sums to amountPaid.
func CloseOrder(c *fiber.Ctx) error {
	dataInfo, _, _ := helper.GetInfoUserFromToken(c)
	if dataInfo.UserId == 0 {
		return nil
	}

	input, ok := c.Locals("inputCloseOrder").(model.CloseOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}
	orderId, ok := c.Locals("inputOrderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	db := database.DB

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if order.Status == constants.ORDER_CLOSED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ALREADY_CLOSED, errors.New("order closed"))
	}

	remaining := helper.RemainingBalance(&order)

	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		if remaining > 0 {
			payment := model.Payment{
				OrderId:      order.ID,
				Amount:       remaining,
				Method:       input.PaymentMethod,
				RecordedById: dataInfo.UserId,
				ReceiptCode:  helper.NewReceiptCode(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}

		order.AmountPaid = order.Total
		order.Status = constants.ORDER_CLOSED
		order.PaymentMethod = input.PaymentMethod
		order.ClosedAt = &now
		order.ClosedById = &dataInfo.UserId
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		return tx.Model(&model.Table{}).Where("id = ?", order.TableId).
			Update("status", constants.TABLE_FREE).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Table").Preload("Waiter").Preload("ClosedBy").Preload("Payments").First(&order, order.ID)

	PublishTableBoard()
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrderReceipt renders a plain-text receipt for a closed order.
func GetOrderReceipt(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	db := database.DB
	var order model.Order
	if err := db.Preload("Table").Preload("Items").Preload("Items.Dish").
		Preload("Payments").First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	receipt := fmt.Sprintf("Order #%d", order.ID)
	if order.Table != nil {
		receipt += " - " + order.Table.Name
	}
	receipt += "\n"
	for _, item := range order.Items {
		name := ""
		if item.Dish != nil {
			name = item.Dish.Name
		}
		receipt += fmt.Sprintf("%dx %s  R$ %.2f\n", item.Quantity, name, item.Subtotal)
	}
	receipt += fmt.Sprintf("Total: R$ %.2f\nPaid:  R$ %.2f\n", order.Total, order.AmountPaid)

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(receipt)
}

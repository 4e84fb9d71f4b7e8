package handler

import (
	"errors"
	"fmt"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPayments(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse orderId fail"))
	}

	db := database.DB

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var payments []model.Payment
	db.Where("order_id = ?", order.ID).Preload("RecordedBy").
		Order("created_at ASC").Find(&payments)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"payments":   payments,
		"amountPaid": order.AmountPaid,
		"remaining":  helper.RemainingBalance(&order),
	})
}

// CreatePayment records a partial payment. When the running sum reaches the
// order total the order closes and the table frees, all in one transaction.
func CreatePayment(c *fiber.Ctx) error {
	dataInfo, _, _ := helper.GetInfoUserFromToken(c)
	if dataInfo.UserId == 0 {
		return nil
	}

	input, ok := c.Locals("inputCreatePayment").(model.CreatePaymentInput)
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

	if err := helper.CheckPayment(&order, input.Amount); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	payment, closed, err := helper.RecordPayment(db, &order, input.Amount, input.Method, dataInfo.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if closed {
		PublishTableBoard()
	}

	db.Preload("RecordedBy").First(&payment, payment.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"payment":    payment,
		"order":      order,
		"amountPaid": order.AmountPaid,
		"remaining":  helper.RemainingBalance(&order),
	})
}

// GeneratePixQR returns a PNG QR code encoding a PIX charge for the given
// amount against the order.
func GeneratePixQR(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPixQR").(model.PixQRInput)
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

	if err := helper.CheckPayment(&order, input.Amount); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	pixKey := config.Config("PIX_KEY")
	content := fmt.Sprintf("PIX|key=%s|order=%d|amount=%.2f", pixKey, order.ID, input.Amount)

	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

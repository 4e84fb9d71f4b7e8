package handler

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Cleanup bulk-deletes order data. "closed" removes every closed order,
// "old" only closed orders past the retention window, "all" wipes the order
// history and resets every table to free.
func Cleanup(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("role invalid"))
	}

	cleanupType, ok := c.Locals("inputCleanupType").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse input fail"))
	}

	db := database.DB

	var deleted int64
	var err error

	switch cleanupType {
	case "closed":
		deleted, err = helper.PurgeClosedOrders(db, nil)
	case "old":
		cutoff := time.Now().AddDate(0, 0, -helper.RetentionDays())
		deleted, err = helper.PurgeClosedOrders(db, &cutoff)
	case "all":
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&model.Payment{}).Error; err != nil {
				return err
			}
			result := tx.Where("1 = 1").Delete(&model.Order{})
			if result.Error != nil {
				return result.Error
			}
			deleted = result.RowsAffected
			return tx.Model(&model.Table{}).Where("1 = 1").
				Update("status", constants.TABLE_FREE).Error
		})
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if cleanupType == "all" {
		PublishTableBoard()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"type":    cleanupType,
		"deleted": deleted,
	})
}

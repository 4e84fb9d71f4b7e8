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
)

// reportPeriod reads the from/to query range, defaulting to the last 7 days.
// Returned bounds cover whole days.
func reportPeriod(c *fiber.Ctx) (time.Time, time.Time) {
	fromStr := c.Query("from", time.Now().AddDate(0, 0, -7).Format("2006-01-02"))
	toStr := c.Query("to", time.Now().Format("2006-01-02"))

	from, _ := time.Parse("2006-01-02", fromStr)
	to, _ := time.Parse("2006-01-02", toStr)
	to = to.Add(24*time.Hour - time.Second)
	return from, to
}

func reportOrders(from, to time.Time) (model.Orders, error) {
	var orders model.Orders
	err := database.DB.Where("created_at BETWEEN ? AND ?", from, to).
		Preload("Table").Preload("Waiter").
		Preload("Items").Preload("Items.Dish").
		Order("created_at ASC").Find(&orders).Error
	return orders, err
}

func SalesReport(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	from, to := reportPeriod(c)
	orders, err := reportOrders(from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"summary": utils.BuildReportSummary(orders),
		"dishes":  utils.BuildDishSales(orders),
		"waiters": utils.BuildWaiterSales(orders),
		"tables":  utils.BuildTableSales(orders),
		"period": fiber.Map{
			"from": from.Format("2006-01-02"),
			"to":   to.Format("2006-01-02"),
		},
	})
}

// ExportReportCSV streams one of the four CSV exports: sales (default),
// dishes, waiters or tables.
func ExportReportCSV(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	reportType := c.Query("type", "sales")
	from, to := reportPeriod(c)
	orders, err := reportOrders(from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var data []byte
	switch reportType {
	case "dishes":
		data, err = utils.DishesCSV(orders)
	case "waiters":
		data, err = utils.WaitersCSV(orders)
	case "tables":
		data, err = utils.TablesCSV(orders)
	default:
		reportType = "sales"
		data, err = utils.SalesCSV(orders)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filename := fmt.Sprintf("report-%s-%s.csv", reportType, time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func ExportReportPDF(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	reportType := c.Query("type", "sales")
	from, to := reportPeriod(c)
	orders, err := reportOrders(from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	data, err := utils.BuildReportPDF(reportType, &from, &to, orders)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filename := fmt.Sprintf("report-%s-%s.pdf", reportType, time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

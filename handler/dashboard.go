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
)

func GetAdminDashboard(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type Stats struct {
		OpenOrders     int64   `json:"openOrders"`
		OccupiedTables int64   `json:"occupiedTables"`
		FreeTables     int64   `json:"freeTables"`
		ActiveWaiters  int64   `json:"activeWaiters"`
		ActiveDishes   int64   `json:"activeDishes"`
		TodaySales     float64 `json:"todaySales"`
		TodayOrders    int64   `json:"todayOrders"`
		MonthSales     float64 `json:"monthSales"`
		SalesGrowth    float64 `json:"salesGrowth"` // %
		OrdersGrowth   float64 `json:"ordersGrowth"`
	}

	var stats Stats

	now := time.Now().In(time.Local)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	db.Model(&model.Order{}).Where("status = ?", constants.ORDER_OPEN).Count(&stats.OpenOrders)
	db.Model(&model.Table{}).Where("status = ?", constants.TABLE_OCCUPIED).Count(&stats.OccupiedTables)
	db.Model(&model.Table{}).Where("status = ?", constants.TABLE_FREE).Count(&stats.FreeTables)
	db.Model(&model.User{}).Where("role = ? AND active = ?", constants.ROLE_WAITER, true).Count(&stats.ActiveWaiters)
	db.Model(&model.Dish{}).Where("active = ?", true).Count(&stats.ActiveDishes)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE status = 'closed'
          AND closed_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodaySales)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = 'closed'
          AND closed_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayOrders)

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE status = 'closed'
          AND closed_at >= ?
    `, monthStart).Scan(&stats.MonthSales)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdaySales float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE status = 'closed'
          AND closed_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdaySales)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE status = 'closed'
          AND closed_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayOrders)

	stats.SalesGrowth = utils.CalculateGrowth(stats.TodaySales, yesterdaySales)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	// Top dishes today by quantity sold
	type TopDish struct {
		DishId   uint    `json:"dishId"`
		Name     string  `json:"name"`
		Quantity int64   `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}
	var topDishes []TopDish
	db.Raw(`
        SELECT
            d.id AS dish_id,
            d.name,
            COALESCE(SUM(i.quantity), 0) AS quantity,
            COALESCE(SUM(i.subtotal), 0) AS revenue
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        JOIN dishes d ON d.id = i.dish_id
        WHERE o.status = 'closed'
          AND o.closed_at BETWEEN ? AND ?
        GROUP BY d.id, d.name
        ORDER BY quantity DESC
        LIMIT 5
    `, todayStart, todayEnd).Scan(&topDishes)

	// Top waiters today by sales
	type TopWaiter struct {
		WaiterId uint    `json:"waiterId"`
		Name     string  `json:"name"`
		Orders   int64   `json:"orders"`
		Sales    float64 `json:"sales"`
	}
	var topWaiters []TopWaiter
	db.Raw(`
        SELECT
            u.id AS waiter_id,
            u.name,
            COUNT(o.id) AS orders,
            COALESCE(SUM(o.total), 0) AS sales
        FROM orders o
        JOIN users u ON u.id = o.waiter_id
        WHERE o.status = 'closed'
          AND o.closed_at BETWEEN ? AND ?
        GROUP BY u.id, u.name
        ORDER BY sales DESC
        LIMIT 5
    `, todayStart, todayEnd).Scan(&topWaiters)

	// Last 7 days sales series
	type DaySales struct {
		Day    string  `json:"day"`
		Orders int64   `json:"orders"`
		Sales  float64 `json:"sales"`
	}
	var series []DaySales
	db.Raw(`
        SELECT
            TO_CHAR(DATE(closed_at), 'YYYY-MM-DD') AS day,
            COUNT(*) AS orders,
            COALESCE(SUM(total), 0) AS sales
        FROM orders
        WHERE status = 'closed'
          AND closed_at >= ?
        GROUP BY DATE(closed_at)
        ORDER BY day ASC
    `, todayStart.AddDate(0, 0, -6)).Scan(&series)

	var recentOrders model.Orders
	db.Preload("Table").Preload("Waiter").
		Order("created_at DESC").Limit(10).Find(&recentOrders)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats":        stats,
		"topDishes":    topDishes,
		"topWaiters":   topWaiters,
		"salesByDay":   series,
		"recentOrders": recentOrders,
	})
}

// GetWaiterDashboard shows a waiter their own open orders and today's
// closed sales.
func GetWaiterDashboard(c *fiber.Ctx) error {
	dataInfo, _, _ := helper.GetInfoUserFromToken(c)
	if dataInfo.UserId == 0 {
		return nil
	}

	db := database.DB

	now := time.Now().In(time.Local)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	var openOrders model.Orders
	db.Where("waiter_id = ? AND status = ?", dataInfo.UserId, constants.ORDER_OPEN).
		Preload("Table").Preload("Items").Preload("Items.Dish").
		Order("created_at ASC").Find(&openOrders)

	var todayClosed int64
	var todaySales float64
	db.Model(&model.Order{}).
		Where("waiter_id = ? AND status = ? AND closed_at BETWEEN ? AND ?",
			dataInfo.UserId, constants.ORDER_CLOSED, todayStart, todayEnd).
		Count(&todayClosed)
	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE waiter_id = ?
          AND status = 'closed'
          AND closed_at BETWEEN ? AND ?
    `, dataInfo.UserId, todayStart, todayEnd).Scan(&todaySales)

	var freeTables model.Tables
	db.Where("status = ?", constants.TABLE_FREE).Order("name ASC").Find(&freeTables)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"openOrders":  openOrders,
		"todayClosed": todayClosed,
		"todaySales":  todaySales,
		"freeTables":  freeTables,
	})
}

// GetWaiterSales lists a waiter's own closed orders over a date range,
// defaulting to the last 7 days.
func GetWaiterSales(c *fiber.Ctx) error {
	dataInfo, _, _ := helper.GetInfoUserFromToken(c)
	if dataInfo.UserId == 0 {
		return nil
	}

	fromStr := c.Query("from", time.Now().AddDate(0, 0, -7).Format("2006-01-02"))
	toStr := c.Query("to", time.Now().Format("2006-01-02"))

	from, _ := time.Parse("2006-01-02", fromStr)
	to, _ := time.Parse("2006-01-02", toStr)
	to = to.Add(24*time.Hour - time.Second)

	db := database.DB

	var orders model.Orders
	db.Where("waiter_id = ? AND status = ? AND closed_at BETWEEN ? AND ?",
		dataInfo.UserId, constants.ORDER_CLOSED, from, to).
		Preload("Table").Preload("Items").Preload("Items.Dish").
		Order("closed_at DESC").Find(&orders)

	var totalSales float64
	var itemsSold int
	for _, o := range orders {
		totalSales += o.Total
		for _, item := range o.Items {
			itemsSold += item.Quantity
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orders":     orders,
		"orderCount": len(orders),
		"totalSales": utils.RoundMoney(totalSales),
		"itemsSold":  itemsSold,
		"period": fiber.Map{
			"from": from.Format("2006-01-02"),
			"to":   to.Format("2006-01-02"),
		},
	})
}

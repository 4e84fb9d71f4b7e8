package helper

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var summaryScheduler gocron.Scheduler

// SendDailySalesSummary aggregates today's orders and mails the summary to
// every active admin.
func SendDailySalesSummary() {
	db := database.DB
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var orders []model.Order
	if err := db.Preload("Items").Preload("Items.Dish").Preload("Waiter").
		Where("created_at >= ?", dayStart).Find(&orders).Error; err != nil {
		log.Printf("daily summary query failed: %v", err)
		return
	}

	summary := utils.BuildReportSummary(orders)
	data := utils.DailySummaryData{
		Date:          now,
		TotalSales:    summary.TotalSales,
		OrderCount:    summary.TotalOrders,
		ClosedOrders:  summary.ClosedOrders,
		AverageTicket: summary.AverageTicket,
	}
	if dishes := utils.BuildDishSales(orders); len(dishes) > 0 {
		data.TopDish = dishes[0].DishName
	}
	if waiters := utils.BuildWaiterSales(orders); len(waiters) > 0 {
		data.TopWaiter = waiters[0].WaiterName
	}

	var admins []model.User
	if err := db.Where("role = ? AND active = ?", constants.ROLE_ADMIN, true).Find(&admins).Error; err != nil {
		log.Printf("daily summary admin lookup failed: %v", err)
		return
	}
	recipients := make([]string, 0, len(admins))
	for _, admin := range admins {
		recipients = append(recipients, admin.Email)
	}

	utils.SendDailySummaryEmail(recipients, data)
}

func StartSummaryScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("failed to create summary scheduler: %v", err)
		return
	}

	summaryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(SendDailySalesSummary),
	)
	if err != nil {
		log.Printf("failed to schedule daily summary: %v", err)
		return
	}

	s.Start()
	log.Println("daily summary scheduler started (23:55)")
}

func StopSummaryScheduler() {
	if summaryScheduler != nil {
		summaryScheduler.Shutdown()
	}
}

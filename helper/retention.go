package helper

import (
	"log"
	"strconv"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var retentionScheduler *cron.Cron

// RetentionDays reads the closed-order retention window, default 90 days.
func RetentionDays() int {
	days, err := strconv.Atoi(config.ConfigOr("RETENTION_DAYS", "90"))
	if err != nil || days <= 0 {
		return 90
	}
	return days
}

// PurgeClosedOrders removes closed orders together with their items and
// payments. A nil cutoff removes every closed order; otherwise only orders
// created before the cutoff go. Returns the number of orders removed.
func PurgeClosedOrders(db *gorm.DB, before *time.Time) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.Order{}).Where("status = ?", constants.ORDER_CLOSED)
		if before != nil {
			query = query.Where("created_at < ?", *before)
		}

		var ids []uint
		if err := query.Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		// items and payments first, orders last
		if err := tx.Where("order_id IN ?", ids).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id IN ?", ids).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&model.Order{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

func purgeOldClosedOrders() {
	cutoff := time.Now().AddDate(0, 0, -RetentionDays())
	deleted, err := PurgeClosedOrders(database.DB, &cutoff)
	if err != nil {
		log.Printf("retention purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("retention purge removed %d closed orders older than %s", deleted, cutoff.Format("2006-01-02"))
	}
}

func StartRetentionScheduler() {
	retentionScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := retentionScheduler.AddFunc("0 4 * * *", purgeOldClosedOrders)
	if err != nil {
		log.Printf("failed to start retention scheduler: %v", err)
		return
	}

	retentionScheduler.Start()
	log.Println("retention scheduler started (daily 04:00)")
}

func StopRetentionScheduler() {
	if retentionScheduler != nil {
		retentionScheduler.Stop()
		log.Println("retention scheduler stopped")
	}
}

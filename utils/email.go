package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// DailySummaryData feeds the end-of-day mail to admins.
type DailySummaryData struct {
	Date          time.Time
	TotalSales    float64
	OrderCount    int64
	ClosedOrders  int64
	AverageTicket float64
	TopDish       string
	TopWaiter     string
}

// SendDailySummaryEmail sends the sales summary to every recipient. Skips
// silently when SMTP is not configured.
func SendDailySummaryEmail(recipients []string, data DailySummaryData) {
	host := os.Getenv("SMTP_HOST")
	if host == "" || len(recipients) == 0 {
		return
	}

	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>Daily sales summary %s</h2>", data.Date.Format("2006-01-02"))
	fmt.Fprintf(&body, "<p>Total sales: R$ %.2f</p>", data.TotalSales)
	fmt.Fprintf(&body, "<p>Orders: %d (closed: %d)</p>", data.OrderCount, data.ClosedOrders)
	fmt.Fprintf(&body, "<p>Average ticket: R$ %.2f</p>", data.AverageTicket)
	if data.TopDish != "" {
		fmt.Fprintf(&body, "<p>Top dish: %s</p>", data.TopDish)
	}
	if data.TopWaiter != "" {
		fmt.Fprintf(&body, "<p>Top waiter: %s</p>", data.TopWaiter)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", "Sales summary "+data.Date.Format("2006-01-02"))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send daily summary email: %v", err)
	}
}

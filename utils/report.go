package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/jung-kurt/gofpdf"
)

// OrderTotal sums the item subtotals of one order.
func OrderTotal(o model.Order) float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal
	}
	return RoundMoney(total)
}

func BuildReportSummary(orders []model.Order) model.ReportSummary {
	var summary model.ReportSummary
	summary.TotalOrders = int64(len(orders))
	for _, o := range orders {
		summary.TotalSales += OrderTotal(o)
		if o.Status == constants.ORDER_CLOSED {
			summary.ClosedOrders++
		} else {
			summary.OpenOrders++
		}
	}
	summary.TotalSales = RoundMoney(summary.TotalSales)
	if summary.ClosedOrders > 0 {
		summary.AverageTicket = RoundMoney(summary.TotalSales / float64(summary.ClosedOrders))
	}
	return summary
}

func BuildDishSales(orders []model.Order) []model.DishSalesRow {
	byDish := make(map[uint]*model.DishSalesRow)
	for _, o := range orders {
		for _, item := range o.Items {
			name := ""
			if item.Dish != nil {
				name = item.Dish.Name
			}
			row, ok := byDish[item.DishId]
			if !ok {
				row = &model.DishSalesRow{DishName: name}
				byDish[item.DishId] = row
			}
			row.QuantitySold += item.Quantity
			row.Total += item.Subtotal
		}
	}

	rows := make([]model.DishSalesRow, 0, len(byDish))
	for _, row := range byDish {
		row.Total = RoundMoney(row.Total)
		if row.QuantitySold > 0 {
			row.AveragePrice = RoundMoney(row.Total / float64(row.QuantitySold))
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].QuantitySold > rows[j].QuantitySold })
	return rows
}

func BuildWaiterSales(orders []model.Order) []model.WaiterSalesRow {
	byWaiter := make(map[uint]*model.WaiterSalesRow)
	for _, o := range orders {
		name := ""
		if o.Waiter != nil {
			name = o.Waiter.Name
		}
		row, ok := byWaiter[o.WaiterId]
		if !ok {
			row = &model.WaiterSalesRow{WaiterName: name}
			byWaiter[o.WaiterId] = row
		}
		row.OrderCount++
		row.Total += OrderTotal(o)
	}

	rows := make([]model.WaiterSalesRow, 0, len(byWaiter))
	for _, row := range byWaiter {
		row.Total = RoundMoney(row.Total)
		if row.OrderCount > 0 {
			row.AverageTicket = RoundMoney(row.Total / float64(row.OrderCount))
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

func BuildTableSales(orders []model.Order) []model.TableSalesRow {
	byTable := make(map[uint]*model.TableSalesRow)
	for _, o := range orders {
		name, status := "", ""
		if o.Table != nil {
			name = o.Table.Name
			status = o.Table.Status
		}
		row, ok := byTable[o.TableId]
		if !ok {
			row = &model.TableSalesRow{TableName: name, Status: status}
			byTable[o.TableId] = row
		}
		row.OrderCount++
		row.Total += OrderTotal(o)
	}

	rows := make([]model.TableSalesRow, 0, len(byTable))
	for _, row := range byTable {
		row.Total = RoundMoney(row.Total)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// SalesCSV writes one line per order, matching the export columns of the
// back-office screens.
func SalesCSV(orders []model.Order) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	w.Write([]string{"Order ID", "Table", "Waiter", "Status", "Total (R$)", "Payment Method", "Opened At", "Closed At"})
	for _, o := range orders {
		table, waiter := "", ""
		if o.Table != nil {
			table = o.Table.Name
		}
		if o.Waiter != nil {
			waiter = o.Waiter.Name
		}
		method := o.PaymentMethod
		if method == "" {
			method = "N/A"
		}
		closedAt := "N/A"
		if o.ClosedAt != nil {
			closedAt = o.ClosedAt.Format("2006-01-02 15:04:05")
		}
		w.Write([]string{
			strconv.FormatUint(uint64(o.ID), 10),
			table,
			waiter,
			o.Status,
			fmt.Sprintf("%.2f", OrderTotal(o)),
			method,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			closedAt,
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func DishesCSV(orders []model.Order) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	w.Write([]string{"Dish", "Quantity Sold", "Total (R$)", "Average Price (R$)"})
	for _, row := range BuildDishSales(orders) {
		w.Write([]string{
			row.DishName,
			strconv.Itoa(row.QuantitySold),
			fmt.Sprintf("%.2f", row.Total),
			fmt.Sprintf("%.2f", row.AveragePrice),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func WaitersCSV(orders []model.Order) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	w.Write([]string{"Waiter", "Order Count", "Total Sales (R$)", "Average Ticket (R$)"})
	for _, row := range BuildWaiterSales(orders) {
		w.Write([]string{
			row.WaiterName,
			strconv.Itoa(row.OrderCount),
			fmt.Sprintf("%.2f", row.Total),
			fmt.Sprintf("%.2f", row.AverageTicket),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func TablesCSV(orders []model.Order) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	w.Write([]string{"Table", "Order Count", "Total (R$)", "Current Status"})
	for _, row := range BuildTableSales(orders) {
		w.Write([]string{
			row.TableName,
			strconv.Itoa(row.OrderCount),
			fmt.Sprintf("%.2f", row.Total),
			row.Status,
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// maximum orders detailed in the sales PDF so the file stays printable
const pdfMaxOrders = 50

// BuildReportPDF renders the management report for the given type
// (sales, dishes, waiters or tables).
func BuildReportPDF(reportType string, from, to *time.Time, orders []model.Order) ([]byte, error) {
	summary := BuildReportSummary(orders)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Panelada da Ana", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Management Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	period := "All time"
	if from != nil && to != nil {
		period = fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Report type: "+reportType, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Period: "+period, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total orders: %d", summary.TotalOrders), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Closed orders: %d", summary.ClosedOrders), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Open orders: %d", summary.OpenOrders), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total sales: R$ %.2f", summary.TotalSales), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Average ticket: R$ %.2f", summary.AverageTicket), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	switch reportType {
	case "dishes":
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Top Dishes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range BuildDishSales(orders) {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %d sold - R$ %.2f", row.DishName, row.QuantitySold, row.Total), "", 1, "L", false, 0, "")
		}
	case "waiters":
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Waiter Performance", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range BuildWaiterSales(orders) {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %d orders - R$ %.2f (avg R$ %.2f)", row.WaiterName, row.OrderCount, row.Total, row.AverageTicket), "", 1, "L", false, 0, "")
		}
	case "tables":
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Table Usage", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range BuildTableSales(orders) {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s - %d orders - R$ %.2f - %s", row.TableName, row.OrderCount, row.Total, row.Status), "", 1, "L", false, 0, "")
		}
	default:
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Order Detail", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		limit := len(orders)
		if limit > pdfMaxOrders {
			limit = pdfMaxOrders
		}
		for _, o := range orders[:limit] {
			table := ""
			if o.Table != nil {
				table = o.Table.Name
			}
			pdf.CellFormat(0, 6, fmt.Sprintf("Order #%d - %s - %s - R$ %.2f", o.ID, table, o.Status, OrderTotal(o)), "", 1, "L", false, 0, "")
		}
	}

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

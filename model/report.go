package model

// Aggregated report rows. Built by the report helpers in utils and shared by
// the JSON, CSV and PDF outputs.

type ReportSummary struct {
	TotalOrders   int64   `json:"totalOrders"`
	OpenOrders    int64   `json:"openOrders"`
	ClosedOrders  int64   `json:"closedOrders"`
	TotalSales    float64 `json:"totalSales"`
	AverageTicket float64 `json:"averageTicket"`
}

type DishSalesRow struct {
	DishName     string  `json:"dishName"`
	QuantitySold int     `json:"quantitySold"`
	Total        float64 `json:"total"`
	AveragePrice float64 `json:"averagePrice"`
}

type WaiterSalesRow struct {
	WaiterName    string  `json:"waiterName"`
	OrderCount    int     `json:"orderCount"`
	Total         float64 `json:"total"`
	AverageTicket float64 `json:"averageTicket"`
}

type TableSalesRow struct {
	TableName  string  `json:"tableName"`
	OrderCount int     `json:"orderCount"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
}

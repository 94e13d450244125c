package response

// DashboardStats holds the headline numbers for the dashboard page
type DashboardStats struct {
	TotalJamaah      int64   `json:"total_jamaah"`
	SaldoKas         float64 `json:"saldo_kas"`
	TotalPemasukan   float64 `json:"total_pemasukan"`
	TotalPengeluaran float64 `json:"total_pengeluaran"`
}

// ChartData is a single month bucket of the kas flow chart
type ChartData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardResponse combines stats and the monthly chart series
type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
	Chart []ChartData    `json:"chart"`
}

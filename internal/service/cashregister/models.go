package cashregister

// Totals суммы за период с разбивкой по способу оплаты
// Unspecified - оплаченные записи без указанного способа, входят в Total
type Totals struct {
	Total       float64 `json:"total"`
	Cash        float64 `json:"cash"`
	Card        float64 `json:"card"`
	Bizum       float64 `json:"bizum"`
	Unspecified float64 `json:"unspecified"`
	Count       int     `json:"count"`
}

// Report отчёт кассы за день и за его месяц
type Report struct {
	Date        string `json:"date"`  // "2026-10-15"
	Month       string `json:"month"` // "2026-10"
	DayTotals   Totals `json:"day"`
	MonthTotals Totals `json:"monthTotals"`
}

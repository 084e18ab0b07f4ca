package cashregister

import (
	"math"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Summarize считает кассу за день и за месяц этого дня
// Учитываются только оплаченные неотменённые записи, день определяется в часовом поясе day
func Summarize(appointments []*domain.Appointment, day time.Time) Report {
	loc := day.Location()
	report := Report{
		Date:  day.Format(domain.DateFormat),
		Month: day.Format(domain.MonthFormat),
	}

	for _, a := range appointments {
		if a == nil || !a.Paid || a.IsCancelled() {
			continue
		}
		start := a.StartTime.In(loc)
		if start.Year() != day.Year() || start.Month() != day.Month() {
			continue
		}

		report.MonthTotals.add(a)
		if domain.SameDay(start, day, loc) {
			report.DayTotals.add(a)
		}
	}

	report.DayTotals.round()
	report.MonthTotals.round()
	return report
}

func (t *Totals) add(a *domain.Appointment) {
	amount := a.RevenueAmount()
	t.Total += amount
	t.Count++

	if a.PaymentMethod == nil {
		t.Unspecified += amount
		return
	}
	switch *a.PaymentMethod {
	case domain.PaymentCash:
		t.Cash += amount
	case domain.PaymentCard:
		t.Card += amount
	case domain.PaymentBizum:
		t.Bizum += amount
	default:
		t.Unspecified += amount
	}
}

// round округляет суммы до центов
func (t *Totals) round() {
	for _, v := range []*float64{&t.Total, &t.Cash, &t.Card, &t.Bizum, &t.Unspecified} {
		*v = math.Round(*v*100) / 100
	}
}

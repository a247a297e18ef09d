package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/transport-ledger/backend/internal/domain/entity"
)

// InstallmentActiveIn reports whether a loan installment is active in the
// forecast month represented by its first day: the month start must fall
// within [StartDate, EndDate] inclusive.
func InstallmentActiveIn(month time.Time, installment *entity.VehicleInstallment) bool {
	m := MonthStart(month)
	return !m.Before(installment.StartDate) && !m.After(installment.EndDate)
}

// ParkingActiveIn reports whether a parking arrangement is active in the given
// month. Open-ended arrangements (nil EndDate) stay active indefinitely.
func ParkingActiveIn(month time.Time, parking *entity.VehicleParking) bool {
	m := MonthStart(month)
	if m.Before(parking.StartDate) {
		return false
	}
	return parking.EndDate == nil || !m.After(*parking.EndDate)
}

// InsuranceActiveIn reports whether an insurance policy is active in the given
// month.
func InsuranceActiveIn(month time.Time, insurance *entity.VehicleInsurance) bool {
	m := MonthStart(month)
	return !m.Before(insurance.StartDate) && !m.After(insurance.EndDate)
}

// InsuranceMonthlyShare returns the policy's contribution to a single active
// month: the term premium spread evenly across the calendar months the term
// spans. The term is derived from the policy's own start and end dates, never
// from the reporting window.
func InsuranceMonthlyShare(insurance *entity.VehicleInsurance) decimal.Decimal {
	months := MonthsSpanned(insurance.StartDate, insurance.EndDate)
	if months <= 0 {
		return decimal.Zero
	}
	return insurance.Premium.Div(decimal.NewFromInt(int64(months)))
}

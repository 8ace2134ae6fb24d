package attendance

import (
	"math"

	"github.com/distripanel/panel-backend/internal/domain/attendance"
	"github.com/distripanel/panel-backend/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// AggregatePayroll turns a classified period into the pay summary. The net
// payable is not floored: a debt larger than earnings yields a negative net.
func AggregatePayroll(report attendance.PeriodReport, rate decimal.Decimal, bonus payroll.BonusSettings, adj payroll.ManualAdjustments) payroll.PayrollSummary {
	roundedHours := roundHalfUp(report.Totals.WorkedHours)
	subtotal := rate.Mul(decimal.NewFromInt(int64(roundedHours)))

	tier := bonusTier(report)
	bonusAmount := decimal.Zero
	switch tier {
	case payroll.BonusTierExcellence:
		bonusAmount = bonus.Bonus1
	case payroll.BonusTierCompliance:
		bonusAmount = bonus.Bonus2
	}

	extraHoursAmount := adj.ExtraHours.Mul(rate)
	additions := extraHoursAmount.Add(adj.ManualExtra)
	net := subtotal.Add(bonusAmount).Add(additions).Sub(adj.Debt)

	return payroll.PayrollSummary{
		TotalHours:        roundedHours,
		TotalPenaltyHours: report.Totals.PenaltyHours,
		LateCount:         report.Totals.LateCount,
		HourlyRate:        rate,
		Subtotal:          subtotal,
		BonusTier:         tier,
		Bonus:             bonusAmount,
		ExtraHours:        adj.ExtraHours,
		ExtraHoursAmount:  extraHoursAmount,
		ManualExtra:       adj.ManualExtra,
		Additions:         additions,
		Debt:              adj.Debt,
		NetPayable:        net,
	}
}

// bonusTier applies the eligibility rules. Any unjustified lateness beyond
// tolerance, absence or incomplete record forfeits the bonus. Excellence
// needs every worked day to start early and nothing justified in the period;
// a period without worked days satisfies it trivially.
func bonusTier(report attendance.PeriodReport) payroll.BonusTier {
	allEarly := true
	justifiedAbsence := false
	justifiedLate := false

	for _, day := range report.Days {
		if !day.IsJustified {
			if day.MinutesLate > toleranceMinutes ||
				day.Status == attendance.StatusAbsence ||
				day.Status == attendance.StatusIncomplete {
				return payroll.BonusTierNone
			}
		}

		if day.Worked() && !day.IsEarly {
			allEarly = false
		}
		if day.Status == attendance.StatusJustifiedAbsence {
			justifiedAbsence = true
		}
		if day.IsJustified && day.IsLate {
			justifiedLate = true
		}
	}

	if allEarly && !justifiedAbsence && !justifiedLate {
		return payroll.BonusTierExcellence
	}
	return payroll.BonusTierCompliance
}

// roundHalfUp rounds halves towards positive infinity, so -0.5 becomes 0.
func roundHalfUp(hours float64) int {
	return int(math.Floor(hours + 0.5))
}

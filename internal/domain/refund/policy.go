package refund

import (
	"time"

	"service-marketplace/internal/domain/money"
)

const (
	FullRefundWindow = 24 * time.Hour

	fullRefundPercent    = 100
	partialRefundPercent = 50

	AutoApprovalNote = "auto-approved: within 24h"
)

type Decision struct {
	Amount money.Money
	Status Status
	// AutoFinalize means the refund is paid out immediately without admin review.
	AutoFinalize bool
}

// Decide applies the cancellation policy. hoursUntil is truncated toward zero,
// so 23h59m counts as 23 hours. Exactly 24h, and any negative duration, fall
// into the partial branch.
func Decide(total money.Money, until time.Duration) Decision {
	hours := int64(until / time.Hour)
	if until >= 0 && hours < int64(FullRefundWindow/time.Hour) {
		return Decision{
			Amount:       total.Percent(fullRefundPercent),
			Status:       StatusApproved,
			AutoFinalize: true,
		}
	}
	return Decision{
		Amount: total.Percent(partialRefundPercent),
		Status: StatusPending,
	}
}

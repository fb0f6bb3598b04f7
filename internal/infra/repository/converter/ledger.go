package converter

import (
	"service-marketplace/internal/domain/ledger"
	"service-marketplace/internal/domain/money"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/pkg/pgconv"
)

func TransactionToCreateParams(t *ledger.Transaction) sqlc.CreateTransactionParams {
	return sqlc.CreateTransactionParams{
		ID:               t.ID(),
		UserID:           t.UserID(),
		BookingID:        pgconv.UUIDPtrToPgtype(t.BookingID()),
		SubscriptionID:   pgconv.UUIDPtrToPgtype(t.SubscriptionID()),
		Type:             t.Type().String(),
		AmountCents:      t.Amount().Cents(),
		Status:           t.Status().String(),
		PaymentMethod:    t.PaymentMethod(),
		GatewayReference: t.GatewayReference(),
		Description:      t.Description(),
		CreatedAt:        pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TransactionToDomain(row sqlc.Transactions) *ledger.Transaction {
	return ledger.Reconstruct(row.ID, ledger.Entry{
		UserID:           row.UserID,
		BookingID:        pgconv.UUIDPtrFromPgtype(row.BookingID),
		SubscriptionID:   pgconv.UUIDPtrFromPgtype(row.SubscriptionID),
		Type:             ledger.Type(row.Type),
		Amount:           money.FromCents(row.AmountCents),
		Status:           ledger.Status(row.Status),
		PaymentMethod:    row.PaymentMethod,
		GatewayReference: row.GatewayReference,
		Description:      row.Description,
	}, pgconv.TimeFromPgtype(row.CreatedAt))
}

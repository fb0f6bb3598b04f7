package components

import (
	"service-marketplace/internal/infra/readstore"
	sqlc "service-marketplace/internal/infra/sqlc/generated"
	"service-marketplace/internal/infra/uow"
	"service-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction inside the unit of work,
// so only the UoW and the read stores are graph members.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Slot and availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AvailabilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Refund
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RefundReadQueries)),
		),
		fx.Annotate(
			readstore.NewRefundReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Subscription
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubscriptionReadQueries)),
		),
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

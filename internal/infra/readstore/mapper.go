package readstore

import (
	"time"

	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/pgconv"
	"service-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

// Row types share field names with the views, so copier does the mapping.
// The converters cover the pgtype columns.
var copyOption = copier.Option{
	IgnoreEmpty: false,
	DeepCopy:    false,
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: (*time.Time)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.TimePtrFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
		{
			SrcType: pgtype.Text{},
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.StringPtrFromPgtype(src.(pgtype.Text)), nil
			},
		},
		{
			SrcType: pgtype.UUID{},
			DstType: (*uuid.UUID)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.UUIDPtrFromPgtype(src.(pgtype.UUID)), nil
			},
		},
		{
			SrcType: pgtype.Date{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d := src.(pgtype.Date)
				if !d.Valid {
					return "", nil
				}
				return pgconv.DateFromPgtype(d).String(), nil
			},
		},
		{
			SrcType: pgtype.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				tod, err := pgconv.TimeOfDayFromPgtype(src.(pgtype.Time))
				if err != nil {
					return nil, err
				}
				return tod.String(), nil
			},
		},
	},
}

func toView[V any](row any) (*V, error) {
	var v V
	if err := copier.CopyWithOption(&v, row, copyOption); err != nil {
		return nil, infra.WrapRepoErr("failed to map row", err, infra.KindDBFailure)
	}
	return &v, nil
}

func toViews[V any, R any](rows []R) ([]*V, error) {
	views := make([]*V, 0, len(rows))
	for _, row := range rows {
		v, err := toView[V](row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func keysetArgs(ks queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	return pgconv.TimePtrToPgtype(ks.AfterCreatedAt), pgconv.UUIDPtrToPgtype(ks.AfterID)
}

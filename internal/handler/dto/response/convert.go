package response

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount rendered with two decimal places.
type Money string

// Quantity keeps every significant digit, so 0.125 kg stays 0.125.
type Quantity string

// Date is a calendar date without time of day.
type Date string

const dateLayout = "2006-01-02"

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: Money(""),
			Fn: func(src any) (any, error) {
				return Money(src.(decimal.Decimal).StringFixed(2)), nil
			},
		},
		{
			SrcType: decimal.Decimal{},
			DstType: Quantity(""),
			Fn: func(src any) (any, error) {
				return Quantity(src.(decimal.Decimal).String()), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: Date(""),
			Fn: func(src any) (any, error) {
				return Date(src.(time.Time).Format(dateLayout)), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*Date)(nil),
			Fn: func(src any) (any, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*Date)(nil), nil
				}
				d := Date(t.Format(dateLayout))
				return &d, nil
			},
		},
	},
}

func copyInto[T any](src any) *T {
	dst := new(T)
	// every converter is total, so a copy error means a programming mistake
	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic(err)
	}
	return dst
}

func copyAll[T any, S any](src []*S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, copyInto[T](s))
	}
	return out
}

package storex

import (
	"reflect"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// ConvertPage converts every item of page to T through r and keeps the total
// item count. Element converters must be registered in r.
func ConvertPage[F, T any](r *convx.Registry, page Paginated[F]) (PartialList[T], error) {
	elements, err := convertElements[F, T](r, page.Items)
	if err != nil {
		return PartialList[T]{}, err
	}
	return NewPartialList(elements, int64(page.TotalItems)), nil
}

// ConvertPartialList converts the elements of list to T through r
func ConvertPartialList[F, T any](r *convx.Registry, list PartialList[F]) (PartialList[T], error) {
	elements, err := convertElements[F, T](r, list.Elements)
	if err != nil {
		return PartialList[T]{}, err
	}
	return NewPartialList(elements, list.TotalSize), nil
}

func convertElements[F, T any](r *convx.Registry, items []F) ([]T, error) {
	if reflect.TypeFor[F]() == reflect.TypeFor[T]() {
		same, _ := any(items).([]T)
		return append([]T(nil), same...), nil
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		converted, err := convx.ConvertTo[T](r, item)
		if err != nil {
			return nil, StoreErrors.NewWithCause(ErrElementConversion, err).WithDetail("index", i)
		}
		out = append(out, converted)
	}
	return out, nil
}

// PageConverter returns a converter from Paginated[F] to PartialList[T] that
// converts elements through r
func PageConverter[F, T any](r *convx.Registry) *convx.Func[Paginated[F], PartialList[T]] {
	return convx.NewFunc(func(page Paginated[F]) (PartialList[T], error) {
		return ConvertPage[F, T](r, page)
	})
}

// PartialListConverter is PageConverter for PartialList sources
func PartialListConverter[F, T any](r *convx.Registry) *convx.Func[PartialList[F], PartialList[T]] {
	return convx.NewFunc(func(list PartialList[F]) (PartialList[T], error) {
		return ConvertPartialList[F, T](r, list)
	})
}

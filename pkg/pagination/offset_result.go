package pagination

// OffsetResult is one limit/offset window over a fully materialised result set
type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Window slices all to the requested window. Items is never nil.
func Window[T any](all []T, req OffsetRequest) OffsetResult[T] {
	total := len(all)
	start := min(req.Offset, total)
	end := min(start+req.Limit, total)

	items := make([]T, end-start)
	copy(items, all[start:end])

	return OffsetResult[T]{
		Items:   items,
		Total:   total,
		Limit:   req.Limit,
		Offset:  req.Offset,
		HasMore: end < total,
	}
}

// Empty is a window with no items, used when the result set could not be read.
func Empty[T any](req OffsetRequest) OffsetResult[T] {
	return OffsetResult[T]{
		Items:  []T{},
		Limit:  req.Limit,
		Offset: req.Offset,
	}
}

package pagination

// OffsetRequest is a limit/offset window request
type OffsetRequest struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Normalize clamps the window: a non-positive limit becomes defaultLimit, a limit above
// maxLimit becomes maxLimit and a negative offset becomes zero.
func (r *OffsetRequest) Normalize(defaultLimit, maxLimit int) {
	if r.Limit <= 0 {
		r.Limit = defaultLimit
	}
	if r.Limit > maxLimit {
		r.Limit = maxLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   OffsetRequest
		want OffsetRequest
	}{
		{name: "defaults", in: OffsetRequest{}, want: OffsetRequest{Limit: DefaultLimit}},
		{name: "clamps limit", in: OffsetRequest{Limit: 500, Offset: 3}, want: OffsetRequest{Limit: MaxLimit, Offset: 3}},
		{name: "negative offset", in: OffsetRequest{Limit: 5, Offset: -1}, want: OffsetRequest{Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize(DefaultLimit, MaxLimit)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestWindow(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}

	first := Window(all, OffsetRequest{Limit: 2})
	assert.Equal(t, []int{1, 2}, first.Items)
	assert.Equal(t, 5, first.Total)
	assert.True(t, first.HasMore)

	last := Window(all, OffsetRequest{Limit: 2, Offset: 4})
	assert.Equal(t, []int{5}, last.Items)
	assert.False(t, last.HasMore)

	beyond := Window(all, OffsetRequest{Limit: 2, Offset: 10})
	assert.NotNil(t, beyond.Items)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 10, beyond.Offset)
}

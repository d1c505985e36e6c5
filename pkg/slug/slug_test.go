package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"name and city", []string{"Union Craft Brewing", "Baltimore"}, "union-craft-brewing-baltimore"},
		{"diacritics folded", []string{"Café Hon"}, "cafe-hon"},
		{"apostrophe dropped", []string{"Heavy Seas' Alehouse"}, "heavy-seas-alehouse"},
		{"punctuation collapsed", []string{"Brewer's Art -- Bar & Grill!"}, "brewers-art-bar-grill"},
		{"empty parts skipped", []string{"", "  ", "Checkerspot"}, "checkerspot"},
		{"nothing usable", []string{"!!!"}, ""},
		{"digits kept", []string{"1623 Brewing", "Westminster"}, "1623-brewing-westminster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.parts...))
		})
	}
}

package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"time-derived reference", "REF-1700000000123", "#EBP-0123"},
		{"reference shorter than four", "AB", "#EBP-AB"},
		{"exactly four characters", "1234", "#EBP-1234"},
		{"empty means not yet issued", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveID(tt.ref))
		})
	}
}

func TestDeriveIDIsIdempotent(t *testing.T) {
	first := DeriveID("REF-1700000000123")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveID("REF-1700000000123"))
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ticket-D2.png", Filename("D2", "png"))
	assert.Equal(t, "ticket-A10.pdf", Filename("A10", "pdf"))
}

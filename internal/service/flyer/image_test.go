package flyer

import (
	"testing"

	"flyerstudio/internal/domain/services"
)

func TestDeriveGroupImage(t *testing.T) {
	tests := []struct {
		name     string
		products []services.ProductPayload
		want     string
	}{
		{
			name: "alphanumeric code",
			products: []services.ProductPayload{
				{Code: "ABC123"},
				{Code: "XYZ999"},
			},
			want: "imagens_produtos/ABC123.png",
		},
		{
			name: "numeric code",
			products: []services.ProductPayload{
				{Code: "7"},
			},
			want: "imagens_produtos/7.png",
		},
		{
			name:     "no products",
			products: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveGroupImage(tt.products)
			if got != tt.want {
				t.Errorf("deriveGroupImage() = %q, want %q", got, tt.want)
			}
		})
	}
}

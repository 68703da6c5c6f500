package batch_test

import (
	"testing"

	"academy/internal/domain/batch"
)

// TestBatchValidation tests validation of Batch.
func TestBatchValidation(t *testing.T) {
	tests := []struct {
		name    string
		batch   batch.Batch
		wantErr error
	}{
		{"valid", batch.Batch{Name: "Junior Beginners", Sport: batch.SportBadminton, CoachID: "u1", MonthlyFee: 300}, nil},
		{"free batch", batch.Batch{Name: "Open Play", Sport: batch.SportOther}, nil},
		{"empty name", batch.Batch{Name: " ", Sport: batch.SportBadminton}, batch.ErrEmptyName},
		{"bad sport", batch.Batch{Name: "Chess", Sport: "chess"}, batch.ErrInvalidSport},
		{"negative fee", batch.Batch{Name: "X", Sport: batch.SportVolleyball, MonthlyFee: -10}, batch.ErrNegativeFee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.batch.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package scheduling

import (
	"testing"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

func TestDeriveUrgency(t *testing.T) {
	tests := []struct {
		name      string
		reasons   []string
		targetDay int
		placedDay int
		want      int
	}{
		{
			name:      "single shortfall placed on target day",
			reasons:   []string{"Mon shortfall"},
			targetDay: 0, placedDay: 0,
			want: 60,
		},
		{
			name:      "broad shortfall placed on target day",
			reasons:   []string{"Wed shortfall", "Thu shortfall"},
			targetDay: 0, placedDay: 0,
			want: 140,
		},
		{
			name:      "next-week demand is less urgent",
			reasons:   []string{"next Mon shortfall", "next Tue shortfall"},
			targetDay: 4, placedDay: 4,
			want: 110,
		},
		{
			name:      "safety stock alone adds a little",
			reasons:   []string{"Mon shortfall", "safety stock 300"},
			targetDay: 0, placedDay: 0,
			want: 80,
		},
		{
			name:      "slip of one day",
			reasons:   []string{"Mon shortfall"},
			targetDay: 0, placedDay: 1,
			want: 30,
		},
		{
			name:      "slip of two or more days",
			reasons:   []string{"Mon shortfall"},
			targetDay: 0, placedDay: 3,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &entities.ProductionEvent{
				Code: "A", Name: "A",
				TargetDay: tt.targetDay,
				Reasons:   tt.reasons,
			}
			if got := deriveUrgency(ev, tt.placedDay); got != tt.want {
				t.Errorf("deriveUrgency = %d, want %d", got, tt.want)
			}
		})
	}
}

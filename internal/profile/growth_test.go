package profile

import "testing"

func TestParseGrowth(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
		null  bool
	}{
		{name: "apostrophe separator", input: "+1'278", want: 1278},
		{name: "negative", input: "-500", want: -500},
		{name: "spaces", input: "12 345", want: 12345},
		{name: "plain number", input: float64(42), want: 42},
		{name: "negative number", input: float64(-7), want: -7},
		{name: "nil", input: nil, null: true},
		{name: "garbage becomes zero", input: "n/a", want: 0},
		{name: "empty string becomes zero", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGrowth(tt.input)
			if tt.null {
				if got != nil {
					t.Fatalf("ParseGrowth(%v) = %d, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseGrowth(%v) = nil, want %d", tt.input, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ParseGrowth(%v) = %d, want %d", tt.input, *got, tt.want)
			}
		})
	}
}

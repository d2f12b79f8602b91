package scheduler_jobs

import "testing"

func TestDecideWarWinner(t *testing.T) {
	challengerID := uint(10)
	targetID := uint(20)

	tests := []struct {
		name     string
		scores   string
		expected *uint
		wantErr  bool
	}{
		{"Challenger wins", `{"10": 500, "20": 300}`, &challengerID, false},
		{"Target wins", `{"10": 100, "20": 300}`, &targetID, false},
		{"Draw", `{"10": 250, "20": 250}`, nil, false},
		{"Missing scores count as zero", `{"10": 1}`, &challengerID, false},
		{"Empty object is a draw", `{}`, nil, false},
		{"No scores recorded is a draw", ``, nil, false},
		{"Malformed scores", `{"10": "many"}`, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecideWarWinner([]byte(tc.scores), challengerID, targetID)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tc.expected == nil && got != nil:
				t.Errorf("expected a draw, got winner %d", *got)
			case tc.expected != nil && got == nil:
				t.Errorf("expected winner %d, got a draw", *tc.expected)
			case tc.expected != nil && got != nil && *tc.expected != *got:
				t.Errorf("expected winner %d, got %d", *tc.expected, *got)
			}
		})
	}
}

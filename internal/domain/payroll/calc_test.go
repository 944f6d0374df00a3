package payroll

import "testing"

func TestNetSalary(t *testing.T) {
	cases := []struct {
		name                    string
		base, bonus, deductions float64
		want                    float64
	}{
		{"plain", 3000, 500, 200, 3300},
		{"no extras", 2500, 0, 0, 2500},
		{"deductions exceed pay", 1000, 0, 1500, -500},
		{"cent rounding", 1000.005, 0, 0, 1000.01},
		{"floating point residue", 0.1, 0.2, 0, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NetSalary(tc.base, tc.bonus, tc.deductions)
			if got != tc.want {
				t.Fatalf("NetSalary(%v, %v, %v) = %v, want %v", tc.base, tc.bonus, tc.deductions, got, tc.want)
			}
		})
	}
}

package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		want        Kind
	}{
		{
			name:        "estimate intent",
			displayName: "EquivalentIncomeEstimateIntent",
			want:        KindEquivalentIncomeEstimate,
		},
		{
			name:        "welcome intent routes to estimate",
			displayName: "Default Welcome Intent",
			want:        KindEquivalentIncomeEstimate,
		},
		{
			name:        "estimate intent mixed case",
			displayName: "equivalentINCOMEestimateintent",
			want:        KindEquivalentIncomeEstimate,
		},
		{
			name:        "welcome intent upper case",
			displayName: "DEFAULT WELCOME INTENT",
			want:        KindEquivalentIncomeEstimate,
		},
		{
			name:        "unknown intent falls back to health check",
			displayName: "Foo",
			want:        KindHealthCheck,
		},
		{
			name:        "empty display name falls back to health check",
			displayName: "",
			want:        KindHealthCheck,
		},
		{
			name:        "near miss is not matched",
			displayName: "EquivalentIncomeEstimate",
			want:        KindHealthCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.displayName); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.displayName, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHealthCheck, "health_check"},
		{KindEquivalentIncomeEstimate, "equivalent_income_estimate"},
		{KindHelp, "help"},
		{KindStop, "stop"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

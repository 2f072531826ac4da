package contract

import (
	"math"
	"testing"
)

// FuzzParseValues fuzzes ParseValues with random user input.
func FuzzParseValues(f *testing.F) {
	seeds := []string{
		"clicks=20,impressions=1000",
		"revenue=1.5e3",
		"=,=,",
		"a=b=c",
		"",
		"clicks=NaN",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		values, err := ParseValues(s)
		if err != nil {
			return
		}
		for k, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value %v accepted for %q", v, k)
			}
		}
	})
}

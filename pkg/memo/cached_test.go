package memo

import "testing"

func TestNew(t *testing.T) {
	c := New(42.0)

	if got := c.Get(); got != 42.0 {
		t.Errorf("Get() = %v, want 42.0", got)
	}
	if _, ok := c.CachedResult(); ok {
		t.Error("new container should have no cached result")
	}
}

func TestCachedValue_Set(t *testing.T) {
	tests := []struct {
		name       string
		withCached bool
	}{
		{
			name:       "set drops cached result",
			withCached: true,
		},
		{
			name:       "set without cached result",
			withCached: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1.0)
			if tt.withCached {
				c.SetCachedResult(Derived[float64]{Value: 1.0})
			}

			c.Set(2.0)

			if got := c.Get(); got != 2.0 {
				t.Errorf("Get() after Set = %v, want 2.0", got)
			}
			if _, ok := c.CachedResult(); ok {
				t.Error("Set should drop the cached result")
			}
		})
	}
}

func TestCachedValue_SetCachedResult(t *testing.T) {
	c := New(1.0)
	fp1, err := FingerprintOf(map[string]float64{"tol": 1e-7})
	if err != nil {
		t.Fatalf("FingerprintOf failed: %v", err)
	}
	fp2, err := FingerprintOf(map[string]float64{"tol": 1e-9})
	if err != nil {
		t.Fatalf("FingerprintOf failed: %v", err)
	}

	c.SetCachedResult(Derived[float64]{Value: 10.0, Fingerprint: fp1})

	d, ok := c.CachedResult()
	if !ok {
		t.Fatal("expected a cached result")
	}
	if d.Value != 10.0 || d.Fingerprint != fp1 {
		t.Errorf("CachedResult() = %+v, want value 10.0 with first fingerprint", d)
	}

	// Overwrite without validation
	c.SetCachedResult(Derived[float64]{Value: 20.0, Fingerprint: fp2})

	d, ok = c.CachedResult()
	if !ok {
		t.Fatal("expected a cached result after overwrite")
	}
	if d.Value != 20.0 || d.Fingerprint != fp2 {
		t.Errorf("CachedResult() = %+v, want value 20.0 with second fingerprint", d)
	}
}

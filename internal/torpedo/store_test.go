package torpedo

import (
	"math/rand"
	"testing"
)

func TestNewStoreFullyLoaded(t *testing.T) {
	s := NewStore(5, 0, rand.New(rand.NewSource(1)))

	if s.Count() != 5 {
		t.Errorf("Expected 5 torpedoes, got %d", s.Count())
	}
	if s.Capacity() != 5 {
		t.Errorf("Expected capacity 5, got %d", s.Capacity())
	}
	if s.IsEmpty() {
		t.Error("New store should not be empty")
	}
}

func TestNewStoreClampsInput(t *testing.T) {
	s := NewStore(-3, 2.5, nil)

	if s.Count() != 0 || !s.IsEmpty() {
		t.Errorf("Negative count should clamp to an empty store, got %d", s.Count())
	}
	if s.FailureRate() != 1 {
		t.Errorf("Failure rate should clamp to 1, got %f", s.FailureRate())
	}

	s = NewStore(1, -0.5, nil)
	if s.FailureRate() != 0 {
		t.Errorf("Failure rate should clamp to 0, got %f", s.FailureRate())
	}
}

func TestFireConsumesUntilEmpty(t *testing.T) {
	s := NewStore(3, 0, rand.New(rand.NewSource(1)))

	for i := 0; i < 3; i++ {
		if !s.Fire(1) {
			t.Fatalf("Fire %d should succeed", i)
		}
	}

	if !s.IsEmpty() {
		t.Errorf("Store should be empty after 3 fires, has %d", s.Count())
	}
	if s.Fire(1) {
		t.Error("Fire on an empty store should fail")
	}
}

func TestFireRejectsInvalidCount(t *testing.T) {
	s := NewStore(2, 0, rand.New(rand.NewSource(1)))

	if s.Fire(0) {
		t.Error("Fire(0) should fail")
	}
	if s.Fire(-1) {
		t.Error("Fire(-1) should fail")
	}
	if s.Fire(3) {
		t.Error("Fire(3) with 2 loaded should fail")
	}
	if s.Count() != 2 {
		t.Errorf("Rejected requests should not consume, count is %d", s.Count())
	}
	if !s.Fire(2) {
		t.Error("Fire(2) with 2 loaded should succeed")
	}
}

func TestFireAlwaysMisfiresAtFullFailureRate(t *testing.T) {
	s := NewStore(4, 1, rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		if s.Fire(1) {
			t.Fatal("Fire should always misfire at failure rate 1")
		}
	}
	if s.Count() != 4 {
		t.Errorf("Misfires should not consume, count is %d", s.Count())
	}
}

func TestFireMisfireRateIsDeterministicPerSeed(t *testing.T) {
	run := func() []bool {
		s := NewStore(50, 0.3, rand.New(rand.NewSource(99)))
		results := make([]bool, 0, 50)
		for i := 0; i < 50; i++ {
			results = append(results, s.Fire(1))
		}
		return results
	}

	a, b := run(), run()
	misfires := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Results differ at shot %d with the same seed", i)
		}
		if !a[i] {
			misfires++
		}
	}
	if misfires == 0 {
		t.Error("Expected some misfires at failure rate 0.3 over 50 shots")
	}
}

func TestReloadRestoresCapacity(t *testing.T) {
	s := NewStore(2, 0, rand.New(rand.NewSource(1)))
	s.Fire(1)
	s.Fire(1)

	s.Reload()

	if s.Count() != 2 {
		t.Errorf("Expected 2 torpedoes after reload, got %d", s.Count())
	}
}

package mocks

import (
	"github.com/mcoot/tilegame-go/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// With nothing queued Intn returns 0, so shuffles and bonus rolls are
// deterministic unless a test asks otherwise.
type MockRandom struct {
	intn    []int
	strings []string
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result reduced into [0, n), or 0 if none remain
func (r *MockRandom) Intn(n int) int {
	if len(r.intn) == 0 || n <= 0 {
		return 0
	}
	result := r.intn[0]
	r.intn = r.intn[1:]
	return result % n
}

// String returns the next queued result, or empty string if none remain
func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.strings) == 0 {
		return ""
	}
	result := r.strings[0]
	r.strings = r.strings[1:]
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.intn = append(r.intn, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.strings = append(r.strings, values...)
}

// Pending returns how many queued Intn results have not been used
func (r *MockRandom) Pending() int {
	return len(r.intn)
}

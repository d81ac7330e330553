package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const tipReferencePrefix = "TIP-"

// Seeded once at startup. Re-seeding per call from the wall clock makes
// concurrent calls within the same nanosecond collide.
var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
var seededRandMu sync.Mutex

// GeneratePaymentReference returns a fresh idempotency reference for a
// gateway charge: the fixed prefix followed by a random integer in
// [1, 1_000_000_000].
func GeneratePaymentReference() string {
	seededRandMu.Lock()
	n := seededRand.Intn(1_000_000_000) + 1
	seededRandMu.Unlock()
	return fmt.Sprintf("%s%d", tipReferencePrefix, n)
}

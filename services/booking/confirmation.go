package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const confirmationAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewConfirmationCode builds a human-readable confirmation code: the class
// prefix, six digits derived from the booking instant, and three random
// base-36 characters to break collisions between codes minted in the same
// microsecond.
func NewConfirmationCode(prefix string, now time.Time) string {
	digits := now.UnixNano() % 1_000_000

	var b strings.Builder
	b.WriteString(strings.ToUpper(prefix))
	fmt.Fprintf(&b, "%06d", digits)
	for i := 0; i < 3; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken;
			// fall back to a clock-derived character rather than panicking.
			b.WriteByte(confirmationAlphabet[time.Now().UnixNano()%int64(len(confirmationAlphabet))])
			continue
		}
		b.WriteByte(confirmationAlphabet[n.Int64()])
	}
	return b.String()
}

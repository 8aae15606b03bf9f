package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"washcubes/internal/pkg/errs"
)

const orderNumberSuffixLength = 4

// base36 alphabet used for the random order-number suffix.
const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var orderNumberPattern = regexp.MustCompile(`^[0-9]{6}[0-9A-Z]{4}$`)

// GenerateOrderNumber produces a new order number from the given time:
// the last six digits of the unix-millisecond timestamp followed by four
// random uppercase base36 characters.
//
// The format is compact enough to read over a locker screen but carries a
// small collision probability; uniqueness is enforced at confirmation time
// by the persistence layer, not here.
func GenerateOrderNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	prefix := millis[len(millis)-6:]

	var suffix strings.Builder
	for range orderNumberSuffixLength {
		suffix.WriteByte(orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]) //nolint:gosec // not a secret
	}

	return prefix + suffix.String()
}

// ValidateOrderNumber checks that a string has the generated order-number
// shape: six digits followed by four uppercase base36 characters.
func ValidateOrderNumber(number string) error {
	if !orderNumberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber is invalid",
			fmt.Errorf("%q does not match the order number format", number))
	}
	return nil
}

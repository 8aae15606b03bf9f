package locker

import (
	"fmt"

	"washcubes/internal/pkg/errs"
)

// Size represents the physical size class of a locker compartment.
// Sizes form a strict ordering that drives the allocation fallback policy:
// a request may be upgraded to the next larger size, never downgraded.
//
// Size ordering:
//
//	Small < Medium < Large < ExtraLarge
//
// Size is a value object that validates itself and provides string
// representations for persistence and display.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// SizeSmall is the smallest compartment class.
	SizeSmall

	// SizeMedium fits a standard laundry bag.
	SizeMedium

	// SizeLarge fits bulky items such as bedding.
	SizeLarge

	// SizeExtraLarge is the largest compartment class.
	SizeExtraLarge
)

// getSizeStrings returns a map of Size values to their string representations.
// All sizes are included for string conversion.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown:    "Unknown",
		SizeSmall:      "Small",
		SizeMedium:     "Medium",
		SizeLarge:      "Large",
		SizeExtraLarge: "Extra Large",
	}
}

// getValidSizeStrings returns a map of only valid Size values.
// Only valid sizes are included to support validation.
func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		SizeSmall:      "Small",
		SizeMedium:     "Medium",
		SizeLarge:      "Large",
		SizeExtraLarge: "Extra Large",
	}
}

// AllSizes returns every valid size in ascending order.
// The ordering is what the allocation fallback walks when the requested
// size has no free compartment.
func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}
}

// SizeFromString parses a size label as stored in requests and seed data.
// Accepted labels are "Small", "Medium", "Large" and "Extra Large".
// Returns an error for any other value.
func SizeFromString(s string) (Size, error) {
	for size, label := range getValidSizeStrings() {
		if label == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size is invalid",
		fmt.Errorf("%q is not a valid compartment size", s),
	)
}

// Validate checks if the Size value is valid.
//
// Valid sizes are: Small, Medium, Large, ExtraLarge.
// SizeUnknown (0) and any other values are invalid.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"size is invalid",
			fmt.Errorf("%d is not a valid size", s),
		)
	}
	return nil
}

// String returns the human-readable name of the size.
// Implements the fmt.Stringer interface and is safe to call on any
// Size value, including invalid ones.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Fits reports whether a compartment of this size can hold a bag of the
// requested size. A compartment fits anything of its own size or smaller.
func (s Size) Fits(requested Size) bool {
	return s >= requested
}

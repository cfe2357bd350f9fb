package common

import (
	"math/rand"
	"strings"

	"hit4power/clubhouse/internal/constants"
)

// RandomCode returns a string of random digits of the given length.
func RandomCode(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

// NewLoginCode mints a player login code.
func NewLoginCode() string {
	return RandomCode(constants.LoginCodeLength)
}

// NewInstructorCode mints an instructor code with the fixed prefix.
func NewInstructorCode() string {
	return constants.InstructorCodePrefix + RandomCode(constants.LoginCodeLength)
}

// AgeGroup buckets a player age for the dashboard. Total over non-negative
// ages; boundaries at 9/10, 12/13, 15/16, 18/19.
func AgeGroup(age int) string {
	switch {
	case age <= 9:
		return "7-9"
	case age <= 12:
		return "10-12"
	case age <= 15:
		return "13-15"
	case age <= 18:
		return "16-18"
	default:
		return "18+"
	}
}

package tip

import (
	"math"
	"strconv"
	"strings"

	tiperrors "github.com/alexisbeaulieu97/tiptime/pkg/errors"
)

// ParseInput reads numeric text typed by a user. Anything that is not a
// finite number, including empty text, yields 0.
func ParseInput(text string) float64 {
	value, err := parseFinite(text)
	if err != nil {
		return 0
	}
	return value
}

// ParseInputStrict is ParseInput that reports bad text instead of zeroing it.
// Empty text is still 0.
func ParseInputStrict(field, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	value, err := parseFinite(text)
	if err != nil {
		return 0, tiperrors.NewInputError(field, text, err)
	}
	return value, nil
}

func parseFinite(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrRange
	}
	return value, nil
}

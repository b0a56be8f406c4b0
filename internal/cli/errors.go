package cli

import (
	"strconv"

	"github.com/nmiranda/backman/internal/errors"
	"github.com/nmiranda/backman/internal/list"
)

// ParseIndex parses a positional index argument.
func ParseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, errors.NewUserError(
			errors.Newf("invalid index %q", arg),
			"Index must be a non-negative number")
	}
	return n, nil
}

// UserErr attaches an actionable suggestion to common list-store errors.
// Other errors pass through unchanged.
func UserErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, list.ErrIndexOutOfRange):
		return errors.NewUserError(err, "Run 'backman list show' to see valid indices")
	case errors.Is(err, list.ErrNoListSelected):
		return errors.NewUserError(err, "Run 'backman list select <index>' first")
	case errors.Is(err, list.ErrPathNotFound),
		errors.Is(err, list.ErrNotAFile),
		errors.Is(err, list.ErrNotADirectory):
		return errors.NewUserError(err, "")
	default:
		return err
	}
}

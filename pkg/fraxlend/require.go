package fraxlend

import (
	"fmt"

	"fraxlend/core"
)

// Require returns code wrapped with msg when condition does not hold
func Require(condition bool, code core.ErrorCode, msg string) error {
	if condition {
		return nil
	}

	if msg == "" {
		return code
	}

	return fmt.Errorf("%w: %s", code, msg)
}

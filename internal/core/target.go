package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"boardbridge/internal/types"
)

const noBoardSelectedMsg = "no board selected"

// ResolveTarget derives the colon-joined package:architecture:board
// identifier passed to the toolchain. The combination is not validated
// against the installed platforms; a bad target surfaces through the
// toolchain's own exit code. The target is recomputed on every call and
// never cached.
func ResolveTarget(selection *types.BoardDescriptor) (string, error) {
	if selection == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(noBoardSelectedMsg)
	}
	return fmt.Sprintf("%s:%s:%s",
		selection.Platform.Package.Name,
		selection.Platform.Architecture,
		selection.Board), nil
}

// IsNoBoardSelected reports whether err is the missing-selection condition.
// This is a recoverable, expected state, not a defect; callers notify the
// output sink and abort the triggering operation.
func IsNoBoardSelected(err error) bool {
	if errbuilder.CodeOf(err) != errbuilder.CodeFailedPrecondition {
		return false
	}
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, noBoardSelectedMsg)
	}
	return false
}

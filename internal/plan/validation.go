package plan

import (
	"fmt"

	"github.com/felixgeelhaar/planforge/internal/errors"
)

func errMissing(section string) error {
	return errors.New(errors.ErrCodePlanInvalid, fmt.Sprintf("plan is missing required section: %s", section))
}

package eval

import (
	"fmt"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// Validate rejects formulas the expression backend cannot express.
// Predicates and quantifiers need a domain and are evaluated by the tree
// walker only.
func Validate(f logic.Formula) error {
	if f == nil {
		return fmt.Errorf("formula is nil")
	}
	if !logic.IsPropositional(f) {
		return fmt.Errorf("cannot compile %s: predicates and quantifiers are not supported", f)
	}
	return nil
}

package rules

import (
	"sniff/internal/rule"
)

// RegisterAll installs every built-in rule. Registration order is the
// dispatch order within a single token.
func RegisterAll(r *rule.Registry) {
	r.Register(TypeOrder{})
	r.Register(DuplicateType{})
	r.Register(QualifiedType{})
	r.Register(ParamMatch{})
	r.Register(SingleUse{})
	r.Register(BlankLine{})
}

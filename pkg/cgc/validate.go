package cgc

import "github.com/yumyai/cgcfinder/pkg/model"

// IsSatisfied reports whether comp holds every category mode requires.
// A CAZyme alone never satisfies any mode.
func IsSatisfied(comp model.Composition, mode model.SignatureMode) bool {
	rule, ok := modeRules[mode]
	if !ok {
		return false
	}
	for _, c := range rule.required {
		if comp.Count(c) == 0 {
			return false
		}
	}
	return true
}

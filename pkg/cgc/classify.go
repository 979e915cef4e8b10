// Package cgc finds CAZyme gene clusters in contigs of annotated genes.
package cgc

import "github.com/yumyai/cgcfinder/pkg/model"

// modeRule is the per-mode lookup table: which categories count toward a
// cluster and which of them a cluster must contain.
type modeRule struct {
	important [model.CategorySTP + 1]bool // indexed by Category
	required  []model.Category
}

func newModeRule(signatures ...model.Category) modeRule {
	var r modeRule
	r.important[model.CategoryCAZyme] = true
	r.required = append(r.required, model.CategoryCAZyme)
	for _, c := range signatures {
		r.important[c] = true
		r.required = append(r.required, c)
	}
	return r
}

var modeRules = map[model.SignatureMode]modeRule{
	model.ModeAll:   newModeRule(model.CategoryTC, model.CategoryTF, model.CategorySTP),
	model.ModeTP:    newModeRule(model.CategoryTC),
	model.ModeTF:    newModeRule(model.CategoryTF),
	model.ModeSTP:   newModeRule(model.CategorySTP),
	model.ModeTPTF:  newModeRule(model.CategoryTC, model.CategoryTF),
	model.ModeTPSTP: newModeRule(model.CategoryTC, model.CategorySTP),
	model.ModeTFSTP: newModeRule(model.CategoryTF, model.CategorySTP),
}

// IsImportant reports whether a gene of category cat counts toward a cluster
// under mode. CAZymes always count, Other never does.
func IsImportant(cat model.Category, mode model.SignatureMode) bool {
	rule, ok := modeRules[mode]
	if !ok || cat < 0 || int(cat) >= len(rule.important) {
		return false
	}
	return rule.important[cat]
}

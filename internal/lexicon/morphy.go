package lexicon

// Detachment rules applied when looking for the base form of an inflected
// word.
var substitutions = map[POS][][2]string{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adj: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adv: nil,
}

// Morph returns the base forms of word that exist in the index for pos.
// Exception lists win outright; otherwise the word itself and single rule
// applications are tried, then rules are applied repeatedly until something
// matches or no rule applies.
func (wn *WordNet) Morph(word string, pos POS) []string {
	pos = pos.file()

	if bases, ok := wn.exceptions[pos][word]; ok {
		return wn.filterForms(append([]string{word}, bases...), pos)
	}

	forms := applyRules([]string{word}, pos)
	if found := wn.filterForms(append([]string{word}, forms...), pos); len(found) > 0 {
		return found
	}

	for len(forms) > 0 {
		forms = applyRules(forms, pos)
		if found := wn.filterForms(forms, pos); len(found) > 0 {
			return found
		}
	}

	return nil
}

// applyRules applies every matching rule once to each form. Duplicates are
// dropped so repeated application stays linear in the word length.
func applyRules(forms []string, pos POS) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, form := range forms {
		for _, rule := range substitutions[pos] {
			old, repl := rule[0], rule[1]
			if len(form) <= len(old) || form[len(form)-len(old):] != old {
				continue
			}
			next := form[:len(form)-len(old)] + repl
			if _, dup := seen[next]; dup {
				continue
			}
			seen[next] = struct{}{}
			out = append(out, next)
		}
	}
	return out
}

// filterForms keeps the forms present in the index, first occurrence only.
func (wn *WordNet) filterForms(forms []string, pos POS) []string {
	var out []string
	seen := make(map[string]struct{}, len(forms))
	for _, form := range forms {
		if _, dup := seen[form]; dup || !wn.inIndex(form, pos) {
			continue
		}
		seen[form] = struct{}{}
		out = append(out, form)
	}
	return out
}

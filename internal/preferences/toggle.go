package preferences

// Toggle flips membership of optionID in doc[category][subcategory] and
// returns a new document; the input is never mutated. Present ids are
// removed, absent ids appended, so toggling twice restores the original
// member set. Missing category/subcategory slots are created on the way.
func Toggle(doc Document, category, subcategory, optionID string) Document {
	out := make(Document, len(doc)+1)
	for cat, sub := range doc {
		out[cat] = copyCategory(sub)
	}

	cat, ok := out[category]
	if !ok {
		cat = Category{}
		out[category] = cat
	}

	current := cat[subcategory]
	next := make([]string, 0, len(current)+1)
	removed := false

	for _, id := range current {
		if id == optionID {
			removed = true
			continue
		}
		next = append(next, id)
	}

	if !removed {
		next = append(next, optionID)
	}

	cat[subcategory] = next
	return out
}

package preferences

// Merge reconciles a stored, possibly partial document with the canonical
// defaults. Every canonical category/subcategory is present in the result;
// for subcategories present in both, the stored array wins wholesale.
// Categories unknown to the schema pass through unchanged, so documents
// written by newer revisions survive a round trip. Neither input is mutated.
func Merge(stored Document) Document {
	merged := Defaults()

	for category, storedCat := range stored {
		base, known := merged[category]

		if !known {
			merged[category] = copyCategory(storedCat)
			continue
		}

		for sub, ids := range storedCat {
			base[sub] = copyIDs(ids)
		}
	}

	return merged
}

func copyCategory(cat Category) Category {
	out := make(Category, len(cat))
	for sub, ids := range cat {
		out[sub] = copyIDs(ids)
	}
	return out
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

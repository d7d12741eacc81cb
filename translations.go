package cavcore

// Translation is an integer 3-vector encoding a periodic image of the
// canonical volume (spec.md §3).
type Translation [3]int

// TranslationTable is a finite ordered sequence of translations. D
// requires the zero vector to be absent; A, C, and I operate against the
// effective set that includes it (see WithIdentity).
type TranslationTable []Translation

// WithIdentity returns a copy of t prepended with the zero translation,
// matching spec.md §3's "either by convention or by explicit prepend"
// requirement for A, C, and I.
func (t TranslationTable) WithIdentity() TranslationTable {
	out := make(TranslationTable, 0, len(t)+1)
	out = append(out, Translation{0, 0, 0})
	out = append(out, t...)
	return out
}

// Add returns p translated by t.
func (t Translation) Add(p [3]int) [3]int {
	return [3]int{p[0] + t[0], p[1] + t[1], p[2] + t[2]}
}

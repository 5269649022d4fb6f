package domain

// Classification is the topic set assigned to a news item.
type Classification struct {
	Topics []string `json:"topics"`
}

// Sentiment is the emotional read of a news item: a tone label and a
// score in [-1, 1].
type Sentiment struct {
	Tone  string  `json:"tone"`
	Score float64 `json:"score"`
}

// FakeVerdict is the authenticity check result.
type FakeVerdict struct {
	IsFake     bool    `json:"is_fake"`
	Confidence float64 `json:"confidence"`
	CheckedBy  string  `json:"checked_by"`
}

// DuplicateVerdict reports whether an item repeats earlier content.
type DuplicateVerdict struct {
	IsDuplicate      bool    `json:"is_duplicate"`
	PotentialMatches []int64 `json:"potential_matches,omitempty"`
}

// Translation is a cached-or-computed text translation.
type Translation struct {
	Text           string `json:"text"`
	OriginalLang   string `json:"original_lang"`
	TranslatedLang string `json:"translated_lang"`
	FromCache      bool   `json:"from_cache"`
}

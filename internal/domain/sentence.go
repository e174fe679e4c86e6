package domain

// Sentence is a unit of lesson content. Sentences are authored outside the
// core (content packs or the lesson generator) and never mutated here.
type Sentence struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Explanation string `json:"explanation,omitempty"`
	Phonetic    string `json:"phonetic,omitempty"`
}

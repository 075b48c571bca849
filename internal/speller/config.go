package speller

type CorrectedWord struct {
	Token     string `json:"token"`
	Corrected string `json:"corrected"`
	Position  int    `json:"position"`
}

type CorrectionResult struct {
	Original  string          `json:"original"`
	Corrected string          `json:"corrected"`
	Words     []CorrectedWord `json:"words,omitempty"`
}

package server

type AnalysisRequest struct {
	Text string `json:"text"`
}

type Analysis struct {
	ExtractedText string `json:"extractedText"`

	AIPercentage int    `json:"aiPercentage"`
	Reasoning    string `json:"reasoning"`

	SuggestedGrade string `json:"suggestedGrade"`

	Segments []Segment `json:"segments"`
}

type Segment struct {
	Text string `json:"text"`
	IsAI bool   `json:"isAi"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Message string `json:"message"`
}

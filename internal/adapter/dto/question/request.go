package question

// ListQuestionsRequest represents query parameters for browsing the question bank
type ListQuestionsRequest struct {
	Category   string `query:"category" validate:"omitempty,oneof=behavioral technical situational general"`
	Difficulty string `query:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1,max=100"`
}

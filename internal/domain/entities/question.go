package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Question is a question-bank entry carrying the reference answer the
// scoring pipeline compares against
type Question struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	ReferenceText string         `json:"reference_text" gorm:"type:text;not null"`
	Keywords      datatypes.JSON `json:"keywords,omitempty" gorm:"type:jsonb"`
	Category      string         `json:"category" gorm:"type:varchar(100);index"`
	Difficulty    string         `json:"difficulty" gorm:"type:varchar(20);default:'medium'"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Question
func (Question) TableName() string {
	return "questions"
}

// NewQuestion creates a new Question entity
func NewQuestion(prompt, referenceText string, keywords []string) (*Question, error) {
	kw, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}
	return &Question{
		ID:            uuid.New(),
		Prompt:        prompt,
		ReferenceText: referenceText,
		Keywords:      kw,
		Category:      QuestionCategoryBehavioral,
		Difficulty:    QuestionDifficultyMedium,
	}, nil
}

// Reference returns the read-only reference answer for scoring
func (q *Question) Reference() ReferenceAnswer {
	var keywords []string
	if len(q.Keywords) > 0 {
		_ = json.Unmarshal(q.Keywords, &keywords)
	}
	return ReferenceAnswer{
		Text:     q.ReferenceText,
		Keywords: keywords,
	}
}

// Question category constants
const (
	QuestionCategoryBehavioral  = "behavioral"
	QuestionCategoryTechnical   = "technical"
	QuestionCategorySituational = "situational"
	QuestionCategoryGeneral     = "general"
)

// Question difficulty constants
const (
	QuestionDifficultyEasy   = "easy"
	QuestionDifficultyMedium = "medium"
	QuestionDifficultyHard   = "hard"
)

// Package prompt builds the natural-language instructions sent to the model.
package prompt

import (
	"fmt"

	"edugenie/internal/domain"
)

// Input carries everything a prompt depends on.
type Input struct {
	Mode         domain.Mode
	SourceName   string
	Context      string
	NumQuestions int
	Difficulty   string
	// FromDocument selects the "document text" quiz intro instead of the topic intro.
	FromDocument bool
}

const flashcardTemplate = `
You are an expert learning assistant. Based on the following source material, generate %d flashcards.
Each flashcard should have a 'term' (a key concept, name, or question) and a 'definition' (the explanation).
The source material is about: "%s".

Source content to use:
---
%s
---

Return the output ONLY as a valid JSON object. Do not include any text or code markers before or after the JSON.
The JSON object must have a key "flashcards" which is an array of objects.
Each object must have the keys "term" and "definition".

Example Format:
{
  "flashcards": [
    {
      "term": "Mitochondria",
      "definition": "Known as the powerhouse of the cell, it generates most of the cell's supply of ATP, used as a source of chemical energy."
    },
    {
      "term": "What is Photosynthesis?",
      "definition": "The process used by plants, algae, and some bacteria to convert light energy into chemical energy, through a process that converts carbon dioxide and water into glucose and oxygen."
    }
  ]
}
`

const quizTemplate = `
%s
%s

The source material is:
---
%s
---

Return the output ONLY as a valid JSON object. Do not include any text, code block markers, or explanations before or after the JSON.
The JSON object must have a key "questions" which is an array of objects. Each object must have keys: "questionText", "options", "correctAnswer", and "explanation".
`

// Build renders the prompt for in. It performs no I/O and is deterministic.
func Build(in Input) string {
	if in.Mode == domain.ModeFlashcard {
		return fmt.Sprintf(flashcardTemplate, in.NumQuestions, in.SourceName, in.Context)
	}

	intro := fmt.Sprintf("Generate a %d-question multiple-choice quiz on the topic of '%s'.", in.NumQuestions, in.SourceName)
	if in.FromDocument {
		intro = fmt.Sprintf("Based on the following document text, generate a %d-question multiple-choice quiz.", in.NumQuestions)
	}
	return fmt.Sprintf(quizTemplate, intro, DifficultyClause(in.Difficulty), in.Context)
}

// DifficultyClause returns the sentence that pins the quiz level, or "" when difficulty is empty.
func DifficultyClause(difficulty string) string {
	if difficulty == "" {
		return ""
	}
	return fmt.Sprintf("The questions should be suitable for a %s level.", difficulty)
}

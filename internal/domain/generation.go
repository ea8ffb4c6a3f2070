package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxContextLength is the largest context, in characters, handed to the prompt builder.
const MaxContextLength = 15000

// DefaultNumQuestions applies when the client does not send num_questions.
const DefaultNumQuestions = 5

// Mode selects both the prompt shape and the response schema.
type Mode int

const (
	ModeQuiz Mode = iota
	ModeFlashcard
)

// ParseMode maps a client-supplied mode onto a Mode. Anything unrecognized is a quiz.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flashcard":
		return ModeFlashcard
	default:
		return ModeQuiz
	}
}

func (m Mode) String() string {
	switch m {
	case ModeFlashcard:
		return "flashcard"
	default:
		return "quiz"
	}
}

// FileKind is a supported upload format.
type FileKind int

const (
	FileKindUnsupported FileKind = iota
	FileKindPDF
	FileKindDOCX
	FileKindPPTX
)

// FileKindFromName dispatches on the lowercase filename suffix.
func FileKindFromName(filename string) FileKind {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return FileKindPDF
	case strings.HasSuffix(name, ".docx"):
		return FileKindDOCX
	case strings.HasSuffix(name, ".pptx"):
		return FileKindPPTX
	default:
		return FileKindUnsupported
	}
}

func (k FileKind) String() string {
	switch k {
	case FileKindPDF:
		return "pdf"
	case FileKindDOCX:
		return "docx"
	case FileKindPPTX:
		return "pptx"
	default:
		return "unsupported"
	}
}

// UploadedFile is a document submitted with a generation request.
type UploadedFile struct {
	Filename string
	Data     []byte
}

// GenerationRequest is one call to the content generation endpoint.
type GenerationRequest struct {
	Mode         Mode
	NumQuestions int
	Difficulty   string
	Topic        string
	File         *UploadedFile
}

// ExtractedContext is the material fed into prompting.
type ExtractedContext struct {
	Text         string
	SourceName   string
	FromDocument bool
}

// Truncate clips Text to at most MaxContextLength characters, keeping the prefix.
func (c ExtractedContext) Truncate() ExtractedContext {
	c.Text = TruncateRunes(c.Text, MaxContextLength)
	return c
}

// TruncateRunes returns the first max characters of s.
func TruncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

// QuizQuestion is one multiple-choice question as the model is asked to produce it.
type QuizQuestion struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Flashcard is one term/definition pair as the model is asked to produce it.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// GenerationResult is the model's JSON object, passed through untouched apart from the
// source_name and mode keys. Questions/flashcards are not re-validated.
type GenerationResult map[string]any

// SourceName returns the injected source_name, if any.
func (r GenerationResult) SourceName() string {
	s, _ := r["source_name"].(string)
	return s
}

// Mode returns the injected mode, if any.
func (r GenerationResult) Mode() string {
	s, _ := r["mode"].(string)
	return s
}

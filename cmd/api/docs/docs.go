// Package docs holds the swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "description": "Reports that the backend is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PingResponse"}}
                }
            }
        },
        "/generate-quiz": {
            "post": {
                "description": "Builds quiz questions or flashcards from a topic or an uploaded PDF, DOCX or PPTX. An uploaded file takes precedence over the topic.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a quiz or flashcards",
                "parameters": [
                    {"type": "string", "default": "quiz", "description": "quiz or flashcard", "name": "mode", "in": "formData"},
                    {"type": "integer", "default": 5, "description": "Number of questions or flashcards", "name": "num_questions", "in": "formData"},
                    {"type": "string", "description": "Target level, quiz mode only", "name": "difficulty", "in": "formData"},
                    {"type": "string", "description": "Topic to generate from", "name": "topic", "in": "formData"},
                    {"type": "file", "description": "Document to generate from", "name": "file", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/submit-result": {
            "post": {
                "description": "Stores a finished quiz. Duplicate submissions are stored as separate records.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["study"],
                "summary": "Save a quiz result",
                "parameters": [
                    {"description": "Quiz result", "name": "result", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizResultRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/submit-flashcard-session": {
            "post": {
                "description": "Stores a summary of a completed flashcard run.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["study"],
                "summary": "Save a flashcard session",
                "parameters": [
                    {"description": "Flashcard session", "name": "session", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FlashcardSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/dashboard/{user_id}": {
            "get": {
                "description": "Returns up to 100 stored quiz results for the user, oldest first.",
                "produces": ["application/json"],
                "tags": ["study"],
                "summary": "List a user's quiz results",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.QuizResultResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Flashcard": {
            "type": "object",
            "properties": {
                "definition": {"type": "string"},
                "term": {"type": "string"}
            }
        },
        "domain.QuizQuestion": {
            "type": "object",
            "properties": {
                "correctAnswer": {"type": "string"},
                "explanation": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "questionText": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "dto.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "msg": {"type": "string"}
            }
        },
        "dto.FlashcardSessionRequest": {
            "type": "object",
            "required": ["card_count", "source_name", "user_id"],
            "properties": {
                "card_count": {"type": "integer"},
                "source_name": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "dto.GenerationResponse": {
            "type": "object",
            "properties": {
                "flashcards": {"type": "array", "items": {"$ref": "#/definitions/domain.Flashcard"}},
                "mode": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/domain.QuizQuestion"}},
                "source_name": {"type": "string"}
            }
        },
        "dto.PingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.QuizResultRequest": {
            "type": "object",
            "required": ["score", "topic", "total_questions", "user_id"],
            "properties": {
                "score": {"type": "integer"},
                "topic": {"type": "string"},
                "total_questions": {"type": "integer"},
                "user_id": {"type": "string"}
            }
        },
        "dto.QuizResultResponse": {
            "type": "object",
            "properties": {
                "score": {"type": "integer"},
                "topic": {"type": "string"},
                "total_questions": {"type": "integer"},
                "user_id": {"type": "string"}
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/dto.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "EduGenie API",
	Description:      "Generates quizzes and flashcards from a topic or an uploaded document and stores study results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

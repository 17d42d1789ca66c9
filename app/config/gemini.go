package config

import (
	"context"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var GeminiModel *genai.GenerativeModel

// InitGemini initializes the Gemini API client used for parent summary
// generation. Missing API key is not fatal; summaries are skipped until one
// is configured.
func InitGemini() error {
	if AppConfig.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(AppConfig.Gemini.APIKey))
	if err != nil {
		return fmt.Errorf("unable to create Gemini client: %v", err)
	}
	GeminiModel = client.GenerativeModel(AppConfig.Gemini.Model)
	log.Println("Gemini API client initialized successfully")
	return nil
}

package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Fixed replies returned instead of an error so the chat widget always
// has something to render.
const (
	msgUnavailable = "AI Service Unavailable: Please configure the Gemini API key."
	msgFailed      = "Sorry, I could not process that request right now. Please try again later."
)

// Service runs assistant queries against Gemini.
type Service struct {
	client *genai.Client
	model  string
	src    DataSources
	logger *slog.Logger
}

// NewService wires the assistant. A nil client is allowed and produces
// the unavailable reply for every question.
func NewService(client *genai.Client, model string, src DataSources, logger *slog.Logger) *Service {
	if model == "" {
		model = defaultModel
	}
	return &Service{client: client, model: model, src: src, logger: logger}
}

// Ask answers a single question grounded on the current dashboard data.
// Transport and model failures degrade to a fixed reply; only context
// assembly errors propagate.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if s.client == nil {
		return msgUnavailable, nil
	}
	data, err := buildContext(ctx, s.src)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("Current dashboard data:\n\n%s\nQuestion: %s", data, question)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	})
	if err != nil {
		s.logger.Error("assistant query failed", slog.Any("error", err))
		return msgFailed, nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return msgFailed, nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

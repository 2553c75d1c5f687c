// Package feedback generates resume review feedback through the OpenAI chat
// completion API.
package feedback

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

const prompt = "You're a career advisor. Please review the following resume and provide professional feedback, limited to about 70 words:\n\n%s"

// OpenAIReviewer implements ports.FeedbackEngine against the OpenAI API.
type OpenAIReviewer struct {
	client *openai.Client
	model  string
}

var _ ports.FeedbackEngine = (*OpenAIReviewer)(nil)

func NewOpenAIReviewer(apiKey, model string) *OpenAIReviewer {
	return &OpenAIReviewer{client: openai.NewClient(apiKey), model: model}
}

// Review extracts the text of the PDF and asks the model for feedback.
func (r *OpenAIReviewer) Review(ctx context.Context, pdfData []byte) (string, error) {
	text, err := extractText(pdfData)
	if err != nil {
		return "", err
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(prompt, text),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "No feedback generated.", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// extractText pulls the plain text out of a PDF document.
func extractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("could not extract text from pdf")
	}
	return text, nil
}

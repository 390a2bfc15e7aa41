package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const extractionPrompt = `You read photographs of packing/shipping bills.
Extract the following fields and answer with a single JSON object, nothing else:
{"customer_name": "", "address": "", "invoice_no": "", "bill_date": ""}
Use an empty string for any field you cannot read. Keep bill_date exactly as
printed on the document.`

// OpenAIExtractor turns a bill photograph into candidate record fields via a
// vision chat completion. A mock mode is available for local development
// without an API key.

type OpenAIExtractor struct {
	client   *openai.Client
	model    string
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IFieldExtractor = (*OpenAIExtractor)(nil)

func NewOpenAIExtractor(apiKey string, log zerolog.Logger) (*OpenAIExtractor, error) {
	if isExtractorMockEnabled() {
		log.Info().Msg("field extractor mock mode enabled")
		return &OpenAIExtractor{mockMode: true, log: log}, nil
	}

	if apiKey == "" {
		return nil, ErrMissingOpenAIAPIKey
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}, nil
}

func (e *OpenAIExtractor) Extract(ctx context.Context, image []byte) (entities.ExtractedFields, error) {
	if e.mockMode {
		e.log.Debug().Int("image_len", len(image)).Msg("mock extraction")
		return entities.ExtractedFields{}, nil
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: extractionPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		return entities.ExtractedFields{}, err
	}
	if len(resp.Choices) == 0 {
		return entities.ExtractedFields{}, errors.New("empty completion response")
	}

	var fields entities.ExtractedFields
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &fields); err != nil {
		return entities.ExtractedFields{}, err
	}

	e.log.Debug().
		Str("invoice_no", fields.InvoiceNo).
		Bool("has_customer", fields.CustomerName != "").
		Msg("extraction completed")
	return fields, nil
}

func isExtractorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EXTRACTOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

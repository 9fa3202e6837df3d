package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"

	"github.com/medsum/medsum/internal/errors"
)

const (
	// DefaultModelName is the Responses API model used when none is configured.
	DefaultModelName = "gpt-4o-mini"

	// limitOutputFactor caps how far an incomplete response's budget may
	// grow, as a multiple of the requested Length.MaxTokens.
	limitOutputFactor = 4

	// minOutputTokens is the smallest budget the API accepts.
	minOutputTokens int64 = 16

	systemPrompt = `You summarize clinical notes for healthcare staff.

Rules:
- Keep diagnoses, symptoms, medications, doses, vitals, dates and follow-up actions.
- Do not add facts that are not in the text.
- Plain prose, no lists, no headings, no preamble.
- Same language as the input.`
)

// OpenAIConfig configures an OpenAIModel.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIModel summarizes through the OpenAI Responses API or any compatible
// endpoint.
type OpenAIModel struct {
	client openai.Client
	model  string
	device string
}

// NewOpenAIModel builds a model client. The API key may be empty for local
// OpenAI-compatible servers that do not check it.
func NewOpenAIModel(cfg OpenAIConfig, opts ...option.RequestOption) *OpenAIModel {
	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	device := "openai"
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
		device = cfg.BaseURL
	}
	reqOpts = append(reqOpts, opts...)

	model := cfg.Model
	if model == "" {
		model = DefaultModelName
	}
	return &OpenAIModel{
		client: openai.NewClient(reqOpts...),
		model:  model,
		device: device,
	}
}

// Info implements Model.
func (m *OpenAIModel) Info() Info {
	return Info{Name: m.model, Device: m.device}
}

// Summarize implements Model. A response cut short by the output budget is
// retried with double the budget, up to limitOutputFactor times the request.
func (m *OpenAIModel) Summarize(ctx context.Context, text string, length Length) (string, error) {
	const op = errors.Op("engine.OpenAIModel.Summarize")

	maxOutputTokens := max(length.MaxTokens, minOutputTokens)
	limit := maxOutputTokens * limitOutputFactor
	instructions := fmt.Sprintf("%s\n- Aim for %d to %d tokens.", systemPrompt, length.MinTokens, length.MaxTokens)

	for {
		resp, err := m.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           m.model,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Instructions:    openai.String(instructions),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(text),
			},
		})
		if err != nil {
			return "", errors.E(op, errors.KindNetwork, "do request", err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limit {
				maxOutputTokens = min(maxOutputTokens*2, limit)
				continue
			}
			return "", errors.E(op, errors.KindSummarization, fmt.Sprintf(
				"response is incomplete (reason = %s, maxOutputTokens = %d)",
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			))
		}

		summary := strings.TrimSpace(resp.OutputText())
		if summary == "" {
			return "", errors.E(op, errors.KindSummarization, fmt.Sprintf("output text is missing (status = %s)", resp.Status))
		}
		return summary, nil
	}
}

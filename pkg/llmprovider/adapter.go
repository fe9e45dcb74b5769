package llmprovider

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// chatModel is the subset of llms.Model used by the adapter.
type chatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// LangchainAdapter adapts a langchaingo chat model to the Provider interface.
// It serves Azure OpenAI deployments and any OpenAI-compatible endpoint.
type LangchainAdapter struct {
	name  string
	model string
	llm   chatModel
}

// NewLangchainAdapter creates a new adapter named name for model.
func NewLangchainAdapter(name, model string, llm chatModel) *LangchainAdapter {
	return &LangchainAdapter{name: name, model: model, llm: llm}
}

// GenerateContent implements Provider interface
func (a *LangchainAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, req.SystemInstruction.Text()))
	}
	for _, msg := range req.Messages {
		messages = append(messages, llms.TextParts(toMessageType(msg.Role), msg.Text()))
	}

	var opts []llms.CallOption
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := a.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return nil, ErrEmptyResponse
	}

	choice := resp.Choices[0]
	return &Response{
		Content:      TextMessage(RoleAssistant, choice.Content),
		ProviderName: a.name,
		ModelName:    a.model,
		Usage:        usageFromInfo(choice.GenerationInfo),
	}, nil
}

// Name returns provider name
func (a *LangchainAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *LangchainAdapter) Model() string {
	return a.model
}

func toMessageType(role string) schema.ChatMessageType {
	switch role {
	case RoleSystem:
		return schema.ChatMessageTypeSystem
	case RoleAssistant:
		return schema.ChatMessageTypeAI
	default:
		return schema.ChatMessageTypeHuman
	}
}

// usageFromInfo reads the token counters the openai client reports in GenerationInfo.
func usageFromInfo(info map[string]any) *Usage {
	usage := &Usage{
		InputTokens:  intFromInfo(info, "PromptTokens"),
		OutputTokens: intFromInfo(info, "CompletionTokens"),
		TotalTokens:  intFromInfo(info, "TotalTokens"),
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return usage
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

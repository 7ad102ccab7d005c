package openai

import (
	"context"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/worlddata/insights-api/internal/config"
)

// Client gera o texto de insight a partir do prompt montado. Uma chamada por
// requisição, sem streaming.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type client struct {
	api         *openai.Client
	model       string
	temperature float32
}

func NewClient(cfg config.OpenAI) Client {
	return &client{
		api:         openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
	}
}

func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar o serviço de completions")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("serviço de completions retornou resposta vazia")
	}

	return resp.Choices[0].Message.Content, nil
}

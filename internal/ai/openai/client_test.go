package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletions struct {
	calls []openai.ChatCompletionNewParams
	resp  *openai.ChatCompletion
	err   error
}

func (f *fakeCompletions) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.calls = append(f.calls, body)
	return f.resp, f.err
}

func completion(contents ...string) *openai.ChatCompletion {
	resp := &openai.ChatCompletion{}
	for _, c := range contents {
		choice := openai.ChatCompletionChoice{}
		choice.Message.Content = c
		resp.Choices = append(resp.Choices, choice)
	}
	return resp
}

func TestGeneratorReturnsFirstChoice(t *testing.T) {
	fake := &fakeCompletions{resp: completion("  {\"Name\": \"Ana\"}\n", "ignored")}
	g := newGenerator(fake, Config{})

	output, err := g.GenerateContent(context.Background(), "resume prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"Name": "Ana"}`, output)

	require.Len(t, fake.calls, 1)
	call := fake.calls[0]
	assert.Equal(t, openai.ChatModel(defaultModel), call.Model)
	assert.Equal(t, int64(defaultMaxTokens), call.MaxTokens.Value)
	assert.InDelta(t, defaultTemperature, call.Temperature.Value, 1e-9)
	require.Len(t, call.Messages, 1)
	require.NotNil(t, call.Messages[0].OfUser)
	assert.Equal(t, "resume prompt", call.Messages[0].OfUser.Content.OfString.Value)
}

func TestGeneratorHonoursConfig(t *testing.T) {
	fake := &fakeCompletions{resp: completion("ok")}
	temperature := 0.1
	g := newGenerator(fake, Config{Model: "gpt-4o-mini", MaxTokens: 1000, Temperature: &temperature})

	_, err := g.GenerateContent(context.Background(), "p")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", g.Model())
	assert.Equal(t, int64(1000), fake.calls[0].MaxTokens.Value)
	assert.InDelta(t, 0.1, fake.calls[0].Temperature.Value, 1e-9)
}

func TestGeneratorKeepsZeroTemperature(t *testing.T) {
	fake := &fakeCompletions{resp: completion("ok")}
	zero := 0.0
	g := newGenerator(fake, Config{Temperature: &zero})

	_, err := g.GenerateContent(context.Background(), "p")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.True(t, fake.calls[0].Temperature.Valid())
	assert.Zero(t, fake.calls[0].Temperature.Value)
}

func TestGeneratorErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fake *fakeCompletions
	}{
		{name: "api error", fake: &fakeCompletions{err: errors.New("429 quota exceeded")}},
		{name: "no choices", fake: &fakeCompletions{resp: completion()}},
		{name: "nil response", fake: &fakeCompletions{}},
		{name: "blank content", fake: &fakeCompletions{resp: completion("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newGenerator(tt.fake, Config{}).GenerateContent(context.Background(), "p")
			assert.Error(t, err)
		})
	}
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator(" ", Config{})
	assert.Error(t, err)
}

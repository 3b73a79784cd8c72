package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// chatModel is the slice of the ark client the generator needs; a stub
// stands in for it in tests.
type chatModel interface {
	Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Ark answers open questions with the ark chat model, grounded strictly in
// the supplied context chunks.
type Ark struct {
	model chatModel
}

func NewArk(m *ark.ChatModel) *Ark {
	a := &Ark{}
	if m != nil {
		a.model = m
	}
	return a
}

// Generate builds the grounded prompt and runs one completion. The caller
// owns timeout and retry policy.
func (a *Ark) Generate(ctx context.Context, system, question string, chunks []string) (string, error) {
	if a == nil || a.model == nil {
		return "", fmt.Errorf("chat model unavailable")
	}

	var sb strings.Builder
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nContext:\n")
	sb.WriteString(strings.Join(chunks, "\n"))

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(sb.String()),
	}

	out, err := a.model.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", fmt.Errorf("model returned empty message")
	}
	return strings.TrimSpace(out.Content), nil
}

package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

type fakeModel struct {
	reply    *schema.Message
	err      error
	messages []*schema.Message
}

func (f *fakeModel) Generate(_ context.Context, in []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.messages = in
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func TestGenerateGroundsPromptInContext(t *testing.T) {
	fake := &fakeModel{reply: schema.AssistantMessage("  Fries cost 80.  ", nil)}
	a := &Ark{model: fake}

	got, err := a.Generate(context.Background(), "system rules", "how much are fries?", []string{"Fries ₹80", "Coke ₹50"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got != "Fries cost 80." {
		t.Errorf("answer = %q, want trimmed content", got)
	}

	if len(fake.messages) != 2 {
		t.Fatalf("model got %d messages, want system + user", len(fake.messages))
	}
	if fake.messages[0].Role != schema.System || fake.messages[0].Content != "system rules" {
		t.Errorf("system message = %+v", fake.messages[0])
	}
	user := fake.messages[1].Content
	if !strings.Contains(user, "Question: how much are fries?") {
		t.Errorf("user prompt missing question: %q", user)
	}
	if !strings.Contains(user, "Fries ₹80\nCoke ₹50") {
		t.Errorf("user prompt missing joined context: %q", user)
	}
}

func TestGenerateModelFailure(t *testing.T) {
	a := &Ark{model: &fakeModel{err: errors.New("upstream 503")}}

	if _, err := a.Generate(context.Background(), "s", "q", nil); err == nil {
		t.Fatal("expected the model error to propagate")
	}
}

func TestGenerateWithoutModel(t *testing.T) {
	a := NewArk(nil)

	if _, err := a.Generate(context.Background(), "s", "q", nil); err == nil {
		t.Fatal("expected an error when the model is not configured")
	}
}

package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestOpenAIModelMapping(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Fatalf("resolveModel(gpt-4o-mini) = %q", got)
	}
	if got := resolveModel("gpt-4.1-nano", openaiModels); got != "gpt-4.1-nano" {
		t.Fatalf("expected pass-through for unknown model, got %q", got)
	}
}

func TestBuildOpenAIMessages(t *testing.T) {
	req := Request{
		System: "You are a tajweed examiner.",
		Messages: []Message{
			{Role: RoleUser, Content: "score this"},
			{Role: RoleAssistant, Content: "ready"},
		},
	}

	msgs := buildOpenAIMessages(req)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("expected system first, got %q", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser {
		t.Fatalf("expected user second, got %q", msgs[1].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Fatalf("expected assistant third, got %q", msgs[2].Role)
	}
}

func TestAudioExtension(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"audio/webm", "webm"},
		{"audio/webm;codecs=opus", "webm"},
		{"audio/mpeg", "mp3"},
		{"audio/x-wav", "wav"},
		{"audio/wave", "wav"},
		{"audio/ogg", "ogg"},
		{"application/octet-stream", "webm"},
		{"", "webm"},
	}
	for _, tt := range tests {
		if got := audioExtension(tt.mime); got != tt.want {
			t.Errorf("audioExtension(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

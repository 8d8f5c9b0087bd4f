package gemini

import (
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

func TestBuildHistoryRoleMapping(t *testing.T) {
	history := []*models.ConversationMessage{
		{Role: models.RoleUser, Content: "dam koto?"},
		{Role: models.RoleAssistant, Content: "750 taka"},
	}

	contents := buildHistory(history)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, genai.Part(genai.Text("dam koto?")), contents[0].Parts[0])
	assert.Equal(t, genai.Part(genai.Text("750 taka")), contents[1].Parts[0])
}

func TestBuildHistoryKeepsMostRecent(t *testing.T) {
	var history []*models.ConversationMessage
	for i := 0; i < HistoryLimit+5; i++ {
		history = append(history, &models.ConversationMessage{
			Role:    models.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	contents := buildHistory(history)
	require.Len(t, contents, HistoryLimit)
	assert.Equal(t, genai.Part(genai.Text("message 5")), contents[0].Parts[0])
	assert.Equal(t, genai.Part(genai.Text(fmt.Sprintf("message %d", HistoryLimit+4))), contents[HistoryLimit-1].Parts[0])
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))
	assert.Equal(t, "", extractText(&genai.GenerateContentResponse{}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("  hello "), genai.Text("world  ")},
			},
		}},
	}
	assert.Equal(t, "hello world", extractText(resp))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.Error(t, err)
}

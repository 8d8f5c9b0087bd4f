package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

func newConversation(state models.ConversationState) *models.Conversation {
	return &models.Conversation{
		PageID:   "page-1",
		SenderID: "sender-1",
		State:    state,
	}
}

func TestAdvanceFromIdle(t *testing.T) {
	tests := []struct {
		name   string
		intent models.Intent
		want   models.ConversationState
	}{
		{"order intent starts collection", models.IntentOrderIntent, models.StateCollectingName},
		{"price inquiry", models.IntentPriceInquiry, models.StateProductInquiry},
		{"info request", models.IntentInfoRequest, models.StateProductInquiry},
		{"greeting", models.IntentGreeting, models.StateGreeting},
		{"general", models.IntentGeneral, models.StateGreeting},
		{"confirmation means nothing yet", models.IntentConfirmation, models.StateGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newConversation(models.StateIdle)
			Advance(conv, tt.intent, "some message")
			assert.Equal(t, tt.want, conv.State)
		})
	}
}

func TestAdvanceOrderIntentFromInquiryStates(t *testing.T) {
	for _, state := range []models.ConversationState{models.StateGreeting, models.StateProductInquiry} {
		conv := newConversation(state)
		Advance(conv, models.IntentOrderIntent, "I will take it")
		assert.Equal(t, models.StateCollectingName, conv.State)
	}
}

func TestAdvanceCollectsName(t *testing.T) {
	conv := newConversation(models.StateCollectingName)

	Advance(conv, models.IntentGeneral, "  Rahim Uddin  ")

	require.NotNil(t, conv.CollectedName)
	assert.Equal(t, "Rahim Uddin", *conv.CollectedName)
	assert.Equal(t, models.StateCollectingPhone, conv.State)
}

func TestAdvanceCollectsValidPhone(t *testing.T) {
	conv := newConversation(models.StateCollectingPhone)

	Advance(conv, models.IntentGeneral, "call me at 01712345678")

	require.NotNil(t, conv.CollectedPhone)
	assert.Equal(t, "01712345678", *conv.CollectedPhone)
	assert.Equal(t, models.StateCollectingAddress, conv.State)
}

func TestAdvanceStaysOnInvalidPhone(t *testing.T) {
	conv := newConversation(models.StateCollectingPhone)

	Advance(conv, models.IntentGeneral, "call me")

	assert.Nil(t, conv.CollectedPhone)
	assert.Equal(t, models.StateCollectingPhone, conv.State)
}

func TestAdvanceAcceptsSpacedAndPrefixedPhones(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"017-1234-5678", "01712345678"},
		{"+8801712345678", "+8801712345678"},
		{"88 017 1234 5678", "8801712345678"},
	}

	for _, tt := range tests {
		conv := newConversation(models.StateCollectingPhone)
		Advance(conv, models.IntentGeneral, tt.text)
		require.NotNil(t, conv.CollectedPhone, "text %q", tt.text)
		assert.Equal(t, tt.want, *conv.CollectedPhone)
	}
}

func TestAdvanceCollectsAddress(t *testing.T) {
	conv := newConversation(models.StateCollectingAddress)

	Advance(conv, models.IntentGeneral, "House 12, Road 5, Dhanmondi, Dhaka")

	require.NotNil(t, conv.CollectedAddress)
	assert.Equal(t, "House 12, Road 5, Dhanmondi, Dhaka", *conv.CollectedAddress)
	assert.Equal(t, models.StateOrderConfirmation, conv.State)
}

func TestAdvanceConfirmationCompletes(t *testing.T) {
	conv := newConversation(models.StateOrderConfirmation)

	Advance(conv, models.IntentConfirmation, "yes")
	assert.Equal(t, models.StateCompleted, conv.State)
}

func TestAdvanceNonConfirmationStaysAtConfirmation(t *testing.T) {
	conv := newConversation(models.StateOrderConfirmation)

	Advance(conv, models.IntentGeneral, "hmm let me think")
	assert.Equal(t, models.StateOrderConfirmation, conv.State)
}

func TestCancellationResetsFromAnyState(t *testing.T) {
	name, phone, address := "Rahim", "01712345678", "Dhaka"
	states := []models.ConversationState{
		models.StateGreeting, models.StateProductInquiry, models.StateCollectingName,
		models.StateCollectingPhone, models.StateCollectingAddress, models.StateOrderConfirmation,
	}

	for _, state := range states {
		conv := newConversation(state)
		conv.CollectedName = &name
		conv.CollectedPhone = &phone
		conv.CollectedAddress = &address

		Advance(conv, models.IntentCancellation, "cancel")

		assert.Equal(t, models.StateIdle, conv.State, "from state %s", state)
		assert.Nil(t, conv.CollectedName)
		assert.Nil(t, conv.CollectedPhone)
		assert.Nil(t, conv.CollectedAddress)
	}
}

func TestFullOrderingCycle(t *testing.T) {
	conv := newConversation(models.StateIdle)

	Advance(conv, models.IntentOrderIntent, "I want to order the blue shirt")
	Advance(conv, models.IntentGeneral, "Rahim Uddin")
	Advance(conv, models.IntentGeneral, "01812345678")
	Advance(conv, models.IntentGeneral, "House 3, Mirpur, Dhaka")
	Advance(conv, models.IntentConfirmation, "confirm")

	assert.Equal(t, models.StateCompleted, conv.State)
	assert.True(t, conv.ReadyForOrder())
}

func TestNormalize(t *testing.T) {
	rulesAsk := &models.PageRules{AskClearerMedia: true}
	rulesNoAsk := &models.PageRules{AskClearerMedia: false}

	assert.Equal(t, "hello", Normalize(models.MessageTypeText, "hello", rulesAsk))
	assert.Contains(t, Normalize(models.MessageTypeImage, "", rulesAsk), "clearer photo")
	assert.NotContains(t, Normalize(models.MessageTypeImage, "", rulesNoAsk), "clearer photo")
	assert.Contains(t, Normalize(models.MessageTypeAudio, "", rulesAsk), "type")
	assert.NotEmpty(t, Normalize(models.MessageTypeSticker, "", rulesAsk))
	assert.Equal(t, "👍", Normalize(models.MessageTypeEmoji, "👍", rulesAsk))
	assert.NotEmpty(t, Normalize(models.MessageTypeEmoji, "", rulesAsk))
}

func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "01712345678", ExtractPhone("call me at 01712345678 please"))
	assert.Equal(t, "", ExtractPhone("no number here"))
	assert.Equal(t, "", ExtractPhone("01212345678")) // 012 is not a valid operator prefix
	assert.True(t, HasValidPhone("my number is 01912345678"))
	assert.False(t, HasValidPhone("0171234"))
}

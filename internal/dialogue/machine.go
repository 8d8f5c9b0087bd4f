// Package dialogue advances the per-(page, customer) data-collection state
// machine. The machine walks idle → collecting_name → collecting_phone →
// collecting_address → order_confirmation → completed, extracting the field
// each collection state owns, and resets to idle on cancellation from any
// state.
package dialogue

import (
	"strings"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// Advance applies one classified message to the conversation, mutating its
// state and collected fields in place. The completed state is transient: the
// orchestrator consumes it and resets the conversation after materializing
// the order.
func Advance(conv *models.Conversation, intent models.Intent, text string) {
	// Cancellation wins from every state.
	if intent == models.IntentCancellation {
		conv.ResetToIdle()
		return
	}

	switch conv.State {
	case models.StateIdle:
		switch intent {
		case models.IntentOrderIntent:
			conv.State = models.StateCollectingName
		case models.IntentPriceInquiry, models.IntentInfoRequest:
			conv.State = models.StateProductInquiry
		default:
			conv.State = models.StateGreeting
		}

	case models.StateGreeting, models.StateProductInquiry:
		if intent == models.IntentOrderIntent {
			conv.State = models.StateCollectingName
		}

	case models.StateCollectingName:
		name := strings.TrimSpace(text)
		conv.CollectedName = &name
		conv.State = models.StateCollectingPhone

	case models.StateCollectingPhone:
		if phone := ExtractPhone(text); phone != "" {
			conv.CollectedPhone = &phone
			conv.State = models.StateCollectingAddress
		}
		// No valid number: stay put and let the reply re-ask.

	case models.StateCollectingAddress:
		address := strings.TrimSpace(text)
		conv.CollectedAddress = &address
		conv.State = models.StateOrderConfirmation

	case models.StateOrderConfirmation:
		if intent == models.IntentConfirmation {
			conv.State = models.StateCompleted
		}
	}
}

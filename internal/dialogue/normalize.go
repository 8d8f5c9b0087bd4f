package dialogue

import (
	"strings"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// Sentinel texts substituted for non-text messages. Classification and the
// prompt layer always operate on the normalized text, never on raw media.
const (
	sentinelUnclearImage = "[customer sent a photo; politely ask for a clearer photo of the product]"
	sentinelImage        = "[customer sent a photo]"
	sentinelAudio        = "[customer sent a voice message; politely ask them to type the message instead]"
	sentinelSticker      = "[customer sent a sticker]"
	sentinelEmoji        = "[customer sent an emoji]"
)

// Normalize rewrites one inbound message variant into the plain text the
// classifier and prompt builder see.
func Normalize(msgType models.MessageType, text string, rules *models.PageRules) string {
	switch msgType {
	case models.MessageTypeImage:
		return normalizeImage(rules)
	case models.MessageTypeAudio:
		return sentinelAudio
	case models.MessageTypeSticker:
		return sentinelSticker
	case models.MessageTypeEmoji:
		if strings.TrimSpace(text) != "" {
			return text
		}
		return sentinelEmoji
	default:
		return text
	}
}

func normalizeImage(rules *models.PageRules) string {
	if rules != nil && rules.AskClearerMedia {
		return sentinelUnclearImage
	}
	return sentinelImage
}

package models

// Intent is the classified purpose of an inbound message.
type Intent string

const (
	IntentPriceInquiry Intent = "price_inquiry"
	IntentOrderIntent  Intent = "order_intent"
	IntentInfoRequest  Intent = "info_request"
	IntentGreeting     Intent = "greeting"
	IntentConfirmation Intent = "confirmation"
	IntentCancellation Intent = "cancellation"
	IntentGeneral      Intent = "general"
)

// Sentiment is the detected tone of an inbound message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ConversationState is the current phase of the data-collection dialogue.
type ConversationState string

const (
	StateIdle              ConversationState = "idle"
	StateGreeting          ConversationState = "greeting"
	StateProductInquiry    ConversationState = "product_inquiry"
	StateCollectingName    ConversationState = "collecting_name"
	StateCollectingPhone   ConversationState = "collecting_phone"
	StateCollectingAddress ConversationState = "collecting_address"
	StateOrderConfirmation ConversationState = "order_confirmation"
	StateCompleted         ConversationState = "completed"
)

// MessageType is the inbound attachment variant.
type MessageType string

const (
	MessageTypeText    MessageType = "text"
	MessageTypeImage   MessageType = "image"
	MessageTypeAudio   MessageType = "audio"
	MessageTypeSticker MessageType = "sticker"
	MessageTypeEmoji   MessageType = "emoji"
)

// Order statuses. An order starts pending when the fraud score is high,
// confirmed otherwise. Later transitions belong to order management, not
// this engine.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// Comment reaction types.
const (
	ReactionLike = "LIKE"
	ReactionLove = "LOVE"
)

// Message roles stored in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

package models

// InboundEvent is the webhook payload for one comment or inbox message.
type InboundEvent struct {
	PageID      string      `json:"pageId" binding:"required"`
	SenderID    string      `json:"senderId" binding:"required"`
	SenderName  string      `json:"senderName"`
	MessageText string      `json:"messageText"`
	MessageType MessageType `json:"messageType"`
	Attachments []string    `json:"attachments,omitempty"`
	IsComment   bool        `json:"isComment"`
	CommentID   string      `json:"commentId,omitempty"`
	PostID      string      `json:"postId,omitempty"`
	// UserID is the catalog owner (the platform user the page belongs to).
	UserID string `json:"userId" binding:"required"`
}

// ProductContext is the resolved product surface returned to the caller.
type ProductContext struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OutboundResult is the engine's answer for one inbound event.
type OutboundResult struct {
	Reply             string            `json:"reply"`
	Intent            Intent            `json:"intent"`
	Sentiment         Sentiment         `json:"sentiment"`
	ConversationState ConversationState `json:"conversationState"`
	ShouldReact       bool              `json:"shouldReact"`
	ReactionType      string            `json:"reactionType,omitempty"`
	FakeOrderScore    int               `json:"fakeOrderScore"`
	ProductContext    *ProductContext   `json:"productContext,omitempty"`

	// Comment events with buying intent get a short public acknowledgement
	// and the full reply is sent to the inbox instead.
	CommentReply    string `json:"commentReply,omitempty"`
	ShouldSendInbox bool   `json:"shouldSendInbox,omitempty"`
	InboxMessage    string `json:"inboxMessage,omitempty"`

	// Set only when an order was materialized on this event.
	OrderID       int64  `json:"orderId,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`

	// Skipped is true when automation is disabled for this channel.
	Skipped bool `json:"skipped,omitempty"`
}

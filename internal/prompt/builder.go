// Package prompt renders the full instruction text for the completion model
// from page rules, the current conversation snapshot and resolved context.
// Build is a pure function: identical inputs always produce an identical
// string, with no clock reads and no randomness.
package prompt

import (
	"fmt"
	"strings"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// Build renders the system instruction. Sections appear in fixed order; the
// product and post blocks are included only when present, and every rule
// bullet is gated on its PageRules flag.
func Build(rules *models.PageRules, conv *models.Conversation, product *models.Product, post *models.PostLink) string {
	var b strings.Builder

	b.WriteString("You are a sales assistant replying on behalf of a business page. ")
	b.WriteString("Answer customers naturally and help them order products.\n\n")

	if rules.BusinessDescription != "" {
		b.WriteString("About the business:\n")
		b.WriteString(rules.BusinessDescription)
		b.WriteString("\n\n")
	}

	if rules.CatalogSummary != "" {
		b.WriteString("Catalog overview:\n")
		b.WriteString(rules.CatalogSummary)
		b.WriteString("\n\n")
	}

	if product != nil {
		b.WriteString("Product in discussion:\n")
		fmt.Fprintf(&b, "- Name: %s\n", product.Name)
		fmt.Fprintf(&b, "- Price: %s\n", product.Price.String())
		if product.Description != "" {
			fmt.Fprintf(&b, "- Description: %s\n", product.Description)
		}
		if product.Active {
			b.WriteString("- Stock status: available\n")
		} else {
			b.WriteString("- Stock status: unavailable\n")
		}
		b.WriteString("Use the price and stock status above exactly as stated.\n\n")
	}

	if post != nil {
		b.WriteString("The customer is commenting on a published post")
		if post.DetectedProductName != nil && *post.DetectedProductName != "" {
			fmt.Fprintf(&b, " about %q", *post.DetectedProductName)
		}
		b.WriteString(".\n\n")
	}

	fmt.Fprintf(&b, "Reply in %s with a %s tone.\n\n", orDefault(rules.Language, "the customer's language"), orDefault(rules.Tone, "friendly"))

	var safety []string
	if rules.NeverFabricate {
		safety = append(safety, "Never invent products, prices or stock information.")
	}
	if rules.AskIfUnsure {
		safety = append(safety, "If you are not sure what the customer means, ask instead of guessing.")
	}
	if rules.AskClearerMedia {
		safety = append(safety, "If a photo is unclear, ask for a clearer one before answering about it.")
	}
	if rules.ConfirmBeforeOrder {
		safety = append(safety, "Always confirm the full order details before finalizing.")
	}
	writeBullets(&b, "Safety rules:", safety)

	var selling []string
	if rules.UseCatalogPrice {
		selling = append(selling, "Quote catalog prices only.")
	}
	if rules.DiscountAllowed {
		selling = append(selling, fmt.Sprintf("Discounts up to %d%% may be offered, never more.", rules.MaxDiscountPercent))
	} else {
		selling = append(selling, "Do not offer any discounts.")
	}
	if !rules.AllowLowProfit {
		selling = append(selling, "Do not agree to prices below the listed price.")
	}
	writeBullets(&b, "Selling rules:", selling)

	var payment []string
	if rules.CODAvailable {
		payment = append(payment, "Cash on delivery is available.")
	} else {
		payment = append(payment, "Cash on delivery is not available; payment is collected in advance.")
	}
	if rules.AdvancePaymentPercent > 0 && rules.AdvancePaymentThreshold.IsPositive() {
		payment = append(payment, fmt.Sprintf(
			"Orders above %s require a %d%% advance payment.",
			rules.AdvancePaymentThreshold.String(), rules.AdvancePaymentPercent))
	}
	writeBullets(&b, "Payment rules:", payment)

	b.WriteString("Current conversation:\n")
	fmt.Fprintf(&b, "- Stage: %s\n", conv.State)
	if conv.CollectedName != nil && *conv.CollectedName != "" {
		fmt.Fprintf(&b, "- Customer name: %s\n", *conv.CollectedName)
	}
	if conv.CollectedPhone != nil && *conv.CollectedPhone != "" {
		fmt.Fprintf(&b, "- Customer phone: %s\n", *conv.CollectedPhone)
	}
	if conv.CollectedAddress != nil && *conv.CollectedAddress != "" {
		fmt.Fprintf(&b, "- Delivery address: %s\n", *conv.CollectedAddress)
	}
	if conv.CurrentProductName != nil && *conv.CurrentProductName != "" {
		fmt.Fprintf(&b, "- Product of interest: %s\n", *conv.CurrentProductName)
	}
	b.WriteString("\n")

	if instruction := stateInstruction(conv.State); instruction != "" {
		b.WriteString(instruction)
		b.WriteString("\n\n")
	}

	b.WriteString("Keep replies short (under 80 words), use emoji sparingly, and never pressure the customer to buy.")

	return b.String()
}

func stateInstruction(state models.ConversationState) string {
	switch state {
	case models.StateCollectingName:
		return "Ask the customer for their full name to place the order."
	case models.StateCollectingPhone:
		return "Ask the customer for their mobile number."
	case models.StateCollectingAddress:
		return "Ask the customer for their full delivery address."
	case models.StateOrderConfirmation:
		return "Summarize the order details collected so far and ask the customer to confirm."
	case models.StateProductInquiry:
		return "Answer the product question and invite the customer to order if interested."
	default:
		return ""
	}
}

func writeBullets(b *strings.Builder, heading string, bullets []string) {
	if len(bullets) == 0 {
		return
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, bullet := range bullets {
		b.WriteString("- ")
		b.WriteString(bullet)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

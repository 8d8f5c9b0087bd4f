// Package classifier maps free message text onto the fixed intent and
// sentiment enumerations. Classification is pure keyword/regex matching over
// static rule tables; there is no model call and no side effect.
package classifier

import (
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type Classifier struct {
	rules *RuleSet
}

// New builds a classifier over the given rule set; nil means the built-in
// default tables.
func New(rules *RuleSet) *Classifier {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Classifier{rules: rules}
}

// ClassifyIntent evaluates intents in fixed priority order and returns on
// the first match, falling back to general.
func (c *Classifier) ClassifyIntent(text string) models.Intent {
	for _, intent := range c.rules.Priority {
		for _, pattern := range c.rules.Patterns[intent] {
			if pattern.MatchString(text) {
				return intent
			}
		}
	}
	return models.IntentGeneral
}

// ClassifySentiment checks positive patterns first, then negative, and
// defaults to neutral.
func (c *Classifier) ClassifySentiment(text string) models.Sentiment {
	for _, pattern := range c.rules.Positive {
		if pattern.MatchString(text) {
			return models.SentimentPositive
		}
	}
	for _, pattern := range c.rules.Negative {
		if pattern.MatchString(text) {
			return models.SentimentNegative
		}
	}
	return models.SentimentNeutral
}

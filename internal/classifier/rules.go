package classifier

import (
	"regexp"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// RuleSet maps each intent to its keyword patterns and fixes the priority in
// which intents are evaluated. Tables are static per invocation; the engine
// never learns or mutates them at runtime.
type RuleSet struct {
	Version  string
	Priority []models.Intent
	Patterns map[models.Intent][]*regexp.Regexp

	Positive []*regexp.Regexp
	Negative []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// DefaultRuleSet returns the built-in bilingual (English + Bengali, script
// and romanized) keyword tables.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version: "2024-06",
		Priority: []models.Intent{
			models.IntentPriceInquiry,
			models.IntentOrderIntent,
			models.IntentInfoRequest,
			models.IntentGreeting,
			models.IntentConfirmation,
			models.IntentCancellation,
		},
		Patterns: map[models.Intent][]*regexp.Regexp{
			models.IntentPriceInquiry: compileAll(
				`price`, `cost`, `how much`, `dam`, `koto`, `দাম`, `কত`, `মূল্য`, `taka`, `টাকা`, `tk\b`,
			),
			models.IntentOrderIntent: compileAll(
				`buy`, `order`, `purchase`, `i want`, `need this`, `kinbo`, `nibo`, `nite chai`,
				`কিনব`, `কিনতে`, `অর্ডার`, `নিব`, `নিতে চাই`,
			),
			models.IntentInfoRequest: compileAll(
				`available`, `in stock`, `stock`, `details`, `size`, `color`, `colour`, `pawa jabe`,
				`স্টক`, `পাওয়া যাবে`, `বিস্তারিত`, `সাইজ`, `কালার`,
			),
			models.IntentGreeting: compileAll(
				`\bhi\b`, `\bhello\b`, `\bhey\b`, `salam`, `assalamu`, `আসসালামু`, `সালাম`, `হ্যালো`, `হাই`,
			),
			models.IntentConfirmation: compileAll(
				`\byes\b`, `\bok\b`, `\bokay\b`, `confirm`, `sure`, `thik ache`, `hobe`,
				`হ্যাঁ`, `জ্বি`, `ঠিক আছে`, `কনফার্ম`, `হবে`, `আচ্ছা`,
			),
			models.IntentCancellation: compileAll(
				`\bno\b`, `cancel`, `later`, `not now`, `bad den`, `lagbe na`, `pore`,
				`ক্যানসেল`, `বাতিল`, `পরে`, `লাগবে না`, `দরকার নেই`,
			),
		},
		Positive: compileAll(
			`thank`, `great`, `good`, `nice`, `love`, `excellent`, `awesome`, `dhonnobad`, `khub bhalo`,
			`ধন্যবাদ`, `ভালো`, `সুন্দর`, `চমৎকার`, `দারুণ`, `😍`, `❤`, `👍`,
		),
		Negative: compileAll(
			`bad`, `worst`, `terrible`, `fraud`, `fake`, `scam`, `cheat`, `baje`, `kharap`,
			`খারাপ`, `বাজে`, `প্রতারণা`, `ভুয়া`, `ফালতু`, `😡`, `👎`,
		),
	}
}

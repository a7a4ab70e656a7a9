package conversation

import "strings"

var endOfSequenceTokens = []string{
	"</s>",
	"<|endoftext|>",
	"<|im_end|>",
}

// CleanReply prepares generated text for use as an assistant turn: it drops
// trailing end-of-sequence sentinels and surrounding whitespace.
func CleanReply(text string) string {
	s := strings.TrimSpace(text)
	for {
		trimmed := s
		for _, token := range endOfSequenceTokens {
			trimmed = strings.TrimSuffix(trimmed, token)
		}
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

package tokenizer

import (
	"sync"

	tiktoken "github.com/tiktoken-go/tokenizer"
)

var (
	codecOnce sync.Once
	codec     tiktoken.Codec
	codecErr  error
)

func getCodec() (tiktoken.Codec, error) {
	codecOnce.Do(func() {
		codec, codecErr = tiktoken.Get(tiktoken.Cl100kBase)
	})
	return codec, codecErr
}

// CountTokens estimates the token count of text. The BPE vocabulary is not
// Gemini's own, so treat the result as an estimate, not a hard limit.
func CountTokens(text string) (int, error) {
	c, err := getCodec()
	if err != nil {
		return 0, err
	}
	ids, _, err := c.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

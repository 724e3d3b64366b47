package parser

import "regexp"

// FencedStrategy pulls a JSON array out of a Markdown code block. Runs on
// the raw completion, before fence markers are stripped.
type FencedStrategy struct{}

var fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")

func (s *FencedStrategy) Name() string { return "fenced" }

func (s *FencedStrategy) Extract(text string) (string, bool) {
	for _, m := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		if candidate, ok := extractArray(m[1], 0); ok {
			return candidate, true
		}
	}
	return "", false
}

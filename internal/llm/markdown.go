package llm

import "strings"

// cleanMarkdownWrapper strips a ``` or ```json fence around a reply.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if newline := strings.Index(content, "\n"); newline >= 0 {
		// Drop the language tag line, if any.
		if tag := strings.TrimSpace(content[:newline]); !strings.ContainsAny(tag, "{[") {
			content = content[newline+1:]
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

// CleanJSON returns text with surrounding whitespace and markdown fences removed.
func CleanJSON(text string) string {
	return cleanMarkdownWrapper(text)
}

// Package llm provides a provider-neutral client for structured text generation.
// It supports Gemini, OpenAI, Anthropic and a local Ollama server. Each request
// carries an optional response schema which providers enforce natively where
// they can.
package llm

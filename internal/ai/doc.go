// Package ai talks to the DeepSeek chat-completion API through the
// OpenAI-compatible SDK and extracts QUESTION/ANSWER pairs from replies.
package ai

package common

// Store keys, one per persisted collection.
const (
	KeyFlashcards  = "studyhub_flashcards"
	KeyPosts       = "studyhub_posts"
	KeyAPIKeys     = "studyhub_apikeys"
	KeyChatHistory = "studyhub_chat"
)

// Provider names used in the credential mapping.
const (
	ProviderYouTube  = "youtube"
	ProviderDeepSeek = "deepseek"
)

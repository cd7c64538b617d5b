// Package cli implements the interactive StudyHub terminal.
//
// The REPL reads one command per line and dispatches to App methods. Commands
// that need more input prompt for it; API keys are read without echo.
//
//	cards [category]     list flashcards
//	addcard              create a flashcard
//	editcard <id>        edit a flashcard
//	delcard <id>         delete a flashcard
//	generate <topic>     generate flashcards about a topic
//	quick <topic>        generate five flashcards, appended
//	upload <path|s3uri>  generate flashcards from a .txt or .md document
//	study                walk through all flashcards
//	posts [category] [recent|popular|trending]
//	post                 create a community post
//	delpost <id>         delete a post
//	like <id>            like or unlike a post
//	chat                 talk to the AI assistant
//	history              show the chat history
//	videos <topic>       search tutorial videos
//	keys                 show configured API keys
//	setkey <provider>    store an API key (youtube, deepseek)
//	stats                show collection counters
//	reset                delete all local data
//	exit | quit          leave
package cli

// Package httpapi exposes the StudyHub services as a localhost JSON API.
//
//	GET    /health
//	GET    /flashcards?category=     POST /flashcards
//	GET    /flashcards/{id}          PUT  /flashcards/{id}    DELETE /flashcards/{id}
//	POST   /flashcards/generate      {"topic": ...} | {"document": ...} | {"text": ...}
//	GET    /study?category=
//	GET    /posts?category=&sort=    POST /posts
//	DELETE /posts/{id}               POST /posts/{id}/like
//	GET    /chat                     POST /chat
//	GET    /videos?topic=
//	GET    /keys                     PUT  /keys/{provider}
//	GET    /stats
//
// Request bodies must be sent as application/json; anything else is answered
// with 415. Generation only loads s3:// documents, never local paths. A
// category filter other than "all" matches stored category names exactly.
//
// Errors are JSON objects with an "error" field. A missing provider key is
// answered with 428 and the provider description so a front end can ask the
// user for it.
package httpapi

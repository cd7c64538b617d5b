// Package services implements the StudyHub use cases on top of the store:
// flashcard, post and chat CRUD, API credential management and AI flashcard
// generation.
//
// Every mutation re-reads the whole collection, modifies it and writes it
// back. There is no locking: two concurrent writers to one collection can
// lose an update.
package services

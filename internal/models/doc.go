// Package models defines the StudyHub entities persisted in the local store
// and the display records returned by the external API clients.
//
// JSON field names are the persisted wire format; changing them breaks
// existing stores.
package models

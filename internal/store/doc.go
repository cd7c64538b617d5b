// Package store is the typed persistent state of StudyHub.
//
// Each collection lives as one JSON document under a namespaced key of a
// kv.Repository. Reads never fail on absent or corrupt documents: the
// collection default is returned and a warning is logged. Writes replace the
// whole document and report backend failures as *common.StorageError.
package store

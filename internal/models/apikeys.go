package models

import "github.com/dmitrijs2005/studyhub/internal/common"

// APIKeys maps a provider name to its secret.
type APIKeys map[string]string

// Providers lists the providers the credential mapping knows about.
var Providers = []string{common.ProviderYouTube, common.ProviderDeepSeek}

// DefaultAPIKeys returns the mapping with every provider present and empty.
func DefaultAPIKeys() APIKeys {
	keys := make(APIKeys, len(Providers))
	for _, p := range Providers {
		keys[p] = ""
	}
	return keys
}

// IsProvider reports whether name is a known provider.
func IsProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}

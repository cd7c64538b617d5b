package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/studyhub/internal/common"
)

var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", common.NewValidationError(field, "")
	}
	return v, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

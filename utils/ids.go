package utils

import "github.com/segmentio/ksuid"

// Id prefixes per entity.
const (
	IssueIDPrefix    = "LI"
	ResponseIDPrefix = "RES"
	LawyerIDPrefix   = "LAW"
	UserIDPrefix     = "USR"
)

// NewID generates a k-sortable unique id carrying the given entity prefix.
func NewID(prefix string) string {
	return prefix + "_" + ksuid.New().String()
}

// Package idgen generates short URL-safe string primary keys.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the character set for the random portion of an ID.
var Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters after the prefix.
var Length = 12

// Entity prefixes.
const (
	PrefixOrganization = "org-"
	PrefixCampaign     = "cmp-"
	PrefixChannel      = "chn-"
	PrefixContent      = "cnt-"
	PrefixMetrics      = "met-"
	PrefixBenchmark    = "bmk-"
	PrefixChatSession  = "chat-"
	PrefixChatMessage  = "msg-"
)

// New returns a new unique ID with the given prefix.
func New(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}

// Must is New but panics on error. The underlying generator only fails
// when crypto/rand does, which is not recoverable anyway.
func Must(prefix string) string {
	id, err := New(prefix)
	if err != nil {
		panic(err)
	}
	return id
}

package core

import "strings"

// domainKeyMaxLen caps the fallback bucket key for senders without a
// recognizable address, so malformed senders still group.
const domainKeyMaxLen = 50

// ExtractDomain derives the bucket key used to group unresolved
// senders for the curation report. Display-name forms
// ("Jane Doe <jane@example.com>") are unwrapped first; the key is the
// address's domain, lowercased. Senders without a recognizable address
// fall back to their first 50 characters, lowercased. The function
// never fails; empty input yields an empty key.
func ExtractDomain(sender string) string {
	addr := sender
	if strings.Contains(addr, "<") {
		addr = strings.Split(strings.Split(addr, "<")[1], ">")[0]
	}
	if strings.Contains(addr, "@") {
		return strings.ToLower(strings.Split(addr, "@")[1])
	}
	addr = strings.ToLower(addr)
	if runes := []rune(addr); len(runes) > domainKeyMaxLen {
		return string(runes[:domainKeyMaxLen])
	}
	return addr
}

package nftmeta

import "strings"

// Trait is a single NFT attribute in OpenSea metadata form.
type Trait struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// FrameRecord is the metadata exported for one top-level frame.
// Field order is the serialized key order.
type FrameRecord struct {
	FrameID    int     `json:"frame_id"`
	Name       string  `json:"name"`
	Attributes []Trait `json:"attributes"`
}

// StripOrderingPrefix removes authoring-time ordering prefixes such as
// "2. " from a layer or property name: "2. Eyes" becomes "Eyes".
// Prefixes are removed repeatedly, so the result never has one left.
// Layer names and property values are treated alike: a multi-digit prefix
// such as "10. " is stripped from both, not only from values.
func StripOrderingPrefix(s string) string {
	for {
		n := orderingPrefixLen(s)
		if n == 0 {
			return s
		}
		s = strings.TrimSpace(s[n:])
	}
}

// orderingPrefixLen returns the length of a leading run of ASCII digits
// followed by a dot, or zero when s does not start with one.
func orderingPrefixLen(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '.' {
		return 0
	}
	return i + 1
}

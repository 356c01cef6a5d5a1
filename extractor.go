package nftmeta

// DefaultMaxDepth bounds the tree walk. Figma documents are trees, but the
// input is external data and a decoder bug or crafted payload must not be
// able to recurse without limit.
const DefaultMaxDepth = 512

// DefaultPlaceholders are the property values the design files use to mark
// a layer as "no trait here".
var DefaultPlaceholders = []string{
	"No Attribute",
	"No Expression",
	"No Accessory",
	"No ears",
}

// TraitExtractor walks a frame subtree and collects one Trait per
// component or instance layer.
//
// The zero value is usable: it suppresses no values and uses DefaultMaxDepth.
type TraitExtractor struct {
	placeholders map[string]struct{}
	maxDepth     int
}

// ExtractorOption configures a TraitExtractor.
type ExtractorOption func(*TraitExtractor)

// WithMaxDepth sets how deep below the starting node the walk descends.
// Values below one fall back to DefaultMaxDepth.
func WithMaxDepth(depth int) ExtractorOption {
	return func(e *TraitExtractor) {
		e.maxDepth = depth
	}
}

// NewTraitExtractor creates a TraitExtractor that skips layers whose
// property value is one of placeholders.
func NewTraitExtractor(placeholders []string, opts ...ExtractorOption) *TraitExtractor {
	e := &TraitExtractor{
		placeholders: make(map[string]struct{}, len(placeholders)),
	}
	for _, p := range placeholders {
		e.placeholders[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsPlaceholder reports whether value marks a layer as non-contributing.
func (e *TraitExtractor) IsPlaceholder(value string) bool {
	_, ok := e.placeholders[value]
	return ok
}

// Extract returns the traits of node in document order. It never fails:
// unknown layer types, placeholder values and subtrees past the depth limit
// contribute nothing. The returned slice is never nil.
func (e *TraitExtractor) Extract(node *Node) []Trait {
	return e.extract(make([]Trait, 0), node, 0)
}

func (e *TraitExtractor) extract(dst []Trait, node *Node, depth int) []Trait {
	if node == nil || depth > e.limit() {
		return dst
	}

	switch {
	case node.Type.IsComponent():
		value := ExtractPropertyValue(node)
		if e.IsPlaceholder(value) {
			return dst
		}
		return append(dst, Trait{
			TraitType: StripOrderingPrefix(node.Name),
			Value:     value,
		})
	case node.Type == NodeTypeFrame:
		for _, child := range node.Children {
			dst = e.extract(dst, child, depth+1)
		}
		return dst
	default:
		// GROUP and other containers are opaque: frames or components
		// nested inside them are not visited.
		return dst
	}
}

func (e *TraitExtractor) limit() int {
	if e.maxDepth < 1 {
		return DefaultMaxDepth
	}
	return e.maxDepth
}

// ExtractPropertyValue returns the trait value of a component or instance layer:
// the value of its first component property with any ordering prefix
// removed. Layers without properties yield the empty string.
//
// Only the first property is read. Designs that attach several properties
// to one component must keep the trait-bearing one first.
func ExtractPropertyValue(node *Node) string {
	if node == nil {
		return ""
	}
	prop, ok := node.ComponentProperties.First()
	if !ok {
		return ""
	}
	return StripOrderingPrefix(prop.Value.Value)
}

// ExportPage builds one FrameRecord per FRAME child of page, in document
// order. FrameID counts frames only, not other siblings. An empty result
// means the page has no frames.
func ExportPage(page *Node, e *TraitExtractor) []*FrameRecord {
	if page == nil {
		return nil
	}
	if e == nil {
		e = &TraitExtractor{}
	}

	var records []*FrameRecord
	for _, child := range page.Children {
		if child == nil || child.Type != NodeTypeFrame {
			continue
		}
		records = append(records, &FrameRecord{
			FrameID:    len(records),
			Name:       child.Name,
			Attributes: e.Extract(child),
		})
	}
	return records
}

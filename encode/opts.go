package encode

type EncodeOption func(*EncState)

// EncodeComments keeps source comments in the render and annotates
// collapsed elements with the number of omitted siblings.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// MaxDepth limits how deep the renderer descends; an element at the limit
// renders self-closed instead of showing its children. Zero means no
// limit.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

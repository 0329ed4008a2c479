package catalog

import "github.com/lrcat/lrcat-go/pkg/types"

// KeywordTree maps a keyword id to the ids of its children.
type KeywordTree struct {
	children map[types.LrID][]types.LrID
}

// NewKeywordTree indexes a complete keyword set. Children are listed in
// ascending id order.
func NewKeywordTree(keywords *Keywords) *KeywordTree {
	t := &KeywordTree{children: make(map[types.LrID][]types.LrID)}
	keywords.Ascend(func(k Keyword) bool {
		t.children[k.Parent] = append(t.children[k.Parent], k.ID())
		return true
	})
	return t
}

// ChildrenFor returns the children of id. It is empty, not nil, for ids
// without children, including unknown ids.
func (t *KeywordTree) ChildrenFor(id types.LrID) []types.LrID {
	children := t.children[id]
	out := make([]types.LrID, len(children))
	copy(out, children)
	return out
}

// Len returns the number of keywords having children.
func (t *KeywordTree) Len() int {
	return len(t.children)
}

package service

import "golang.org/x/net/html"

// containerFor walks up from an anchor to the element most likely to hold
// that item's date and summary. Preference order: the nearest article
// ancestor, then the nearest list item, then the nearest generic block, then
// the anchor's own parent. A plain tree walk so it can be exercised against
// hand-built node trees.
func containerFor(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}

	var listItem, block *html.Node
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		switch p.Data {
		case "article":
			return p
		case "li":
			if listItem == nil {
				listItem = p
			}
		case "div", "section":
			if block == nil {
				block = p
			}
		}
	}

	if listItem != nil {
		return listItem
	}
	if block != nil {
		return block
	}
	return n.Parent
}

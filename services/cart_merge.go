package services

import (
	"encoding/json"
	"sort"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/google/uuid"
)

var lineItemNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://lutkowo.pl/cart/line-item"))

// LineItemID derives the line id from the product and its attribute set, so
// the same choice gets the same id on every device. The key is JSON so no
// attribute value can read as a field separator.
func LineItemID(productID string, attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, attrs[k]})
	}
	key, _ := json.Marshal(struct {
		Product string      `json:"p"`
		Attrs   [][2]string `json:"a"`
	}{productID, pairs})
	return uuid.NewSHA1(lineItemNamespace, key).String()
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = it
		if it.Attributes != nil {
			attrs := make(map[string]string, len(it.Attributes))
			for k, v := range it.Attributes {
				attrs[k] = v
			}
			out[i].Attributes = attrs
		}
	}
	return out
}

// MergeCarts folds the server cart into the local one. Matching lines keep
// the larger quantity, never the sum; lines present on one side only
// survive. An empty local cart takes the server cart as is.
func MergeCarts(local, server []models.CartItem) []models.CartItem {
	if len(local) == 0 {
		return cloneItems(server)
	}

	merged := cloneItems(local)
	index := make(map[string]int, len(merged))
	for i, it := range merged {
		index[it.ID] = i
	}

	for _, it := range cloneItems(server) {
		if i, ok := index[it.ID]; ok {
			if it.Quantity > merged[i].Quantity {
				merged[i].Quantity = it.Quantity
			}
			continue
		}
		index[it.ID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

package ngoctham

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// feedItem is one entry of the upstream detail list. Prices come as display
// strings with dots as thousands separators, ex: "11.000.000".
type feedItem struct {
	GoldType  string `json:"loaivang"`
	BuyPrice  string `json:"giamua"`
	SellPrice string `json:"giaban"`
}

// feedEnvelope is the usual response shape, wrapping the detail list.
type feedEnvelope struct {
	Details []feedItem `json:"chitiet"`
}

// ParseBoard decodes a raw price-board body and keeps only the quotes whose
// trimmed label is in goldTypes. Unknown labels are skipped silently; the feed
// carries many product types besides the tracked ones.
func ParseBoard(body []byte, goldTypes []string) (*Board, error) {
	items, err := decodeItems(body)
	if err != nil {
		return nil, &ResponseFormatError{Err: err}
	}

	allowed := make(map[string]struct{}, len(goldTypes))
	for _, name := range goldTypes {
		allowed[strings.TrimSpace(name)] = struct{}{}
	}

	board := &Board{}
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		name := strings.TrimSpace(item.GoldType)
		if name == "" {
			continue
		}

		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			board.SeenTypes = append(board.SeenTypes, name)
		}

		if _, ok := allowed[name]; !ok {
			continue
		}

		buy, err := parsePrice(item.BuyPrice)
		if err != nil {
			return nil, &ResponseFormatError{Err: fmt.Errorf("buy price for %q: %w", name, err)}
		}

		sell, err := parsePrice(item.SellPrice)
		if err != nil {
			return nil, &ResponseFormatError{Err: fmt.Errorf("sell price for %q: %w", name, err)}
		}

		board.Prices = append(board.Prices, GoldPrice{GoldType: name, BuyPrice: buy, SellPrice: sell})
	}

	return board, nil
}

// decodeItems resolves the two shapes the endpoint serves: an object wrapping
// the detail list under "chitiet", or the bare list itself.
func decodeItems(body []byte) ([]feedItem, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []feedItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode detail list: %w", err)
		}
		return items, nil
	}

	var envelope feedEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return envelope.Details, nil
}

// parsePrice normalizes a display price like "11.000.000" or "12,5" to a plain
// integer. Separators are stripped, never interpreted as decimals. An empty or
// missing value means the quote is not set and normalizes to zero.
func parsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	return value, nil
}

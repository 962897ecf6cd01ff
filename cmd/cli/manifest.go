package main

import (
	"fmt"

	"gocontrast/internal/errors"

	"github.com/tidwall/gjson"
)

// manifestItem is one entry of a batch manifest
type manifestItem struct {
	Paradigm   string
	Columns    []string
	Design     string
	Introspect bool
}

func parseManifest(data []byte) ([]manifestItem, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidInput("batch manifest is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("items")
	}
	if !list.IsArray() {
		return nil, errors.InvalidInput(`batch manifest must be an array or an object with an "items" array`)
	}

	var items []manifestItem
	var itemErr error
	list.ForEach(func(key, value gjson.Result) bool {
		i := int(key.Int())
		if !value.IsObject() {
			itemErr = fmt.Errorf("item %d is not an object", i)
			return false
		}
		item := manifestItem{
			Paradigm:   value.Get("paradigm").String(),
			Design:     value.Get("design").String(),
			Introspect: value.Get("introspect").Bool(),
		}
		if cols := value.Get("columns"); cols.Exists() {
			if !cols.IsArray() {
				itemErr = fmt.Errorf("item %d: columns must be an array", i)
				return false
			}
			item.Columns = []string{}
			for _, c := range cols.Array() {
				item.Columns = append(item.Columns, c.String())
			}
		}
		if item.Design != "" && item.Columns != nil {
			itemErr = fmt.Errorf("item %d: give either columns or design, not both", i)
			return false
		}
		items = append(items, item)
		return true
	})
	if itemErr != nil {
		return nil, errors.InvalidInput("batch manifest: " + itemErr.Error())
	}
	if len(items) == 0 {
		return nil, errors.InvalidInput("batch manifest has no items")
	}
	return items, nil
}

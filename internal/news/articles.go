// ABOUTME: Extracts selectable articles from an upstream news payload
// ABOUTME: Missing fields fall back to placeholder text so every entry is saveable

package news

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformedPayload is returned when a payload is not a JSON document.
var ErrMalformedPayload = errors.New("malformed news payload")

// Placeholders used when an article omits a field or sets it to null.
const (
	NoTitle       = "No Title"
	NoDescription = "No Description"
	NoURL         = "#"
)

// Article is one entry of a payload's articles array.
type Article struct {
	Title       string
	Description string
	URL         string
}

// ParseArticles returns the entries of payload's top-level "articles" array
// in payload order. A valid document without articles yields an empty slice.
func ParseArticles(payload string) ([]Article, error) {
	if !gjson.Valid(payload) {
		return nil, ErrMalformedPayload
	}

	articles := []Article{}
	list := gjson.Get(payload, "articles")
	if !list.IsArray() {
		return articles, nil
	}
	list.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		articles = append(articles, Article{
			Title:       field(item, "title", NoTitle),
			Description: field(item, "description", NoDescription),
			URL:         field(item, "url", NoURL),
		})
		return true
	})
	return articles, nil
}

func field(item gjson.Result, key, fallback string) string {
	v := item.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return fallback
	}
	return v.String()
}

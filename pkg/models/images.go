package models

import "encoding/json"

// NormalizeImages converts the image field as stored by the backend into a
// flat list of URLs. The column is JSON and has historically held several
// shapes: null, a JSON array of strings, a JSON array of {url: ...} objects,
// a JSON-encoded string of any of those, or a single bare URL. Callers only
// ever see []string.
func NormalizeImages(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		return imagesFromSlice(v)
	case string:
		if v == "" {
			return nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			// Not JSON, treat as a single bare URL.
			return []string{v}
		}
		switch d := decoded.(type) {
		case []any:
			return imagesFromSlice(d)
		case string:
			if d == "" {
				return nil
			}
			return []string{d}
		default:
			return nil
		}
	default:
		return nil
	}
}

func imagesFromSlice(items []any) []string {
	var urls []string
	for _, item := range items {
		switch e := item.(type) {
		case string:
			if e != "" {
				urls = append(urls, e)
			}
		case map[string]any:
			if u, ok := e["url"].(string); ok && u != "" {
				urls = append(urls, u)
			}
		}
	}
	return urls
}

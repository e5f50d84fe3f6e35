package open5e

import "encoding/json"

// Page is the envelope the listing endpoints wrap records in
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether upstream advertised another page
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// NextURL returns the next page URL, or "" on the last page
func (p *Page[T]) NextURL() string {
	if !p.HasNext() {
		return ""
	}
	return *p.Next
}

// UnmarshalJSON decodes the envelope, rejecting bodies without count and
// results
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "page", "count", "results"); err != nil {
		return err
	}

	var aux struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Count = aux.Count
	p.Next = aux.Next
	p.Previous = aux.Previous
	p.Results = aux.Results
	return nil
}

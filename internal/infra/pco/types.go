package pco

import "encoding/json"

// Credentials are the personal access token pair for the Planning Center API.
type Credentials struct {
	AppID  string
	Secret string
}

func (c Credentials) Valid() bool {
	return c.AppID != "" && c.Secret != ""
}

type ServiceType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Plan struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	SortDate string `json:"sort_date,omitempty"`
	Label    string `json:"label"`
}

// JSON:API envelope.
type document struct {
	Data     []resource `json:"data"`
	Included []resource `json:"included"`
}

type resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    json.RawMessage         `json:"attributes"`
	Relationships map[string]relationship `json:"relationships"`
}

type relationship struct {
	Data json.RawMessage `json:"data"`
}

type resourceRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// relatedID returns the id of a to-one relationship.
func (r resource) relatedID(name string) (string, bool) {
	rel, ok := r.Relationships[name]
	if !ok || len(rel.Data) == 0 {
		return "", false
	}
	var ref resourceRef
	if err := json.Unmarshal(rel.Data, &ref); err != nil || ref.ID == "" {
		return "", false
	}
	return ref.ID, true
}

func (r resource) decodeAttributes(v any) error {
	if len(r.Attributes) == 0 {
		return nil
	}
	return json.Unmarshal(r.Attributes, v)
}

type serviceTypeAttributes struct {
	Name string `json:"name"`
}

type planAttributes struct {
	Title    string `json:"title"`
	SortDate string `json:"sort_date"`
}

type planTimeAttributes struct {
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
}

type itemTimeAttributes struct {
	LiveStartAt string `json:"live_start_at"`
	StartsAt    string `json:"starts_at"`
	Exclude     bool   `json:"exclude"`
}

type itemAttributes struct {
	Title    string `json:"title"`
	ItemType string `json:"item_type"`
}

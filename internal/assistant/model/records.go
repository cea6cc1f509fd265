package model

// Durable store records, one type per assistant variant. Each is written
// exactly once per finalize and never mutated afterwards.

// OrderRecord archives one completed coffee order.
type OrderRecord struct {
	Timestamp string         `json:"timestamp"`
	Order     map[string]any `json:"order"`
	Summary   string         `json:"summary"`
}

// CheckinRecord archives one completed wellness check-in.
type CheckinRecord struct {
	Timestamp string   `json:"timestamp"`
	Mood      string   `json:"mood"`
	Energy    string   `json:"energy"`
	Stressors string   `json:"stressors"`
	Goals     []string `json:"goals"`
	Summary   string   `json:"summary"`
}

// LeadRecord archives one qualified lead.
type LeadRecord struct {
	Timestamp string         `json:"timestamp"`
	Lead      map[string]any `json:"lead"`
	Summary   string         `json:"summary"`
}

// PurchaseItem is one line of a purchase.
type PurchaseItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// PurchaseRecord archives one placed shopping order.
type PurchaseRecord struct {
	ID          string         `json:"id"`
	Items       []PurchaseItem `json:"items"`
	Total       int            `json:"total"`
	Currency    string         `json:"currency"`
	CreatedAt   string         `json:"created_at"`
	ProductName string         `json:"product_name"`
}

package servers

import "time"

// Order is an active ticket as shown on the display.
type Order struct {
	Id           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	OrderType    string      `json:"orderType"`
	Status       string      `json:"status"`
	CustomerName *string     `json:"customerName,omitempty"`
	TableNumber  *string     `json:"tableNumber,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	AllergyAlert bool        `json:"allergyAlert"`
	Items        []OrderItem `json:"items"`
}

type OrderItem struct {
	Name                string   `json:"name"`
	Quantity            int      `json:"quantity"`
	Modifiers           []string `json:"modifiers"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
	AllergyAlert        bool     `json:"allergyAlert"`
}

type NewOrder struct {
	OrderNumber  string         `json:"orderNumber"`
	OrderType    string         `json:"orderType"`
	CustomerName *string        `json:"customerName,omitempty"`
	TableNumber  *string        `json:"tableNumber,omitempty"`
	Items        []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	Name                string   `json:"name"`
	Quantity            int      `json:"quantity"`
	Modifiers           []string `json:"modifiers,omitempty"`
	SpecialInstructions *string  `json:"specialInstructions,omitempty"`
}

type CreatedOrder struct {
	Id string `json:"id"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type MarkReady struct {
	AutoRemoveAfterSeconds *int `json:"autoRemoveAfterSeconds,omitempty"`
}

type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

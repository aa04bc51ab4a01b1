package http

import "time"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewEvent struct {
	Line string `json:"line"`
}

type Order struct {
	Color string `json:"color"`
	Model string `json:"model"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

type Request struct {
	ID           int      `json:"id"`
	Status       string   `json:"status"`
	CorrectOrder []string `json:"correctOrder"`
	Remaining    int      `json:"remaining"`
	Orders       []Order  `json:"orders"`
}

type Level struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type Worker struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Idle      bool   `json:"idle"`
	Waiting   bool   `json:"waiting"`
	RequestID int    `json:"requestId,omitempty"`
	Target    string `json:"target,omitempty"`
	Scans     int    `json:"scans"`
}

type CompletedRequest struct {
	RequestID    int       `json:"requestId"`
	CorrectOrder []string  `json:"correctOrder"`
	CompletedAt  time.Time `json:"completedAt"`
}

// Package api defines the request and response types of the HTTP API.
// Field names follow the wire format the web client expects.
package api

import "time"

type BookingStatus string

const (
	PENDING   BookingStatus = "pending"
	CONFIRMED BookingStatus = "confirmed"
	DECLINED  BookingStatus = "declined"
)

type PaymentMethod string

const (
	DEBITCARD  PaymentMethod = "debit_card"
	CREDITCARD PaymentMethod = "credit_card"
	EASYPAISA  PaymentMethod = "easypaisa"
	JAZZCASH   PaymentMethod = "jazzcash"
	OTHER      PaymentMethod = "other"
)

type DishType string

const (
	STARTER DishType = "starter"
	MAIN    DishType = "main"
	DESSERT DishType = "dessert"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

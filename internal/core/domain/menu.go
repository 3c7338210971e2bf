package domain

import "time"

// Menu is a restaurant's item list for one calendar day. A restaurant
// publishes at most one menu per day.
type Menu struct {
	ID           int64       `json:"id"`
	RestaurantID int64       `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
	Date         Date        `json:"date"`
	Items        string      `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Package models contains the database row representations of the domain
// entities. Repositories scan into these and mapping converts them to domain
// types.
package models

import "time"

// AuditFields holds standard audit columns shared by most tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

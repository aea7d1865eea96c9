package models

import "time"

// AuditEntry records one admin-panel action against one entity.
type AuditEntry struct {
	ID         string            `bson:"id" json:"id"`
	ActorID    string            `bson:"actor_id" json:"actorId"` // admin who performed the action; "system" for worker-originated entries
	Action     string            `bson:"action" json:"action"`    // e.g. "event.create", "event.delete", "event.reminder"
	EntityType string            `bson:"entity_type" json:"entityType"`
	EntityID   string            `bson:"entity_id" json:"entityId"`
	Detail     map[string]string `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
}

// Package constants defines shared constant values used across the application.
package constants

// Database table names
const (
	TableUsers           = "users"
	TableTenants         = "tenants"
	TableRoleAssignments = "role_assignments"
	TableSubscriptions   = "subscriptions"
	TableWebhookEvents   = "webhook_events"
	TableInvitations     = "invitations"
)

// Gin context keys set by the auth middleware
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

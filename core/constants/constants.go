package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 5 * time.Second
	ShutdownTimeout       = 15 * time.Second
)

// Database
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
)

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"
)

// Token
const (
	ScopeTokenAdmin = "admin"
	RoleAdmin       = "admin"
)

// Pagination
const (
	DefaultPageFrom = 0
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// Events
const (
	DefaultPublishLeadTime = 2 * time.Hour
	DefaultEditLeadTime    = 1 * time.Hour
	EventsURI              = "/events"
)

// Stats
const (
	TaskRecordHit       = "stats:record_hit"
	RedisKeyEventViews  = "views:event:%d"
	DefaultStatsAppName = "event-hub"
	DefaultViewCacheTTL = 30 * time.Second
	DefaultStatsTimeout = 3 * time.Second
	StatsDateTimeLayout = "2006-01-02 15:04:05"
)

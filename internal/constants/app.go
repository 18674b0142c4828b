package constants

// Application Information
const (
	AppName    = "Rumah Peduli CMS"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Cache Key Prefixes
const (
	CacheKeyPrefix       = "cms:"
	CacheKeyPartnersAll  = CacheKeyPrefix + "partners:all"
	CacheKeyPartnersLive = CacheKeyPrefix + "partners:active"
	CacheKeyOtpThrottle  = CacheKeyPrefix + "otp:req:"
)

// Context keys set by the JWT middleware
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// Cookie consumed by the gated-navigation middleware
const (
	TokenCookieName = "token"
)

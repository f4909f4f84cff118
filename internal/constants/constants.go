package constants

// Centralized constants for headers, env keys, routes and log fields.
const (
	// Environment variable keys
	EnvConfigPath          = "ARENA_CONFIG"
	EnvDatabasePath        = "ARENA_DB"
	EnvSessionSecret       = "SESSION_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"
	EnvLogLevel            = "LOG_LEVEL"
	EnvHealthcheckURL      = "HEALTHCHECK_URL"

	DefaultConfigPath   = "arena_config.json"
	DefaultDatabasePath = "arena.db"
	DefaultServerAddr   = ":8080"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Session / Cookie names
	CookieSessionName = "arena_session"

	// Gin context key holding the authenticated wallet address
	ContextKeyWallet = "walletAddress"
	ContextKeyPlayer = "playerName"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteFighters      = "/fighters"
	RouteFighterByID   = "/fighters/:fighterID"
	RouteSession       = "/session"
	RouteBattles       = "/battles"
	RouteBattleByID    = "/battles/:battleID"
	RouteBattleReplay  = "/battles/:battleID/replay"
	RouteLeaderboard   = "/leaderboard"
	RoutePlayerStats   = "/player-stats"
	RouteVersion       = "/version"
	RouteVersionPublic = "/api/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrWalletRequired         = "wallet_address is required"
	ErrFighterIDRequired      = "fighter_id is required"
	ErrFighterNotFound        = "Fighter not found"
	ErrOpponentNotFound       = "Opponent not found"
	ErrSameFighter            = "A fighter cannot battle itself"
	ErrNoOpponents            = "No opponents available"
	ErrEntryFeeRequired       = "Entry fee payment required"
	ErrPaymentAlreadyUsed     = "Payment transaction already used for another battle"
	ErrBattleNotFound         = "Battle not found"
	ErrInvalidBattleID        = "Invalid battle ID"
	ErrFailedFetchFighters    = "Failed to fetch fighters"
	ErrFailedFetchBattles     = "Failed to fetch battles"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch stats"
	ErrFailedUpdateStats      = "Failed to update stats"
	ErrFailedStartBattle      = "Failed to start battle"
	ErrFailedEncodeBattle     = "Failed to encode battle"
	ErrFailedCreateSession    = "Failed to create session"
	ErrPlayerNameExceeds      = "Player name exceeds 32 characters"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Logging field names
const (
	LogFieldBattleID  = "battle_id"
	LogFieldFighterID = "fighter_id"
	LogFieldOpponent  = "opponent_id"
	LogFieldWallet    = "wallet"
	LogFieldResult    = "result"
	LogFieldTurns     = "turns"
	LogFieldTxHash    = "tx_hash"
	LogFieldSource    = "source"
	LogFieldName      = "name"
	LogFieldCount     = "count"
	LogFieldAddr      = "addr"
	LogFieldPath      = "path"
)

package constants

// Centralized constants for env keys, routes and shared messages.
const (
	// Environment variable keys
	EnvConfigPath = "CLASH_CONFIG"
	EnvDBPath     = "CLASH_DB"

	// Defaults
	DefaultConfigPath    = "./clash_config.json"
	DefaultDBPath        = "./data/clash.db"
	DefaultServerAddress = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteStrategies    = "/strategies"
	RouteCreatures     = "/creatures"
	RouteCreatureByID  = "/creatures/:creatureID"
	RouteBattles       = "/battles"
	RouteBattlePreview = "/battles/preview"
	RouteBattleByID    = "/battles/:battleID"
	RouteLeaderboard   = "/leaderboard"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidCreatureID    = "Invalid creature ID"
	ErrInvalidBattleID      = "Invalid battle ID"
	ErrCreatureNotFound     = "Creature not found"
	ErrBattleNotFound       = "Battle not found"
	ErrFailedFetchCreatures = "Failed to fetch creatures"
	ErrFailedSaveCreature   = "Failed to save creature"
	ErrFailedFetchBattles   = "Failed to fetch battles"
	ErrFailedResolveBattle  = "Failed to resolve battle"
	ErrFailedFetchTop       = "Failed to fetch leaderboard"
)

// Logging field names
const (
	LogFieldCreatureA = "creature_a"
	LogFieldCreatureB = "creature_b"
	LogFieldBattleID  = "battle_id"
	LogFieldWinner    = "winner"
	LogFieldHash      = "content_hash"
	LogFieldAddr      = "addr"
)

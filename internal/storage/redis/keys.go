package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "memogame"

// resultKey returns the Redis key for a GameResult
func resultKey(token string) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, token)
}

// leaderboardKey returns the Redis key for the score-sorted set of tokens
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

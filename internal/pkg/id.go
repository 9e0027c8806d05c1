package pkg

import "github.com/google/uuid"

// GenerateGameID - short random id for a new game.
func GenerateGameID() string {
	return uuid.NewString()[:8]
}

// GenerateNewSessionID - id of a peer connection.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

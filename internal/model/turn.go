package model

import "time"

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleHuman Role = "human"
	RoleAI    Role = "ai"
)

// Turn is one entry of a session's conversation history.
type Turn struct {
	Role      Role
	Text      string
	CreatedAt time.Time
}

// HumanTurn builds a user turn stamped with now.
func HumanTurn(text string, now time.Time) Turn {
	return Turn{Role: RoleHuman, Text: text, CreatedAt: now}
}

// AITurn builds a model turn stamped with now.
func AITurn(text string, now time.Time) Turn {
	return Turn{Role: RoleAI, Text: text, CreatedAt: now}
}

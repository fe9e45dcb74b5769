package session

import (
	"encoding/json"
	"fmt"
	"time"

	"card-consumption-assistant/internal/model"
)

// StoredMessage is the serialized form of a turn:
// {"type":"human","data":{"content":"..."}}.
// SQL and redis stores keep this layout so histories written by other
// clients of the same tables stay readable.
type StoredMessage struct {
	Type string      `json:"type"`
	Data MessageData `json:"data"`
}

type MessageData struct {
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at,omitempty"` // unix millis
}

// Encode serializes a turn.
func Encode(t model.Turn) ([]byte, error) {
	if t.Role != model.RoleHuman && t.Role != model.RoleAI {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, t.Role)
	}
	msg := StoredMessage{
		Type: string(t.Role),
		Data: MessageData{Content: t.Text},
	}
	if !t.CreatedAt.IsZero() {
		msg.Data.CreatedAt = t.CreatedAt.UnixMilli()
	}
	return json.Marshal(msg)
}

// Decode parses a serialized turn.
func Decode(raw []byte) (model.Turn, error) {
	var msg StoredMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return model.Turn{}, fmt.Errorf("decode message: %w", err)
	}
	role := model.Role(msg.Type)
	if role != model.RoleHuman && role != model.RoleAI {
		return model.Turn{}, fmt.Errorf("%w: %q", ErrUnknownRole, msg.Type)
	}
	t := model.Turn{Role: role, Text: msg.Data.Content}
	if msg.Data.CreatedAt > 0 {
		t.CreatedAt = time.UnixMilli(msg.Data.CreatedAt)
	}
	return t, nil
}

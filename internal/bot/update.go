package bot

import "encoding/json"

// Update is one inbound Telegram event, decoded from either the webhook body
// or the polling result.
type Update struct {
	UpdateID      int             `json:"update_id"`
	Message       *Message        `json:"message"`
	CallbackQuery *CallbackQuery  `json:"callback_query"`
	MyChatMember  json.RawMessage `json:"my_chat_member"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
	From      *User  `json:"from"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

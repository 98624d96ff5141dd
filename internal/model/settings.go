package model

import "time"

// AdminCredential is the persisted admin panel password override.
// At most one row exists, identified by a fixed key; while absent, the
// configured fallback password is authoritative.
type AdminCredential struct {
	Password  string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccessEvent describes an admin panel access reported via the public
// notification endpoint. The payload is caller-supplied and untrusted.
type AccessEvent struct {
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	At        time.Time `json:"at"`
}

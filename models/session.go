package models

import "time"

type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant. Expired sessions are kept in storage but never authenticate.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionRecord is the persisted shape of a Session, with ISO-8601 string
// timestamps.
type SessionRecord struct {
	ID           string `bson:"id"`
	UserID       string `bson:"user_id"`
	SessionToken string `bson:"session_token"`
	ExpiresAt    string `bson:"expires_at"`
	CreatedAt    string `bson:"created_at"`
}

func (s *Session) Record() SessionRecord {
	return SessionRecord{
		ID:           s.ID,
		UserID:       s.UserID,
		SessionToken: s.SessionToken,
		ExpiresAt:    FormatTime(s.ExpiresAt),
		CreatedAt:    FormatTime(s.CreatedAt),
	}
}

func (r *SessionRecord) Session() (*Session, error) {
	expiresAt, err := ParseTime(r.ExpiresAt)
	if err != nil {
		return nil, err
	}
	createdAt, err := ParseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:           r.ID,
		UserID:       r.UserID,
		SessionToken: r.SessionToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    createdAt,
	}, nil
}

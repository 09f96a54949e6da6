package models

import "time"

const (
	RoleStudent     = "student"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
)

// ValidRole reports whether role is one of the three assignable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleCoordinator:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRecord is the persisted shape of a User. Timestamps are stored as
// ISO-8601 strings, the same format they carry on the wire.
type UserRecord struct {
	ID        string `bson:"id"`
	Email     string `bson:"email"`
	Name      string `bson:"name"`
	Picture   string `bson:"picture,omitempty"`
	Role      string `bson:"role"`
	CreatedAt string `bson:"created_at"`
}

func (u *User) Record() UserRecord {
	return UserRecord{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		Role:      u.Role,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}

func (r *UserRecord) User() (*User, error) {
	createdAt, err := ParseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Picture:   r.Picture,
		Role:      r.Role,
		CreatedAt: createdAt,
	}, nil
}

// timeLayout is RFC 3339 with a fixed-width fractional part so the stored
// strings sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

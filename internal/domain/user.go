package domain

type UserID string

type User struct {
	ID              UserID
	Team            Team
	UsedGrace       bool
	CountsThisMonth int
}

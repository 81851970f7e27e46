// File: internal/model/follow.go
package model

import "time"

type Follow struct {
	FollowerID  int       `db:"follower_id" json:"follower_id"`
	FollowingID int       `db:"following_id" json:"following_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

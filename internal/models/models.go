package models

import (
	"time"
)

type Account struct {
	AccountID    int64     `json:"accountId" db:"account_id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Handle       string    `json:"handle" db:"handle"`
	PasswordHash string    `json:"-" db:"password_hash"`
	AvatarURL    *string   `json:"avatarUrl" db:"avatar_url"`
	Role         string    `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	IsBanned     bool      `json:"isBanned" db:"is_banned"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID       int64      `json:"postId" db:"post_id"`
	AuthorID     int64      `json:"authorId" db:"author_id"`
	TopicID      int64      `json:"topicId" db:"topic_id"`
	Title        string     `json:"title" db:"title"`
	Content      string     `json:"content" db:"content"`
	ImageURL     *string    `json:"imageUrl" db:"image_url"`
	LikeCount    int        `json:"likeCount" db:"like_count"`
	CommentCount int        `json:"commentCount" db:"comment_count"`
	BannedAt     *time.Time `json:"bannedAt" db:"banned_at"`
	BanReason    *string    `json:"banReason" db:"ban_reason"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID int64      `json:"commentId" db:"comment_id"`
	PostID    int64      `json:"postId" db:"post_id"`
	AuthorID  int64      `json:"authorId" db:"author_id"`
	Content   string     `json:"content" db:"content"`
	BannedAt  *time.Time `json:"bannedAt" db:"banned_at"`
	BanReason *string    `json:"banReason" db:"ban_reason"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Rating struct {
	RatingID  int64     `json:"ratingId" db:"rating_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Value     int       `json:"value" db:"value"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// TemporaryBan is an append-only audit record, never updated after insert.
type TemporaryBan struct {
	BanID         int64     `json:"banId" db:"ban_id"`
	AccountID     int64     `json:"accountId" db:"account_id"`
	Reason        string    `json:"reason" db:"reason"`
	DurationHours int       `json:"durationHours" db:"duration_hours"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Report keeps a snapshot of the post title and author handle taken at report
// time, so the record stays readable after the post itself is removed.
type Report struct {
	ReportID   int64     `json:"reportId" db:"report_id"`
	PostID     int64     `json:"postId" db:"post_id"`
	PostTitle  string    `json:"postTitle" db:"post_title"`
	PostAuthor string    `json:"postAuthor" db:"post_author"`
	ReporterID int64     `json:"reporterId" db:"reporter_id"`
	Reason     string    `json:"reason" db:"reason"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Topic struct {
	TopicID   int64     `json:"topicId" db:"topic_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

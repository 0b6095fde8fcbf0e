// Package domain defines the persistence models for the news board:
// topics, users, articles, and comments. These types are mapped with GORM
// and form the core data layer of the application.
package domain

import "time"

// Topic is a category articles are filed under. The slug is the primary
// identifier and is referenced by Article.Topic.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(64);primaryKey;not null"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author account. Users are read-only through this API; rows are
// provisioned out of band and referenced by articles and comments.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(64);primaryKey;not null"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(512)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a posted story. Votes start at zero and move only by relative
// increments; they are unbounded and may go negative.
//
// CommentCount is derived at read time from a COUNT aggregate over the
// comments table. It is never stored: the field is read-only for GORM and
// excluded from migration so no column backs it.
type Article struct {
	ArticleID    int       `json:"article_id"    gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title"         gorm:"type:varchar(255);not null"`
	Author       string    `json:"author"        gorm:"type:varchar(64);not null;index"`
	Body         string    `json:"body"          gorm:"type:text;not null"`
	Topic        string    `json:"topic"         gorm:"type:varchar(64);not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"         gorm:"not null;default:0"`
	CommentCount int64     `json:"comment_count" gorm:"->;-:migration"`

	// AuthorUser enforces the users.username reference at the store.
	AuthorUser User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE"`
	// TopicRef enforces the topics.slug reference at the store.
	TopicRef Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE"`
	// Comments declares the comments.article_id reference from the parent
	// side so migration puts the constraint on the comments table. RESTRICT
	// keeps the cascade manual.
	Comments []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a reply to an article. The article reference (declared on
// Article.Comments) is deliberately non-cascading: removing an article
// deletes its comments explicitly inside one transaction (see
// services.ArticleService.Delete), so a dangling comment can never survive
// the article it belongs to.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	ArticleID int       `json:"article_id" gorm:"not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null;index"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`

	// AuthorUser enforces the users.username reference at the store.
	AuthorUser User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

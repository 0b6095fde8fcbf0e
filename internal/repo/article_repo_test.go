package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ncboard/go-news-backend/internal/domain"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Logger = logger.Default.LogMode(logger.Silent)

	// Release the file handle before TempDir cleanup.
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedBase inserts the users and topics the article fixtures reference.
func seedBase(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, u := range []domain.User{
		{Username: "alice", Name: "Alice A", AvatarURL: "https://example.com/alice.png"},
		{Username: "bob", Name: "Bob B", AvatarURL: "https://example.com/bob.png"},
	} {
		if err := db.Create(&u).Error; err != nil {
			t.Fatalf("seed user %s: %v", u.Username, err)
		}
	}
	for _, tp := range []domain.Topic{
		{Slug: "coding", Description: "code things"},
		{Slug: "cooking", Description: "food things"},
	} {
		if err := db.Create(&tp).Error; err != nil {
			t.Fatalf("seed topic %s: %v", tp.Slug, err)
		}
	}
}

func seedArticle(t *testing.T, db *gorm.DB, a domain.Article) domain.Article {
	t.Helper()
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed article %q: %v", a.Title, err)
	}
	return a
}

func seedComment(t *testing.T, db *gorm.DB, cm domain.Comment) domain.Comment {
	t.Helper()
	if err := db.Create(&cm).Error; err != nil {
		t.Fatalf("seed comment on article %d: %v", cm.ArticleID, err)
	}
	return cm
}

func defaultQuery() ArticleQuery {
	return ArticleQuery{SortBy: "created_at", Order: "desc", Limit: 10, Page: 1}
}

func TestListArticles_DefaultOrderNewestFirst(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	seedArticle(t, db, domain.Article{Title: "oldest", Author: "alice", Body: "b", Topic: "coding", CreatedAt: base})
	seedArticle(t, db, domain.Article{Title: "middle", Author: "bob", Body: "b", Topic: "coding", CreatedAt: base.Add(time.Hour)})
	seedArticle(t, db, domain.Article{Title: "newest", Author: "alice", Body: "b", Topic: "cooking", CreatedAt: base.Add(2 * time.Hour)})

	out, total, err := ListArticles(context.Background(), db, defaultQuery())
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if total != 3 || len(out) != 3 {
		t.Fatalf("expected 3/3, got total=%d len=%d", total, len(out))
	}
	if out[0].Title != "newest" || out[1].Title != "middle" || out[2].Title != "oldest" {
		t.Fatalf("unexpected order: %q %q %q", out[0].Title, out[1].Title, out[2].Title)
	}
}

func TestListArticles_SortByVotesAscending(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	seedArticle(t, db, domain.Article{Title: "high", Author: "alice", Body: "b", Topic: "coding", Votes: 30})
	seedArticle(t, db, domain.Article{Title: "low", Author: "alice", Body: "b", Topic: "coding", Votes: 1})
	seedArticle(t, db, domain.Article{Title: "mid", Author: "bob", Body: "b", Topic: "coding", Votes: 15})

	q := defaultQuery()
	q.SortBy, q.Order = "votes", "asc"
	out, _, err := ListArticles(context.Background(), db, q)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if out[0].Title != "low" || out[1].Title != "mid" || out[2].Title != "high" {
		t.Fatalf("unexpected order: %q %q %q", out[0].Title, out[1].Title, out[2].Title)
	}
}

func TestListArticles_SortByCommentCount(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	quiet := seedArticle(t, db, domain.Article{Title: "quiet", Author: "alice", Body: "b", Topic: "coding"})
	busy := seedArticle(t, db, domain.Article{Title: "busy", Author: "bob", Body: "b", Topic: "coding"})
	for i := 0; i < 3; i++ {
		seedComment(t, db, domain.Comment{ArticleID: busy.ArticleID, Author: "alice", Body: "hi"})
	}
	seedComment(t, db, domain.Comment{ArticleID: quiet.ArticleID, Author: "bob", Body: "hi"})

	q := defaultQuery()
	q.SortBy = "comment_count"
	out, _, err := ListArticles(context.Background(), db, q)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if out[0].Title != "busy" || out[0].CommentCount != 3 {
		t.Fatalf("expected busy first with 3 comments, got %q (%d)", out[0].Title, out[0].CommentCount)
	}
	if out[1].Title != "quiet" || out[1].CommentCount != 1 {
		t.Fatalf("expected quiet second with 1 comment, got %q (%d)", out[1].Title, out[1].CommentCount)
	}
}

func TestListArticles_TopicFilterTotalIndependentOfWindow(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	seedArticle(t, db, domain.Article{Title: "c1", Author: "alice", Body: "b", Topic: "coding"})
	seedArticle(t, db, domain.Article{Title: "c2", Author: "bob", Body: "b", Topic: "coding"})
	seedArticle(t, db, domain.Article{Title: "k1", Author: "alice", Body: "b", Topic: "cooking"})

	q := defaultQuery()
	q.Topic, q.Limit = "coding", 1
	out, total, err := ListArticles(context.Background(), db, q)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 windowed row, got %d", len(out))
	}
	if total != 2 {
		t.Fatalf("total must cover the unwindowed filtered set: got %d, want 2", total)
	}
	if out[0].Topic != "coding" {
		t.Fatalf("filter leaked topic %q", out[0].Topic)
	}
}

func TestListArticles_Windowing(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedArticle(t, db, domain.Article{
			Title:     fmt.Sprintf("a%02d", i),
			Author:    "alice",
			Body:      "b",
			Topic:     "coding",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	cases := []struct {
		page int
		want int
	}{
		{1, 5}, {2, 5}, {3, 2}, {4, 0},
	}
	for _, tc := range cases {
		q := defaultQuery()
		q.Limit, q.Page = 5, tc.page
		out, total, err := ListArticles(context.Background(), db, q)
		if err != nil {
			t.Fatalf("page %d: %v", tc.page, err)
		}
		if len(out) != tc.want {
			t.Fatalf("page %d: expected %d rows, got %d", tc.page, tc.want, len(out))
		}
		if total != 12 {
			t.Fatalf("page %d: total changed with window: %d", tc.page, total)
		}
	}
}

func TestListArticles_EmptyStore(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	out, total, err := ListArticles(context.Background(), db, defaultQuery())
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if total != 0 || len(out) != 0 {
		t.Fatalf("expected empty result, got total=%d len=%d", total, len(out))
	}
}

func TestGetArticle_IncludesCommentCount(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	a := seedArticle(t, db, domain.Article{Title: "t", Author: "alice", Body: "b", Topic: "coding"})
	seedComment(t, db, domain.Comment{ArticleID: a.ArticleID, Author: "bob", Body: "one"})
	seedComment(t, db, domain.Comment{ArticleID: a.ArticleID, Author: "bob", Body: "two"})

	got, err := GetArticle(context.Background(), db, a.ArticleID)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if got.CommentCount != 2 {
		t.Fatalf("expected comment_count 2, got %d", got.CommentCount)
	}

	// The count is recomputed, never cached.
	if err := DeleteComment(context.Background(), db, 1); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	got, err = GetArticle(context.Background(), db, a.ArticleID)
	if err != nil {
		t.Fatalf("GetArticle after delete: %v", err)
	}
	if got.CommentCount != 1 {
		t.Fatalf("expected comment_count 1 after delete, got %d", got.CommentCount)
	}
}

func TestGetArticle_Missing(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	if _, err := GetArticle(context.Background(), db, 999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncrementArticleVotes_InverseDeltasCancel(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	a := seedArticle(t, db, domain.Article{Title: "t", Author: "alice", Body: "b", Topic: "coding", Votes: 5})

	up, err := IncrementArticleVotes(context.Background(), db, a.ArticleID, 10)
	if err != nil {
		t.Fatalf("increment +10: %v", err)
	}
	if up.Votes != 15 {
		t.Fatalf("expected 15 votes, got %d", up.Votes)
	}

	down, err := IncrementArticleVotes(context.Background(), db, a.ArticleID, -10)
	if err != nil {
		t.Fatalf("increment -10: %v", err)
	}
	if down.Votes != 5 {
		t.Fatalf("expected votes back at 5, got %d", down.Votes)
	}
}

func TestIncrementArticleVotes_NegativeBeyondZero(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	a := seedArticle(t, db, domain.Article{Title: "t", Author: "alice", Body: "b", Topic: "coding"})
	got, err := IncrementArticleVotes(context.Background(), db, a.ArticleID, -7)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got.Votes != -7 {
		t.Fatalf("votes are unbounded and may go negative: got %d", got.Votes)
	}
}

func TestIncrementArticleVotes_Missing(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	if _, err := IncrementArticleVotes(context.Background(), db, 42, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArticle_RemovesDependentComments(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	a := seedArticle(t, db, domain.Article{Title: "t", Author: "alice", Body: "b", Topic: "coding"})
	other := seedArticle(t, db, domain.Article{Title: "other", Author: "bob", Body: "b", Topic: "coding"})
	for i := 0; i < 3; i++ {
		seedComment(t, db, domain.Comment{ArticleID: a.ArticleID, Author: "bob", Body: "c"})
	}
	keep := seedComment(t, db, domain.Comment{ArticleID: other.ArticleID, Author: "alice", Body: "keep"})

	if err := DeleteArticle(context.Background(), db, a.ArticleID); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}

	var remaining int64
	if err := db.Model(&domain.Comment{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("expected only the unrelated comment to survive, got %d", remaining)
	}
	var got domain.Comment
	if err := db.First(&got, "comment_id = ?", keep.CommentID).Error; err != nil {
		t.Fatalf("unrelated comment lost: %v", err)
	}
	if _, err := GetArticle(context.Background(), db, a.ArticleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("article should be gone, got %v", err)
	}
}

func TestDeleteArticle_NoComments(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	a := seedArticle(t, db, domain.Article{Title: "t", Author: "alice", Body: "b", Topic: "coding"})
	if err := DeleteArticle(context.Background(), db, a.ArticleID); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}
	if _, err := GetArticle(context.Background(), db, a.ArticleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("article should be gone, got %v", err)
	}
}

func TestDeleteArticle_Missing(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	if err := DeleteArticle(context.Background(), db, 999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateArticle_AssignsServerFields(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	author, title, body, topic := "alice", "fresh", "text", "coding"
	start := time.Now().UTC().Add(-time.Minute)
	a, err := CreateArticle(context.Background(), db, &author, &title, &body, &topic)
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.ArticleID == 0 {
		t.Fatalf("expected auto-assigned id")
	}
	if a.Votes != 0 {
		t.Fatalf("votes must default to 0, got %d", a.Votes)
	}
	if a.CreatedAt.Before(start) {
		t.Fatalf("created_at seems unset: %v", a.CreatedAt)
	}
}

func TestCreateArticle_UnknownTopicIsForeignKeyError(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	author, title, body, topic := "alice", "t", "b", "no-such-topic"
	if _, err := CreateArticle(context.Background(), db, &author, &title, &body, &topic); err == nil {
		t.Fatalf("expected foreign-key error for unknown topic")
	}
}

func TestCreateArticle_MissingFieldIsNotNullError(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	author, body, topic := "alice", "b", "coding"
	if _, err := CreateArticle(context.Background(), db, &author, nil, &body, &topic); err == nil {
		t.Fatalf("expected not-null error for missing title")
	}
}

// On a schema without the not-null constraints the NULL insert goes
// through; the caller must still get the stored row, id included.
func TestCreateArticle_RelaxedSchemaReturnsStoredRow(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "relaxed.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Logger = logger.Default.LogMode(logger.Silent)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.Exec(`CREATE TABLE articles (
		article_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		author TEXT,
		body TEXT,
		topic TEXT,
		created_at DATETIME,
		votes INTEGER NOT NULL DEFAULT 0
	)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}

	author, body, topic := "alice", "b", "coding"
	a, err := CreateArticle(context.Background(), db, &author, nil, &body, &topic)
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.ArticleID == 0 {
		t.Fatalf("expected the stored row's id, got 0")
	}
	if a.Author != "alice" || a.Topic != "coding" {
		t.Fatalf("unexpected stored row: %+v", a)
	}
}

package services

import (
	"context"
	"errors"
	"testing"
)

func TestTopicListAndCreate(t *testing.T) {
	db := newServiceDB(t)
	seedFixtures(t, db)

	svc := &TopicService{DB: db}
	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 || out[0].Slug != "coding" {
		t.Fatalf("unexpected topics: %+v", out)
	}

	slug, desc := "travel", "going places"
	created, err := svc.Create(context.Background(), &slug, &desc)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Slug != "travel" {
		t.Fatalf("unexpected created topic: %+v", created)
	}

	out, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List after create: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(out))
	}
}

func TestUserGetAndList(t *testing.T) {
	db := newServiceDB(t)
	seedFixtures(t, db)

	svc := &UserService{DB: db}
	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}

	u, err := svc.Get(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if u.Name != "Bob B" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Get(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

package repo

import (
	"context"
	"errors"
	"testing"
)

func TestListUsers_OrderedByUsername(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	out, err := ListUsers(context.Background(), db)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(out) != 2 || out[0].Username != "alice" || out[1].Username != "bob" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestGetUser(t *testing.T) {
	db := newRepoDB(t)
	seedBase(t, db)

	u, err := GetUser(context.Background(), db, "alice")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.Name != "Alice A" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := GetUser(context.Background(), db, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

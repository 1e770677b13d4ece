package user

import (
	"testing"
	"time"
)

func TestNewFromCreateRequest(t *testing.T) {
	req := CreateUserRequest{
		Title:           "Mr",
		FirstName:       "A",
		LastName:        "B",
		Email:           "a@b.com",
		Role:            RoleUser,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	u := NewFromCreateRequest(req, "hashed-value")

	if u.ID != 0 {
		t.Fatalf("id must stay zero until the store assigns one, got %d", u.ID)
	}

	if u.HashedPassword != "hashed-value" {
		t.Fatalf("hash not applied: %q", u.HashedPassword)
	}

	if u.HashedPassword == req.Password {
		t.Fatal("raw password stored")
	}

	if u.CreatedAt.IsZero() || !u.CreatedAt.Equal(u.UpdatedAt) {
		t.Fatalf("timestamps not initialised together: %v / %v", u.CreatedAt, u.UpdatedAt)
	}
}

func TestApplyUpdateSkipsEmptyFields(t *testing.T) {
	base := User{
		ID:             3,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Title:          "Ms",
		Email:          "ada@example.com",
		Role:           RoleUser,
		HashedPassword: "old-hash",
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		fields UpdateFields
		verify func(t *testing.T, u User)
	}{
		{
			name:   "all empty leaves everything but updatedAt",
			fields: UpdateFields{},
			verify: func(t *testing.T, u User) {
				if u.FirstName != base.FirstName || u.LastName != base.LastName ||
					u.Title != base.Title || u.Email != base.Email ||
					u.Role != base.Role || u.HashedPassword != base.HashedPassword {
					t.Fatalf("fields changed: %+v", u)
				}
			},
		},
		{
			name:   "single field",
			fields: UpdateFields{Email: "new@example.com"},
			verify: func(t *testing.T, u User) {
				if u.Email != "new@example.com" {
					t.Fatalf("email not applied: %q", u.Email)
				}
				if u.FirstName != base.FirstName {
					t.Fatalf("firstName changed: %q", u.FirstName)
				}
			},
		},
		{
			name: "password rotation",
			fields: UpdateFields{
				HashedPassword: "new-hash",
			},
			verify: func(t *testing.T, u User) {
				if u.HashedPassword != "new-hash" {
					t.Fatalf("hash not applied: %q", u.HashedPassword)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := base
			u.ApplyUpdate(tt.fields, now)

			if u.ID != base.ID {
				t.Fatal("id changed")
			}

			if !u.CreatedAt.Equal(base.CreatedAt) {
				t.Fatal("createdAt changed")
			}

			if !u.UpdatedAt.Equal(now) {
				t.Fatalf("updatedAt not refreshed: %v", u.UpdatedAt)
			}

			tt.verify(t, u)
		})
	}
}

func TestMergeFieldsNeverCarriesRawPassword(t *testing.T) {
	req := UpdateUserRequest{
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}

	fields := MergeFields(req, "hash-of-secret1")

	if fields.HashedPassword != "hash-of-secret1" {
		t.Fatalf("expected hash, got %q", fields.HashedPassword)
	}
}

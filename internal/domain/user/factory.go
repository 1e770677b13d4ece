package user

import "time"

// NewFromCreateRequest builds an unpersisted User. The ID stays zero until
// the repository assigns one.
func NewFromCreateRequest(req CreateUserRequest, hashedPassword string) User {
	now := time.Now().UTC()

	return User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Title:          req.Title,
		Email:          req.Email,
		Role:           req.Role,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MergeFields builds the repository merge set from an update payload. The
// hashed password is passed separately so the raw password never leaves the
// handler.
func MergeFields(req UpdateUserRequest, hashedPassword string) UpdateFields {
	return UpdateFields{
		Title:          req.Title,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		HashedPassword: hashedPassword,
	}
}

// ApplyUpdate merges the provided fields into u, field by field. Empty
// strings are skipped. CreatedAt and ID are never touched; UpdatedAt is
// always refreshed, matching what the store does on an UPDATE.
func (u *User) ApplyUpdate(f UpdateFields, now time.Time) {
	if f.Title != "" {
		u.Title = f.Title
	}
	if f.FirstName != "" {
		u.FirstName = f.FirstName
	}
	if f.LastName != "" {
		u.LastName = f.LastName
	}
	if f.Email != "" {
		u.Email = f.Email
	}
	if f.Role != "" {
		u.Role = f.Role
	}
	if f.HashedPassword != "" {
		u.HashedPassword = f.HashedPassword
	}

	u.UpdatedAt = now
}

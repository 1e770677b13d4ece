package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/geocoder89/userhub/internal/cache"
	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/observability"
	"github.com/gin-gonic/gin"
)

type UsersStore interface {
	FindAll(ctx context.Context) ([]user.User, error)
	FindByID(ctx context.Context, id int64) (user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Update(ctx context.Context, id int64, fields user.UpdateFields) (user.User, error)
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
}

type UsersHandler struct {
	repo   UsersStore
	hasher PasswordHasher
	cache  *cache.UsersCache
	prom   *observability.Prom
	log    *slog.Logger
}

func NewUsersHandler(repo UsersStore, hasher PasswordHasher, usersCache *cache.UsersCache, prom *observability.Prom, log *slog.Logger) *UsersHandler {
	return &UsersHandler{
		repo:   repo,
		hasher: hasher,
		cache:  usersCache,
		prom:   prom,
		log:    log,
	}
}

func (h *UsersHandler) hashPassword(ctx context.Context, plain string) (string, error) {
	if h.prom == nil {
		return h.hasher.Hash(ctx, plain)
	}

	var out string

	err := h.prom.ObserveHash(func() error {
		var err error
		out, err = h.hasher.Hash(ctx, plain)
		return err
	})

	return out, err
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	users, ok := h.cache.Get(cctx)

	if !ok {
		var err error
		users, err = h.repo.FindAll(cctx)

		if err != nil {
			h.log.ErrorContext(ctx.Request.Context(), "list users failed", "err", err)
			RespondInternal(ctx)
			return
		}

		h.cache.Set(cctx, users)
	}

	if len(users) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "No users found"})
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"message": "List of users",
		"users":   users,
	})
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "invalid user id"})
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	u, err := h.repo.FindByID(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": fmt.Sprintf("user id: %d cant be found", id)})
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "get user failed", "id", id, "err", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"msg":  "User found",
		"user": u,
	})
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)

	defer cancel()

	hash, err := h.hashPassword(cctx, req.Password)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "password hash failed", "err", err)
		RespondInternal(ctx)
		return
	}

	created, err := h.repo.Create(cctx, user.NewFromCreateRequest(req, hash))

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "create user failed", "err", err)
		RespondInternal(ctx)
		return
	}

	h.cache.Invalidate(cctx)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"userId":  created.ID,
	})
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid user ID"})
		return
	}

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(5 * time.Second)

	defer cancel()

	// hash only when a new password was provided; the raw password never
	// reaches the repository
	hash := ""

	if req.HasPassword() {
		hash, err = h.hashPassword(cctx, req.Password)

		if err != nil {
			h.log.ErrorContext(ctx.Request.Context(), "password hash failed", "id", id, "err", err)
			RespondInternal(ctx)
			return
		}
	}

	_, err = h.repo.Update(cctx, id, user.MergeFields(req, hash))

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "update user failed", "id", id, "err", err)
		RespondInternal(ctx)
		return
	}

	h.cache.Invalidate(cctx)

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %d updated successfully", id),
	})
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	err = h.repo.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "delete user failed", "id", id, "err", err)
		RespondInternal(ctx)
		return
	}

	h.cache.Invalidate(cctx)

	ctx.JSON(http.StatusOK, gin.H{"message": "User has been removed"})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
)

type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	validator      validators.Validator
	bcryptCost     int
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, authService AuthService, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// GetProfile returns the acting user as loaded by the auth middleware.
func (s *userService) GetProfile(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if identity.IsZero() {
		return models.Identity{}, ErrUnauthenticated
	}

	return identity, nil
}

// UpdateProfile applies the supplied fields of req to the acting user and
// issues a fresh token. Every supplied field is validated before any write.
func (s *userService) UpdateProfile(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if identity.IsZero() {
		return models.User{}, models.Token{}, ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, err
	}

	update := models.UserUpdate{UserID: identity.UserID}
	if req.Name != nil {
		name := validators.NormalizeName(*req.Name)
		update.Name = &name
	}
	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		update.Email = &email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateProfile").Msg("error hashing password")
			return models.User{}, models.Token{}, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, models.Token{}, ErrUserAlreadyExists
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "*userService.UpdateProfile").Msg("error updating user")
		return models.User{}, models.Token{}, fmt.Errorf("error updating user: %w", err)
	}

	token, err := s.authService.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	log.Info().Str("user_id", user.UserID).Msg("profile updated")

	return user, token, nil
}

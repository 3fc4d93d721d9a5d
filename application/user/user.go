package user

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/echobody/cmd/config"
	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
	redisrepo "github.com/muhammadheryan/echobody/repository/redis"
	userrepo "github.com/muhammadheryan/echobody/repository/user"
	appcontext "github.com/muhammadheryan/echobody/utils/context"
	"github.com/muhammadheryan/echobody/utils/dotted"
	"github.com/muhammadheryan/echobody/utils/errors"
	"github.com/muhammadheryan/echobody/utils/logger"
	validatorx "github.com/muhammadheryan/echobody/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error)
	UpdateUser(ctx context.Context, userID string, fields map[string]any) (*model.UpdateUserResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

var errEmptySecret = goerrors.New("empty jwt signing secret")

// tokenClaims is the bearer token payload
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error) {
	path := appcontext.GetEndpoint(ctx)

	req.Name = strings.TrimSpace(req.Name)
	if err := validatorx.ValidateStruct(req); err != nil {
		msg := validatorx.Message(err, model.CreateUserMessages, constant.ErrorTypeMessage[constant.ErrInvalidRequest])
		logger.Error("[CreateUser] invalid request", zap.String("endpoint", path), zap.String("error", msg))
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, msg)
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid date of birth.")
		}
		dob = &parsed
	}

	now := time.Now().UTC()
	entity := &model.UserEntity{
		Name:        req.Name,
		Gender:      req.Gender,
		DateOfBirth: dob,
		Email:       normalizeEmail(req.Email),
		CreatedAt:   now,
		LastLogin:   &now,
		Health:      req.Health,
		Device:      req.Device,
	}

	if req.Password != "" {
		hashed, err := s.hashPassword(req.Password)
		if err != nil {
			logger.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.String("endpoint", path), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		entity.PasswordHash = hashed
	}

	token, _, err := s.generateJWT(entity)
	if err != nil {
		logger.Error("[CreateUser] err generateJWT", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.AuthToken = token

	entity, err = s.userRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Create", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateUserResponse{
		Message: "User created successfully",
		User:    entity,
	}, nil
}

// UpdateUser applies a partial, possibly nested, update. Nested objects are
// flattened so only the named leaves change.
func (s *UserAppImpl) UpdateUser(ctx context.Context, userID string, fields map[string]any) (*model.UpdateUserResponse, error) {
	path := appcontext.GetEndpoint(ctx)

	set, badPath, err := buildUpdateSet(dotted.Flatten(fields), s.hashPassword)
	if err != nil {
		if goerrors.Is(err, errInvalidValue) {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid parameter: "+badPath)
		}
		logger.Error("[UpdateUser] err buildUpdateSet", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Update(ctx, userID, set)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Update", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	return &model.UpdateUserResponse{
		Message: "User updated successfully",
		User:    user,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	path := appcontext.GetEndpoint(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := validatorx.ValidateStruct(req); err != nil {
		msg := validatorx.Message(err, model.LoginMessages, constant.ErrorTypeMessage[constant.ErrInvalidRequest])
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, msg)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email, missing hash and wrong password look the same to the caller
	if user == nil || user.PasswordHash == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token, jti, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	_, err = s.userRepo.Update(ctx, user.ID, map[string]any{
		"lastLogin": time.Now().UTC(),
		"authToken": token,
	})
	if err != nil {
		logger.Error("[Login] err userRepo.Update", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if previous := tokenID(user.AuthToken); previous != "" {
		if err := s.redisRepo.DeleteSession(ctx, previous); err != nil {
			logger.Warn("[Login] err DeleteSession", zap.String("endpoint", path), zap.String("error", err.Error()))
		}
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("endpoint", path), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Message:   "Login successful",
		AuthToken: token,
	}, nil
}

// generateJWT signs an HS256 token carrying the user's email and name
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, string, error) {
	if s.config.Auth.JWTSecret == "" {
		return "", "", errEmptySecret
	}

	now := time.Now()
	claims := tokenClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func (s *UserAppImpl) hashPassword(password string) (string, error) {
	cost := s.config.Auth.BcryptCost
	if cost == 0 {
		cost = constant.DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// tokenID reads the jti of a previously issued token without verifying it.
func tokenID(token string) string {
	if token == "" {
		return ""
	}
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.ID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, value)
}

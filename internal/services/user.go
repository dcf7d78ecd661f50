package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront-studio/internal/config"
	"github.com/aaravmahajanofficial/storefront-studio/internal/errors"
	models "github.com/aaravmahajanofficial/storefront-studio/internal/models"
	repository "github.com/aaravmahajanofficial/storefront-studio/internal/repositories"
	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgEmailRegistered   = "Email is already registered."
	msgInvalidAdminCode  = "Invalid admin invite code."
	msgInvalidCredential = "Invalid email or password."
	msgSignInRequired    = "You need to be signed in."
	msgEmailTaken        = "Email is already taken by another account."
)

// UserService keeps the accounts collection and the single signed-in session.
// Business-rule rejections come back as AuthResult{Success: false}; errors
// are reserved for failures the caller cannot fix.
type UserService struct {
	ctx             context.Context
	repo            repository.UserRepository
	jwtKey          []byte
	tokenTTL        time.Duration
	adminInviteCode string

	users   *state.Signal[[]models.User]
	current *state.Signal[*models.User]
}

func NewUserService(ctx context.Context, repo repository.UserRepository, security config.Security) *UserService {
	ctx = context.WithoutCancel(ctx)

	ttl := time.Duration(security.JWTExpiryHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := &UserService{
		ctx:             ctx,
		repo:            repo,
		jwtKey:          []byte(security.JWTKey),
		tokenTTL:        ttl,
		adminInviteCode: security.AdminInviteCode,
		users:           state.NewSignal(repo.LoadUsers(ctx)),
		current:         state.NewSignal(repo.LoadSession(ctx)),
	}

	s.users.Subscribe(s.persistUsers)
	s.current.Subscribe(s.persistSession)

	return s
}

// EnsureAdminSeed adds the demo admin when no admin account exists.
func (s *UserService) EnsureAdminSeed(seed config.Seed) error {
	for _, user := range s.users.Get() {
		if user.Role == models.RoleAdmin {
			return nil
		}
	}

	hash, err := hashPassword(seed.AdminPassword)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	admin := models.User{
		ID:       uuid.NewString(),
		Name:     seed.AdminName,
		Email:    strings.ToLower(seed.AdminEmail),
		Password: hash,
		Role:     models.RoleAdmin,
		Orders:   []models.OrderRecord{},
	}

	s.users.Update(func(users []models.User) []models.User {
		return append(cloneUsers(users), admin)
	})

	slog.Info("Seeded demo admin account", slog.String("email", admin.Email))

	return nil
}

func (s *UserService) Signup(req *models.SignupRequest) (*models.AuthResult, error) {
	email := strings.ToLower(req.Email)

	if s.findByEmail(email) != nil {
		return &models.AuthResult{Success: false, Message: msgEmailRegistered}, nil
	}

	if req.Role == models.RoleAdmin && req.AdminCode != s.adminInviteCode {
		return &models.AuthResult{Success: false, Message: msgInvalidAdminCode}, nil
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    email,
		Password: hash,
		Role:     req.Role,
		Orders:   []models.OrderRecord{},
	}

	s.users.Update(func(users []models.User) []models.User {
		return append(cloneUsers(users), user)
	})
	s.current.Set(cloneUser(&user))

	return s.authenticated(&user)
}

// Login accepts bcrypt hashes and, for records stored before hashing, the
// plaintext password; the latter is re-hashed on success.
func (s *UserService) Login(req *models.LoginRequest) (*models.AuthResult, error) {
	user := s.findByEmail(strings.ToLower(req.Email))
	if user == nil {
		return &models.AuthResult{Success: false, Message: msgInvalidCredential}, nil
	}

	if isBcryptHash(user.Password) {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			return &models.AuthResult{Success: false, Message: msgInvalidCredential}, nil
		}
	} else {
		if user.Password != req.Password {
			return &models.AuthResult{Success: false, Message: msgInvalidCredential}, nil
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, errors.InternalError("Failed to secure password").WithError(err)
		}

		user.Password = hash
		s.UpsertUser(*user)
		slog.Info("Upgraded legacy password to bcrypt", slog.String("userId", user.ID))
	}

	s.current.Set(cloneUser(user))

	return s.authenticated(user)
}

func (s *UserService) Logout() {
	s.current.Set(nil)
}

func (s *UserService) UpdateProfile(req *models.ProfileUpdateRequest) *models.AuthResult {
	current := s.current.Get()
	if current == nil {
		return &models.AuthResult{Success: false, Message: msgSignInRequired}
	}

	email := strings.ToLower(req.Email)
	if other := s.findByEmail(email); other != nil && other.ID != current.ID {
		return &models.AuthResult{Success: false, Message: msgEmailTaken}
	}

	updated := cloneUser(current)
	updated.Name = req.Name
	updated.Email = email
	updated.Phone = req.Phone
	updated.Address = req.Address
	updated.City = req.City
	updated.Country = req.Country

	s.UpsertUser(*updated)

	return &models.AuthResult{Success: true, User: updated.Profile()}
}

// RecordOrder puts order at the head of the signed-in user's history. It is a
// no-op without a session.
func (s *UserService) RecordOrder(order models.OrderRecord) {
	current := s.current.Get()
	if current == nil {
		return
	}

	updated := cloneUser(current)
	updated.Orders = append([]models.OrderRecord{order}, updated.Orders...)

	s.UpsertUser(*updated)
}

// UpsertUser replaces the stored record with the same id and refreshes the
// session when it belongs to that user.
func (s *UserService) UpsertUser(updated models.User) {
	s.users.Update(func(users []models.User) []models.User {
		next := cloneUsers(users)
		for i := range next {
			if next[i].ID == updated.ID {
				next[i] = *cloneUser(&updated)
			}
		}
		return next
	})

	if current := s.current.Get(); current != nil && current.ID == updated.ID {
		s.current.Set(cloneUser(&updated))
	}
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *UserService) CurrentUser() *models.User {
	return cloneUser(s.current.Get())
}

func (s *UserService) IsAuthenticated() bool {
	return s.current.Get() != nil
}

func (s *UserService) IsAdmin() bool {
	current := s.current.Get()
	return current != nil && current.Role == models.RoleAdmin
}

func (s *UserService) Orders() []models.OrderRecord {
	if current := s.current.Get(); current != nil {
		return append([]models.OrderRecord{}, current.Orders...)
	}

	return []models.OrderRecord{}
}

func (s *UserService) Users() []models.User {
	return cloneUsers(s.users.Get())
}

// IssueToken signs an HS256 token for user and returns it with its lifetime
// in seconds.
func (s *UserService) IssueToken(user *models.User) (string, int, error) {
	now := time.Now()

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", 0, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return tokenString, int(s.tokenTTL.Seconds()), nil
}

func (s *UserService) authenticated(user *models.User) (*models.AuthResult, error) {
	token, expiresIn, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{
		Success:   true,
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user.Profile(),
	}, nil
}

func (s *UserService) findByEmail(email string) *models.User {
	for _, user := range s.users.Get() {
		if strings.ToLower(user.Email) == email {
			return cloneUser(&user)
		}
	}

	return nil
}

func (s *UserService) persistUsers(users []models.User) {
	if err := s.repo.SaveUsers(s.ctx, users); err != nil {
		slog.Warn("Users were not persisted", slog.String("error", err.Error()))
	}
}

func (s *UserService) persistSession(user *models.User) {
	if err := s.repo.SaveSession(s.ctx, user); err != nil {
		slog.Warn("Session was not persisted", slog.String("error", err.Error()))
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func isBcryptHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}

func cloneUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}

	clone := *user
	clone.Orders = append([]models.OrderRecord{}, user.Orders...)

	return &clone
}

func cloneUsers(users []models.User) []models.User {
	next := make([]models.User, len(users))
	for i := range users {
		next[i] = *cloneUser(&users[i])
	}

	return next
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/business"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrValidation)
	ErrUserInactive       = errs.Mark(errs.New("user inactive"), errs.ErrForbidden)
	ErrEmailTaken         = errs.Mark(errs.New("email already registered"), errs.ErrConflict)
	ErrSlugTaken          = errs.Mark(errs.New("slug already taken"), errs.ErrConflict)
	ErrTokenGeneration    = errs.New("token generation failed")
)

const (
	constraintUsersEmail     = "users_email_key"
	constraintBusinessesSlug = "businesses_slug_key"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type RegisterInput struct {
	Email        string
	Password     string
	BusinessName string
	Slug         string
	Category     string
	Description  *string
	Timezone     string
}

type RegisterResult struct {
	UserID      uuid.UUID
	BusinessID  uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		clock:  clk,
	}
}

// Register creates the owner account, its business and a default weekday
// availability rule in one transaction.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, invalid(err)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, invalid(err)
	}
	slug, err := business.NewSlug(in.Slug)
	if err != nil {
		return nil, invalid(err)
	}
	category, err := business.NewCategory(in.Category)
	if err != nil {
		return nil, invalid(err)
	}
	rule, err := availability.NewRule(availability.DefaultParams(in.Timezone))
	if err != nil {
		return nil, invalid(err)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	now := a.clock.Now()
	owner := user.NewUser(email, hash, user.RoleOwner, now)
	biz, err := business.NewBusiness(owner.ID(), in.BusinessName, slug, category, in.Description, now)
	if err != nil {
		return nil, invalid(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, owner); err != nil {
			return err
		}
		if err := tx.Businesses().Create(ctx, biz); err != nil {
			return err
		}
		return tx.Rules().Save(ctx, biz.ID(), rule, now)
	})
	if err != nil {
		return nil, mapRegisterErr(err)
	}

	token, err := a.tokens.GenerateToken(owner.ID(), owner.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("business registered", "user_id", owner.ID(), "business_id", biz.ID(), "slug", slug.String())

	return &RegisterResult{
		UserID:      owner.ID(),
		BusinessID:  biz.ID(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := a.hasher.Compare(account.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.tokens.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, account.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded; only the audit timestamp is lost
		slog.Warn("failed to update last login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func mapRegisterErr(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	switch infra.ConstraintOf(err) {
	case constraintUsersEmail:
		return errs.MarkAll(err, ErrEmailTaken, errs.ErrConflict)
	case constraintBusinessesSlug:
		return errs.MarkAll(err, ErrSlugTaken, errs.ErrConflict)
	default:
		return errs.Mark(err, errs.ErrConflict)
	}
}

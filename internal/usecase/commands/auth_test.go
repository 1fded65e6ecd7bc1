//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/business"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/shared"
	commandsmock "slotbook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:        "owner@example.com",
		Password:     "password123",
		BusinessName: "Lash Studio",
		Slug:         "lash-studio",
		Category:     "lash",
		Timezone:     "Europe/Berlin",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success: creates owner, business and default rule", func(t *testing.T) {
		f := newUoWFixture(t)
		hasher := commandsmock.NewMockPasswordHasher(f.ctrl)
		tokens := commandsmock.NewMockTokenIssuer(f.ctrl)

		hasher.EXPECT().Hash("password123").Return("hashed", nil)
		var owner *user.User
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			owner = u
			return nil
		})
		f.businesses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *business.Business) error {
			assert.Equal(t, owner.ID(), b.OwnerID())
			assert.Equal(t, "lash-studio", b.Slug().String())
			return nil
		})
		f.rules.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, r availability.Rule, _ time.Time) error {
				assert.Equal(t, "Europe/Berlin", r.Timezone())
				assert.Equal(t, []int{1, 2, 3, 4, 5}, r.WorkingDays())
				return nil
			})
		tokens.EXPECT().GenerateToken(gomock.Any(), user.RoleOwner).Return("jwt", nil)
		tokens.EXPECT().TokenDuration().Return(time.Hour)

		res, err := commands.NewAuthCommands(f.uow, hasher, tokens, f.clock).Register(ctx, registerInput())
		require.NoError(t, err)
		assert.Equal(t, owner.ID(), res.UserID)
		assert.Equal(t, "jwt", res.AccessToken)
		assert.Equal(t, time.Hour, res.ExpiresIn)
	})

	t.Run("error: duplicate constraints map to their sentinel", func(t *testing.T) {
		cases := []struct {
			constraint string
			want       error
		}{
			{constraint: "users_email_key", want: commands.ErrEmailTaken},
			{constraint: "businesses_slug_key", want: commands.ErrSlugTaken},
		}
		for _, tc := range cases {
			t.Run(tc.constraint, func(t *testing.T) {
				f := newUoWFixture(t)
				hasher := commandsmock.NewMockPasswordHasher(f.ctrl)
				tokens := commandsmock.NewMockTokenIssuer(f.ctrl)
				hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				dup := infra.WrapRepoErr("failed to insert", &pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})
				f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup)

				_, err := commands.NewAuthCommands(f.uow, hasher, tokens, f.clock).Register(ctx, registerInput())
				assert.True(t, errs.Is(err, tc.want), "got %v", err)
				assert.True(t, errs.Is(err, errs.ErrConflict))
			})
		}
	})

	t.Run("error: invalid slug and timezone are validation errors", func(t *testing.T) {
		f := newUoWFixture(t)
		cmds := commands.NewAuthCommands(f.uow, commandsmock.NewMockPasswordHasher(f.ctrl), commandsmock.NewMockTokenIssuer(f.ctrl), f.clock)

		in := registerInput()
		in.Slug = "Not A Slug"
		_, err := cmds.Register(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		in = registerInput()
		in.Timezone = "Mars/Olympus"
		_, err = cmds.Register(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	account := &shared.UserCredentials{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		Role:         "owner",
		PasswordHash: "hashed",
		IsActive:     true,
	}

	t.Run("success: issues a token and records the login", func(t *testing.T) {
		f := newUoWFixture(t)
		hasher := commandsmock.NewMockPasswordHasher(f.ctrl)
		tokens := commandsmock.NewMockTokenIssuer(f.ctrl)
		f.reads.EXPECT().UserCredentialsByEmail(gomock.Any(), account.Email).Return(account, nil)
		hasher.EXPECT().Compare("hashed", "password123").Return(nil)
		tokens.EXPECT().GenerateToken(account.ID, user.RoleOwner).Return("jwt", nil)
		tokens.EXPECT().TokenDuration().Return(time.Hour)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), account.ID, testNow).Return(nil)

		res, err := commands.NewAuthCommands(f.uow, hasher, tokens, f.clock).Login(ctx, account.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, account.ID, res.UserID)
		assert.Equal(t, user.RoleOwner, res.Role)
	})

	t.Run("error: wrong password and unknown email look the same", func(t *testing.T) {
		f := newUoWFixture(t)
		hasher := commandsmock.NewMockPasswordHasher(f.ctrl)
		cmds := commands.NewAuthCommands(f.uow, hasher, commandsmock.NewMockTokenIssuer(f.ctrl), f.clock)

		f.reads.EXPECT().UserCredentialsByEmail(gomock.Any(), account.Email).Return(account, nil)
		hasher.EXPECT().Compare("hashed", "wrongpass1").Return(errors.New("mismatch"))
		_, err := cmds.Login(ctx, account.Email, "wrongpass1")
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))

		f.reads.EXPECT().UserCredentialsByEmail(gomock.Any(), "nobody@example.com").Return(nil, notFound("user not found"))
		_, err = cmds.Login(ctx, "nobody@example.com", "password123")
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("error: inactive account", func(t *testing.T) {
		f := newUoWFixture(t)
		hasher := commandsmock.NewMockPasswordHasher(f.ctrl)
		inactive := *account
		inactive.IsActive = false
		f.reads.EXPECT().UserCredentialsByEmail(gomock.Any(), account.Email).Return(&inactive, nil)
		hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)

		_, err := commands.NewAuthCommands(f.uow, hasher, commandsmock.NewMockTokenIssuer(f.ctrl), f.clock).
			Login(ctx, account.Email, "password123")
		assert.True(t, errs.Is(err, commands.ErrUserInactive))
	})
}

func TestSaveRule(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	biz := &shared.BusinessSnapshot{ID: uuid.New(), OwnerID: ownerID, IsActive: true}
	breakStart, breakEnd := "13:00", "13:30"

	valid := commands.RuleInput{
		Timezone:        "UTC",
		WorkingDays:     []int{1, 2, 3, 4, 5},
		StartTime:       "10:00",
		EndTime:         "18:00",
		BreakStart:      &breakStart,
		BreakEnd:        &breakEnd,
		BufferMinutes:   10,
		SlotStepMinutes: 30,
	}

	t.Run("success: replaces the rule", func(t *testing.T) {
		f := newUoWFixture(t)
		f.reads.EXPECT().BusinessByOwner(gomock.Any(), ownerID).Return(biz, nil)
		f.rules.EXPECT().Save(gomock.Any(), biz.ID, gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, r availability.Rule, _ time.Time) error {
				bs, be, ok := r.Break()
				assert.True(t, ok)
				assert.Equal(t, "13:00", bs.String())
				assert.Equal(t, "13:30", be.String())
				return nil
			})

		require.NoError(t, commands.NewAvailabilityCommands(f.uow, f.clock).SaveRule(ctx, ownerID, valid))
	})

	t.Run("error: malformed rule is rejected before the transaction", func(t *testing.T) {
		f := newUoWFixture(t)
		cmds := commands.NewAvailabilityCommands(f.uow, f.clock)

		bad := valid
		bad.EndTime = "09:00"
		assert.True(t, errs.Is(cmds.SaveRule(ctx, ownerID, bad), availability.ErrInvalidWindow))

		bad = valid
		bad.StartTime = "10am"
		assert.True(t, errs.Is(cmds.SaveRule(ctx, ownerID, bad), errs.ErrValidation))
	})

	t.Run("error: owner without business", func(t *testing.T) {
		f := newUoWFixture(t)
		f.reads.EXPECT().BusinessByOwner(gomock.Any(), ownerID).Return(nil, notFound("business not found"))

		err := commands.NewAvailabilityCommands(f.uow, f.clock).SaveRule(ctx, ownerID, valid)
		assert.True(t, errs.Is(err, commands.ErrNoBusiness))
	})
}

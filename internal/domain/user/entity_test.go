//go:build unit

package user_test

import (
	"testing"

	"service-marketplace/internal/domain/user"
	"service-marketplace/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", "Test User", user.RoleCustomer)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字は正規化されるOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Valid@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "CUSTOMER ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("CUSTOMER") },
			},
			{
				name:   "SERVICE_PROVIDER ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsProvider() },
			},
			{
				name:   "ADMIN ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("氏名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "1文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName("A") },
				errIs:  user.ErrInvalidFullName,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithFullName("   ") },
				errIs:  user.ErrInvalidFullName,
			},
		})
	})
}

func TestUser_AccountStatus(t *testing.T) {
	t.Run("プロバイダーは承認待ちで作成される", func(t *testing.T) {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.AsProvider() }).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, user.StatusPendingApproval, u.AccountStatus())
		assert.False(t, u.IsActive())
	})

	t.Run("承認でACTIVEになる", func(t *testing.T) {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.AsProvider() }).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.Approve())
		assert.True(t, u.IsActive())
	})

	t.Run("却下でREJECTEDになる", func(t *testing.T) {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.AsProvider() }).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.Reject())
		assert.Equal(t, user.StatusRejected, u.AccountStatus())
	})

	t.Run("承認待ち以外の承認はNG", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, u.Approve(), user.ErrNotPendingApproval)
		assert.ErrorIs(t, u.Reject(), user.ErrNotPendingApproval)
		assert.Equal(t, user.StatusActive, u.AccountStatus())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

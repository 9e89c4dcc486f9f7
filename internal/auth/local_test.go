package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/cinebook/internal/models"
	"github.com/mmynk/cinebook/internal/storage/sqlite"
)

func setupAuthenticator(t *testing.T) (*LocalAuthenticator, *sqlite.SQLiteStore) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewLocalAuthenticator(store, store, testHasher()), store
}

func TestRegister(t *testing.T) {
	a, store := setupAuthenticator(t)
	ctx := context.Background()

	cred, err := a.Register(ctx, "Alice", "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if cred.PasswordHash == "secret1" || cred.PasswordHash == "" {
		t.Errorf("password must be stored hashed, got %q", cred.PasswordHash)
	}

	// Same email, different case and whitespace.
	for _, email := range []string{"a@x.com", "A@X.COM", "  a@x.com "} {
		_, err := a.Register(ctx, "Other", email, "whatever")
		if !errors.Is(err, ErrDuplicateEmail) {
			t.Errorf("Register(%q): expected ErrDuplicateEmail, got %v", email, err)
		}
	}

	stored, _ := store.GetCredential(ctx, "a@x.com")
	if stored.Name != "Alice" {
		t.Errorf("duplicate registration must not overwrite the name, got %q", stored.Name)
	}

	t.Run("name is optional and password strength is not enforced", func(t *testing.T) {
		if _, err := a.Register(ctx, "", "b@x.com", "1"); err != nil {
			t.Errorf("Register without name failed: %v", err)
		}
	})

	t.Run("missing email or password", func(t *testing.T) {
		for _, tc := range [][2]string{{"", "secret1"}, {"c@x.com", ""}} {
			_, err := a.Register(ctx, "C", tc[0], tc[1])
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Register(%q, %q): expected ErrValidation, got %v", tc[0], tc[1], err)
			}
		}
	})
}

func TestLogin(t *testing.T) {
	a, store := setupAuthenticator(t)
	ctx := context.Background()

	if _, err := a.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := a.Register(ctx, "Bob", "b@x.com", "hunter22"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		profile, err := a.Login(ctx, "a@x.com", "wrongpass")
		if !errors.Is(err, ErrWrongCredentials) || profile != nil {
			t.Errorf("Login = %+v, %v; want nil, ErrWrongCredentials", profile, err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Login(ctx, "ghost@x.com", "secret1")
		if !errors.Is(err, ErrWrongCredentials) {
			t.Errorf("expected ErrWrongCredentials, got %v", err)
		}
	})

	t.Run("empty fields", func(t *testing.T) {
		for _, tc := range [][2]string{{"", "secret1"}, {"a@x.com", ""}, {"  ", ""}} {
			profile, err := a.Login(ctx, tc[0], tc[1])
			if !errors.Is(err, ErrWrongCredentials) || profile != nil {
				t.Errorf("Login(%q, %q) = %+v, %v; want nil, ErrWrongCredentials", tc[0], tc[1], profile, err)
			}
		}
	})

	t.Run("success caches the profile", func(t *testing.T) {
		profile, err := a.Login(ctx, "A@x.com", "secret1")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if profile.Email != "a@x.com" || profile.Name != "Alice" || profile.IDFromBackend != "a@x.com" {
			t.Errorf("unexpected profile %+v", profile)
		}

		cached, _ := store.GetProfile(ctx)
		if cached == nil || cached.Email != "a@x.com" {
			t.Errorf("cached profile = %+v, want a@x.com", cached)
		}
	})

	t.Run("latest login owns the single cached profile", func(t *testing.T) {
		for _, login := range []struct{ email, password string }{
			{"a@x.com", "secret1"},
			{"b@x.com", "hunter22"},
			{"a@x.com", "secret1"},
			{"b@x.com", "hunter22"},
		} {
			if _, err := a.Login(ctx, login.email, login.password); err != nil {
				t.Fatalf("Login(%s) failed: %v", login.email, err)
			}
			cached, _ := store.GetProfile(ctx)
			if cached == nil || cached.Email != login.email {
				t.Errorf("cached profile after %s = %+v", login.email, cached)
			}
		}
	})

	t.Run("failed login keeps the cached profile", func(t *testing.T) {
		a.Login(ctx, "a@x.com", "nope")
		cached, _ := store.GetProfile(ctx)
		if cached == nil || cached.Email != "b@x.com" {
			t.Errorf("cached profile = %+v, want b@x.com", cached)
		}
	})
}

func TestLogin_UpgradesBcryptHash(t *testing.T) {
	a, store := setupAuthenticator(t)
	ctx := context.Background()

	legacy, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err := store.CreateCredential(ctx, models.NewCredential("old@x.com", "Old", string(legacy))); err != nil {
		t.Fatalf("CreateCredential failed: %v", err)
	}

	if _, err := a.Login(ctx, "old@x.com", "secret1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	cred, _ := store.GetCredential(ctx, "old@x.com")
	if cred.PasswordHash == string(legacy) {
		t.Error("expected bcrypt hash to be replaced")
	}
	if _, err := a.Login(ctx, "old@x.com", "secret1"); err != nil {
		t.Errorf("Login after upgrade failed: %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	a, _ := setupAuthenticator(t)
	ctx := context.Background()
	if _, err := a.Register(ctx, "Alice", "a@x.com", "secret1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name    string
		email   string
		old     string
		new     string
		wantErr error
	}{
		{"empty field", "a@x.com", "", "newpass1", ErrValidation},
		{"too short", "a@x.com", "secret1", "abc", ErrValidation},
		{"same as old", "a@x.com", "secret1", "secret1", ErrValidation},
		{"short beats unknown account", "ghost@x.com", "secret1", "abc", ErrValidation},
		{"unknown account", "ghost@x.com", "secret1", "newpass1", ErrAccountNotFound},
		{"wrong old password", "a@x.com", "wrong11", "newpass1", ErrWrongOldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.UpdatePassword(ctx, tt.email, tt.old, tt.new)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	// None of the failures changed anything.
	if _, err := a.Login(ctx, "a@x.com", "secret1"); err != nil {
		t.Fatalf("original password should still work: %v", err)
	}

	if err := a.UpdatePassword(ctx, "a@x.com", "secret1", "newpass1"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}
	if _, err := a.Login(ctx, "a@x.com", "secret1"); !errors.Is(err, ErrWrongCredentials) {
		t.Errorf("old password should be rejected, got %v", err)
	}
	if _, err := a.Login(ctx, "a@x.com", "newpass1"); err != nil {
		t.Errorf("new password should work: %v", err)
	}
}

func TestUpdateDisplayName(t *testing.T) {
	a, store := setupAuthenticator(t)
	ctx := context.Background()
	a.Register(ctx, "Alice", "a@x.com", "secret1")
	a.Register(ctx, "Bob", "b@x.com", "secret1")

	t.Run("unknown account", func(t *testing.T) {
		_, err := a.UpdateDisplayName(ctx, "ghost@x.com", "Ghost")
		if !errors.Is(err, ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("blank name clears it", func(t *testing.T) {
		update, err := a.UpdateDisplayName(ctx, "a@x.com", "   ")
		if err != nil {
			t.Fatalf("UpdateDisplayName failed: %v", err)
		}
		if update.Name != "" {
			t.Errorf("Name = %q, want empty", update.Name)
		}
		cred, _ := store.GetCredential(ctx, "a@x.com")
		if cred.Name != "" {
			t.Errorf("credential name = %q, want empty", cred.Name)
		}
	})

	t.Run("renames cached profile of the signed-in user", func(t *testing.T) {
		if _, err := a.Login(ctx, "a@x.com", "secret1"); err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		update, err := a.UpdateDisplayName(ctx, "a@x.com", " Alicia ")
		if err != nil {
			t.Fatalf("UpdateDisplayName failed: %v", err)
		}
		if update.Name != "Alicia" || !update.CacheUpdated || update.CacheErr != nil {
			t.Errorf("unexpected update %+v", update)
		}
		cached, _ := store.GetProfile(ctx)
		if cached.Name != "Alicia" {
			t.Errorf("cached name = %q, want Alicia", cached.Name)
		}
	})

	t.Run("other account leaves the cache alone", func(t *testing.T) {
		update, err := a.UpdateDisplayName(ctx, "b@x.com", "Robert")
		if err != nil {
			t.Fatalf("UpdateDisplayName failed: %v", err)
		}
		if update.CacheUpdated {
			t.Error("cache belongs to a@x.com and should not be updated")
		}
		cred, _ := store.GetCredential(ctx, "b@x.com")
		if cred.Name != "Robert" {
			t.Errorf("credential name = %q, want Robert", cred.Name)
		}
	})
}

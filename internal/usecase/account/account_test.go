package account_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/idanaslund/final-project-backend/internal/audit"
	domain "github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/usecase/account"
)

func signup(t *testing.T, repo *memRepo, d *audit.Dispatcher, username, password string) string {
	t.Helper()
	u, err := account.NewSignup(repo, d).Execute(context.Background(), account.SignupInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	return u.ID
}

func TestSignup(t *testing.T) {
	repo := newMemRepo()
	d, flush := newAudit(t)
	uc := account.NewSignup(repo, d)
	ctx := context.Background()

	u, err := uc.Execute(ctx, account.SignupInput{Username: "alice", Password: "password1", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.AccessToken == "" || u.PasswordHash == "password1" || u.Email == nil || *u.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	other, err := uc.Execute(ctx, account.SignupInput{Username: "bob", Password: "password2"})
	if err != nil {
		t.Fatalf("second signup: %v", err)
	}
	if other.AccessToken == u.AccessToken {
		t.Fatalf("tokens must be unique")
	}
	if other.Email != nil {
		t.Fatalf("empty email should be stored as nil")
	}

	events := flush()
	if len(events) != 2 || events[0].Action != audit.ActionUserSignedUp || events[0].EntityID != u.ID {
		t.Fatalf("unexpected audit events: %+v", events)
	}
}

func TestSignup_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   account.SignupInput
		code string
	}{
		{"short password", account.SignupInput{Username: "alice", Password: "short"}, "password_too_short"},
		{"short multibyte password", account.SignupInput{Username: "bob", Password: "ééééé"}, "password_too_short"},
		{"password over 72 bytes", account.SignupInput{Username: "alice", Password: strings.Repeat("a", 73)}, "password_too_long"},
		{"short username", account.SignupInput{Username: "al", Password: "password1"}, "invalid_username"},
		{"long username", account.SignupInput{Username: strings.Repeat("a", 21), Password: "password1"}, "invalid_username"},
		{"bad email", account.SignupInput{Username: "alice", Password: "password1", Email: "not-an-email"}, "invalid_email"},
		{"long bio", account.SignupInput{Username: "alice", Password: "password1", Bio: strings.Repeat("b", 501)}, "invalid_bio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			d, _ := newAudit(t)
			_, err := account.NewSignup(repo, d).Execute(context.Background(), tt.in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if len(repo.users) != 0 {
				t.Fatalf("rejected signup must not create a user")
			}
		})
	}
}

func TestSignup_ShortPasswordCheckedBeforeStore(t *testing.T) {
	repo := newMemRepo()
	repo.fail = errors.New("store down")
	d, _ := newAudit(t)

	_, err := account.NewSignup(repo, d).Execute(context.Background(), account.SignupInput{Username: "alice", Password: "1234567"})
	if !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestSignup_LongestPasswordLogsIn(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	password := strings.Repeat("a", domain.MaxPasswordBytes)
	signup(t, repo, d, "alice", password)

	if _, err := account.NewLogin(repo).Execute(context.Background(), "alice", password); err != nil {
		t.Fatalf("login with a 72 byte password: %v", err)
	}
}

func TestSignup_Duplicate(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	signup(t, repo, d, "alice", "password1")

	_, err := account.NewSignup(repo, d).Execute(context.Background(), account.SignupInput{Username: "alice", Password: "password9"})
	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected duplicate, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")
	stored, _ := repo.GetUserByID(context.Background(), id)

	uc := account.NewLogin(repo)

	u, err := uc.Execute(context.Background(), "alice", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.AccessToken != stored.AccessToken {
		t.Fatalf("login must return the token issued at signup")
	}

	for _, tc := range []struct{ user, pass string }{
		{"alice", "password2"},
		{"alice", "password"},
		{"ghost", "password1"},
		{"", "password1"},
		{"alice", ""},
	} {
		if _, err := uc.Execute(context.Background(), tc.user, tc.pass); !errors.Is(err, domain.ErrLoginFailed) {
			t.Fatalf("login(%q,%q): expected ErrLoginFailed, got %v", tc.user, tc.pass, err)
		}
	}
}

func TestLogin_TrimsUsername(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	signup(t, repo, d, " carol ", "password1")

	for _, name := range []string{" carol ", "carol"} {
		if _, err := account.NewLogin(repo).Execute(context.Background(), name, "password1"); err != nil {
			t.Fatalf("login(%q): %v", name, err)
		}
	}
}

func TestLogin_StoreError(t *testing.T) {
	repo := newMemRepo()
	repo.fail = errors.New("store down")

	_, err := account.NewLogin(repo).Execute(context.Background(), "alice", "password1")
	if err == nil || errors.Is(err, domain.ErrLoginFailed) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMemRepo()
	d, flush := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")
	uc := account.NewUpdateProfile(repo, d)
	ctx := context.Background()

	u, err := uc.Execute(ctx, id, id, []byte(`{"fullName":"Alice A","bio":"hungry"}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.FullName != "Alice A" || u.Bio != "hungry" {
		t.Fatalf("unexpected profile: %+v", u)
	}

	events := flush()
	last := events[len(events)-1]
	if last.Action != audit.ActionProfileUpdated {
		t.Fatalf("expected profile_updated, got %+v", last)
	}
}

func TestUpdateProfile_Rejections(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")
	other := signup(t, repo, d, "bob", "password1")
	before, _ := repo.GetUserByID(context.Background(), id)

	uc := account.NewUpdateProfile(repo, d)

	tests := []struct {
		name   string
		caller string
		body   string
		status int
	}{
		{"token overwrite", id, `{"accessToken":"mine"}`, 400},
		{"password overwrite", id, `{"password":"plain"}`, 400},
		{"username overwrite", id, `{"bio":"x","username":"eve"}`, 400},
		{"other user", other, `{"bio":"x"}`, 403},
		{"bad email", id, `{"email":"nope"}`, 400},
		{"not json", id, `nope`, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.caller, id, []byte(tt.body))
			var be httperr.BusinessError
			if !errors.As(err, &be) || be.HTTPStatus() != tt.status {
				t.Fatalf("expected status %d, got %v", tt.status, err)
			}
		})
	}

	after, _ := repo.GetUserByID(context.Background(), id)
	if after.AccessToken != before.AccessToken || after.Username != before.Username || after.Bio != before.Bio {
		t.Fatalf("rejected patches changed the user")
	}
}

func TestUpdateProfile_UnknownFieldMessage(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")

	_, err := account.NewUpdateProfile(repo, d).Execute(context.Background(), id, id, []byte(`{"accessToken":"x"}`))
	var be httperr.BusinessError
	if !errors.As(err, &be) || be.Message != "Field accessToken cannot be updated" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadProfileImage(t *testing.T) {
	repo := newMemRepo()
	d, flush := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")
	images := &fakeImages{}

	u, err := account.NewUploadProfileImage(repo, images, d).
		Execute(context.Background(), id, id, "holiday.png", pngBytes(t, 800, 600))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(images.keys) != 1 || !strings.HasPrefix(images.keys[0], "profile-images/"+id+"/") || !strings.HasSuffix(images.keys[0], ".webp") {
		t.Fatalf("unexpected object keys: %v", images.keys)
	}
	if u.ProfileImage.Name != "holiday.png" || u.ProfileImage.ImageURL != "https://cdn.example.com/"+images.keys[0] {
		t.Fatalf("unexpected profile image: %+v", u.ProfileImage)
	}

	events := flush()
	if events[len(events)-1].Action != audit.ActionProfileImageUploaded {
		t.Fatalf("missing audit event: %+v", events)
	}
}

func TestUploadProfileImage_Rejections(t *testing.T) {
	repo := newMemRepo()
	d, _ := newAudit(t)
	id := signup(t, repo, d, "alice", "password1")
	other := signup(t, repo, d, "bob", "password1")
	ctx := context.Background()

	if _, err := account.NewUploadProfileImage(repo, nil, d).Execute(ctx, id, id, "a.png", pngBytes(t, 10, 10)); !errors.Is(err, domain.ErrImageStorageDisabled) {
		t.Fatalf("nil store: got %v", err)
	}

	uc := account.NewUploadProfileImage(repo, &fakeImages{}, d)
	if _, err := uc.Execute(ctx, other, id, "a.png", pngBytes(t, 10, 10)); !errors.Is(err, domain.ErrNotProfileOwner) {
		t.Fatalf("other user: got %v", err)
	}
	if _, err := uc.Execute(ctx, id, id, "a.txt", []byte("hello")); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("garbage: got %v", err)
	}
	if _, err := uc.Execute(ctx, id, id, "big.png", make([]byte, domain.MaxImageBytes+1)); !errors.Is(err, domain.ErrImageTooLarge) {
		t.Fatalf("too large: got %v", err)
	}
}

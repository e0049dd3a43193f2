package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

type memoryProfileRepo struct {
	profile *entity.Profile
	saveErr error
}

func (m *memoryProfileRepo) Get(ctx context.Context) (*entity.Profile, error) {
	return m.profile, nil
}

func (m *memoryProfileRepo) Save(ctx context.Context, p *entity.Profile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.profile = p
	return nil
}

func TestGetProfileUseCase_Default(t *testing.T) {
	out, err := NewGetProfileUseCase(&memoryProfileRepo{}).Execute(context.Background(), GetProfileInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Profile.Name != entity.DefaultProfileName || out.Profile.Email != "" {
		t.Errorf("unexpected default profile: %+v", out.Profile)
	}
}

func TestUpdateProfileUseCase(t *testing.T) {
	tests := []struct {
		name        string
		input       UpdateProfileInput
		expectedErr error
	}{
		{name: "valid", input: UpdateProfileInput{Name: "Asha", Email: "asha@example.com"}},
		{name: "valid without email", input: UpdateProfileInput{Name: "Asha"}},
		{name: "blank name", input: UpdateProfileInput{Name: "  ", Email: "asha@example.com"}, expectedErr: domainerror.ErrInvalidProfileName},
		{name: "bad email", input: UpdateProfileInput{Name: "Asha", Email: "not-an-email"}, expectedErr: domainerror.ErrInvalidProfileEmail},
		{name: "display name form rejected", input: UpdateProfileInput{Name: "Asha", Email: "Asha <asha@example.com>"}, expectedErr: domainerror.ErrInvalidProfileEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryProfileRepo{}
			out, err := NewUpdateProfileUseCase(repo).Execute(context.Background(), tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				if repo.profile != nil {
					t.Error("profile must not be saved on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.profile != out.Profile {
				t.Error("expected the returned profile to be stored")
			}
		})
	}
}

func TestUpdateProfileUseCase_StoreFailure(t *testing.T) {
	repo := &memoryProfileRepo{saveErr: errors.New("disk full")}
	_, err := NewUpdateProfileUseCase(repo).Execute(context.Background(), UpdateProfileInput{Name: "Asha"})

	var profileErr *domainerror.ProfileError
	if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeProfileStoreFailed {
		t.Errorf("expected store failure, got %v", err)
	}
}

package service_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		ctx         context.Context
		userRepo    *mockUserRepo
		profileRepo *mockProfileRepo
		svc         *service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = &mockUserRepo{}
		profileRepo = &mockProfileRepo{}
		svc = service.NewAuthService(userRepo, profileRepo, "test-secret")
	})

	Describe("Register", func() {
		It("creates the user together with its profile", func() {
			var createdUser *domain.User
			var createdProfile *domain.Profile
			userRepo.createFn = func(_ context.Context, u *domain.User) error {
				createdUser = u
				return nil
			}
			profileRepo.createFn = func(_ context.Context, p *domain.Profile) error {
				createdProfile = p
				return nil
			}

			resp, err := svc.Register(ctx, service.RegisterInput{
				Email:    "ana@example.com",
				Name:     "Ana",
				Password: "Sup3rSecret",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(createdUser.Email).To(Equal("ana@example.com"))
			Expect(createdUser.PasswordHash).NotTo(ContainSubstring("Sup3rSecret"))
			Expect(createdProfile.ID).To(Equal(createdUser.ID))
			Expect(createdProfile.Name).To(Equal("Ana"))
			Expect(resp.AccessToken).NotTo(BeEmpty())
		})

		It("rejects an already registered email", func() {
			userRepo.getByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
				return &domain.User{ID: uuid.New(), Email: email}, nil
			}

			_, err := svc.Register(ctx, service.RegisterInput{
				Email:    "taken@example.com",
				Name:     "Ana",
				Password: "Sup3rSecret",
			})
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})
	})

	Describe("Login", func() {
		It("rejects an unknown email without revealing it is unknown", func() {
			_, err := svc.Login(ctx, service.LoginInput{Email: "ghost@example.com", Password: "whatever"})
			Expect(err).To(MatchError(service.ErrInvalidCreds))
		})

		It("logs in a registered user and rejects a wrong password", func() {
			var stored *domain.User
			userRepo.createFn = func(_ context.Context, u *domain.User) error {
				stored = u
				return nil
			}

			_, err := svc.Register(ctx, service.RegisterInput{
				Email:    "ana@example.com",
				Name:     "Ana",
				Password: "Sup3rSecret",
			})
			Expect(err).NotTo(HaveOccurred())

			userRepo.getByEmailFn = func(_ context.Context, email string) (*domain.User, error) {
				if email == stored.Email {
					return stored, nil
				}
				return nil, nil
			}

			resp, err := svc.Login(ctx, service.LoginInput{Email: "ana@example.com", Password: "Sup3rSecret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AccessToken).NotTo(BeEmpty())

			_, err = svc.Login(ctx, service.LoginInput{Email: "ana@example.com", Password: "wrong"})
			Expect(err).To(MatchError(service.ErrInvalidCreds))
		})
	})
})

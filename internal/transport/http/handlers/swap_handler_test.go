package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/transport/http/handlers"
)

var _ = Describe("SwapHandler", func() {
	var (
		mux         *http.ServeMux
		swapRepo    *mockSwapRepo
		convRepo    *mockConversationRepo
		feedRepo    *mockFeedRepo
		profileRepo *mockProfileRepo

		requester uuid.UUID
		recipient uuid.UUID
		caller    uuid.UUID
	)

	BeforeEach(func() {
		swapRepo = &mockSwapRepo{}
		convRepo = &mockConversationRepo{}
		feedRepo = &mockFeedRepo{}
		profileRepo = &mockProfileRepo{}

		requester = uuid.New()
		recipient = uuid.New()
		caller = recipient
	})

	// route builds the router after each spec has chosen its caller.
	route := func() {
		svc := service.NewSwapService(swapRepo, convRepo, feedRepo, profileRepo)
		h := handlers.NewSwapHandler(svc)

		mux = http.NewServeMux()
		mux.Handle("POST /api/v1/swaps", asUser(caller, http.HandlerFunc(h.Create)))
		mux.Handle("GET /api/v1/swaps/discover", asUser(caller, http.HandlerFunc(h.Discover)))
		mux.Handle("POST /api/v1/swaps/{id}/accept", asUser(caller, http.HandlerFunc(h.Accept)))
		mux.Handle("POST /api/v1/swaps/{id}/decline", asUser(caller, http.HandlerFunc(h.Decline)))
		mux.Handle("POST /api/v1/swaps/{id}/cancel", asUser(caller, http.HandlerFunc(h.Cancel)))
		mux.Handle("POST /api/v1/swaps/{id}/claim", asUser(caller, http.HandlerFunc(h.Claim)))
		mux.Handle("POST /api/v1/swaps/{id}/complete", asUser(caller, http.HandlerFunc(h.Complete)))
	}

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		route()
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	errorCode := func(w *httptest.ResponseRecorder) string {
		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp.Error.Code
	}

	pendingDirect := func(id uuid.UUID) *domain.Swap {
		r := recipient
		return &domain.Swap{
			ID:          id,
			RequesterID: requester,
			RecipientID: &r,
			Kind:        domain.KindDirect,
			Status:      domain.SwapPending,
			OfferSkill:  "Guitar",
			WantSkill:   "Go",
		}
	}

	Describe("Create", func() {
		It("returns 201 with the created swap", func() {
			caller = requester

			w := do(http.MethodPost, "/api/v1/swaps", map[string]any{
				"kind":        "public",
				"offer_skill": "Guitar",
				"want_skill":  "Go",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))

			var swap domain.Swap
			Expect(json.Unmarshal(w.Body.Bytes(), &swap)).To(Succeed())
			Expect(swap.Status).To(Equal(domain.SwapOpen))
			Expect(swap.RequesterID).To(Equal(requester))
		})

		It("returns 400 when skills are missing", func() {
			w := do(http.MethodPost, "/api/v1/swaps", map[string]any{"kind": "public"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorCode(w)).To(Equal("SKILLS_REQUIRED"))
		})

		It("returns 400 on a self-addressed direct swap", func() {
			caller = requester

			w := do(http.MethodPost, "/api/v1/swaps", map[string]any{
				"kind":         "direct",
				"recipient_id": requester,
				"offer_skill":  "Guitar",
				"want_skill":   "Go",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorCode(w)).To(Equal("SELF_SWAP"))
		})
	})

	Describe("Accept", func() {
		It("returns the accepted status with the conversation", func() {
			swapID := uuid.New()
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				return pendingDirect(swapID), nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/accept", nil)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Status       domain.SwapStatus    `json:"status"`
				Conversation *domain.Conversation `json:"conversation"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Status).To(Equal(domain.SwapAccepted))
			Expect(resp.Conversation.SwapID).To(Equal(swapID))
		})

		It("returns 403 when the requester tries to accept", func() {
			swapID := uuid.New()
			caller = requester
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				return pendingDirect(swapID), nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/accept", nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(errorCode(w)).To(Equal("FORBIDDEN"))
		})

		It("returns 404 for an unknown swap", func() {
			w := do(http.MethodPost, "/api/v1/swaps/"+uuid.NewString()+"/accept", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 409 when the swap was already transitioned", func() {
			swapID := uuid.New()
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				return pendingDirect(swapID), nil
			}
			swapRepo.updateStatusAsRecipientFn = func(_ context.Context, _, _ uuid.UUID, _ domain.SwapStatus) (bool, error) {
				return false, nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/accept", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(errorCode(w)).To(Equal("CONFLICT"))
		})

		It("returns 400 for a malformed id", func() {
			w := do(http.MethodPost, "/api/v1/swaps/not-a-uuid/accept", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorCode(w)).To(Equal("INVALID_ID"))
		})
	})

	Describe("Claim", func() {
		It("returns 400 when claiming your own swap", func() {
			swapID := uuid.New()
			caller = requester
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				return &domain.Swap{
					ID:          swapID,
					RequesterID: requester,
					Kind:        domain.KindPublic,
					Status:      domain.SwapOpen,
				}, nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/claim", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorCode(w)).To(Equal("OWN_SWAP"))
		})
	})

	Describe("Complete", func() {
		It("returns 204 and records a feed entry", func() {
			swapID := uuid.New()
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				s := pendingDirect(swapID)
				s.Status = domain.SwapAccepted
				return s, nil
			}

			entries := 0
			feedRepo.createFn = func(_ context.Context, _ *domain.FeedEntry) error {
				entries++
				return nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/complete", nil)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(entries).To(Equal(1))
		})

		It("returns 409 for a swap that already finished", func() {
			swapID := uuid.New()
			swapRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*domain.Swap, error) {
				s := pendingDirect(swapID)
				s.Status = domain.SwapCompleted
				return s, nil
			}

			w := do(http.MethodPost, "/api/v1/swaps/"+swapID.String()+"/complete", nil)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(errorCode(w)).To(Equal("INVALID_STATE"))
		})
	})

	Describe("Discover", func() {
		It("returns an empty array when nothing is open", func() {
			w := do(http.MethodGet, "/api/v1/swaps/discover", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON("[]"))
		})
	})
})

package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillswap/backend/internal/domain"
)

type mockSwapRepo struct {
	createFn                  func(ctx context.Context, swap *domain.Swap) error
	getByIDFn                 func(ctx context.Context, id uuid.UUID) (*domain.Swap, error)
	listOpenPublicFn          func(ctx context.Context) ([]domain.Swap, error)
	listIncomingFn            func(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error)
	listOutgoingFn            func(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error)
	updateStatusAsRecipientFn func(ctx context.Context, swapID, userID uuid.UUID, to domain.SwapStatus) (bool, error)
	cancelFn                  func(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
	claimFn                   func(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
	completeFn                func(ctx context.Context, swapID, userID uuid.UUID) (bool, error)
}

func (m *mockSwapRepo) Create(ctx context.Context, swap *domain.Swap) error {
	if m.createFn != nil {
		return m.createFn(ctx, swap)
	}
	return nil
}

func (m *mockSwapRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Swap, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSwapRepo) ListOpenPublic(ctx context.Context) ([]domain.Swap, error) {
	if m.listOpenPublicFn != nil {
		return m.listOpenPublicFn(ctx)
	}
	return nil, nil
}

func (m *mockSwapRepo) ListIncoming(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	if m.listIncomingFn != nil {
		return m.listIncomingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSwapRepo) ListOutgoing(ctx context.Context, userID uuid.UUID) ([]domain.Swap, error) {
	if m.listOutgoingFn != nil {
		return m.listOutgoingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSwapRepo) UpdateStatusAsRecipient(ctx context.Context, swapID, userID uuid.UUID, to domain.SwapStatus) (bool, error) {
	if m.updateStatusAsRecipientFn != nil {
		return m.updateStatusAsRecipientFn(ctx, swapID, userID, to)
	}
	return true, nil
}

func (m *mockSwapRepo) Cancel(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, swapID, userID)
	}
	return true, nil
}

func (m *mockSwapRepo) Claim(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	if m.claimFn != nil {
		return m.claimFn(ctx, swapID, userID)
	}
	return true, nil
}

func (m *mockSwapRepo) Complete(ctx context.Context, swapID, userID uuid.UUID) (bool, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, swapID, userID)
	}
	return true, nil
}

type mockConversationRepo struct {
	upsertFn      func(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error)
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	getBySwapIDFn func(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error)
	listByUserFn  func(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
}

func (m *mockConversationRepo) Upsert(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, swapID)
	}
	return &domain.Conversation{ID: uuid.New(), SwapID: swapID}, nil
}

func (m *mockConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockConversationRepo) GetBySwapID(ctx context.Context, swapID uuid.UUID) (*domain.Conversation, error) {
	if m.getBySwapIDFn != nil {
		return m.getBySwapIDFn(ctx, swapID)
	}
	return nil, nil
}

func (m *mockConversationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

type mockMessageRepo struct {
	createFn             func(ctx context.Context, msg *domain.Message) error
	getByIDFn            func(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	listByConversationFn func(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &domain.Message{ID: id}, nil
}

func (m *mockMessageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID, limit)
	}
	return nil, nil
}

type mockFeedRepo struct {
	createFn     func(ctx context.Context, entry *domain.FeedEntry) error
	listRecentFn func(ctx context.Context, limit int) ([]domain.FeedEntry, error)
}

func (m *mockFeedRepo) Create(ctx context.Context, entry *domain.FeedEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockFeedRepo) ListRecent(ctx context.Context, limit int) ([]domain.FeedEntry, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit)
	}
	return nil, nil
}

type mockProfileRepo struct {
	createFn  func(ctx context.Context, profile *domain.Profile) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	updateFn  func(ctx context.Context, profile *domain.Profile) error
	listFn    func(ctx context.Context, exclude uuid.UUID) ([]domain.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &domain.Profile{ID: id}, nil
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) List(ctx context.Context, exclude uuid.UUID) ([]domain.Profile, error) {
	if m.listFn != nil {
		return m.listFn(ctx, exclude)
	}
	return nil, nil
}

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

type mockNotifier struct {
	newMessageFn func(msg *domain.Message)
}

func (m *mockNotifier) NotifyNewMessage(msg *domain.Message) {
	if m.newMessageFn != nil {
		m.newMessageFn(msg)
	}
}

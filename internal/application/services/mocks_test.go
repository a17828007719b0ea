package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
	"github.com/aashray-care/aashray-backend/internal/domain/repositories"
)

// Mocks shared by the service tests

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) (*entities.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*entities.BookingWithProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BookingWithProvider), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]*entities.BookingWithProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BookingWithProvider), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status entities.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) MarkNotificationSent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id int64) (*entities.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) List(ctx context.Context, filter repositories.ProviderFilter) ([]*entities.ServiceProvider, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) UpdateRating(ctx context.Context, id int64, rating float64, totalReviews int) error {
	args := m.Called(ctx, id, rating, totalReviews)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

type MockRelativeRepository struct {
	mock.Mock
}

func (m *MockRelativeRepository) Create(ctx context.Context, relative *entities.Relative) (*entities.Relative, error) {
	args := m.Called(ctx, relative)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Relative), args.Error(1)
}

func (m *MockRelativeRepository) ListBySeniorCitizen(ctx context.Context, seniorCitizenID string) ([]*entities.RelativeWithUser, error) {
	args := m.Called(ctx, seniorCitizenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RelativeWithUser), args.Error(1)
}

func (m *MockRelativeRepository) GetEdge(ctx context.Context, seniorCitizenID, relativeID string) (*entities.Relative, error) {
	args := m.Called(ctx, seniorCitizenID, relativeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Relative), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) (*entities.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]*entities.ReviewWithUser, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ReviewWithUser), args.Error(1)
}

func (m *MockReviewRepository) AggregateByProvider(ctx context.Context, providerID int64) (float64, int, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).(float64), args.Int(1), args.Error(2)
}

type MockEmergencyContactRepository struct {
	mock.Mock
}

func (m *MockEmergencyContactRepository) Create(ctx context.Context, contact *entities.EmergencyContact) (*entities.EmergencyContact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmergencyContact), args.Error(1)
}

func (m *MockEmergencyContactRepository) ListByUser(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EmergencyContact), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

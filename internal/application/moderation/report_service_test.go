package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/recyclezone/marketplace/internal/domain/moderation"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReportRepository is a mock implementation of moderation.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FindAll(ctx context.Context, filter moderation.ReportFilter) ([]moderation.Report, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]moderation.Report), args.Error(1)
}

func (m *MockReportRepository) Create(ctx context.Context, report *moderation.Report) error {
	return m.Called(ctx, report).Error(0)
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestReportService_Report(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("reporter comes from the caller", func(t *testing.T) {
		repo := new(MockReportRepository)
		svc := NewReportService(repo, nil)

		repo.On("Create", ctx, mock.MatchedBy(func(r *moderation.Report) bool {
			return r.ReporterEmail == "reporter@example.com" && r.ProductID == productID && r.Reason == "counterfeit"
		})).Return(nil)

		result, err := svc.Report(ctx, "Reporter@Example.com", CreateReportInput{
			ProductID:   productID,
			ProductName: "Watch",
			Reason:      " counterfeit ",
		})
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		repo.AssertExpectations(t)
	})

	t.Run("product is required", func(t *testing.T) {
		repo := new(MockReportRepository)
		svc := NewReportService(repo, nil)

		_, err := svc.Report(ctx, "reporter@example.com", CreateReportInput{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockReportRepository)
		svc := NewReportService(repo, nil)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.Report(ctx, "reporter@example.com", CreateReportInput{ProductID: productID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create report")
	})
}

func TestReportService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	svc := NewReportService(repo, nil)

	productID := uuid.New()
	report, err := moderation.NewReport("reporter@example.com", productID, "Watch", "fake")
	require.NoError(t, err)

	filter := moderation.ReportFilter{ProductID: &productID}
	repo.On("FindAll", ctx, filter).Return([]moderation.Report{*report}, nil)
	repo.On("FindAll", ctx, moderation.ReportFilter{}).Return([]moderation.Report{}, nil)

	got, err := svc.List(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "reporter@example.com", got[0].ReporterEmail)

	all, err := svc.List(ctx, moderation.ReportFilter{})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestReportService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	svc := NewReportService(repo, nil)

	id := uuid.New()
	ghost := uuid.New()
	repo.On("Delete", ctx, id).Return(int64(1), nil)
	repo.On("Delete", ctx, ghost).Return(int64(0), nil)

	result, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = svc.Delete(ctx, ghost)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

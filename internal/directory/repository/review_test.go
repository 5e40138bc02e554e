package repository_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/directory/domain/model"
	"restaurant-directory/internal/directory/repository"
	apperrors "restaurant-directory/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReviewRepoTestSuite struct {
	suite.Suite
	store *fakeStore
	repo  *repository.ReviewRepository
}

func (suite *ReviewRepoTestSuite) SetupTest() {
	suite.store = newFakeStore()
	repo, err := repository.NewReviewRepository(context.Background(), suite.store, testLogger())
	require.NoError(suite.T(), err)
	suite.repo = repo
}

func sampleReview() model.Review {
	return model.Review{
		UserID:       "000000000000000000000001",
		RestaurantID: "Papa Johns",
		Sentence:     "Good pizza",
		Rating:       4,
	}
}

func (suite *ReviewRepoTestSuite) TestAdd_ThenGetByCompositeKey() {
	rev := sampleReview()
	id, err := suite.repo.Add(context.Background(), rev)
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), id)

	got, err := suite.repo.Get(context.Background(), rev.UserID, rev.RestaurantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Good pizza", got.Sentence)
	assert.Equal(suite.T(), 4, got.Rating)
}

func (suite *ReviewRepoTestSuite) TestAdd_SecondReviewForSamePairConflicts() {
	_, err := suite.repo.Add(context.Background(), sampleReview())
	require.NoError(suite.T(), err)

	_, err = suite.repo.Add(context.Background(), sampleReview())
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *ReviewRepoTestSuite) TestAdd_DanglingReferencesAccepted() {
	// Neither the user nor the restaurant exists anywhere. The repository
	// does not enforce referential integrity.
	_, err := suite.repo.Add(context.Background(), model.Review{
		UserID:       "nobody",
		RestaurantID: "nowhere",
		Sentence:     "fine",
		Rating:       2,
	})
	assert.NoError(suite.T(), err)
}

func (suite *ReviewRepoTestSuite) TestAdd_BlankSentenceRejectedBeforeStore() {
	rev := sampleReview()
	rev.Sentence = ""
	_, err := suite.repo.Add(context.Background(), rev)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Zero(suite.T(), suite.store.storeCalls())
}

func (suite *ReviewRepoTestSuite) TestUpdate() {
	rev := sampleReview()
	_, err := suite.repo.Add(context.Background(), rev)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.repo.Update(context.Background(), rev.UserID, rev.RestaurantID, "Cold on arrival", 1))

	got, err := suite.repo.Get(context.Background(), rev.UserID, rev.RestaurantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Cold on arrival", got.Sentence)
	assert.Equal(suite.T(), 1, got.Rating)
}

func (suite *ReviewRepoTestSuite) TestUpdate_NotFound() {
	err := suite.repo.Update(context.Background(), "nobody", "nowhere", "text", 1)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ReviewRepoTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(context.Background(), "nobody", "nowhere")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *ReviewRepoTestSuite) TestListForRestaurant() {
	first := sampleReview()
	_, err := suite.repo.Add(context.Background(), first)
	require.NoError(suite.T(), err)

	second := sampleReview()
	second.UserID = "000000000000000000000002"
	_, err = suite.repo.Add(context.Background(), second)
	require.NoError(suite.T(), err)

	other := sampleReview()
	other.RestaurantID = "Elsewhere"
	_, err = suite.repo.Add(context.Background(), other)
	require.NoError(suite.T(), err)

	got, err := suite.repo.ListForRestaurant(context.Background(), "Papa Johns")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
}

func TestReviewRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepoTestSuite))
}

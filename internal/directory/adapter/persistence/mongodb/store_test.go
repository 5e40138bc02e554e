package mongodb_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/directory/adapter/persistence/mongodb"
	apperrors "restaurant-directory/internal/shared/errors"
	"restaurant-directory/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StoreTestSuite struct {
	suite.Suite
	client *mongo.Client
	store  *mongodb.Store
}

func (suite *StoreTestSuite) SetupSuite() {
	ctx := context.Background()

	client, err := mongodb.Connect(ctx, "mongodb://localhost:27017")
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	suite.client = client
	suite.store = mongodb.NewStore(client.Database("directory_store_test"), logger.NewLoggerWithConfig("error", "text"))
}

func (suite *StoreTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.client.Database("directory_store_test").Drop(context.Background())
		suite.client.Disconnect(context.Background())
	}
}

func (suite *StoreTestSuite) SetupTest() {
	if suite.store == nil {
		suite.T().Skip("MongoDB not available for testing")
	}
	suite.store.DeleteAll(context.Background(), "things")
}

func (suite *StoreTestSuite) TestInsertOne_ReturnsStringID() {
	id, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), id, 24)
}

func (suite *StoreTestSuite) TestFetchOne_MissingIsNotAnError() {
	doc, err := suite.store.FetchOne(context.Background(), "things", bson.M{"name": "missing"})
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), doc)
}

func (suite *StoreTestSuite) TestFetchOne_StringifiesPrimaryKey() {
	_, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)

	doc, err := suite.store.FetchOne(context.Background(), "things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), doc)
	_, isString := doc[mongodb.MongoID].(string)
	assert.True(suite.T(), isString, "primary key must be a string after fetch")
}

func (suite *StoreTestSuite) TestFetchAllFiltered_StringifiesPrimaryKey() {
	_, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a", "state": "NY"})
	require.NoError(suite.T(), err)
	_, err = suite.store.InsertOne(context.Background(), "things", bson.M{"name": "b", "state": "NJ"})
	require.NoError(suite.T(), err)

	docs, err := suite.store.FetchAllFiltered(context.Background(), "things", bson.M{"state": "NY"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), docs, 1)
	_, isString := docs[0][mongodb.MongoID].(string)
	assert.True(suite.T(), isString)
}

func (suite *StoreTestSuite) TestFetchAllAsDict() {
	_, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a", "rating": 1})
	require.NoError(suite.T(), err)
	_, err = suite.store.InsertOne(context.Background(), "things", bson.M{"name": "b", "rating": 2})
	require.NoError(suite.T(), err)

	dict, err := suite.store.FetchAllAsDict(context.Background(), "name", "things")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), dict, 2)
	assert.Contains(suite.T(), dict, "a")
	assert.Contains(suite.T(), dict, "b")
}

func (suite *StoreTestSuite) TestUpdateDoc_PartialReplacement() {
	_, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a", "rating": 1})
	require.NoError(suite.T(), err)

	err = suite.store.UpdateDoc(context.Background(), "things", bson.M{"name": "a"}, bson.M{"rating": 3})
	require.NoError(suite.T(), err)

	doc, err := suite.store.FetchOne(context.Background(), "things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 3, doc["rating"])
	assert.Equal(suite.T(), "a", doc["name"], "untouched fields survive a partial update")
}

func (suite *StoreTestSuite) TestDeleteAll_ReturnsCount() {
	_, err := suite.store.InsertOne(context.Background(), "things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)
	_, err = suite.store.InsertOne(context.Background(), "things", bson.M{"name": "b"})
	require.NoError(suite.T(), err)

	n, err := suite.store.DeleteAll(context.Background(), "things")
	require.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 2, n)
}

func (suite *StoreTestSuite) TestUniqueIndex_DuplicateInsertFails() {
	err := suite.store.EnsureUniqueIndex(context.Background(), "unique_things", "name")
	require.NoError(suite.T(), err)
	defer suite.store.DeleteAll(context.Background(), "unique_things")

	_, err = suite.store.InsertOne(context.Background(), "unique_things", bson.M{"name": "a"})
	require.NoError(suite.T(), err)

	_, err = suite.store.InsertOne(context.Background(), "unique_things", bson.M{"name": "a"})
	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateKey)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

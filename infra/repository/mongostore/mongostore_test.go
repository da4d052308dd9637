package mongostore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func sampleAccount(t *testing.T) *account.BankAccount {
	t.Helper()
	acc, err := account.New(account.NewParams{
		UserID:        uuid.New(),
		BankName:      account.BankAxis,
		BranchName:    "MG Road",
		AccountNumber: "917010012345678",
		CardNumber:    "4000056655665556",
		AccountType:   account.TypeSalary,
	})
	require.NoError(t, err)
	return acc
}

func accountBSON(acc *account.BankAccount, balance string) bson.D {
	bal, _ := primitive.ParseDecimal128(balance)
	return bson.D{
		{Key: "_id", Value: acc.ID.String()},
		{Key: "userId", Value: acc.UserID.String()},
		{Key: "bankName", Value: string(acc.BankName)},
		{Key: "branchName", Value: acc.BranchName},
		{Key: "accountNumber", Value: acc.AccountNumber},
		{Key: "cardNumber", Value: acc.CardNumber},
		{Key: "accountType", Value: string(acc.AccountType)},
		{Key: "status", Value: string(acc.Status)},
		{Key: "balance", Value: bal},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(acc.CreatedAt)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(acc.UpdatedAt)},
	}
}

func TestMapMongoError(t *testing.T) {
	assert.NoError(t, mapMongoError(nil))
	assert.ErrorIs(t, mapMongoError(mongo.ErrNoDocuments), domain.ErrNotFound)
	assert.ErrorIs(t, mapMongoError(errors.New("socket closed")), domain.ErrPersistence)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	err := mapMongoError(dup)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestAccountRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewAccountRepository(mt.DB)
		assert.NoError(mt, repo.Create(ctx, sampleAccount(mt.T)))
	})

	mt.Run("create rejects invalid record", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB)
		acc := sampleAccount(mt.T)
		acc.AccountType = "Checking"
		assert.ErrorIs(mt, repo.Create(ctx, acc), domain.ErrValidation)
	})

	mt.Run("get", func(mt *mtest.T) {
		acc := sampleAccount(mt.T)
		ns := mt.DB.Name() + "." + accountsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, accountBSON(acc, "2500.50")))

		got, err := NewAccountRepository(mt.DB).Get(ctx, acc.ID)
		require.NoError(mt, err)
		assert.Equal(mt, acc.ID, got.ID)
		assert.Equal(mt, account.BankAxis, got.BankName)
		assert.Equal(mt, "2500.5", got.Balance.String())
		assert.WithinDuration(mt, acc.CreatedAt, got.CreatedAt, time.Second)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + accountsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewAccountRepository(mt.DB).Get(ctx, uuid.New())
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("list by user", func(mt *mtest.T) {
		a, b := sampleAccount(mt.T), sampleAccount(mt.T)
		ns := mt.DB.Name() + "." + accountsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			accountBSON(a, "0"), accountBSON(b, "10")))

		list, err := NewAccountRepository(mt.DB).ListByUser(ctx, a.UserID)
		require.NoError(mt, err)
		assert.Len(mt, list, 2)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		err := NewAccountRepository(mt.DB).Update(ctx, sampleAccount(mt.T))
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		assert.NoError(mt, NewAccountRepository(mt.DB).Update(ctx, sampleAccount(mt.T)))
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(mt, NewAccountRepository(mt.DB).Delete(ctx, uuid.New()))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(mt, NewAccountRepository(mt.DB).Delete(ctx, uuid.New()), domain.ErrNotFound)
	})
}

func TestCategoryRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("duplicate categoryid", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		c, err := category.New("fuel", "Fuel", category.TypeExpense, "#000", "car")
		require.NoError(mt, err)

		err = NewCategoryRepository(mt.DB).Create(ctx, c)
		assert.ErrorIs(mt, err, domain.ErrAlreadyExists)
	})

	mt.Run("list", func(mt *mtest.T) {
		id := uuid.New()
		ns := mt.DB.Name() + "." + categoriesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "categoryid", Value: "salary"},
			{Key: "name", Value: "Salary"},
			{Key: "type", Value: "income"},
			{Key: "color", Value: "#0f0"},
			{Key: "icon", Value: "wallet"},
		}))

		list, err := NewCategoryRepository(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		assert.Equal(mt, id, list[0].ID)
		assert.Equal(mt, category.TypeIncome, list[0].Type)
	})
}

func TestUserRepository(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("get by identity", func(mt *mtest.T) {
		id := uuid.New()
		ns := mt.DB.Name() + "." + usersCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id.String()},
			{Key: "username", Value: "neha"},
			{Key: "email", Value: "neha@example.com"},
			{Key: "password", Value: "hash"},
		}))

		u, err := NewUserRepository(mt.DB).GetByIdentity(ctx, "neha@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, id, u.ID)
		assert.Equal(mt, "neha", u.Username)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))
		_, err := NewUserRepository(mt.DB).Get(ctx, uuid.New())
		assert.ErrorIs(mt, err, domain.ErrPersistence)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockT(t)
	mt.Run("creates all indexes", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)
		assert.NoError(mt, EnsureIndexes(context.Background(), mt.DB))
	})
}

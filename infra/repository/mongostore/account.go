package mongostore

import (
	"context"
	"time"

	"github.com/autoconnect/backend/pkg/domain/account"
	repo "github.com/autoconnect/backend/pkg/repository/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountDocument struct {
	ID            string               `bson:"_id"`
	UserID        string               `bson:"userId"`
	BankName      string               `bson:"bankName"`
	BranchName    string               `bson:"branchName"`
	AccountNumber string               `bson:"accountNumber"`
	CardNumber    string               `bson:"cardNumber"`
	AccountType   string               `bson:"accountType"`
	Status        string               `bson:"status"`
	Balance       primitive.Decimal128 `bson:"balance"`
	CreatedAt     time.Time            `bson:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt"`
}

func toAccountDocument(a *account.BankAccount) (*accountDocument, error) {
	bal, err := primitive.ParseDecimal128(a.Balance.String())
	if err != nil {
		return nil, err
	}
	return &accountDocument{
		ID:            a.ID.String(),
		UserID:        a.UserID.String(),
		BankName:      string(a.BankName),
		BranchName:    a.BranchName,
		AccountNumber: a.AccountNumber,
		CardNumber:    a.CardNumber,
		AccountType:   string(a.AccountType),
		Status:        string(a.Status),
		Balance:       bal,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}, nil
}

func (d *accountDocument) toDomain() (*account.BankAccount, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}
	bal, err := decimal.NewFromString(d.Balance.String())
	if err != nil {
		return nil, err
	}
	return &account.BankAccount{
		ID:            id,
		UserID:        userID,
		BankName:      account.BankName(d.BankName),
		BranchName:    d.BranchName,
		AccountNumber: d.AccountNumber,
		CardNumber:    d.CardNumber,
		AccountType:   account.Type(d.AccountType),
		Status:        account.Status(d.Status),
		Balance:       bal,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

type accountRepository struct {
	coll *mongo.Collection
}

// NewAccountRepository stores bank accounts in the bank_accounts collection.
func NewAccountRepository(db *mongo.Database) repo.Repository {
	return &accountRepository{coll: db.Collection(accountsCollection)}
}

func (r *accountRepository) Create(ctx context.Context, acc *account.BankAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	doc, err := toAccountDocument(acc)
	if err != nil {
		return mapMongoError(err)
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return mapMongoError(err)
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.BankAccount, error) {
	var doc accountDocument
	if err := r.coll.FindOne(ctx, byID(id.String())).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	acc, err := doc.toDomain()
	return acc, mapMongoError(err)
}

func (r *accountRepository) List(ctx context.Context) ([]*account.BankAccount, error) {
	return r.find(ctx, bson.D{})
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.BankAccount, error) {
	return r.find(ctx, bson.D{{Key: "userId", Value: userID.String()}})
}

func (r *accountRepository) find(ctx context.Context, filter bson.D) ([]*account.BankAccount, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, mapMongoError(err)
	}
	var docs []accountDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapMongoError(err)
	}
	result := make([]*account.BankAccount, 0, len(docs))
	for i := range docs {
		acc, err := docs[i].toDomain()
		if err != nil {
			return nil, mapMongoError(err)
		}
		result = append(result, acc)
	}
	return result, nil
}

func (r *accountRepository) Update(ctx context.Context, acc *account.BankAccount) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	doc, err := toAccountDocument(acc)
	if err != nil {
		return mapMongoError(err)
	}
	return requireMatched(r.coll.UpdateOne(ctx, byID(doc.ID), bson.D{{Key: "$set", Value: bson.D{
		{Key: "bankName", Value: doc.BankName},
		{Key: "branchName", Value: doc.BranchName},
		{Key: "accountNumber", Value: doc.AccountNumber},
		{Key: "cardNumber", Value: doc.CardNumber},
		{Key: "accountType", Value: doc.AccountType},
		{Key: "status", Value: doc.Status},
		{Key: "balance", Value: doc.Balance},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}))
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return requireDeleted(r.coll.DeleteOne(ctx, byID(id.String())))
}

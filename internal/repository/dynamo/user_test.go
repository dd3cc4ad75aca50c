package dynamo

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayhub-backend/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	client := new(MockAPI)
	store := NewStore(client, Tables{Users: "users"})

	client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		id, ok := in.Item["userId"].(*types.AttributeValueMemberS)
		if !ok || *in.TableName != "users" || id.Value != "alice" {
			return false
		}
		// The defaulted record carries every nested sub-object.
		_, hasFinance := in.Item["financeInformation"].(*types.AttributeValueMemberM)
		return hasFinance
	})).Return(&dynamodb.PutItemOutput{}, nil)

	user := domain.NewUser("alice", "alice@example.com", domain.UserTypeGuest, "2026-08-28")
	assert.NoError(t, store.UserRepository.Create(ctx, user))
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(MockAPI)
		store := NewStore(client, Tables{Users: "users"})

		client.On("GetItem", ctx, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			key, ok := in.Key["userId"].(*types.AttributeValueMemberS)
			return *in.TableName == "users" && ok && key.Value == "alice"
		})).Return(&dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: "alice"},
			"email":  &types.AttributeValueMemberS{Value: "alice@example.com"},
		}}, nil)

		user, err := store.UserRepository.GetByID(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("MissingReturnsNilNil", func(t *testing.T) {
		client := new(MockAPI)
		store := NewStore(client, Tables{Users: "users"})

		client.On("GetItem", ctx, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		user, err := store.UserRepository.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_UpdateFinance(t *testing.T) {
	ctx := context.Background()
	client := new(MockAPI)
	store := NewStore(client, Tables{Users: "users"})

	client.On("UpdateItem", ctx, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
		if *in.TableName != "users" || in.UpdateExpression == nil {
			return false
		}
		// The document paths address leaves inside financeInformation, so
		// each path segment shows up as a substituted name.
		names := make([]string, 0, len(in.ExpressionAttributeNames))
		for _, n := range in.ExpressionAttributeNames {
			names = append(names, n)
		}
		joined := strings.Join(names, ",")
		return strings.Contains(joined, "financeInformation") &&
			strings.Contains(joined, "paymentMethod") &&
			strings.Contains(joined, "cardType") &&
			strings.Contains(joined, "taxID")
	})).Return(&dynamodb.UpdateItemOutput{}, nil)

	err := store.UserRepository.UpdateFinance(ctx, "alice", domain.FinancePatch{
		PaymentMethod:  map[string]any{"cardType": "visa"},
		TaxInformation: map[string]any{"taxID": "12-345"},
	})
	assert.NoError(t, err)
}

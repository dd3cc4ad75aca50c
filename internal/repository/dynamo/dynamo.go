// Package dynamo implements the repository contracts on DynamoDB tables.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/repository"
)

// API is the subset of the DynamoDB client used by the repositories,
// narrowed so tests can substitute a mock.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Tables names the three independent record store tables.
type Tables struct {
	Listings string
	Orders   string
	Users    string
}

// Store bundles the table-backed repositories over one shared client.
type Store struct {
	ListingRepository repository.ListingRepository
	OrderRepository   repository.OrderRepository
	UserRepository    repository.UserRepository
}

func NewStore(client API, tables Tables) *Store {
	return &Store{
		ListingRepository: &listingRepository{client: client, table: tables.Listings},
		OrderRepository:   &orderRepository{client: client, table: tables.Orders},
		UserRepository:    &userRepository{client: client, table: tables.Users},
	}
}

// dynamoAttr shortens the wire attribute type in page helpers.
type dynamoAttr = types.AttributeValue

// stringKey builds a single-attribute primary key.
func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// decodePageKey converts the opaque request cursor back into the store's
// native exclusive start key. An empty cursor means start from the top.
func decodePageKey(key domain.PageKey) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, nil
	}
	return attributevalue.MarshalMap(map[string]any(key))
}

// encodePageKey converts the store's last evaluated key into the cursor
// shape round-tripped through the response body. Nil when exhausted.
func encodePageKey(key map[string]types.AttributeValue) (domain.PageKey, error) {
	if len(key) == 0 {
		return nil, nil
	}
	var out domain.PageKey
	if err := attributevalue.UnmarshalMap(key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

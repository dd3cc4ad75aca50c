package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"stayhub-backend/internal/domain"
	"stayhub-backend/internal/logger"
)

const hostIndexName = "hostId-index"

type listingRepository struct {
	client API
	table  string
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	item, err := attributevalue.MarshalMap(listing)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	logger.StoreCall("PutItem", r.table, "listing_id", listing.ListingID)
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	logger.StoreResult("PutItem", r.table, err)
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       stringKey("listingId", listingID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var listing domain.Listing
	if err := attributevalue.UnmarshalMap(out.Item, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing: %w", err)
	}
	return &listing, nil
}

func (r *listingRepository) Delete(ctx context.Context, listingID string) error {
	logger.StoreCall("DeleteItem", r.table, "listing_id", listingID)
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       stringKey("listingId", listingID),
	})
	logger.StoreResult("DeleteItem", r.table, err)
	return err
}

func (r *listingRepository) List(ctx context.Context, params domain.ListListingsParams) (*domain.ListingPage, error) {
	startKey, err := decodePageKey(params.StartKey)
	if err != nil {
		return nil, fmt.Errorf("invalid continuation key: %w", err)
	}

	// A hostId switches from a table scan to a secondary-index query; the
	// sort direction only has meaning on the query path.
	if params.HostID != "" {
		builder := expression.NewBuilder().
			WithKeyCondition(expression.Key("hostId").Equal(expression.Value(params.HostID)))
		if params.Category != "" {
			builder = builder.WithFilter(expression.Name("category").Equal(expression.Value(params.Category)))
		}
		expr, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build query expression: %w", err)
		}

		logger.StoreCall("Query", r.table, "index", hostIndexName, "host_id", params.HostID)
		out, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.table),
			IndexName:                 aws.String(hostIndexName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			Limit:                     aws.Int32(params.Limit),
			ExclusiveStartKey:         startKey,
			ScanIndexForward:          aws.Bool(!params.SortDesc),
		})
		logger.StoreResult("Query", r.table, err)
		if err != nil {
			return nil, err
		}
		return buildListingPage(out.Items, out.LastEvaluatedKey)
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(r.table),
		Limit:             aws.Int32(params.Limit),
		ExclusiveStartKey: startKey,
	}
	if params.Category != "" {
		expr, err := expression.NewBuilder().
			WithFilter(expression.Name("category").Equal(expression.Value(params.Category))).
			Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build filter expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	logger.StoreCall("Scan", r.table)
	out, err := r.client.Scan(ctx, input)
	logger.StoreResult("Scan", r.table, err)
	if err != nil {
		return nil, err
	}
	return buildListingPage(out.Items, out.LastEvaluatedKey)
}

func (r *listingRepository) Search(ctx context.Context, params domain.SearchListingsParams) (*domain.ListingPage, error) {
	startKey, err := decodePageKey(params.StartKey)
	if err != nil {
		return nil, fmt.Errorf("invalid continuation key: %w", err)
	}

	var conditions []expression.ConditionBuilder
	if params.City != "" {
		conditions = append(conditions, expression.Name("city").Equal(expression.Value(params.City)))
	}
	if params.Category != "" {
		conditions = append(conditions, expression.Name("category").Equal(expression.Value(params.Category)))
	}
	if params.MinPrice != nil {
		conditions = append(conditions, expression.Name("price").GreaterThanEqual(expression.Value(*params.MinPrice)))
	}
	if params.MaxPrice != nil {
		conditions = append(conditions, expression.Name("price").LessThanEqual(expression.Value(*params.MaxPrice)))
	}

	input := &dynamodb.ScanInput{
		TableName:         aws.String(r.table),
		Limit:             aws.Int32(params.Limit),
		ExclusiveStartKey: startKey,
	}
	if len(conditions) > 0 {
		filter := conditions[0]
		for _, cond := range conditions[1:] {
			filter = filter.And(cond)
		}
		expr, err := expression.NewBuilder().WithFilter(filter).Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build filter expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	logger.StoreCall("Scan", r.table)
	out, err := r.client.Scan(ctx, input)
	logger.StoreResult("Scan", r.table, err)
	if err != nil {
		return nil, err
	}
	return buildListingPage(out.Items, out.LastEvaluatedKey)
}

func buildListingPage(items []map[string]dynamoAttr, lastKey map[string]dynamoAttr) (*domain.ListingPage, error) {
	listings := make([]domain.Listing, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listings: %w", err)
	}
	cursor, err := encodePageKey(lastKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode continuation key: %w", err)
	}
	return &domain.ListingPage{Items: listings, LastEvaluatedKey: cursor}, nil
}

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

const (
	userIndexName    = "userId-index"
	listingIndexName = "listingId-index"
)

type orderRepository struct {
	client API
	table  string
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	logger.StoreCall("PutItem", r.table, "order_id", order.OrderID)
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	logger.StoreResult("PutItem", r.table, err)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       stringKey("orderId", orderID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var order domain.Order
	if err := attributevalue.UnmarshalMap(out.Item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.queryIndex(ctx, userIndexName, "userId", userID)
}

func (r *orderRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Order, error) {
	return r.queryIndex(ctx, listingIndexName, "listingId", listingID)
}

func (r *orderRepository) queryIndex(ctx context.Context, index, keyName, keyValue string) ([]domain.Order, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(keyName).Equal(expression.Value(keyValue))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	logger.StoreCall("Query", r.table, "index", index, keyName, keyValue)
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	logger.StoreResult("Query", r.table, err)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateAttributes(ctx context.Context, orderID string, fields map[string]any) error {
	update := expression.UpdateBuilder{}
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	logger.StoreCall("UpdateItem", r.table, "order_id", orderID)
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       stringKey("orderId", orderID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	logger.StoreResult("UpdateItem", r.table, err)
	return err
}

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

type userRepository struct {
	client API
	table  string
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	logger.StoreCall("PutItem", r.table, "user_id", user.UserID)
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	logger.StoreResult("PutItem", r.table, err)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       stringKey("userId", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var user domain.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateFinance(ctx context.Context, userID string, patch domain.FinancePatch) error {
	update := expression.UpdateBuilder{}
	for leaf, value := range patch.PaymentMethod {
		update = update.Set(expression.Name("financeInformation.paymentMethod."+leaf), expression.Value(value))
	}
	for leaf, value := range patch.PayoutInformation {
		update = update.Set(expression.Name("financeInformation.payoutInformation."+leaf), expression.Value(value))
	}
	for leaf, value := range patch.TaxInformation {
		update = update.Set(expression.Name("financeInformation.taxInformation."+leaf), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	logger.StoreCall("UpdateItem", r.table, "user_id", userID)
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       stringKey("userId", userID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	logger.StoreResult("UpdateItem", r.table, err)
	return err
}

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"stayhub-backend/internal/logger"
)

// CognitoAPI is the subset of the Cognito client used by the provider,
// narrowed so tests can substitute a mock.
type CognitoAPI interface {
	GetUser(ctx context.Context, params *cognitoidentityprovider.GetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GetUserOutput, error)
	AdminListGroupsForUser(ctx context.Context, params *cognitoidentityprovider.AdminListGroupsForUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminListGroupsForUserOutput, error)
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *cognitoidentityprovider.AdminAddUserToGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminAddUserToGroupOutput, error)
	AdminDisableUser(ctx context.Context, params *cognitoidentityprovider.AdminDisableUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDisableUserOutput, error)
	AdminInitiateAuth(ctx context.Context, params *cognitoidentityprovider.AdminInitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminInitiateAuthOutput, error)
}

// CognitoProvider implements Provider against an AWS Cognito user pool.
type CognitoProvider struct {
	client     CognitoAPI
	userPoolID string
	clientID   string
}

func NewCognitoProvider(client CognitoAPI, userPoolID, clientID string) *CognitoProvider {
	return &CognitoProvider{
		client:     client,
		userPoolID: userPoolID,
		clientID:   clientID,
	}
}

// mapError converts the provider's authorization failure into the package
// sentinel, leaving everything else untouched.
func mapError(err error) error {
	var notAuthorized *types.NotAuthorizedException
	if errors.As(err, &notAuthorized) {
		return fmt.Errorf("%w: %s", ErrNotAuthorized, aws.ToString(notAuthorized.Message))
	}
	return err
}

func (p *CognitoProvider) GetUser(ctx context.Context, accessToken string) (*Identity, error) {
	logger.ExternalServiceCall("cognito", "GetUser")
	out, err := p.client.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	logger.ExternalServiceResult("cognito", "GetUser", err)
	if err != nil {
		return nil, mapError(err)
	}

	id := &Identity{Username: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "sub":
			id.Sub = aws.ToString(attr.Value)
		case "email":
			id.Email = aws.ToString(attr.Value)
		}
	}
	return id, nil
}

func (p *CognitoProvider) ListGroups(ctx context.Context, username string) ([]string, error) {
	logger.ExternalServiceCall("cognito", "AdminListGroupsForUser", "username", username)
	out, err := p.client.AdminListGroupsForUser(ctx, &cognitoidentityprovider.AdminListGroupsForUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
	})
	logger.ExternalServiceResult("cognito", "AdminListGroupsForUser", err)
	if err != nil {
		return nil, mapError(err)
	}

	groups := make([]string, 0, len(out.Groups))
	for _, g := range out.Groups {
		groups = append(groups, aws.ToString(g.GroupName))
	}
	return groups, nil
}

func (p *CognitoProvider) AdminCreateUser(ctx context.Context, email string) (string, error) {
	logger.ExternalServiceCall("cognito", "AdminCreateUser", "email", email)
	out, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
		MessageAction: types.MessageActionTypeSuppress,
	})
	logger.ExternalServiceResult("cognito", "AdminCreateUser", err)
	if err != nil {
		return "", mapError(err)
	}
	return aws.ToString(out.User.Username), nil
}

func (p *CognitoProvider) AdminSetPassword(ctx context.Context, username, password string) error {
	logger.ExternalServiceCall("cognito", "AdminSetUserPassword", "username", username)
	_, err := p.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	logger.ExternalServiceResult("cognito", "AdminSetUserPassword", err)
	return mapError(err)
}

func (p *CognitoProvider) AdminAddUserToGroup(ctx context.Context, username, group string) error {
	logger.ExternalServiceCall("cognito", "AdminAddUserToGroup", "username", username, "group", group)
	_, err := p.client.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(group),
	})
	logger.ExternalServiceResult("cognito", "AdminAddUserToGroup", err)
	return mapError(err)
}

func (p *CognitoProvider) AdminDisableUser(ctx context.Context, username string) error {
	logger.ExternalServiceCall("cognito", "AdminDisableUser", "username", username)
	_, err := p.client.AdminDisableUser(ctx, &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
	})
	logger.ExternalServiceResult("cognito", "AdminDisableUser", err)
	return mapError(err)
}

func (p *CognitoProvider) AdminInitiateAuth(ctx context.Context, email, password string) (string, error) {
	logger.ExternalServiceCall("cognito", "AdminInitiateAuth", "email", email)
	out, err := p.client.AdminInitiateAuth(ctx, &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId: aws.String(p.userPoolID),
		ClientId:   aws.String(p.clientID),
		AuthFlow:   types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	logger.ExternalServiceResult("cognito", "AdminInitiateAuth", err)
	if err != nil {
		return "", mapError(err)
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.IdToken == nil {
		return "", ErrNotAuthorized
	}
	return aws.ToString(out.AuthenticationResult.IdToken), nil
}

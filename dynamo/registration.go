package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/assettrack/subscription-api/registration"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ registration.Repository = &DB{}

type registrationDynamo struct {
	PK string
	SK string

	ID               uuid.UUID
	Version          int
	Name             string
	Email            string
	Company          string
	AssetCount       int
	DurationMonths   int
	Price            string
	PaymentReference string
	PaymentStatus    registration.PaymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Claims an email so no two registrations can share it, and points at the
// registration that owns it.
type registrationEmailDynamo struct {
	PK               string
	SK               string
	Email            string
	PaymentReference string
}

const (
	registrationEntityName      = "REGISTRATION"
	registrationEmailEntityName = "REGISTRATION_EMAIL"
)

func registrationPK(paymentReference string) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, paymentReference)
}

func registrationSK() string {
	return registrationEntityName
}

func registrationEmailPK(email string) string {
	return fmt.Sprintf("%s#%s", registrationEmailEntityName, email)
}

func registrationEmailSK() string {
	return registrationEmailEntityName
}

func registrationKey(paymentReference string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: registrationPK(paymentReference)},
		"SK": &types.AttributeValueMemberS{Value: registrationSK()},
	}
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	return registrationDynamo{
		PK:               registrationPK(reg.PaymentReference),
		SK:               registrationSK(),
		ID:               reg.ID,
		Version:          reg.Version,
		Name:             reg.Name,
		Email:            reg.Email,
		Company:          reg.Company,
		AssetCount:       reg.AssetCount,
		DurationMonths:   reg.DurationMonths,
		Price:            reg.Price.String(),
		PaymentReference: reg.PaymentReference,
		PaymentStatus:    reg.PaymentStatus,
		CreatedAt:        reg.CreatedAt,
		UpdatedAt:        reg.UpdatedAt,
	}
}

func dynamoToRegistration(dynReg registrationDynamo) (registration.Registration, error) {
	price, err := decimal.NewFromString(dynReg.Price)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError(fmt.Sprintf("Invalid price stored for registration %q", dynReg.ID), err)
	}

	return registration.Registration{
		ID:               dynReg.ID,
		Version:          dynReg.Version,
		Name:             dynReg.Name,
		Email:            dynReg.Email,
		Company:          dynReg.Company,
		AssetCount:       dynReg.AssetCount,
		DurationMonths:   dynReg.DurationMonths,
		Price:            price,
		PaymentReference: dynReg.PaymentReference,
		PaymentStatus:    dynReg.PaymentStatus,
		CreatedAt:        dynReg.CreatedAt,
		UpdatedAt:        dynReg.UpdatedAt,
	}, nil
}

func itemToRegistration(item map[string]types.AttributeValue) (registration.Registration, error) {
	var dynReg registrationDynamo
	err := attributevalue.UnmarshalMap(item, &dynReg)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to unmarshal registration from dynamo", err)
	}

	return dynamoToRegistration(dynReg)
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now

	dynamoReg := registrationToDynamo(reg)
	regItem, err := attributevalue.MarshalMap(dynamoReg)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}

	emailItem, err := attributevalue.MarshalMap(registrationEmailDynamo{
		PK:               registrationEmailPK(reg.Email),
		SK:               registrationEmailSK(),
		Email:            reg.Email,
		PaymentReference: reg.PaymentReference,
	})
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to translate registration email to dynamo model", err)
	}

	newExpr := exprMustBuild(expression.NewBuilder().WithCondition(newEntityConditional()))

	_, err = d.dynamoClient.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      regItem,
					ConditionExpression:       newExpr.Condition(),
					ExpressionAttributeNames:  newExpr.Names(),
					ExpressionAttributeValues: newExpr.Values(),
				},
			},
			{
				Put: &types.Put{
					TableName:                 aws.String(d.tableName),
					Item:                      emailItem,
					ConditionExpression:       newExpr.Condition(),
					ExpressionAttributeNames:  newExpr.Names(),
					ExpressionAttributeValues: newExpr.Values(),
				},
			},
		},
	})
	if err != nil {
		var transactionFailedErr *types.TransactionCanceledException
		if errors.As(err, &transactionFailedErr) {
			reasons := transactionFailedErr.CancellationReasons
			if len(reasons) == 2 && aws.ToString(reasons[0].Code) == conditionalCheckFailed {
				return registration.Registration{}, registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with payment reference %q already exists", reg.PaymentReference), err)
			}
			if len(reasons) == 2 && aws.ToString(reasons[1].Code) == conditionalCheckFailed {
				return registration.Registration{}, registration.NewRegistrationAlreadyExistsError(fmt.Sprintf("Registration with email %s already exists", reg.Email), err)
			}
			return registration.Registration{}, registration.NewFailedToWriteError("Transaction cancelled", err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("CreateRegistration timed out")
		} else {
			return registration.Registration{}, registration.NewFailedToWriteError("Failed TransactWriteItems call", err)
		}
	}

	return reg, nil
}

func (d *DB) GetRegistrationByEmail(ctx context.Context, email string) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: registrationEmailPK(email)},
			"SK": &types.AttributeValueMemberS{Value: registrationEmailSK()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistrationByEmail timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with email %s", email), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with email %s not found", email), nil)
	}

	var claim registrationEmailDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &claim)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError("Failed to unmarshal registration email from dynamo", err)
	}

	return d.GetRegistrationByPaymentReference(ctx, claim.PaymentReference)
}

func (d *DB) GetRegistrationByPaymentReference(ctx context.Context, paymentReference string) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            registrationKey(paymentReference),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistrationByPaymentReference timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration with payment reference %q", paymentReference), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with payment reference %q not found", paymentReference), nil)
	}

	return itemToRegistration(resp.Item)
}

func (d *DB) UpdatePaymentStatus(ctx context.Context, paymentReference string, status registration.PaymentStatus) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	update := expression.Set(expression.Name("PaymentStatus"), expression.Value(status)).
		Set(expression.Name("UpdatedAt"), expression.Value(time.Now().UTC())).
		Add(expression.Name("Version"), expression.Value(1))
	cond := expression.Name("PK").AttributeExists().
		And(expression.Name("PaymentStatus").Equal(expression.Value(registration.PAYMENT_PENDING)))
	expr := exprMustBuild(expression.NewBuilder().WithUpdate(update).WithCondition(cond))

	resp, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(d.tableName),
		Key:                                 registrationKey(paymentReference),
		UpdateExpression:                    expr.Update(),
		ConditionExpression:                 expr.Condition(),
		ExpressionAttributeNames:            expr.Names(),
		ExpressionAttributeValues:           expr.Values(),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			if len(condErr.Item) == 0 {
				return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with payment reference %q not found", paymentReference), nil)
			}

			current, err := itemToRegistration(condErr.Item)
			if err != nil {
				return registration.Registration{}, err
			}
			return current, registration.NewPaymentAlreadySettledError(paymentReference, current.PaymentStatus)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("UpdatePaymentStatus timed out")
		} else {
			return registration.Registration{}, registration.NewFailedToWriteError("Failed UpdateItem call", err)
		}
	}

	return itemToRegistration(resp.Attributes)
}

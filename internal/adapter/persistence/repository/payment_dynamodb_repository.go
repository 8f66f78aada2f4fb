package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsOrderRefIndex    = "order_ref-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	Amount        string `dynamodbav:"amount"`
	Method        string `dynamodbav:"method"`
	SessionID     string `dynamodbav:"session_id,omitempty"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	Status        string `dynamodbav:"status"`
	OrderRef      string `dynamodbav:"order_ref,omitempty"`
	OrderContext  string `dynamodbav:"order_context,omitempty"`
	FailureReason string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	VerifiedAt    string `dynamodbav:"verified_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_ref-index (PK: order_ref)
//
// Status writes are conditional on the stored status still being pending, so
// a payment reaches exactly one terminal status even under racing verifies.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// UpdateStatus transitions a pending payment to a terminal status. A
// conditional-check failure (payment already terminal or missing) yields a
// zero-value payment with a nil error, matching GetByID's not-found shape.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, to entities.PaymentStatus, failureReason string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if to == entities.PaymentStatusVerified {
		updateExpr += ", #verified_at = :verified_at"
		vals[":verified_at"] = &types.AttributeValueMemberS{Value: now}
		names["#verified_at"] = "verified_at"
	}
	if failureReason != "" {
		updateExpr += ", #failure_reason = :failure_reason"
		vals[":failure_reason"] = &types.AttributeValueMemberS{Value: failureReason}
		names["#failure_reason"] = "failure_reason"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByOrderRef(ctx context.Context, orderRef string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsOrderRefIndex),
		KeyConditionExpression: aws.String("order_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: orderRef},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:            p.ID,
		Amount:        floatToString(p.Amount),
		Method:        string(p.Method),
		SessionID:     p.SessionID,
		OrderID:       p.OrderID,
		Status:        string(p.Status),
		OrderRef:      p.OrderRef,
		OrderContext:  string(p.OrderContext),
		FailureReason: p.FailureReason,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.VerifiedAt != nil {
		it.VerifiedAt = p.VerifiedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	p := entities.Payment{
		ID:            it.ID,
		Amount:        amount,
		Method:        entities.PaymentMethod(it.Method),
		SessionID:     it.SessionID,
		OrderID:       it.OrderID,
		Status:        entities.PaymentStatus(it.Status),
		OrderRef:      it.OrderRef,
		FailureReason: it.FailureReason,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.OrderContext != "" {
		p.OrderContext = []byte(it.OrderContext)
	}
	if it.VerifiedAt != "" {
		if verifiedAt, err := time.Parse(time.RFC3339Nano, it.VerifiedAt); err == nil {
			p.VerifiedAt = &verifiedAt
		}
	}
	return p
}

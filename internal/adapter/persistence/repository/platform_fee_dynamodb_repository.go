package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFeesTableName = "platform_fees"
	feesEmployerIDIndex  = "employer_id-index"
	feesJobIDIndex       = "job_id-index"
)

type platformFeeItem struct {
	ID               string `dynamodbav:"id"`
	EmployerID       string `dynamodbav:"employer_id"`
	JobID            string `dynamodbav:"job_id"`
	JobTitle         string `dynamodbav:"job_title"`
	Amount           int64  `dynamodbav:"amount"`
	JobPayment       string `dynamodbav:"job_payment"`
	PaymentOption    string `dynamodbav:"payment_option"`
	Status           string `dynamodbav:"status"`
	JobCompleted     bool   `dynamodbav:"job_completed"`
	PaymentMethod    string `dynamodbav:"payment_method,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id,omitempty"`
	GatewaySignature string `dynamodbav:"gateway_signature,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PlatformFeeDynamoRepository persists PlatformFee records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: employer_id-index (PK: employer_id, SK: created_at)
//   - GSI: job_id-index (PK: job_id)
//
// Status changes are conditional on the status the caller read, so two
// writers can never both move the same fee.

type PlatformFeeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPlatformFeeRepository = (*PlatformFeeDynamoRepository)(nil)

func NewPlatformFeeDynamoRepository(ddb DynamoAPI) *PlatformFeeDynamoRepository {
	return &PlatformFeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FEES_TABLE", defaultFeesTableName),
	}
}

func (r *PlatformFeeDynamoRepository) Create(ctx context.Context, f entities.PlatformFee) (entities.PlatformFee, error) {
	av, err := attributevalue.MarshalMap(toPlatformFeeItem(f))
	if err != nil {
		return entities.PlatformFee{}, err
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
		return entities.PlatformFee{}, err
	}
	return f, nil
}

func (r *PlatformFeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PlatformFee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlatformFee{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlatformFee{}, nil
	}

	var it platformFeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlatformFee{}, err
	}
	return fromPlatformFeeItem(it), nil
}

func (r *PlatformFeeDynamoRepository) ListByEmployerID(ctx context.Context, employerID string) ([]entities.PlatformFee, error) {
	return r.queryIndex(ctx, feesEmployerIDIndex, "employer_id", employerID)
}

func (r *PlatformFeeDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.PlatformFee, error) {
	return r.queryIndex(ctx, feesJobIDIndex, "job_id", jobID)
}

func (r *PlatformFeeDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.PlatformFee, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	fees := make([]entities.PlatformFee, 0, len(raw))
	for _, item := range raw {
		var it platformFeeItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		fees = append(fees, fromPlatformFeeItem(it))
	}
	return fees, nil
}

func (r *PlatformFeeDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.FeeStatus, patch entities.FeeStatusPatch) (entities.PlatformFee, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	sets := []string{"#status = :status", "#updated_at = :updated_at"}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(patch.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = v
	}
	if patch.PaymentMethod != "" {
		set("payment_method", &types.AttributeValueMemberS{Value: string(patch.PaymentMethod)})
	}
	if patch.PaidAt != nil {
		set("paid_at", &types.AttributeValueMemberS{Value: formatTime(*patch.PaidAt)})
	}
	if patch.JobCompleted != nil {
		set("job_completed", &types.AttributeValueMemberBOOL{Value: *patch.JobCompleted})
	}
	if tx := patch.Transaction; tx != nil {
		if tx.PaymentID != "" {
			set("gateway_payment_id", &types.AttributeValueMemberS{Value: tx.PaymentID})
		}
		if tx.OrderID != "" {
			set("gateway_order_id", &types.AttributeValueMemberS{Value: tx.OrderID})
		}
		if tx.Signature != "" {
			set("gateway_signature", &types.AttributeValueMemberS{Value: tx.Signature})
		}
	}

	cond := "attribute_exists(#id)"
	if expected != "" {
		cond += " AND #status = :expected"
		values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PlatformFee{}, nil
		}
		return entities.PlatformFee{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PlatformFee{}, nil
	}
	var it platformFeeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PlatformFee{}, err
	}
	return fromPlatformFeeItem(it), nil
}

func toPlatformFeeItem(f entities.PlatformFee) platformFeeItem {
	it := platformFeeItem{
		ID:            f.ID,
		EmployerID:    f.EmployerID,
		JobID:         f.JobID,
		JobTitle:      f.JobTitle,
		Amount:        f.Amount,
		JobPayment:    floatToString(f.JobPayment),
		PaymentOption: string(f.PaymentOption),
		Status:        string(f.Status),
		JobCompleted:  f.JobCompleted,
		PaymentMethod: string(f.PaymentMethod),
		CreatedAt:     formatTime(f.CreatedAt),
		UpdatedAt:     formatTime(f.UpdatedAt),
	}
	if f.PaidAt != nil {
		it.PaidAt = formatTime(*f.PaidAt)
	}
	if f.Transaction != nil {
		it.GatewayPaymentID = f.Transaction.PaymentID
		it.GatewayOrderID = f.Transaction.OrderID
		it.GatewaySignature = f.Transaction.Signature
	}
	return it
}

func fromPlatformFeeItem(it platformFeeItem) entities.PlatformFee {
	jobPayment, _ := strconv.ParseFloat(it.JobPayment, 64)
	f := entities.PlatformFee{
		ID:            it.ID,
		EmployerID:    it.EmployerID,
		JobID:         it.JobID,
		JobTitle:      it.JobTitle,
		Amount:        it.Amount,
		JobPayment:    jobPayment,
		PaymentOption: entities.PaymentOption(it.PaymentOption),
		Status:        entities.FeeStatus(it.Status),
		JobCompleted:  it.JobCompleted,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaidAt:        parseTimePtr(it.PaidAt),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.GatewayPaymentID != "" || it.GatewayOrderID != "" {
		f.Transaction = &entities.GatewayTransaction{
			PaymentID: it.GatewayPaymentID,
			OrderID:   it.GatewayOrderID,
			Signature: it.GatewaySignature,
		}
	}
	return f
}

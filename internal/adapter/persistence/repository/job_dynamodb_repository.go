package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsEmployerIDIndex  = "employer_id-index"
)

type jobItem struct {
	ID            string `dynamodbav:"id"`
	EmployerID    string `dynamodbav:"employer_id"`
	Title         string `dynamodbav:"title"`
	Payment       string `dynamodbav:"payment"`
	PaymentOption string `dynamodbav:"payment_option"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
}

// JobDynamoRepository persists Job posts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: employer_id-index (PK: employer_id)

type JobDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListByEmployerID(ctx context.Context, employerID string) ([]entities.Job, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsEmployerIDIndex),
		KeyConditionExpression: aws.String("employer_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: employerID},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(raw))
	for _, item := range raw {
		var it jobItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) MarkCompleted(ctx context.Context, id string, completedAt time.Time) (entities.Job, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #completed_at = if_not_exists(#completed_at, :completed_at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#completed_at": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(entities.JobStatusCompleted)},
			":completed_at": &types.AttributeValueMemberS{Value: formatTime(completedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:            j.ID,
		EmployerID:    j.EmployerID,
		Title:         j.Title,
		Payment:       floatToString(j.Payment),
		PaymentOption: string(j.PaymentOption),
		Status:        string(j.Status),
		CreatedAt:     formatTime(j.CreatedAt),
	}
	if j.CompletedAt != nil {
		it.CompletedAt = formatTime(*j.CompletedAt)
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	payment, _ := strconv.ParseFloat(it.Payment, 64)
	return entities.Job{
		ID:            it.ID,
		EmployerID:    it.EmployerID,
		Title:         it.Title,
		Payment:       payment,
		PaymentOption: entities.PaymentOption(it.PaymentOption),
		Status:        entities.JobStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		CompletedAt:   parseTimePtr(it.CompletedAt),
	}
}

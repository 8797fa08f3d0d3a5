package repository

import (
	"context"
	"sort"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillingTableName = "billing_records"

type billingRecordItem struct {
	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	ConsultationID string `dynamodbav:"consultation_id,omitempty"`
	ProcessID      string `dynamodbav:"process_id,omitempty"`
	ServiceType    string `dynamodbav:"service_type"`
	Amount         int64  `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	PaymentDate    string `dynamodbav:"payment_date,omitempty"`
	PaymentMethod  string `dynamodbav:"payment_method,omitempty"`
	InvoiceNumber  string `dynamodbav:"invoice_number,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// BillingRecordDynamoRepository persists BillingRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)

type BillingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordDynamoRepository)(nil)

func NewBillingRecordDynamoRepository(ddb *dynamodb.Client) *BillingRecordDynamoRepository {
	return &BillingRecordDynamoRepository{
		ddb:       ddb,
		tableName: billingTableName(),
	}
}

func billingTableName() string {
	return getenvDefault("BILLING_RECORDS_TABLE", defaultBillingTableName)
}

// billingPut is the transactional insert shared by the consultation and
// process repositories.
func billingPut(b entities.BillingRecord) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toBillingRecordItem(b))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(billingTableName()),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func (r *BillingRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingRecord{}, nil
	}

	var it billingRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingRecord{}, err
	}
	return fromBillingRecordItem(it), nil
}

// MarkPaid settles the record only while it is still pending and owned by
// userID; the condition is evaluated by DynamoDB at write time.
func (r *BillingRecordDynamoRepository) MarkPaid(ctx context.Context, id, userID string, payment entities.Payment) (entities.BillingRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :paid, payment_date = :date, payment_method = :method, invoice_number = :invoice"),
		ConditionExpression: aws.String("#status = :pending AND user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":    &types.AttributeValueMemberS{Value: string(entities.BillingStatusPaid)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.BillingStatusPending)},
			":uid":     &types.AttributeValueMemberS{Value: userID},
			":date":    &types.AttributeValueMemberS{Value: formatTime(payment.Date)},
			":method":  &types.AttributeValueMemberS{Value: string(payment.Method)},
			":invoice": &types.AttributeValueMemberS{Value: payment.InvoiceNumber},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BillingRecord{}, interfaces.ErrBillingNotPending
		}
		return entities.BillingRecord{}, err
	}

	var it billingRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BillingRecord{}, err
	}
	return fromBillingRecordItem(it), nil
}

func (r *BillingRecordDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.BillingRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.BillingRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalBillingRecords(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func (r *BillingRecordDynamoRepository) ListAll(ctx context.Context) ([]entities.BillingRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.BillingRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalBillingRecords(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func unmarshalBillingRecords(raw []map[string]types.AttributeValue) ([]entities.BillingRecord, error) {
	items := make([]entities.BillingRecord, 0, len(raw))
	for _, av := range raw {
		var it billingRecordItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingRecordItem(it))
	}
	return items, nil
}

func toBillingRecordItem(b entities.BillingRecord) billingRecordItem {
	return billingRecordItem{
		ID:             b.ID,
		UserID:         b.UserID,
		ConsultationID: b.ConsultationID,
		ProcessID:      b.ProcessID,
		ServiceType:    string(b.ServiceType),
		Amount:         int64(b.Amount),
		Status:         string(b.Status),
		PaymentDate:    formatOptionalTime(b.PaymentDate),
		PaymentMethod:  string(b.PaymentMethod),
		InvoiceNumber:  b.InvoiceNumber,
		CreatedAt:      formatTime(b.CreatedAt),
	}
}

func fromBillingRecordItem(it billingRecordItem) entities.BillingRecord {
	return entities.BillingRecord{
		ID:             it.ID,
		UserID:         it.UserID,
		ConsultationID: it.ConsultationID,
		ProcessID:      it.ProcessID,
		ServiceType:    entities.ServiceType(it.ServiceType),
		Amount:         entities.Money(it.Amount),
		Status:         entities.BillingStatus(it.Status),
		PaymentDate:    parseOptionalTime(it.PaymentDate),
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		InvoiceNumber:  it.InvoiceNumber,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

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

const defaultConsultationsTableName = "inpi_consultations"

type searchResultItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Status    string `dynamodbav:"status"`
	Number    string `dynamodbav:"number"`
	Applicant string `dynamodbav:"applicant"`
	Class     string `dynamodbav:"class,omitempty"`
	Type      string `dynamodbav:"type"`
}

type consultationItem struct {
	ID         string             `dynamodbav:"id"`
	UserID     string             `dynamodbav:"user_id"`
	SearchTerm string             `dynamodbav:"search_term"`
	SearchType string             `dynamodbav:"search_type"`
	Status     string             `dynamodbav:"status"`
	Results    []searchResultItem `dynamodbav:"results"`
	Cost       int64              `dynamodbav:"cost"`
	CreatedAt  string             `dynamodbav:"created_at"`
}

// ConsultationDynamoRepository persists Consultation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// The billing record is written to the billing table in the same transaction.

type ConsultationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConsultationRepository = (*ConsultationDynamoRepository)(nil)

func NewConsultationDynamoRepository(ddb *dynamodb.Client) *ConsultationDynamoRepository {
	return &ConsultationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONSULTATIONS_TABLE", defaultConsultationsTableName),
	}
}

func (r *ConsultationDynamoRepository) CreateWithBilling(ctx context.Context, c entities.Consultation, b entities.BillingRecord) error {
	av, err := attributevalue.MarshalMap(toConsultationItem(c))
	if err != nil {
		return err
	}
	bill, err := billingPut(b)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			bill,
		},
	})
	return err
}

func (r *ConsultationDynamoRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Consultation, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalConsultations(out.Items)
}

func (r *ConsultationDynamoRepository) ListAll(ctx context.Context) ([]entities.Consultation, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.Consultation, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalConsultations(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func unmarshalConsultations(raw []map[string]types.AttributeValue) ([]entities.Consultation, error) {
	items := make([]entities.Consultation, 0, len(raw))
	for _, av := range raw {
		var it consultationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConsultationItem(it))
	}
	return items, nil
}

func toConsultationItem(c entities.Consultation) consultationItem {
	results := make([]searchResultItem, 0, len(c.Results))
	for _, res := range c.Results {
		results = append(results, searchResultItem{
			ID:        res.ID,
			Title:     res.Title,
			Status:    res.Status,
			Number:    res.Number,
			Applicant: res.Applicant,
			Class:     res.Class,
			Type:      string(res.Type),
		})
	}
	return consultationItem{
		ID:         c.ID,
		UserID:     c.UserID,
		SearchTerm: c.SearchTerm,
		SearchType: string(c.SearchType),
		Status:     string(c.Status),
		Results:    results,
		Cost:       int64(c.Cost),
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromConsultationItem(it consultationItem) entities.Consultation {
	results := make([]entities.SearchResult, 0, len(it.Results))
	for _, res := range it.Results {
		results = append(results, entities.SearchResult{
			ID:        res.ID,
			Title:     res.Title,
			Status:    res.Status,
			Number:    res.Number,
			Applicant: res.Applicant,
			Class:     res.Class,
			Type:      entities.SearchType(res.Type),
		})
	}
	return entities.Consultation{
		ID:         it.ID,
		UserID:     it.UserID,
		SearchTerm: it.SearchTerm,
		SearchType: entities.SearchType(it.SearchType),
		Status:     entities.ConsultationStatus(it.Status),
		Results:    results,
		Cost:       entities.Money(it.Cost),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

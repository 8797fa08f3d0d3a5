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

const (
	defaultProcessesTableName  = "registration_processes"
	defaultMonitoringTableName = "process_monitoring"
)

type processItem struct {
	ID              string `dynamodbav:"id"`
	UserID          string `dynamodbav:"user_id"`
	ProcessType     string `dynamodbav:"process_type"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description,omitempty"`
	Status          string `dynamodbav:"status"`
	ProcessNumber   string `dynamodbav:"process_number,omitempty"`
	PriorityDate    string `dynamodbav:"priority_date,omitempty"`
	PublicationDate string `dynamodbav:"publication_date,omitempty"`
	TotalCost       int64  `dynamodbav:"total_cost"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// monitoringItem carries the process title and owner so the admin activity
// feed needs no join; both are immutable after creation.
type monitoringItem struct {
	ProcessID      string `dynamodbav:"process_id"`
	SK             string `dynamodbav:"sk"`
	ID             string `dynamodbav:"id"`
	StatusChange   string `dynamodbav:"status_change"`
	PreviousStatus string `dynamodbav:"previous_status,omitempty"`
	NewStatus      string `dynamodbav:"new_status"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	ProcessTitle   string `dynamodbav:"process_title"`
	UserID         string `dynamodbav:"user_id"`
}

// ProcessDynamoRepository persists RegistrationProcess entities and their
// monitoring history in DynamoDB.
//
// Table requirements:
//   - registration_processes: PK id, GSI user_id-index (PK: user_id, SK: created_at)
//   - process_monitoring: PK process_id, SK sk

type ProcessDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	monitoringTable string
}

var _ interfaces.IProcessRepository = (*ProcessDynamoRepository)(nil)

func NewProcessDynamoRepository(ddb *dynamodb.Client) *ProcessDynamoRepository {
	return &ProcessDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PROCESSES_TABLE", defaultProcessesTableName),
		monitoringTable: getenvDefault("MONITORING_TABLE", defaultMonitoringTableName),
	}
}

func (r *ProcessDynamoRepository) CreateWithBilling(ctx context.Context, p entities.RegistrationProcess, m entities.ProcessMonitoring, b entities.BillingRecord) error {
	pav, err := attributevalue.MarshalMap(toProcessItem(p))
	if err != nil {
		return err
	}
	mon, err := r.monitoringPut(m, p)
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
					Item:                pav,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			mon,
			bill,
		},
	})
	return err
}

func (r *ProcessDynamoRepository) GetByID(ctx context.Context, id string) (entities.RegistrationProcess, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RegistrationProcess{}, err
	}
	if len(out.Item) == 0 {
		return entities.RegistrationProcess{}, nil
	}

	var it processItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RegistrationProcess{}, err
	}
	return fromProcessItem(it), nil
}

// UpdateStatus conditions the process update on the previous status and
// appends the monitoring entry in the same transaction.
func (r *ProcessDynamoRepository) UpdateStatus(ctx context.Context, updated entities.RegistrationProcess, from entities.ProcessStatus, m entities.ProcessMonitoring) error {
	mon, err := r.monitoringPut(m, updated)
	if err != nil {
		return err
	}

	expr := "SET #status = :next, updated_at = :updated"
	values := map[string]types.AttributeValue{
		":next":    &types.AttributeValueMemberS{Value: string(updated.Status)},
		":from":    &types.AttributeValueMemberS{Value: string(from)},
		":updated": &types.AttributeValueMemberS{Value: formatTime(updated.UpdatedAt)},
	}
	if updated.ProcessNumber != "" {
		expr += ", process_number = :number"
		values[":number"] = &types.AttributeValueMemberS{Value: updated.ProcessNumber}
	}
	if updated.PublicationDate != nil {
		expr += ", publication_date = :published"
		values[":published"] = &types.AttributeValueMemberS{Value: formatTime(*updated.PublicationDate)}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: updated.ID},
					},
					UpdateExpression:    aws.String(expr),
					ConditionExpression: aws.String("#status = :from"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: values,
				},
			},
			mon,
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err, 0) {
			return interfaces.ErrStatusConflict
		}
		return err
	}
	return nil
}

func (r *ProcessDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.RegistrationProcess, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.RegistrationProcess, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalProcesses(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func (r *ProcessDynamoRepository) ListAll(ctx context.Context) ([]entities.RegistrationProcess, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.RegistrationProcess, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalProcesses(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *ProcessDynamoRepository) ListMonitoring(ctx context.Context, processID string) ([]entities.ProcessMonitoring, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.monitoringTable),
		KeyConditionExpression: aws.String("process_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: processID},
		},
		ConsistentRead: aws.Bool(true),
	})

	items := make([]entities.ProcessMonitoring, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range out.Items {
			var it monitoringItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMonitoringItem(it).ProcessMonitoring)
		}
	}
	return items, nil
}

// ListRecentMonitoring scans the history table; the volume is one entry per
// status change, which keeps a scan acceptable for the admin console.
func (r *ProcessDynamoRepository) ListRecentMonitoring(ctx context.Context, limit int) ([]entities.MonitoringActivity, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.monitoringTable),
	})

	items := make([]entities.MonitoringActivity, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range out.Items {
			var it monitoringItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMonitoringItem(it))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *ProcessDynamoRepository) monitoringPut(m entities.ProcessMonitoring, p entities.RegistrationProcess) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toMonitoringItem(m, p))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.monitoringTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(sk)"),
		},
	}, nil
}

func unmarshalProcesses(raw []map[string]types.AttributeValue) ([]entities.RegistrationProcess, error) {
	items := make([]entities.RegistrationProcess, 0, len(raw))
	for _, av := range raw {
		var it processItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProcessItem(it))
	}
	return items, nil
}

func toProcessItem(p entities.RegistrationProcess) processItem {
	return processItem{
		ID:              p.ID,
		UserID:          p.UserID,
		ProcessType:     string(p.ProcessType),
		Title:           p.Title,
		Description:     p.Description,
		Status:          string(p.Status),
		ProcessNumber:   p.ProcessNumber,
		PriorityDate:    formatOptionalTime(p.PriorityDate),
		PublicationDate: formatOptionalTime(p.PublicationDate),
		TotalCost:       int64(p.TotalCost),
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromProcessItem(it processItem) entities.RegistrationProcess {
	return entities.RegistrationProcess{
		ID:              it.ID,
		UserID:          it.UserID,
		ProcessType:     entities.ProcessType(it.ProcessType),
		Title:           it.Title,
		Description:     it.Description,
		Status:          entities.ProcessStatus(it.Status),
		ProcessNumber:   it.ProcessNumber,
		PriorityDate:    parseOptionalTime(it.PriorityDate),
		PublicationDate: parseOptionalTime(it.PublicationDate),
		TotalCost:       entities.Money(it.TotalCost),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func monitoringSortKey(m entities.ProcessMonitoring) string {
	return formatTime(m.CreatedAt) + "#" + m.ID
}

func toMonitoringItem(m entities.ProcessMonitoring, p entities.RegistrationProcess) monitoringItem {
	return monitoringItem{
		ProcessID:      m.ProcessID,
		SK:             monitoringSortKey(m),
		ID:             m.ID,
		StatusChange:   m.StatusChange,
		PreviousStatus: string(m.PreviousStatus),
		NewStatus:      string(m.NewStatus),
		Notes:          m.Notes,
		CreatedAt:      formatTime(m.CreatedAt),
		ProcessTitle:   p.Title,
		UserID:         p.UserID,
	}
}

func fromMonitoringItem(it monitoringItem) entities.MonitoringActivity {
	return entities.MonitoringActivity{
		ProcessMonitoring: entities.ProcessMonitoring{
			ID:             it.ID,
			ProcessID:      it.ProcessID,
			StatusChange:   it.StatusChange,
			PreviousStatus: entities.ProcessStatus(it.PreviousStatus),
			NewStatus:      entities.ProcessStatus(it.NewStatus),
			Notes:          it.Notes,
			CreatedAt:      parseTime(it.CreatedAt),
		},
		ProcessTitle: it.ProcessTitle,
		UserID:       it.UserID,
	}
}

package repository

import (
	"context"
	"time"

	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsOrderIndex       = "order_number-index"
)

type transactionItem struct {
	ID            string `dynamodbav:"id"`
	OrderNumber   string `dynamodbav:"order_number"`
	Kind          string `dynamodbav:"kind"`
	Status        string `dynamodbav:"status"`
	Amount        string `dynamodbav:"amount"`
	GatewayID     string `dynamodbav:"gateway_id,omitempty"`
	Authorization string `dynamodbav:"authorization,omitempty"`
	Message       string `dynamodbav:"message,omitempty"`
	TestMode      bool   `dynamodbav:"test_mode"`
	CVVResult     string `dynamodbav:"cvv_result,omitempty"`
	AVSCode       string `dynamodbav:"avs_code,omitempty"`
	Date          string `dynamodbav:"date"`
}

// TransactionDynamoRepository persists Transaction records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_number-index (PK: order_number)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByOrderNumber(ctx context.Context, orderNumber string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIndex),
		KeyConditionExpression: aws.String("order_number = :on"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":on": &types.AttributeValueMemberS{Value: orderNumber},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		ID:            tx.ID,
		OrderNumber:   tx.OrderNumber,
		Kind:          string(tx.Kind),
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		GatewayID:     tx.GatewayID,
		Authorization: tx.Authorization,
		Message:       tx.Message,
		TestMode:      tx.TestMode,
		CVVResult:     tx.CVVResult,
		AVSCode:       tx.AVSCode,
		Date:          tx.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Transaction{
		ID:            it.ID,
		OrderNumber:   it.OrderNumber,
		Kind:          entities.TransactionKind(it.Kind),
		Status:        entities.TransactionStatus(it.Status),
		Amount:        it.Amount,
		GatewayID:     it.GatewayID,
		Authorization: it.Authorization,
		Message:       it.Message,
		TestMode:      it.TestMode,
		CVVResult:     it.CVVResult,
		AVSCode:       it.AVSCode,
		Date:          dt,
	}
}

package repository

import (
	"context"
	"time"

	"renewal_automation/internal/domain/entities"
	"renewal_automation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRenewalBillingsTableName = "renewal_billings"

type billingRecordItem struct {
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"name"`
	AccountID         string  `dynamodbav:"account_id"`
	CustomerName      string  `dynamodbav:"customer_name"`
	BillingDate       string  `dynamodbav:"billing_date,omitempty"`
	SubscriptionType  string  `dynamodbav:"subscription_type,omitempty"`
	Total             float64 `dynamodbav:"total"`
	Balance           float64 `dynamodbav:"balance"`
	PaymentStatus     string  `dynamodbav:"payment_status"`
	PaymentGateway    string  `dynamodbav:"payment_gateway"`
	ProcessorResponse string  `dynamodbav:"processor_response,omitempty"`
	MandateID         string  `dynamodbav:"mandate_id,omitempty"`
	ChargeDate        string  `dynamodbav:"charge_date,omitempty"`
	CardToken         string  `dynamodbav:"card_token,omitempty"`
	StripeCustomerID  string  `dynamodbav:"stripe_customer_id,omitempty"`
}

// BillingRecordDynamoRepository reads renewal billing records from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The renewal service never writes: record state belongs to the integration
// proxy, which is why the interface carries no mutation methods.

type BillingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordDynamoRepository)(nil)

func NewBillingRecordDynamoRepository(ddb *dynamodb.Client) *BillingRecordDynamoRepository {
	return &BillingRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENEWAL_BILLINGS_TABLE", defaultRenewalBillingsTableName),
	}
}

func (r *BillingRecordDynamoRepository) FetchRenewalBillingRecords(ctx context.Context, statusFilter string) ([]entities.BillingRecord, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if statusFilter != "" {
		input.FilterExpression = aws.String("#ps = :ps")
		input.ExpressionAttributeNames = map[string]string{"#ps": "payment_status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":ps": &types.AttributeValueMemberS{Value: statusFilter},
		}
	}

	records := make([]entities.BillingRecord, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it billingRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromBillingRecordItem(it))
		}
	}
	return records, nil
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

func fromBillingRecordItem(it billingRecordItem) entities.BillingRecord {
	billingDate, _ := time.Parse(time.RFC3339, it.BillingDate)
	return entities.BillingRecord{
		ID:                it.ID,
		Name:              it.Name,
		AccountID:         it.AccountID,
		CustomerName:      it.CustomerName,
		BillingDate:       billingDate,
		SubscriptionType:  it.SubscriptionType,
		Total:             it.Total,
		Balance:           it.Balance,
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentGateway:    entities.PaymentGateway(it.PaymentGateway),
		ProcessorResponse: it.ProcessorResponse,
		MandateID:         it.MandateID,
		ChargeDate:        it.ChargeDate,
		CardToken:         it.CardToken,
		StripeCustomerID:  it.StripeCustomerID,
	}
}

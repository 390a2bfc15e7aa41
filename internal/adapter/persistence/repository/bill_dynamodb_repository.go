package repository

import (
	"context"
	"time"

	"packtrack/internal/domain/entities"
	"packtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillsTableName = "bills"

type billItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name,omitempty"`
	Address      string `dynamodbav:"address,omitempty"`
	InvoiceNo    string `dynamodbav:"invoice_no,omitempty"`
	BillDate     string `dynamodbav:"bill_date,omitempty"`
	Status       string `dynamodbav:"status"`

	IsDelivery       bool `dynamodbav:"is_delivery"`
	HasCRN           bool `dynamodbav:"has_crn"`
	IsEditedBill     bool `dynamodbav:"is_edited_bill"`
	IsAdditionalBill bool `dynamodbav:"is_additional_bill"`

	BoxCount    int    `dynamodbav:"box_count"`
	Description string `dynamodbav:"description,omitempty"`
	ColorTheme  string `dynamodbav:"color_theme,omitempty"`

	EntryDate string `dynamodbav:"entry_date"`
	ImageURL  string `dynamodbav:"image_url,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	PackedAt  string `dynamodbav:"packed_at,omitempty"`
}

// BillDynamoRepository persists Bill records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Put is an unconditional upsert: the gateway retries creations and pushes
// edits through the same call, and the record is always written whole.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRecordStore = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Put(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ListAll scans the whole table. The record set of a single small team stays
// well inside scan limits; the subscription poller is the only caller.
func (r *BillDynamoRepository) ListAll(ctx context.Context) ([]entities.Bill, error) {
	var (
		bills   []entities.Bill
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []billItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			bills = append(bills, fromBillItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return bills, nil
}

func toBillItem(b entities.Bill) billItem {
	it := billItem{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		Address:          b.Address,
		InvoiceNo:        b.InvoiceNo,
		BillDate:         b.BillDate,
		Status:           string(b.Status),
		IsDelivery:       b.IsDelivery,
		HasCRN:           b.HasCRN,
		IsEditedBill:     b.IsEditedBill,
		IsAdditionalBill: b.IsAdditionalBill,
		BoxCount:         b.BoxCount,
		Description:      b.Description,
		ColorTheme:       b.ColorTheme,
		EntryDate:        b.EntryDate,
		ImageURL:         b.ImageURL,
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.PackedAt != nil {
		it.PackedAt = b.PackedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBillItem(it billItem) entities.Bill {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	b := entities.Bill{
		ID:               it.ID,
		CustomerName:     it.CustomerName,
		Address:          it.Address,
		InvoiceNo:        it.InvoiceNo,
		BillDate:         it.BillDate,
		Status:           entities.BillStatus(it.Status),
		IsDelivery:       it.IsDelivery,
		HasCRN:           it.HasCRN,
		IsEditedBill:     it.IsEditedBill,
		IsAdditionalBill: it.IsAdditionalBill,
		BoxCount:         it.BoxCount,
		Description:      it.Description,
		ColorTheme:       it.ColorTheme,
		EntryDate:        it.EntryDate,
		ImageURL:         it.ImageURL,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.PackedAt != "" {
		if packedAt, err := time.Parse(time.RFC3339Nano, it.PackedAt); err == nil {
			b.PackedAt = &packedAt
		}
	}
	return b
}
